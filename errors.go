package mandel

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks malformed or out of range render parameters. It is
	// always detected before any worker starts.
	ErrConfig = errors.New("invalid configuration")

	// ErrRenderFault marks a render that was aborted as a whole, either
	// because the buffer could not be allocated or because a worker crashed.
	ErrRenderFault = errors.New("render fault")
)

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfig, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfig, e.Field, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
