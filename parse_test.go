package mandel

import (
	"errors"
	"testing"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		s, sep      string
		left, right string
		ok          bool
	}{
		{"1.25x0.42", "x", "1.25", "0.42", true},
		{"125#42", "#", "125", "42", true},
		{"-1.0,-2", ",", "-1.0", "-2", true},
		{"1,2,3", ",", "1", "2,3", true},
		{"ab", ",", "", "", false},
	}
	for _, tt := range tests {
		l, r, ok := ParsePair(tt.s, tt.sep)
		if l != tt.left || r != tt.right || ok != tt.ok {
			t.Errorf("ParsePair(%q, %q) = %q, %q, %v", tt.s, tt.sep, l, r, ok)
		}
	}
}

func TestParseComplex(t *testing.T) {
	got, err := ParseComplex("1.25,-0.42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := complex(1.25, -0.42); got != want {
		t.Fatalf("ParseComplex = %v, want %v", got, want)
	}

	for _, s := range []string{"1.25xb", "1.25,", ",3", "a,b", "1,2,3", ""} {
		if _, err := ParseComplex(s); !errors.Is(err, ErrConfig) {
			t.Errorf("ParseComplex(%q): expected ErrConfig, got %v", s, err)
		}
	}
}

func TestParseResolution(t *testing.T) {
	got, err := ParseResolution("1500x750")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (Resolution{1500, 750}) {
		t.Fatalf("ParseResolution = %v", got)
	}

	for _, s := range []string{"1500", "1500x", "x750", "15.5x7", "axb", "1500,750"} {
		if _, err := ParseResolution(s); !errors.Is(err, ErrConfig) {
			t.Errorf("ParseResolution(%q): expected ErrConfig, got %v", s, err)
		}
	}
}

func TestParseArgs(t *testing.T) {
	cfg, dest, err := ParseArgs([]string{"pic.png", "8", "100", "300x200", "-2.0,1.0", "1.0,-1.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest != "pic.png" {
		t.Fatalf("dest = %q", dest)
	}
	want := Config{Region: WholeSet, Resolution: Resolution{300, 200}, Iterations: 100, Workers: 8}
	if cfg != want {
		t.Fatalf("ParseArgs = %+v, want %+v", cfg, want)
	}
}

func TestParseArgsRejects(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"too few", []string{"pic.png", "8", "100"}, ""},
		{"empty dest", []string{"", "8", "100", "300x200", "-2,1", "1,-1"}, "dest"},
		{"threads not a number", []string{"pic.png", "many", "100", "300x200", "-2,1", "1,-1"}, "threads"},
		{"zero threads", []string{"pic.png", "0", "100", "300x200", "-2,1", "1,-1"}, "threads"},
		{"iterations not a number", []string{"pic.png", "8", "1e3", "300x200", "-2,1", "1,-1"}, "iterations"},
		{"bad resolution", []string{"pic.png", "8", "100", "300*200", "-2,1", "1,-1"}, "resolution"},
		{"bad corner", []string{"pic.png", "8", "100", "300x200", "-2;1", "1,-1"}, "point"},
		{"degenerate region", []string{"pic.png", "8", "100", "300x200", "1,1", "-2,-1"}, "region"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseArgs(tt.args)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Fatalf("field = %q, want %q (%v)", cfgErr.Field, tt.field, err)
			}
		})
	}
}
