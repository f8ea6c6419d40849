// Package mandel holds the data model of the Mandelbrot renderer: the region of
// the complex plane being rasterized, the output resolution and the render
// configuration, together with the per pixel functions (coordinate mapping,
// escape time evaluation and shading) every renderer is built from.
package mandel

import (
	"fmt"
	"math"
)

const (
	// MaxPixels bounds the size of a single render. Larger buffers are
	// refused by NewBuffer instead of being allocated. At the limit an RGBA
	// buffer takes 1GiB.
	MaxPixels = 1 << 27

	// MaxIterations is the largest escape time bound, escape times are
	// stored as uint32.
	MaxIterations = math.MaxUint32
)

// Region is the rectangle of the complex plane mapped onto the image.
// UpperLeft corresponds to pixel (0, 0), LowerRight to (width, height).
type Region struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Width returns the real extent of the region.
func (r Region) Width() float64 {
	return real(r.LowerRight) - real(r.UpperLeft)
}

// Height returns the imaginary extent of the region.
func (r Region) Height() float64 {
	return imag(r.UpperLeft) - imag(r.LowerRight)
}

// Validate reports a *ConfigError unless both corners are finite and
// UpperLeft lies strictly above and to the left of LowerRight.
func (r Region) Validate() error {
	for _, c := range []complex128{r.UpperLeft, r.LowerRight} {
		if !isFinite(real(c)) || !isFinite(imag(c)) {
			return configErrorf("region", "corner %v is not finite", c)
		}
	}
	if real(r.UpperLeft) >= real(r.LowerRight) {
		return configErrorf("region", "upper left real %g must be less than lower right real %g",
			real(r.UpperLeft), real(r.LowerRight))
	}
	if imag(r.UpperLeft) <= imag(r.LowerRight) {
		return configErrorf("region", "upper left imaginary %g must be greater than lower right imaginary %g",
			imag(r.UpperLeft), imag(r.LowerRight))
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("[%g,%g .. %g,%g]", real(r.UpperLeft), imag(r.UpperLeft), real(r.LowerRight), imag(r.LowerRight))
}

// Resolution is the output image size in pixels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) Validate() error {
	if r.Width < 1 || r.Height < 1 {
		return configErrorf("resolution", "%dx%d: both dimensions must be at least 1", r.Width, r.Height)
	}
	return nil
}

// Pixels returns Width*Height, or false if the product overflows int.
func (r Resolution) Pixels() (int, bool) {
	if r.Width < 0 || r.Height < 0 {
		return 0, false
	}
	if r.Height != 0 && r.Width > math.MaxInt/r.Height {
		return 0, false
	}
	return r.Width * r.Height, true
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Config describes one render. It is built once by NewConfig and passed by
// value to every worker.
type Config struct {
	Region     Region
	Resolution Resolution
	Iterations int // escape time bound, also the value of non escaping pixels
	Workers    int
}

// NewConfig validates its arguments and returns the resulting Config.
// Every failure is a *ConfigError.
func NewConfig(region Region, res Resolution, iterations, workers int) (Config, error) {
	cfg := Config{
		Region:     region,
		Resolution: res,
		Iterations: iterations,
		Workers:    workers,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return configErrorf("threads", "%d: must be a positive integer", c.Workers)
	}
	if c.Iterations < 1 {
		return configErrorf("iterations", "%d: must be a positive integer", c.Iterations)
	}
	if uint64(c.Iterations) > MaxIterations {
		return configErrorf("iterations", "%d: must not exceed %d", c.Iterations, uint64(MaxIterations))
	}
	if err := c.Resolution.Validate(); err != nil {
		return err
	}
	return c.Region.Validate()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
