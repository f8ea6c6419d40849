package mandel

import (
	"image/color"
	"math"
	"sort"
	"strings"
)

// Shader turns an escape time into a pixel color.
// Shade must be a pure function: it is called concurrently from every worker.
type Shader interface {
	Shade(escape, bound int) color.Color
	// Model is the color model of the image the shader paints into.
	Model() color.Model
}

// Gray is the default shader: a linear ramp from white for points escaping
// immediately to black for points inside the set.
type Gray struct{}

func (Gray) Shade(escape, bound int) color.Color {
	return color.Gray{Y: grayLevel(escape, bound)}
}

func (Gray) Model() color.Model { return color.GrayModel }

func grayLevel(escape, bound int) uint8 {
	if bound < 1 {
		return 255
	}
	escape = min(max(escape, 0), bound)
	return uint8(255 - int64(255)*int64(escape)/int64(bound))
}

// BlackWhite paints points inside the set black and everything else white.
type BlackWhite struct{}

func (BlackWhite) Shade(escape, bound int) color.Color {
	if escape >= bound {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

func (BlackWhite) Model() color.Model { return color.GrayModel }

// Rainbow walks the hue wheel with the escape time. Points inside the set
// are black.
type Rainbow struct {
	// Step is the hue advance per iteration, 0.02 if zero.
	Step float64
}

func (s Rainbow) Shade(escape, bound int) color.Color {
	if escape >= bound {
		return color.RGBA{A: 255}
	}
	step := s.Step
	if step == 0 {
		step = 0.02
	}
	return hue(float64(escape) * step)
}

func (Rainbow) Model() color.Model { return color.RGBAModel }

// Gradient cycles through Steps colors linearly interpolated between From
// and To. Points inside the set are black.
type Gradient struct {
	From, To color.RGBA
	Steps    int
}

// DefaultGradient runs from deep blue to gold.
var DefaultGradient = Gradient{
	From:  color.RGBA{R: 0x00, G: 0x07, B: 0x64, A: 0xff},
	To:    color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	Steps: 64,
}

func (g Gradient) Shade(escape, bound int) color.Color {
	if escape >= bound {
		return color.RGBA{A: 255}
	}
	steps := max(g.Steps, 1)
	fraction := float64(escape%steps) / float64(steps)
	return color.RGBA{
		R: lerp(g.From.R, g.To.R, fraction),
		G: lerp(g.From.G, g.To.G, fraction),
		B: lerp(g.From.B, g.To.B, fraction),
		A: 255,
	}
}

func (Gradient) Model() color.Model { return color.RGBAModel }

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// hue returns the fully saturated color at position h of the color wheel,
// h = 0 and h = 1 being red.
func hue(h float64) color.RGBA {
	h = math.Mod(h, 1) * 6
	sector := int(h)
	rise := uint8(255 * (h - float64(sector)))
	fall := 255 - rise

	switch sector {
	case 0:
		return color.RGBA{R: 255, G: rise, A: 255}
	case 1:
		return color.RGBA{R: fall, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: rise, A: 255}
	case 3:
		return color.RGBA{G: fall, B: 255, A: 255}
	case 4:
		return color.RGBA{R: rise, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: fall, A: 255}
	}
}

var shaders = map[string]Shader{
	"gray":     Gray{},
	"bw":       BlackWhite{},
	"rainbow":  Rainbow{},
	"gradient": DefaultGradient,
}

// ShaderByName resolves a palette name as accepted on the command line.
// The empty name selects Gray.
func ShaderByName(name string) (Shader, error) {
	if name == "" {
		return Gray{}, nil
	}
	s, ok := shaders[strings.ToLower(name)]
	if !ok {
		return nil, configErrorf("palette", "unknown palette %q, want one of %s", name, strings.Join(ShaderNames(), ", "))
	}
	return s, nil
}

// ShaderNames lists the names ShaderByName accepts, sorted.
func ShaderNames() []string {
	names := make([]string, 0, len(shaders))
	for n := range shaders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
