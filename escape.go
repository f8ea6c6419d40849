package mandel

import "math"

// PixelToPoint maps the pixel at (row, col) of an image of size res onto the
// complex plane spanned by region. Pixel (0, 0) maps to region.UpperLeft;
// rows grow towards region.LowerRight's imaginary part.
func PixelToPoint(row, col int, res Resolution, region Region) complex128 {
	ul, lr := region.UpperLeft, region.LowerRight
	re := real(ul) + float64(col)*(real(lr)-real(ul))/float64(res.Width)
	im := imag(ul) + float64(row)*(imag(lr)-imag(ul))/float64(res.Height)
	return complex(re, im)
}

// Escape iterates z = z*z + c from z = 0 and returns the number of
// iterations after which |z|^2 first exceeded 4, or bound if that did not
// happen within bound iterations. A squared magnitude of exactly 4 has not
// escaped yet.
//
// Non finite input or a non finite intermediate magnitude is treated as not
// escaping, so the result is always in [0, bound] for a positive bound.
func Escape(c complex128, bound int) int {
	cr, ci := real(c), imag(c)
	if !isFinite(cr) || !isFinite(ci) {
		return bound
	}

	var zr, zi float64
	for n := 1; n <= bound; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		norm := zr*zr + zi*zi
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			return bound
		}
		if norm > 4 {
			return n
		}
	}
	return bound
}
