package colour

import "math"

// XYZ is a CIE 1931 tristimulus value on the 0–100 scale, the linear
// device-independent space all conversions pass through.
type XYZ struct {
	X, Y, Z float64
}

// ungamma removes the sRGB transfer function from a normalised channel.
func ungamma(x float64) float64 {
	if x <= 0.04045 {
		return 25 * x / 323
	}
	return math.Pow((200*x+11)/211, 12.0/5.0)
}

// regamma applies the sRGB transfer function to a linear channel.
func regamma(x float64) float64 {
	if x <= 0.0031308 {
		return 323 * x / 25
	}
	return 211.0/200.0*math.Pow(x, 5.0/12.0) - 11.0/200.0
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// cyclic wraps x into [0, period).
func cyclic(x, period float64) float64 {
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	return x
}

// XYZ converts the encoded colour to tristimulus values.
func (c RGB255) XYZ() XYZ {
	r := ungamma(float64(c.R) / 255)
	g := ungamma(float64(c.G) / 255)
	b := ungamma(float64(c.B) / 255)
	return XYZ{
		X: (0.4124*r + 0.3576*g + 0.1805*b) * 100,
		Y: (0.2126*r + 0.7152*g + 0.0722*b) * 100,
		Z: (0.0193*r + 0.1192*g + 0.9505*b) * 100,
	}
}

// RGB255 converts tristimulus values back to the encoded form, clipping to
// the sRGB gamut. Inverse of RGB255.XYZ for in-gamut input.
func (c XYZ) RGB255() RGB255 {
	x, y, z := c.X/100, c.Y/100, c.Z/100
	r := 3.2406255*x - 1.5372080*y - 0.4986286*z
	g := -0.9689307*x + 1.8757561*y + 0.0415175*z
	b := 0.0557101*x - 0.2040211*y + 1.0569959*z
	enc := func(v float64) uint8 {
		return uint8(clip(regamma(clip(v, 0, 1)), 0, 1)*255 + 0.5)
	}
	return RGB255{R: enc(r), G: enc(g), B: enc(b)}
}

// XY is a CIE 1931 chromaticity coordinate.
type XY struct {
	X, Y float64
}

// Chromaticity projects a tristimulus value onto the chromaticity plane.
// Zero input maps to the origin.
func (c XYZ) Chromaticity() XY {
	sum := c.X + c.Y + c.Z
	if sum <= 0 {
		return XY{}
	}
	return XY{X: c.X / sum, Y: c.Y / sum}
}

// D65 is the standard daylight white point chromaticity.
func D65() XY {
	return XY{X: 0.31270, Y: 0.32900}
}

// ChromaticityFromCCT returns the chromaticity of daylight at the given
// correlated colour temperature in kelvin (Kim et al. cubic-spline fit).
func ChromaticityFromCCT(t float64) XY {
	var x float64
	if t <= 7000 {
		x = 0.244063 +
			0.09911*1e3/t +
			2.9678*1e6/(t*t) -
			4.6070*1e9/math.Pow(t, 9)
	} else {
		x = 0.237040 +
			0.24748*1e3/t +
			1.9018*1e6/(t*t) -
			2.0064*1e9/math.Pow(t, 9)
	}
	y := -3*x*x + 2.87*x - 0.275
	return XY{X: x, Y: y}
}

// WithY lifts a chromaticity back to tristimulus values at luminance y.
func (p XY) WithY(y float64) XYZ {
	if p.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		X: y * p.X / p.Y,
		Y: y,
		Z: y * (1 - p.X - p.Y) / p.Y,
	}
}

// HueRelativeTo returns the hue angle of p around the reference point o as
// a fraction of a turn in [0, 1), rotated so 0 sits at the bottom of the
// chromaticity diagram:
//
//	   0.5
//	  /   \
//	0.75  0.25
//	  \   /
//	   1|0
func (p XY) HueRelativeTo(o XY) float64 {
	a := math.Atan2(p.Y-o.Y, p.X-o.X) + math.Pi/2
	return cyclic(a/(2*math.Pi), 1)
}

// UV is a CIE 1960 uniform chromaticity coordinate, the space colour
// temperature distances are judged in.
type UV struct {
	U, V float64
}

// UV converts a chromaticity to CIE 1960 uv.
func (p XY) UV() UV {
	d := p.Y - 0.15735*p.X + 0.2424
	return UV{
		U: (0.4661*p.X + 0.1593*p.Y) / d,
		V: 0.6581 * p.Y / d,
	}
}

// UV converts a tristimulus value to CIE 1960 uv.
func (c XYZ) UV() UV {
	return c.Chromaticity().UV()
}
