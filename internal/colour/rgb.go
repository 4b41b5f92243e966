// Package colour implements the colour-space engine: encoded sRGB, linear
// CIE XYZ tristimulus values and the CAM16-UCS appearance space, together
// with the perceptual distance metric and colour-temperature estimation.
package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColour reports a malformed or out-of-range colour encoding.
var ErrInvalidColour = errors.New("invalid colour")

// RGB255 is an encoded sRGB colour with 8-bit channels, the form colours
// are exchanged in hex notation.
type RGB255 struct {
	R, G, B uint8
}

// NewRGB255 creates an encoded colour from 8-bit channel values.
func NewRGB255(r, g, b uint8) RGB255 {
	return RGB255{R: r, G: g, B: b}
}

// FromFloat creates an encoded colour from normalised channel values.
// Channels outside [0, 1] fail with ErrInvalidColour.
func FromFloat(r, g, b float64) (RGB255, error) {
	for _, v := range [3]float64{r, g, b} {
		if v < 0 || v > 1 {
			return RGB255{}, fmt.Errorf("%w: channel %v outside [0, 1]", ErrInvalidColour, v)
		}
	}
	return RGB255{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
	}, nil
}

// ParseHex parses a colour in hex notation: "rrggbb" or "#rrggbb".
func ParseHex(s string) (RGB255, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return RGB255{}, fmt.Errorf("%w: bad hex length in %q", ErrInvalidColour, s)
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(t[2*i])
		lo, ok2 := hexDigit(t[2*i+1])
		if !ok1 || !ok2 {
			return RGB255{}, fmt.Errorf("%w: non-hex characters in %q", ErrInvalidColour, s)
		}
		c[i] = hi<<4 | lo
	}
	return RGB255{R: c[0], G: c[1], B: c[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the colour in "#rrggbb" notation.
func (c RGB255) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB255) String() string {
	return c.Hex()
}
