package colour

import (
	"fmt"
	"math"
)

// Wavelength is a monochromatic light wavelength in ångströms.
type Wavelength float64

// Sampling range of the spectral table. Outside 410–665 nm the CMF fit
// decays towards zero and the hue samples stop being useful.
const (
	WavelengthMin  Wavelength = 4100
	WavelengthMax  Wavelength = 6650
	WavelengthStep Wavelength = 5
)

// Nanometres returns the wavelength in nm.
func (w Wavelength) Nanometres() float64 {
	return float64(w) / 10
}

func (w Wavelength) String() string {
	return fmt.Sprintf("%.0fnm", w.Nanometres())
}

// brokenGaussian is a Gaussian with independent widths on each side of the
// peak, the building block of the CIE standard-observer fit.
func brokenGaussian(x, a, mu, s1, s2 float64) float64 {
	s := s1
	if x > mu {
		s = s2
	}
	t := (x - mu) / s
	return a * math.Exp(-t*t/2)
}

// XYZ returns the CIE 1931 standard-observer tristimulus response to
// monochromatic light at w (multi-Gaussian analytic fit).
func (w Wavelength) XYZ() XYZ {
	wl := float64(w)
	x := brokenGaussian(wl, 1.056, 5998, 379, 310) +
		brokenGaussian(wl, 0.362, 4420, 160, 267) +
		brokenGaussian(wl, -0.065, 5011, 204, 262)
	y := brokenGaussian(wl, 0.821, 5688, 469, 405) +
		brokenGaussian(wl, 0.286, 5309, 163, 311)
	z := brokenGaussian(wl, 1.217, 4370, 118, 360) +
		brokenGaussian(wl, 0.681, 4590, 260, 138)
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}
