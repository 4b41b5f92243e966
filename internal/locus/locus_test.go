package locus

import (
	"testing"

	"palspect/internal/colour"
)

func testTable() *Table {
	return For(colour.NewIlluminant(colour.ChromaticityFromCCT(5500)))
}

func TestForCaches(t *testing.T) {
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(5500))
	if For(ill) != For(ill) {
		t.Error("For returned distinct tables for the same illuminant")
	}
}

func TestClosedLocusOrder(t *testing.T) {
	tab := testTable()
	if len(tab.spectral) == 0 || len(tab.purple) == 0 {
		t.Fatal("table has empty segments")
	}
	for i := 1; i < len(tab.spectral); i++ {
		if tab.spectral[i].Wavelength <= tab.spectral[i-1].Wavelength {
			t.Fatalf("spectral samples out of order at %d", i)
		}
	}
	for _, s := range tab.purple {
		if !s.NonSpectral {
			t.Error("purple sample not marked non-spectral")
		}
	}
}

func TestNearestRecoversWavelength(t *testing.T) {
	tab := testTable()
	for _, wl := range []colour.Wavelength{4500, 5200, 5800, 6300} {
		hue := wl.XYZ().Chromaticity().HueRelativeTo(tab.White())
		got := tab.Nearest(hue)
		if got.NonSpectral {
			t.Errorf("Nearest(hue of %v) landed on the purple line", wl)
			continue
		}
		if diff := got.Wavelength - wl; diff < -colour.WavelengthStep || diff > colour.WavelengthStep {
			t.Errorf("Nearest(hue of %v) = %v", wl, got.Wavelength)
		}
	}
}

func TestNearestWrapsHue(t *testing.T) {
	tab := testTable()
	a := tab.Nearest(0.25)
	b := tab.Nearest(1.25)
	c := tab.Nearest(-0.75)
	if a != b || a != c {
		t.Errorf("Nearest not periodic: %v, %v, %v", a, b, c)
	}
}

func TestNearestSpectral(t *testing.T) {
	tab := testTable()

	// Saturated green has a dominant wavelength.
	green := colour.RGB255{G: 255}.XYZ().Chromaticity()
	wl, ok := tab.NearestSpectral(green)
	if !ok {
		t.Fatal("NearestSpectral(green) = none, want a wavelength")
	}
	if wl < 5000 || wl > 5700 {
		t.Errorf("NearestSpectral(green) = %v, want mid-spectrum", wl)
	}

	// Magenta lies on the purple line.
	magenta := colour.RGB255{R: 255, B: 255}.XYZ().Chromaticity()
	if wl, ok := tab.NearestSpectral(magenta); ok {
		t.Errorf("NearestSpectral(magenta) = %v, want none", wl)
	}
}

func TestHasSpectralMatchesNearest(t *testing.T) {
	tab := testTable()
	// Hues well inside the spectral range must resolve to spectral samples.
	for hue := tab.hueMin + 0.02; hue < tab.hueMax-0.02; hue += 0.01 {
		if !tab.HasSpectral(hue) {
			t.Fatalf("HasSpectral(%.2f) = false inside the spectral range", hue)
		}
		if s := tab.Nearest(hue); s.NonSpectral {
			t.Errorf("Nearest(%.2f) landed on the purple line inside the spectral range", hue)
		}
	}
}

func TestBoundary(t *testing.T) {
	tab := testTable()
	const n = 48
	b := tab.Boundary(n)
	if len(b) != n {
		t.Fatalf("Boundary(%d) returned %d buckets", n, len(b))
	}
	for i, v := range b {
		if v <= 0 || v > 1 {
			t.Errorf("Boundary bucket %d = %v, want in (0, 1]", i, v)
		}
	}
}
