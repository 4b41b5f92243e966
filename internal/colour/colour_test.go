package colour

import (
	"errors"
	"math"
	"testing"
)

func testIlluminant() *Illuminant {
	return NewIlluminant(ChromaticityFromCCT(5500))
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB255
		wantErr bool
	}{
		{name: "plain", in: "1a2b3c", want: RGB255{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "hash prefix", in: "#ff8000", want: RGB255{R: 0xff, G: 0x80, B: 0x00}},
		{name: "uppercase", in: "FFAA00", want: RGB255{R: 0xff, G: 0xaa, B: 0x00}},
		{name: "surrounding space", in: "  00ff00\n", want: RGB255{G: 0xff}},
		{name: "too short", in: "fff", wantErr: true},
		{name: "too long", in: "ff00ff00", wantErr: true},
		{name: "bad characters", in: "gg0011", wantErr: true},
		{name: "double hash", in: "##ff0011", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.in)
				}
				if !errors.Is(err, ErrInvalidColour) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColour", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloatRange(t *testing.T) {
	if _, err := FromFloat(0.5, 1.2, 0); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("FromFloat out of range: error = %v, want ErrInvalidColour", err)
	}
	got, err := FromFloat(1, 0, 0.5)
	if err != nil {
		t.Fatalf("FromFloat(1, 0, 0.5) failed: %v", err)
	}
	want := RGB255{R: 255, G: 0, B: 128}
	if got != want {
		t.Errorf("FromFloat(1, 0, 0.5) = %v, want %v", got, want)
	}
}

// TestRoundTrip drives every 17th channel level through
// RGB → XYZ → CAM16-UCS → XYZ → RGB and requires each channel to come back
// within one encoded unit.
func TestRoundTrip(t *testing.T) {
	ill := testIlluminant()
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				in := NewRGB255(uint8(r), uint8(g), uint8(b))
				out := ill.XYZ(ill.CAM16(in.XYZ())).RGB255()
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					t.Fatalf("round trip %v = %v", in, out)
				}
			}
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}

func TestXYZRoundTripExtremes(t *testing.T) {
	for _, c := range []RGB255{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	} {
		if got := c.XYZ().RGB255(); got != c {
			t.Errorf("XYZ round trip %v = %v", c, got)
		}
	}
}

func TestMetricProperties(t *testing.T) {
	ill := testIlluminant()
	coords := []CAM16UCS{
		ill.CAM16(RGB255{0, 0, 0}.XYZ()),
		ill.CAM16(RGB255{255, 255, 255}.XYZ()),
		ill.CAM16(RGB255{200, 30, 90}.XYZ()),
		ill.CAM16(RGB255{13, 200, 90}.XYZ()),
	}
	for i, a := range coords {
		if d := Dist(a, a); d != 0 {
			t.Errorf("Dist(x, x) = %v, want 0", d)
		}
		for j, b := range coords {
			if Dist(a, b) != Dist(b, a) {
				t.Errorf("Dist not symmetric for %d, %d", i, j)
			}
			if i != j && Dist(a, b) <= 0 {
				t.Errorf("Dist(%d, %d) = %v, want > 0", i, j, Dist(a, b))
			}
		}
	}
}

func TestDistWeighted(t *testing.T) {
	ill := testIlluminant()
	a := ill.CAM16(RGB255{255, 0, 0}.XYZ())
	b := ill.CAM16(RGB255{0, 0, 255}.XYZ())
	if got, want := DistWeighted(a, b, 0), Dist(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("DistWeighted(w=0) = %v, want %v", got, want)
	}
	if got, want := DistWeighted(a, b, 1), math.Abs(a.J-b.J); math.Abs(got-want) > 1e-12 {
		t.Errorf("DistWeighted(w=1) = %v, want %v", got, want)
	}
}

func TestEstimateCCT(t *testing.T) {
	// Pure white sits on the daylight locus near the reference white.
	white, err := EstimateCCT(RGB255{255, 255, 255}.XYZ())
	if err != nil {
		t.Fatalf("EstimateCCT(white) failed: %v", err)
	}
	if white.Kelvin < 6000 || white.Kelvin > 7000 {
		t.Errorf("EstimateCCT(white) = %v K, want near 6500", white.Kelvin)
	}

	// Pure black projects to the uv origin, far outside the locus.
	if _, err := EstimateCCT(RGB255{0, 0, 0}.XYZ()); !errors.Is(err, ErrOutOfLocusRange) {
		t.Errorf("EstimateCCT(black) error = %v, want ErrOutOfLocusRange", err)
	}

	// Saturated green is nowhere near a blackbody.
	if _, err := EstimateCCT(RGB255{0, 255, 0}.XYZ()); !errors.Is(err, ErrOutOfLocusRange) {
		t.Errorf("EstimateCCT(green) error = %v, want ErrOutOfLocusRange", err)
	}
}

func TestWarmthMonotonic(t *testing.T) {
	cold := CCT{Kelvin: 20000}
	warm := CCT{Kelvin: 2000}
	if warm.Warmth() <= cold.Warmth() {
		t.Errorf("Warmth(2000K) = %v not above Warmth(20000K) = %v",
			warm.Warmth(), cold.Warmth())
	}
}

func TestHueRelativeTo(t *testing.T) {
	o := D65()
	// A point straight below the white point sits at hue 0.
	below := XY{X: o.X, Y: o.Y - 0.1}
	if h := below.HueRelativeTo(o); math.Abs(h) > 1e-9 && math.Abs(h-1) > 1e-9 {
		t.Errorf("hue below white = %v, want 0", h)
	}
	// A point straight above sits at half a turn.
	above := XY{X: o.X, Y: o.Y + 0.1}
	if h := above.HueRelativeTo(o); math.Abs(h-0.5) > 1e-9 {
		t.Errorf("hue above white = %v, want 0.5", h)
	}
}

func TestWavelengthXYZ(t *testing.T) {
	// Mid-spectrum green has the dominant Y response.
	g := Wavelength(5550).XYZ()
	if g.Y < g.X || g.Y < g.Z {
		t.Errorf("555nm response %+v, want Y dominant", g)
	}
	// Violet end is Z-dominant.
	v := Wavelength(4200).XYZ()
	if v.Z < v.X || v.Z < v.Y {
		t.Errorf("420nm response %+v, want Z dominant", v)
	}
}

func TestMix(t *testing.T) {
	a := CAM16UCS{J: 0, A: -10, B: 4, C: 20}
	b := CAM16UCS{J: 100, A: 10, B: -4, C: 40}
	mid := Mix(a, b, 0.5)
	want := CAM16UCS{J: 50, A: 0, B: 0, C: 30}
	if math.Abs(mid.J-want.J) > 1e-12 || math.Abs(mid.A-want.A) > 1e-12 ||
		math.Abs(mid.B-want.B) > 1e-12 || math.Abs(mid.C-want.C) > 1e-12 {
		t.Errorf("Mix midpoint = %+v, want %+v", mid, want)
	}
	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(a, b, 0) = %+v, want a", got)
	}
}
