package analyse

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"

	"palspect/internal/analysis"
	"palspect/internal/colour"
)

type captureRenderer struct {
	sheet *Sheet
	path  string
}

func (r *captureRenderer) Render(s *Sheet, path string) error {
	r.sheet = s
	r.path = path
	return nil
}

func hexes(t *testing.T, ss ...string) []colour.RGB255 {
	t.Helper()
	out := make([]colour.RGB255, len(ss))
	for i, s := range ss {
		c, err := colour.ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", s, err)
		}
		out[i] = c
	}
	return out
}

func TestRunProducesFullSheet(t *testing.T) {
	r := &captureRenderer{}
	req := Request{Colours: hexes(t, "000000", "ff0000", "00ff00", "0000ff", "ffffff")}
	if err := Run(context.Background(), req, r, "out.png", hclog.NewNullLogger()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if r.path != "out.png" {
		t.Errorf("rendered to %q, want out.png", r.path)
	}
	s := r.sheet
	if s.W != baseW*scale || s.H != baseH*scale {
		t.Errorf("sheet size %dx%d, want %dx%d", s.W, s.H, baseW*scale, baseH*scale)
	}
	if len(s.Items) < 20 {
		t.Errorf("sheet has %d items, want the full widget set", len(s.Items))
	}
	for i, it := range s.Items {
		if it.Rect.Empty() {
			t.Errorf("item %d has an empty rect", i)
		}
		if len(it.Prims) == 0 {
			t.Errorf("item %d has no primitives", i)
		}
	}
}

func TestRunLargePaletteSkipsMixes(t *testing.T) {
	// Above 64 colours the mix grid and neutralisers drop off the sheet.
	var small, large Request
	small.Colours = hexes(t, "000000", "404040", "808080", "ffffff")
	for i := 0; i < 100; i++ {
		large.Colours = append(large.Colours, colour.RGB255{
			R: uint8(i), G: uint8(i * 2), B: uint8(255 - i),
		})
	}
	rs, rl := &captureRenderer{}, &captureRenderer{}
	if err := Run(context.Background(), small, rs, "a.png", hclog.NewNullLogger()); err != nil {
		t.Fatalf("small palette: %v", err)
	}
	if err := Run(context.Background(), large, rl, "b.png", hclog.NewNullLogger()); err != nil {
		t.Fatalf("large palette: %v", err)
	}
	if len(rl.sheet.Items) >= len(rs.sheet.Items) {
		t.Errorf("large palette sheet has %d items, small has %d; expected fewer",
			len(rl.sheet.Items), len(rs.sheet.Items))
	}
}

func TestRunRejectsDegeneratePalette(t *testing.T) {
	r := &captureRenderer{}
	req := Request{Colours: hexes(t, "101010", "101010", "ffffff")}
	err := Run(context.Background(), req, r, "out.png", hclog.NewNullLogger())
	if !errors.Is(err, analysis.ErrDegenerateMetric) {
		t.Fatalf("error = %v, want ErrDegenerateMetric", err)
	}
	if r.sheet != nil {
		t.Error("renderer was called despite the error")
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &captureRenderer{}
	req := Request{Colours: hexes(t, "000000", "ffffff")}
	if err := Run(ctx, req, r, "out.png", hclog.NewNullLogger()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if r.sheet != nil {
		t.Error("renderer was called after cancellation")
	}
}

func TestMetrics(t *testing.T) {
	req := Request{Colours: hexes(t, "000000", "ffffff")}
	metrics, err := Metrics(req)
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	byName := map[string]string{}
	for _, m := range metrics {
		byName[m.Name] = m.Value
	}
	if byName["colours"] != "2" {
		t.Errorf("colours = %q, want 2", byName["colours"])
	}
	if byName["acyclic"] != "true" {
		t.Errorf("acyclic = %q, want true for a mutual pair", byName["acyclic"])
	}
	if byName["longest_cycle"] != "2" {
		t.Errorf("longest_cycle = %q, want 2", byName["longest_cycle"])
	}
	if _, ok := byName["iss"]; !ok {
		t.Error("iss metric missing")
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(Request{Colours: hexes(t, "000000", "ffffff")}); err != nil {
		t.Errorf("Verify rejected a valid palette: %v", err)
	}
	err := Verify(Request{Colours: hexes(t, "000000", "000000", "ffffff")})
	if !errors.Is(err, analysis.ErrDegenerateMetric) {
		t.Errorf("error = %v, want ErrDegenerateMetric", err)
	}
}
