package widget

import (
	"testing"

	"palspect/internal/analysis"
	"palspect/internal/colour"
	"palspect/internal/locus"
)

func testContext(t *testing.T, hexes ...string) *Context {
	t.Helper()
	rgb := make([]colour.RGB255, len(hexes))
	for i, h := range hexes {
		c, err := colour.ParseHex(h)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", h, err)
		}
		rgb[i] = c
	}
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(5500))
	p, err := analysis.New(rgb, ill, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx, err := NewContext(p, locus.For(ill))
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return ctx
}

// paletteSet reports whether c is one of the palette's colours.
func paletteSet(ctx *Context) map[colour.RGB255]bool {
	set := map[colour.RGB255]bool{}
	for _, c := range ctx.P.RGB {
		set[c] = true
	}
	return set
}

func TestNewContextDegenerate(t *testing.T) {
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(5500))
	rgb := []colour.RGB255{{R: 10}, {R: 10}, {R: 200}}
	p, err := analysis.New(rgb, ill, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := NewContext(p, locus.For(ill)); err == nil {
		t.Fatal("NewContext accepted coincident colours")
	}
}

func TestHueMarksOrder(t *testing.T) {
	ctx := testContext(t, "000000", "ffffff")
	if len(ctx.HueMarks) != 6 {
		t.Fatalf("got %d hue marks, want 6", len(ctx.HueMarks))
	}
	names := ""
	for _, m := range ctx.HueMarks {
		names += m.Name
		if m.Chroma <= 0 || m.Chroma > 1 {
			t.Errorf("mark %s chroma = %v, want in (0, 1]", m.Name, m.Chroma)
		}
	}
	if names != "RYGCBM" {
		t.Errorf("mark order = %q, want RYGCBM", names)
	}
}

func TestIndexedPalette(t *testing.T) {
	ctx := testContext(t, "102030", "405060", "708090")
	prims := IndexedPalette{Cols: 4, Rows: 2}.Generate(ctx)
	grid, ok := prims[0].(CellGrid)
	if !ok {
		t.Fatalf("first primitive is %T, want CellGrid", prims[0])
	}
	if len(grid.Cells) != 8 || len(grid.Mask) != 8 {
		t.Fatalf("grid cells/mask = %d/%d, want 8/8", len(grid.Cells), len(grid.Mask))
	}
	painted := 0
	for _, m := range grid.Mask {
		if m {
			painted++
		}
	}
	if painted != 3 {
		t.Errorf("painted cells = %d, want 3", painted)
	}
	if grid.Cells[1] != ctx.P.RGB[1] {
		t.Errorf("cell 1 = %v, want %v", grid.Cells[1], ctx.P.RGB[1])
	}
}

func TestMainPaletteSorted(t *testing.T) {
	ctx := testContext(t, "ffffff", "000000", "808080")
	prims := MainPalette{}.Generate(ctx)
	first, ok := prims[0].(Polygon)
	if !ok {
		t.Fatalf("first primitive is %T, want Polygon", prims[0])
	}
	if first.Fill != ctx.P.RGB[1] {
		t.Errorf("leftmost strip = %v, want the darkest colour %v", first.Fill, ctx.P.RGB[1])
	}
}

func TestHueLightnessRectProjectsOntoPalette(t *testing.T) {
	ctx := testContext(t, "000000", "ff0000", "00ff00", "ffffff")
	prims := HueLightnessRect{Chroma: 40, Cols: 12, Rows: 10}.Generate(ctx)
	grid := prims[0].(CellGrid)
	set := paletteSet(ctx)
	for i, c := range grid.Cells {
		if !set[c] {
			t.Fatalf("cell %d holds %v, not a palette colour", i, c)
		}
	}
	// The top row is the lightest slice, so white must dominate there.
	if grid.Cells[0] != ctx.P.RGB[3] {
		t.Errorf("top-left cell = %v, want white", grid.Cells[0])
	}
}

func TestHueLightnessPolarMask(t *testing.T) {
	ctx := testContext(t, "000000", "ffffff")
	prims := HueLightnessPolar{Chroma: 10, Cells: 16}.Generate(ctx)
	grid := prims[0].(CellGrid)
	if grid.Mask == nil {
		t.Fatal("polar grid has no mask")
	}
	// Corners lie outside the disc, the centre inside.
	if grid.Mask[0] {
		t.Error("corner cell painted")
	}
	mid := 8*16 + 8
	if !grid.Mask[mid] {
		t.Error("centre cell not painted")
	}
}

func TestGreyscaleLiMatch(t *testing.T) {
	ctx := testContext(t, "000000", "888888", "ffffff")
	prims := GreyscaleLiMatch{Cols: 20, Rows: 16}.Generate(ctx)
	grid := prims[0].(CellGrid)
	set := paletteSet(ctx)
	for i, m := range grid.Mask {
		if m && !set[grid.Cells[i]] {
			t.Fatalf("cell %d holds a non-palette colour", i)
		}
	}
	points := 0
	for _, p := range prims[1:] {
		if _, ok := p.(Point); ok {
			points++
		}
	}
	if points != ctx.P.Len() {
		t.Errorf("member marks = %d, want %d", points, ctx.P.Len())
	}
}

func TestHueChromaPolar(t *testing.T) {
	ctx := testContext(t, "000000", "ff0000", "00ff00", "0000ff")
	prims := HueChromaPolar{}.Generate(ctx)

	var points, labels int
	var ringed bool
	for _, pr := range prims {
		switch v := pr.(type) {
		case Point:
			points++
			if v.Ring {
				ringed = true
			}
			if v.X < -0.1 || v.X > 1.1 || v.Y < -0.1 || v.Y > 1.1 {
				t.Errorf("point outside widget frame: %+v", v)
			}
		case Label:
			labels++
		}
	}
	if points != ctx.P.Len() {
		t.Errorf("scatter points = %d, want %d", points, ctx.P.Len())
	}
	if labels != 6 {
		t.Errorf("hue labels = %d, want 6", labels)
	}
	if !ringed {
		t.Error("darkest member not ring-marked")
	}
}

func TestCloseColoursTopPair(t *testing.T) {
	ctx := testContext(t, "000000", "050505", "ffffff")
	prims := CloseColours{Weight: 0.1, Count: 2}.Generate(ctx)
	top, ok := prims[0].(Polygon)
	if !ok {
		t.Fatalf("first primitive is %T, want Polygon", prims[0])
	}
	if top.Fill != ctx.P.RGB[0] {
		t.Errorf("top swatch = %v, want member 0 of the closest pair", top.Fill)
	}
}

func TestCloseColoursPadsShortPalettes(t *testing.T) {
	ctx := testContext(t, "000000", "ffffff")
	prims := CloseColours{Weight: 0, Count: 4}.Generate(ctx)
	dithers := 0
	for _, pr := range prims {
		if pg, ok := pr.(Polygon); ok && pg.Mix != nil {
			dithers++
		}
	}
	if dithers != 3 {
		t.Errorf("filler slots = %d, want 3 (one real pair out of four slots)", dithers)
	}
}

func TestCloseColoursPerMember(t *testing.T) {
	ctx := testContext(t, "000000", "050505", "ffffff")
	prims := CloseColours{Weight: 0.1, Count: 3, PerMember: true}.Generate(ctx)

	var swatches []colour.RGB255
	for _, pr := range prims {
		if pg, ok := pr.(Polygon); ok && pg.Mix == nil {
			swatches = append(swatches, pg.Fill)
		}
	}
	if len(swatches) != 6 {
		t.Fatalf("swatches = %d, want 6 (one slot per member)", len(swatches))
	}
	// Top swatches follow palette order, bottoms hold each member's nearest.
	for k := 0; k < ctx.P.Len(); k++ {
		if swatches[2*k] != ctx.P.RGB[k] {
			t.Errorf("slot %d top = %v, want member %d", k, swatches[2*k], k)
		}
	}
	if swatches[1] != ctx.P.RGB[1] || swatches[3] != ctx.P.RGB[0] {
		t.Errorf("near-black members not paired with each other: %v", swatches)
	}
}

func TestInternalSimilarityBoxStatus(t *testing.T) {
	tests := []struct {
		name string
		hex  []string
		want string
	}{
		{name: "spread", hex: []string{"000000", "555555", "aaaaaa", "ffffff"}, want: "ok"},
		{name: "clustered", hex: []string{"000000", "010101", "888888", "ffffff"}, want: "alert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t, tt.hex...)
			prims := InternalSimilarityBox{Warn: 2, Alert: 3.5}.Generate(ctx)
			var got string
			for _, pr := range prims {
				if l, ok := pr.(Label); ok && (l.Text == "ok" || l.Text == "warn" || l.Text == "alert") {
					got = l.Text
				}
			}
			if got != tt.want {
				t.Errorf("status = %q, want %q (iss %v)", got, tt.want, ctx.ISS)
			}
		})
	}
}

func TestAcyclicBoxAnswer(t *testing.T) {
	ctx := testContext(t, "000000", "ffffff")
	prims := AcyclicBox{}.Generate(ctx)
	var answer string
	for _, pr := range prims {
		if l, ok := pr.(Label); ok && (l.Text == "<yes>" || l.Text == "<no>") {
			answer = l.Text
		}
	}
	if answer != "<yes>" {
		t.Errorf("answer = %q, want <yes> for a mutual pair", answer)
	}
}

func TestUsefulMixesFillsGrid(t *testing.T) {
	ctx := testContext(t, "000000", "ff0000", "00ff00", "0000ff")
	prims := UsefulMixes{Cols: 3, Rows: 2, Budget: 120}.Generate(ctx)
	var mixes, fillers int
	for _, pr := range prims {
		switch v := pr.(type) {
		case Polygon:
			if v.Mix != nil {
				mixes++
			}
		case Polyline:
			fillers++
		}
	}
	if mixes+fillers != 6 {
		t.Errorf("slots = %d, want 6", mixes+fillers)
	}
	if mixes == 0 {
		t.Error("no mix slots at all")
	}
}

func TestIsoCubesPointCount(t *testing.T) {
	ctx := testContext(t, "000000", "ff0000", "ffffff")
	tests := []struct {
		name   string
		widget IsoCubes
		views  int
	}{
		{name: "default two views", widget: IsoCubes{}, views: 2},
		{name: "three views", widget: IsoCubes{Angles: 3}, views: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := 0
			for _, pr := range tt.widget.Generate(ctx) {
				if _, ok := pr.(Point); ok {
					points++
				}
			}
			if points != tt.views*ctx.P.Len() {
				t.Errorf("points = %d, want %d (%d views)", points, tt.views*ctx.P.Len(), tt.views)
			}
		})
	}
}

func TestDistributionsOnTwoColourPalette(t *testing.T) {
	// The minimum palette must degrade gracefully, never panic or error.
	ctx := testContext(t, "000000", "ffffff")
	widgets := []Widget{
		SpectralDistribution{},
		TemperatureDistribution{},
		LightnessChromaComponents{MaxRows: 16},
		Neutralisers{},
		MainPalette{},
		IsoCubes{},
		HueChromaPolar{},
		GreyscaleLiMatch{Cols: 10, Rows: 8},
	}
	for _, w := range widgets {
		if prims := w.Generate(ctx); prims == nil {
			t.Errorf("%T returned no primitives", w)
		}
	}
}
