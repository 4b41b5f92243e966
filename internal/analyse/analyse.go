package analyse

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"palspect/internal/analysis"
	"palspect/internal/colour"
	"palspect/internal/locus"
	"palspect/internal/version"
	"palspect/internal/widget"
)

// DefaultTemperature is the illuminant used when a request does not pick
// one: daylight at 5500 K.
const DefaultTemperature = 5500

// Request is one palette analysis job. The colours are already validated by
// the loader; everything else has usable zero-value defaults.
type Request struct {
	Colours     []colour.RGB255
	GreyUI      bool
	Temperature float64 // kelvin; 0 means DefaultTemperature
	MixBudget   int     // 0 means the SearchMixCandidates default
}

func (req Request) temperature() float64 {
	if req.Temperature > 0 {
		return req.Temperature
	}
	return DefaultTemperature
}

// Run analyses the palette, lays out the full sheet and renders it to path.
// The context aborts the request between pipeline stages; per-request state
// is simply dropped on cancellation.
func Run(ctx context.Context, req Request, r Renderer, path string, log hclog.Logger) error {
	t := req.temperature()
	ill := colour.NewIlluminant(colour.ChromaticityFromCCT(t))
	p, err := analysis.New(req.Colours, ill, req.GreyUI)
	if err != nil {
		return err
	}
	log.Debug("palette prepared", "colours", p.Len(), "temperature", t)

	if err := ctx.Err(); err != nil {
		return err
	}
	wctx, err := widget.NewContext(p, locus.For(ill))
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	sheet := layout(wctx, req)
	log.Debug("sheet laid out", "widgets", len(sheet.Items))

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Render(sheet, path); err != nil {
		return fmt.Errorf("rendering sheet: %w", err)
	}
	log.Info("analysis written", "path", path)
	return nil
}

// layout places every widget of the sheet. Positions are in the base grid.
func layout(ctx *widget.Context, req Request) *Sheet {
	p := ctx.P
	s := &Sheet{
		W:          baseW * scale,
		H:          baseH * scale,
		Background: p.BGRGB,
		PanelFill:  p.BLRGB,
	}
	s.Panel = imageRect(17, 16, 610, 406)

	header(s, ctx, req)

	// Fixed-chroma hue/lightness slices, saturated and muted.
	s.caption(18, 10, 99, 6, label("CHROMA: 40", widget.AnchorSW, 0, 1, p.BLRGB))
	s.place(18, 17, 99, 96, widget.HueLightnessRect{Chroma: 40, Cols: 99, Rows: 96}.Generate(ctx))
	s.caption(119, 10, 99, 6, label("CHROMA: 10", widget.AnchorSW, 0, 1, p.BLRGB))
	s.place(119, 17, 99, 96, widget.HueLightnessRect{Chroma: 10, Cols: 99, Rows: 96}.Generate(ctx))

	s.caption(220, 10, 100, 6, label("INDEXED PALETTE", widget.AnchorSW, 0, 1, p.BLRGB))
	s.place(220, 17, 100, 36, widget.IndexedPalette{Cols: 32, Rows: 8}.Generate(ctx))

	s.caption(220, 56, 99, 5, label("close cols: 10% li-match", widget.AnchorS, 0.5, 1, p.FGRGB))
	s.place(220, 62, 99, 18, widget.CloseColours{Weight: 0.1, Count: 10}.Generate(ctx))
	s.place(220, 85, 99, 18, widget.CloseColours{Weight: 0.7, Count: 10}.Generate(ctx))
	s.caption(220, 104, 99, 5, label("close cols: 70% li-match", widget.AnchorN, 0.5, 0, p.FGRGB))

	s.place(220, 115, 44, 24, widget.InternalSimilarityBox{Warn: 2, Alert: 3.5}.Generate(ctx))
	s.place(276, 115, 44, 24, widget.AcyclicBox{}.Generate(ctx))

	s.caption(220, 145, 100, 5, label("spectral distribution", widget.AnchorS, 0.5, 1, p.FGRGB))
	s.place(220, 150, 100, 36, widget.SpectralDistribution{}.Generate(ctx))
	s.caption(220, 191, 100, 5, label("temperature", widget.AnchorS, 0.5, 1, p.FGRGB))
	s.place(220, 196, 100, 36, widget.TemperatureDistribution{}.Generate(ctx))

	s.caption(322, 10, 34, 6, label("LI-MATCH", widget.AnchorS, 0.5, 1, p.BLRGB))
	s.place(322, 17, 34, 214, widget.GreyscaleLiMatch{Cols: 34, Rows: 214}.Generate(ctx))

	s.caption(372, 10, 167, 6, label("CAM16UCS COLOURSPACE", widget.AnchorS, 0.5, 1, p.BLRGB))
	s.place(372, 17, 167, 78, widget.IsoCubes{}.Generate(ctx))

	if p.Len() <= 64 {
		s.caption(372, 99, 76, 5, label("USEFUL MIXES", widget.AnchorSW, 0, 1, p.FGRGB))
		s.place(372, 105, 76, 69, widget.UsefulMixes{Cols: 7, Rows: 7, Budget: req.MixBudget}.Generate(ctx))
	}

	s.caption(550, 10, 74, 6, label("LIGHTNESS & CHROMA", widget.AnchorS, 0.5, 1, p.BLRGB))
	s.place(550, 17, 74, 215, widget.LightnessChromaComponents{MaxRows: 36}.Generate(ctx))

	if p.Len() <= 64 {
		s.caption(2, 236, 15, 6, label("NEU", widget.AnchorNE, 1, 0, p.BLRGB))
		s.place(18, 236, 512, 13, widget.Neutralisers{}.Generate(ctx))
	}
	s.caption(2, 250, 15, 6, label("PAL", widget.AnchorNE, 1, 0, p.BLRGB))
	s.place(18, 250, 512, 10, widget.MainPalette{}.Generate(ctx))

	s.caption(25, 423, 104, 6, label("POLAR HUE-CHROMA", widget.AnchorN, 0.5, 0, p.BLRGB))
	s.place(25, 310, 104, 104, widget.HueChromaPolar{}.Generate(ctx))

	s.caption(154, 423, 150, 6, label("POLAR HUE-LIGHTNESS", widget.AnchorN, 0.5, 0, p.BLRGB))
	s.place(154, 267, 90, 90, widget.HueLightnessPolar{Chroma: 10, Inverted: true, Cells: 90}.Generate(ctx))
	s.place(218, 331, 90, 90, widget.HueLightnessPolar{Chroma: 10, Cells: 90}.Generate(ctx))
	s.place(244, 267, 60, 60, widget.HueLightnessPolar{Chroma: 50, Inverted: true, Cells: 60}.Generate(ctx))
	s.place(154, 357, 60, 60, widget.HueLightnessPolar{Chroma: 50, Cells: 60}.Generate(ctx))

	s.caption(360, 266, 130, 6, label("CHROMA: 25", widget.AnchorSW, 0, 1, p.BLRGB))
	s.place(360, 272, 130, 100, widget.HueLightnessRect{Chroma: 25, Cols: 130, Rows: 100}.Generate(ctx))

	return s
}

// header writes the sheet's top strip.
func header(s *Sheet, ctx *widget.Context, req Request) {
	p := ctx.P
	title := fmt.Sprintf("= PALSPECT v%s - PALETTE ANALYSER =", version.Short())
	s.caption(0, 2, baseW, 6, label(title, widget.AnchorN, 0.5, 0, p.TLRGB))
	s.caption(2, 2, 200, 6, label(
		fmt.Sprintf("Unique colours in palette: %d", p.Len()),
		widget.AnchorNW, 0, 0, p.TLRGB))
	s.caption(baseW-202, 2, 200, 6, label(
		"Colour difference: CAM16UCS", widget.AnchorNE, 1, 0, p.TLRGB))
	s.caption(baseW-202, 9, 200, 6, label(
		fmt.Sprintf("Illuminant: D(T=%.2fK)", req.temperature()),
		widget.AnchorNE, 1, 0, p.TLRGB))
}

func label(text string, anchor widget.Anchor, x, y float64, c colour.RGB255) widget.Label {
	return widget.Label{X: x, Y: y, Text: text, Anchor: anchor, Colour: c}
}
