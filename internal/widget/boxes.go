package widget

import "fmt"

// Status is the three-level verdict shown next to the indicator boxes.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusAlert
)

func (s Status) String() string {
	switch s {
	case StatusWarn:
		return "warn"
	case StatusAlert:
		return "alert"
	default:
		return "ok"
	}
}

// InternalSimilarityBox shows the similarity score as a bar against the warn
// and alert thresholds.
type InternalSimilarityBox struct {
	Warn, Alert float64
}

func (w InternalSimilarityBox) Generate(ctx *Context) []Primitive {
	const floor = 0.4
	v := clip((ctx.ISS-floor)/(w.Alert-floor), 0, 1)
	threshold := clip((w.Warn-floor)/(w.Alert-floor), 0, 1)

	status := StatusOK
	switch {
	case ctx.ISS >= w.Alert:
		status = StatusAlert
	case ctx.ISS >= w.Warn:
		status = StatusWarn
	}

	out := []Primitive{
		frame(0, 0, 1, 1, ctx.P.BGRGB),
		Label{X: 0.5, Y: 0.1, Text: "internal", Anchor: AnchorN, Colour: ctx.P.FGRGB},
		Label{X: 0.5, Y: 0.35, Text: "similarity", Anchor: AnchorN, Colour: ctx.P.FGRGB},
		Label{X: 0.95, Y: 0.05, Text: status.String(), Anchor: AnchorNE, Colour: ctx.P.FGRGB},
	}
	out = append(out, bar(v, threshold, ctx)...)
	return out
}

// bar lays out the indicator bar strip along the bottom edge, with an
// optional threshold tick.
func bar(v, threshold float64, ctx *Context) []Primitive {
	const (
		y = 0.72
		h = 0.18
	)
	out := []Primitive{frame(0.05, y, 0.9, h, ctx.P.BGRGB)}
	if v > 0 {
		out = append(out, rect(0.06, y+0.03, 0.88*v, h-0.06, ctx.P.FGRGB))
	}
	tx := 0.06 + 0.88*threshold
	out = append(out,
		Polyline{Pts: [][2]float64{{tx, y - 0.05}, {0.95, y - 0.05}}, Colour: ctx.P.BGRGB},
		Polyline{Pts: [][2]float64{{tx, y + h + 0.05}, {0.95, y + h + 0.05}}, Colour: ctx.P.BGRGB},
	)
	return out
}

// AcyclicBox reports whether the neighbour graph is tree-like, and the
// longest cycle's size when it is not.
type AcyclicBox struct{}

func (AcyclicBox) Generate(ctx *Context) []Primitive {
	acyclic := ctx.Cycles.Acyclic()
	answer := "<no>"
	if acyclic {
		answer = "<yes>"
	}
	out := []Primitive{
		frame(0, 0, 1, 1, ctx.P.BGRGB),
		Label{X: 0.5, Y: 0.1, Text: "acyclic?", Anchor: AnchorN, Colour: ctx.P.FGRGB},
		Label{X: 0.5, Y: 0.9, Text: answer, Anchor: AnchorS, Colour: ctx.P.FGRGB},
	}
	if !acyclic {
		out = append(out, Label{
			X: 0.5, Y: 0.5,
			Text:   fmt.Sprintf("cycle: %d", len(ctx.Cycles.Longest())),
			Anchor: AnchorC, Colour: ctx.P.FGRGB,
		})
	}
	// Mutual-nearest pairs are normal; longer cycles on a non-trivial
	// palette mark a ring of colours all crowding each other.
	if !acyclic && ctx.P.Len() > 3 {
		out = append(out, Label{
			X: 0.05, Y: 0.9, Text: "warn", Anchor: AnchorSW, Colour: ctx.P.FGRGB,
		})
	}
	return out
}
