package widget

import (
	"math"
	"sort"
)

// IsoCubes projects the palette into the appearance-space unit cube and
// draws Angles isometric scatter plots side by side, each view rotated a
// quarter turn from the previous one. Angles defaults to 2.
type IsoCubes struct {
	Angles int
}

func (w IsoCubes) Generate(ctx *Context) []Primitive {
	angles := w.Angles
	if angles <= 0 {
		angles = 2
	}

	type cubePoint struct {
		x, y, z float64
		index   int
	}
	points := make([]cubePoint, ctx.P.Len())
	for i, c := range ctx.P.UCS {
		points[i] = cubePoint{
			x:     clip(c.A/200+0.5, 0, 1),
			y:     clip(c.B/200+0.5, 0, 1),
			z:     clip(c.J/100, 0, 1),
			index: i,
		}
	}

	dia := clip(0.32/math.Sqrt(float64(ctx.P.Len())), 0.02, 0.05)

	// The views share the rect evenly with a small gutter between them.
	cw := (1 - 0.06*(float64(angles)-1)) / float64(angles)
	cube := func(pts []cubePoint, x0 float64) []Primitive {
		h := cw * math.Sqrt(1.25)
		cx := x0 + cw/2
		cy := h / 2
		dy := h / 4
		verts := [][2]float64{
			{cx, 0},
			{x0 + cw, dy},
			{x0 + cw, h - dy},
			{cx, h},
			{x0, h - dy},
			{x0, dy},
		}
		out := []Primitive{
			Polyline{Pts: verts, Colour: ctx.P.BGRGB, Closed: true},
			Polyline{Pts: [][2]float64{verts[0], {cx, cy}, verts[2]}, Colour: ctx.P.BGRGB},
			Polyline{Pts: [][2]float64{{cx, cy}, verts[4]}, Colour: ctx.P.BGRGB},
		}

		// Painter's order: back to front along the isometric depth axis.
		ordered := append([]cubePoint(nil), pts...)
		sort.SliceStable(ordered, func(a, b int) bool {
			return ordered[a].x+ordered[a].y+ordered[a].z <
				ordered[b].x+ordered[b].y+ordered[b].z
		})
		for _, p := range ordered {
			out = append(out, Point{
				X:          cx + (p.y-p.x)*cw/2,
				Y:          cy + (p.x+p.y)*dy - p.z*h/2,
				Dia:        dia,
				Colour:     ctx.P.RGB[p.index],
				Ring:       p.index == ctx.P.BL,
				RingColour: ctx.P.BGRGB,
			})
		}
		return out
	}

	var out []Primitive
	for i := 0; i < angles; i++ {
		out = append(out, cube(points, float64(i)*(cw+0.06))...)
		rotated := make([]cubePoint, len(points))
		for j, p := range points {
			rotated[j] = cubePoint{x: 1 - p.y, y: p.x, z: p.z, index: p.index}
		}
		points = rotated
	}
	return out
}
