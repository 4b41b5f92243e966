package render

import (
	"image"
	"image/color"
	"math"

	"palspect/internal/colour"
	"palspect/internal/widget"
)

type canvas struct {
	img  *image.RGBA
	w, h int
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
}

func (c *canvas) bounds() image.Rectangle {
	return image.Rect(0, 0, c.w, c.h)
}

func rgba(c colour.RGB255) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// set writes one pixel, silently dropping anything off-canvas.
func (c *canvas) set(x, y int, col colour.RGB255) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.img.SetRGBA(x, y, rgba(col))
}

func (c *canvas) fill(r image.Rectangle, col colour.RGB255) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(x, y, col)
		}
	}
}

// px maps a normalised widget coordinate into its pixel rectangle.
func px(r image.Rectangle, nx, ny float64) (int, int) {
	x := r.Min.X + int(math.Round(nx*float64(r.Dx()-1)))
	y := r.Min.Y + int(math.Round(ny*float64(r.Dy()-1)))
	return x, y
}

// polygon fills a convex region, with an optional two-colour checker.
func (c *canvas) polygon(r image.Rectangle, p widget.Polygon) {
	if len(p.Pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Pts {
		minX = math.Min(minX, pt[0])
		minY = math.Min(minY, pt[1])
		maxX = math.Max(maxX, pt[0])
		maxY = math.Max(maxY, pt[1])
	}
	x0, y0 := px(r, minX, minY)
	x1, y1 := px(r, maxX, maxY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inConvex(p.Pts, r, x, y) {
				continue
			}
			col := p.Fill
			if p.Mix != nil && (x+y)%2 == 1 {
				col = *p.Mix
			}
			c.set(x, y, col)
		}
	}
}

// inConvex tests a pixel centre against every edge of a convex outline.
func inConvex(pts [][2]float64, r image.Rectangle, x, y int) bool {
	sign := 0
	for i := range pts {
		ax, ay := px(r, pts[i][0], pts[i][1])
		bx, by := px(r, pts[(i+1)%len(pts)][0], pts[(i+1)%len(pts)][1])
		cross := (bx-ax)*(y-ay) - (by-ay)*(x-ax)
		switch {
		case cross == 0:
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		default:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

func (c *canvas) polyline(r image.Rectangle, p widget.Polyline) {
	n := len(p.Pts)
	if n == 0 {
		return
	}
	last := n - 1
	if p.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := p.Pts[i]
		b := p.Pts[(i+1)%n]
		x0, y0 := px(r, a[0], a[1])
		x1, y1 := px(r, b[0], b[1])
		c.line(x0, y0, x1, y1, p.Colour, p.Gap)
	}
}

// line is Bresenham; gap > 0 draws every gap-th pixel only.
func (c *canvas) line(x0, y0, x1, y1 int, col colour.RGB255, gap int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for i := 0; ; i++ {
		if gap <= 0 || i%gap == 0 {
			c.set(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *canvas) point(r image.Rectangle, p widget.Point) {
	cx, cy := px(r, p.X, p.Y)
	side := r.Dx()
	if r.Dy() < side {
		side = r.Dy()
	}
	rad := int(math.Round(p.Dia * float64(side) / 2))
	if rad <= 0 {
		c.set(cx, cy, p.Colour)
		if p.Ring {
			c.ring(cx, cy, 1, p.RingColour)
		}
		return
	}
	for y := -rad; y <= rad; y++ {
		for x := -rad; x <= rad; x++ {
			if x*x+y*y <= rad*rad {
				c.set(cx+x, cy+y, p.Colour)
			}
		}
	}
	if p.Ring {
		c.ring(cx, cy, rad+1, p.RingColour)
	}
}

// ring draws a one-pixel circle outline.
func (c *canvas) ring(cx, cy, rad int, col colour.RGB255) {
	x, y := rad, 0
	err := 1 - rad
	for x >= y {
		for _, q := range [][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.set(cx+q[0], cy+q[1], col)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

func (c *canvas) cellGrid(r image.Rectangle, g widget.CellGrid) {
	if g.Cols <= 0 || g.Rows <= 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		cy := (y - r.Min.Y) * g.Rows / r.Dy()
		for x := r.Min.X; x < r.Max.X; x++ {
			cx := (x - r.Min.X) * g.Cols / r.Dx()
			i := cy*g.Cols + cx
			if g.Mask != nil && !g.Mask[i] {
				continue
			}
			c.set(x, y, g.Cells[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
