package container

import (
	"math"

	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
)

// Painter lays out the geometry of one serie. It runs when the serie's
// vertices are dirty and must leave every point's Context.Position set.
type Painter interface {
	Repaint(s *series.Serie, bounds style.Rect)
}

// LayoutPainter places points without drawing them. Coordinate series are
// spread over a category axis along X with values scaled to the bounds
// height; item series place each slice at its mid angle.
type LayoutPainter struct {
	repaints int
}

// Repaints returns how many times Repaint ran.
func (p *LayoutPainter) Repaints() int { return p.repaints }

// Repaint implements Painter.
func (p *LayoutPainter) Repaint(s *series.Serie, bounds style.Rect) {
	p.repaints++
	if s.Type.ItemColored() {
		layoutItems(s, bounds)
		return
	}
	layoutCoords(s, bounds)
}

func layoutCoords(s *series.Serie, bounds style.Rect) {
	top := s.TopLevel()
	if len(top) == 0 {
		return
	}
	maxV := s.MaxAt(1)
	if maxV <= 0 {
		maxV = 1
	}
	step := bounds.W / float64(len(top))
	for i, d := range top {
		pos := style.Vec2{
			X: bounds.X + (float64(i)+0.5)*step,
			Y: bounds.Y + bounds.H - d.GetData(1)/maxV*bounds.H,
		}
		placeTree(s, d, pos)
	}
}

func layoutItems(s *series.Serie, bounds style.Rect) {
	s.UpdateCenter(bounds)
	top := s.TopLevel()
	var total float64
	for _, d := range top {
		if d.Show && !s.IsIgnoreIndex(d.Index) {
			total += d.GetData(1)
		}
	}
	ctx := s.Context
	angle := -math.Pi / 2
	for _, d := range top {
		var sweep float64
		if total > 0 && d.Show && !s.IsIgnoreIndex(d.Index) {
			sweep = d.GetData(1) / total * 2 * math.Pi
		}
		mid := angle + sweep/2
		r := ctx.OutsideRadius
		if s.LabelFor(d).Position == style.PositionInside {
			r = (ctx.InsideRadius + ctx.OutsideRadius) / 2
		}
		pos := style.Vec2{
			X: ctx.Center.X + r*math.Cos(mid),
			Y: ctx.Center.Y + r*math.Sin(mid),
		}
		placeTree(s, d, pos)
		angle += sweep
	}
}

// placeTree puts d and all of its descendants at pos.
func placeTree(s *series.Serie, d *series.Data, pos style.Vec2) {
	d.Context.Position = pos
	for _, ci := range d.Children {
		if c := s.GetData(ci); c != nil {
			placeTree(s, c, pos)
		}
	}
}
