package ggchart

import (
	"math"

	"github.com/gogpu/ggchart/style"
)

// trackPointer records the shown top-level point nearest to pos as the
// hovered point. dist measures how far a point's anchor is from pos.
// PointerItemDataIndex stays -1 when no point qualifies.
func (h *SerieHandler) trackPointer(pos style.Vec2, dist func(a, b style.Vec2) float64) {
	s := h.serie
	best, bestDist := -1, math.Inf(1)
	for _, d := range s.Data {
		if !d.IsTopLevel() || !d.Show || s.IsIgnoreIndex(d.Index) {
			continue
		}
		if dd := dist(pos, d.Context.Position); dd < bestDist {
			best, bestDist = d.Index, dd
		}
	}
	s.Context.PointerItemDataIndex = best
	s.Context.PointerEnter = best >= 0
}

// clearPointer forgets the hovered point.
func (h *SerieHandler) clearPointer() {
	h.serie.Context.PointerItemDataIndex = -1
	h.serie.Context.PointerEnter = false
}

// axisDistance compares positions along the category axis only.
func axisDistance(a, b style.Vec2) float64 { return math.Abs(a.X - b.X) }

func pointDistance(a, b style.Vec2) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
