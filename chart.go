package ggchart

import (
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// Chart is what a series handler needs from the chart container.
type Chart interface {
	// Bounds returns the plotting rectangle.
	Bounds() style.Rect
	// Theme returns the palette provider. Never nil.
	Theme() *style.Theme
	// Root returns the node serie roots are created under.
	Root() *widget.Node
	// LabelPool returns the pool label widgets are acquired from.
	LabelPool() LabelPool
	// Hub returns the event hub chart-wide components subscribe to.
	Hub() *Hub

	// LegendColorIndex returns the palette index of the legend entry named
	// legendName: its position among all entries. Hidden entries keep their
	// index so colors do not shift when an entry is toggled.
	LegendColorIndex(legendName string) int
	// LegendColor returns the color of the legend entry for serieName.
	LegendColor(serieName string) style.RGBA

	// RefreshChart requests a full chart repaint.
	RefreshChart()
	// RefreshPainter requests a geometry repaint of one serie.
	RefreshPainter(s *series.Serie)
}

// LabelPool hands out reusable label widgets keyed by name.
// widget.Pool is the default implementation.
type LabelPool interface {
	Get(name string, parent *widget.Node, ls *style.LabelStyle, color style.RGBA, iconWidth, iconHeight float64) *widget.Label
	ReleaseAll(parent *widget.Node)
}

var _ LabelPool = (*widget.Pool)(nil)

// Mesh receives the vertices a handler draws. A GPU or raster backend passes
// its vertex buffer to Handler.DrawBase, DrawSerie and DrawTop each frame;
// series handlers in this package leave geometry to that backend.
type Mesh interface {
	AddVert(pos style.Vec2, color style.RGBA) int
	AddTriangle(a, b, c int)
}

// PointerEvent is an input event delivered to a handler.
type PointerEvent struct {
	Position style.Vec2
	Button   int
	Delta    style.Vec2
}
