// Package container is a reference chart container for series handlers. It
// owns the widget tree, the label pool, the theme, a legend and the event
// hub, and ticks one handler per serie.
//
// Multi-serie synchronization (shared axes, stacking) is out of its scope;
// it exists so handlers can be driven end to end.
package container

import (
	"strings"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// Chart implements ggchart.Chart.
type Chart struct {
	bounds  style.Rect
	theme   *style.Theme
	root    *widget.Node
	pool    ggchart.LabelPool
	hub     *ggchart.Hub
	painter Painter
	legend  *Legend

	handlers []ggchart.Handler
	series   []*series.Serie

	refreshes int
	frame     int
}

// Option configures a Chart during creation.
type Option func(*Chart)

// WithBounds sets the plotting rectangle.
func WithBounds(r style.Rect) Option {
	return func(c *Chart) { c.bounds = r }
}

// WithTheme sets the palette provider. A nil theme is ignored.
func WithTheme(t *style.Theme) Option {
	return func(c *Chart) {
		if t != nil {
			c.theme = t
		}
	}
}

// WithPool replaces the default widget.Pool.
func WithPool(p ggchart.LabelPool) Option {
	return func(c *Chart) {
		if p != nil {
			c.pool = p
		}
	}
}

// WithPainter replaces the default LayoutPainter.
func WithPainter(p Painter) Option {
	return func(c *Chart) {
		if p != nil {
			c.painter = p
		}
	}
}

// New creates an empty chart. Defaults: 800x600 bounds, the default theme,
// a widget.Pool over the basic measurer and a LayoutPainter.
func New(opts ...Option) *Chart {
	c := &Chart{
		bounds: style.Rect{W: 800, H: 600},
		theme:  style.DefaultTheme(),
		root:   widget.NewNode("chart"),
		hub:    ggchart.NewHub(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pool == nil {
		c.pool = widget.NewPool(nil)
	}
	if c.painter == nil {
		c.painter = &LayoutPainter{}
	}
	c.root.SetBounds(c.bounds)
	c.legend = newLegend(c)
	return c
}

// AddSerie attaches s, creates the handler for its type and initializes it.
// Pie and ring series get a PieHandler, everything else a LineHandler.
func (c *Chart) AddSerie(s *series.Serie, opts ...ggchart.HandlerOption) ggchart.Handler {
	var h ggchart.Handler
	if s.Type.ItemColored() {
		h = ggchart.NewPieHandler(c, s, opts...)
	} else {
		h = ggchart.NewLineHandler(c, s, opts...)
	}
	c.series = append(c.series, s)
	c.handlers = append(c.handlers, h)
	c.legend.SetAllDirty()
	h.InitComponent()
	return h
}

// Handlers returns the handlers in serie order.
func (c *Chart) Handlers() []ggchart.Handler { return c.handlers }

// Series returns the attached series in order.
func (c *Chart) Series() []*series.Serie { return c.series }

// Legend returns the chart legend.
func (c *Chart) Legend() *Legend { return c.legend }

// Update ticks every handler once, then refreshes the legend if a handler
// marked it stale.
func (c *Chart) Update() {
	c.frame++
	for _, h := range c.handlers {
		h.Update()
	}
	if c.legend.Dirty() {
		c.legend.Refresh()
	}
}

// Frame returns the number of Update calls so far.
func (c *Chart) Frame() int { return c.frame }

// Resize changes the bounds and schedules a full rebuild of every serie.
func (c *Chart) Resize(r style.Rect) {
	c.bounds = r
	c.root.SetBounds(r)
	for _, s := range c.series {
		s.SetLabelDirty()
		s.SetTitleDirty()
		s.SetVerticesDirty()
	}
}

// Hover records the data index under the pointer for serie serieIndex.
// Passing -1 clears it.
func (c *Chart) Hover(serieIndex, dataIndex int) {
	for _, s := range c.series {
		if s.Index == serieIndex {
			s.Context.PointerItemDataIndex = dataIndex
			s.Context.PointerEnter = dataIndex >= 0
		}
	}
}

// Tooltip collects parameter snapshots for dataIndex from every shown serie.
// Records are copied immediately since handlers reuse them.
func (c *Chart) Tooltip(q ggchart.ParamQuery) []ggchart.ParamSnapshot {
	var out []ggchart.ParamSnapshot
	var params []*ggchart.Param
	for _, h := range c.handlers {
		if !h.Serie().Show {
			continue
		}
		params = h.UpdateTooltipSerieParams(params[:0], q)
		for _, p := range params {
			out = append(out, p.Snapshot())
		}
	}
	return out
}

// ToggleLegend shows or hides the legend entry name. Item series toggle the
// matching point; other series toggle themselves.
func (c *Chart) ToggleLegend(name string, show bool) bool {
	handled := false
	for i, h := range c.handlers {
		if h.OnLegendButtonClick(i, name, show) {
			handled = true
			continue
		}
		s := h.Serie()
		if !s.Type.ItemColored() && s.LegendKey() == name {
			s.SetShow(show)
			h.RefreshLabelNextFrame()
			handled = true
		}
	}
	if handled {
		c.legend.SetShown(name, show)
	}
	return handled
}

// Check collects configuration diagnostics from every handler.
func (c *Chart) Check() string {
	var sb strings.Builder
	for _, h := range c.handlers {
		h.CheckComponent(&sb)
	}
	return sb.String()
}

// Refreshes returns how many full chart repaints were requested.
func (c *Chart) Refreshes() int { return c.refreshes }

// Bounds implements ggchart.Chart.
func (c *Chart) Bounds() style.Rect { return c.bounds }

// Theme implements ggchart.Chart.
func (c *Chart) Theme() *style.Theme { return c.theme }

// Root implements ggchart.Chart.
func (c *Chart) Root() *widget.Node { return c.root }

// LabelPool implements ggchart.Chart.
func (c *Chart) LabelPool() ggchart.LabelPool { return c.pool }

// Hub implements ggchart.Chart.
func (c *Chart) Hub() *ggchart.Hub { return c.hub }

// LegendColorIndex implements ggchart.Chart. Hidden legend entries keep their
// index. Names missing from the legend map to the index of the serie of that
// name, or 0.
func (c *Chart) LegendColorIndex(legendName string) int {
	if i := c.legend.IndexOf(legendName); i >= 0 {
		return i
	}
	for _, s := range c.series {
		if s.LegendKey() == legendName {
			return s.Index
		}
	}
	return 0
}

// LegendColor implements ggchart.Chart.
func (c *Chart) LegendColor(serieName string) style.RGBA {
	return c.theme.Color(c.LegendColorIndex(serieName))
}

// RefreshChart implements ggchart.Chart.
func (c *Chart) RefreshChart() {
	c.refreshes++
}

// RefreshPainter implements ggchart.Chart. The painter lays the serie out,
// then the handler refreshes label content on the next frame.
func (c *Chart) RefreshPainter(s *series.Serie) {
	c.painter.Repaint(s, c.bounds)
	for _, h := range c.handlers {
		if h.Serie() == s {
			h.RefreshLabelNextFrame()
		}
	}
}

var _ ggchart.Chart = (*Chart)(nil)
