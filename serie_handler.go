package ggchart

import (
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/widget"
)

// SerieHandler implements the behavior shared by every serie kind: the
// per-frame dirty dispatch, the label and title lifecycles and the tooltip
// parameter binders. Concrete kinds embed it and override what differs.
type SerieHandler struct {
	BaseHandler

	chart Chart
	serie *series.Serie
	opts  handlerOptions

	root      *widget.Node
	labelRoot *widget.Node

	initedLabel  bool
	refreshLabel bool

	param Param
}

// NewSerieHandler creates a handler for s drawn into chart.
func NewSerieHandler(chart Chart, s *series.Serie, opts ...HandlerOption) *SerieHandler {
	o := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SerieHandler{
		chart: chart,
		serie: s,
		opts:  o,
		param: Param{Columns: make([]string, 0, 3)},
	}
}

// Serie returns the serie the handler renders.
func (h *SerieHandler) Serie() *series.Serie { return h.serie }

// Chart returns the chart the handler draws into.
func (h *SerieHandler) Chart() Chart { return h.chart }

// Root returns the serie root node, nil before InitComponent.
func (h *SerieHandler) Root() *widget.Node { return h.root }

// LabelRoot returns the node labels are pooled under, nil before the first
// structural rebuild.
func (h *SerieHandler) LabelRoot() *widget.Node { return h.labelRoot }

// LabelInited reports whether at least one label was materialized.
func (h *SerieHandler) LabelInited() bool { return h.initedLabel }

// Update runs once per frame and rebuilds whatever the dirty flags name.
//
// Order matters only in that label and title rebuilds run before the
// geometry repaint request of the same frame. Each flag is cleared after its
// rebuild returns, up to the generation observed before it started.
func (h *SerieHandler) Update() {
	s := h.serie

	if h.refreshLabel {
		h.refreshLabel = false
		if h.initedLabel {
			h.RefreshLabelInternal()
		}
	}

	if s.LabelDirty() || labelComponentDirty(s) {
		mark := s.DirtyMark(series.DirtyLabel)
		var cmark uint64
		if s.Label != nil {
			cmark = s.Label.ComponentMark()
		}
		h.RebuildLabels()
		s.ClearDirty(series.DirtyLabel, mark)
		if s.Label != nil {
			s.Label.ClearComponentDirty(cmark)
		}
	}

	if s.TitleDirty() || titleComponentDirty(s) {
		mark := s.DirtyMark(series.DirtyTitle)
		var cmark uint64
		if s.TitleStyle != nil {
			cmark = s.TitleStyle.ComponentMark()
		}
		h.RebuildTitle()
		s.ClearDirty(series.DirtyTitle, mark)
		if s.TitleStyle != nil {
			s.TitleStyle.ClearComponentDirty(cmark)
		}
	}

	if s.NameDirty() {
		mark := s.DirtyMark(series.DirtyName)
		Logger().Debug("serie renamed", "serie", s.Index, "name", s.Name)
		h.chart.Hub().Publish(Event{Kind: EventSerieRenamed, Serie: s})
		h.chart.RefreshChart()
		s.ClearDirty(series.DirtyName, mark)
	}

	if s.VerticesDirty() {
		mark := s.DirtyMark(series.DirtyVertices)
		h.chart.RefreshPainter(s)
		s.ClearDirty(series.DirtyVertices, mark)
	}
}

func labelComponentDirty(s *series.Serie) bool {
	return s.Label != nil && s.Label.ComponentDirty()
}

func titleComponentDirty(s *series.Serie) bool {
	return s.TitleStyle != nil && s.TitleStyle.ComponentDirty()
}

// RefreshLabelNextFrame defers a label content refresh to the next Update.
func (h *SerieHandler) RefreshLabelNextFrame() {
	h.refreshLabel = true
}

// InitComponent creates the serie root and builds labels and title.
// Calling it again after RemoveComponent shows the existing root.
func (h *SerieHandler) InitComponent() {
	if h.root == nil {
		h.initRoot()
	} else {
		h.root.SetActive(true)
	}
	h.RebuildLabels()
	h.RebuildTitle()
}

// RemoveComponent hides the serie root. Nothing is destroyed, so the serie
// can be shown again without churning the label pool.
func (h *SerieHandler) RemoveComponent() {
	if h.root != nil {
		h.root.SetActive(false)
	}
}

func (h *SerieHandler) initRoot() {
	h.initedLabel = false
	name := format.RootObjectName(h.opts.rootObjectName, h.serie.Index)
	root, _ := h.chart.Root().GetOrAddChild(name)
	root.SetBounds(h.chart.Bounds())
	root.SetActive(true)
	root.HideAll()
	h.root = root
}
