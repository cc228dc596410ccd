package ggchart

import (
	"strings"

	"github.com/gogpu/ggchart/series"
)

// PieHandler handles series whose points are colored and toggled
// independently: pie and ring.
type PieHandler struct {
	*SerieHandler
}

// NewPieHandler creates a handler for an item serie.
func NewPieHandler(chart Chart, s *series.Serie, opts ...HandlerOption) *PieHandler {
	return &PieHandler{SerieHandler: NewSerieHandler(chart, s, opts...)}
}

// UpdateTooltipSerieParams binds item parameters.
func (h *PieHandler) UpdateTooltipSerieParams(params []*Param, q ParamQuery) []*Param {
	return h.BindItemParams(params, q)
}

// OnPointerEnter hovers the slice whose label anchor is nearest to the
// pointer.
func (h *PieHandler) OnPointerEnter(e PointerEvent) {
	h.trackPointer(e.Position, pointDistance)
}

// OnPointerExit clears the hovered slice.
func (h *PieHandler) OnPointerExit(PointerEvent) {
	h.clearPointer()
}

// CheckComponent reports configurations that render nothing.
func (h *PieHandler) CheckComponent(sb *strings.Builder) {
	checkPerformanceLabels(h.serie, sb)
	if h.serie.Radius[1] <= 0 {
		sb.WriteString("serie ")
		sb.WriteString(h.serie.Name)
		sb.WriteString(": outside radius is zero\n")
	}
}

// OnLegendButtonClick shows or hides the slice named legendName.
func (h *PieHandler) OnLegendButtonClick(_ int, legendName string, show bool) bool {
	d := h.dataByName(legendName)
	if d == nil {
		return false
	}
	d.Show = show
	d.Context.CanShowLabel = show
	h.serie.SetVerticesDirty()
	h.RefreshLabelNextFrame()
	return true
}

// OnLegendButtonEnter highlights the slice named legendName. Its label
// switches to the emphasis style on the next frame, if one is shown.
func (h *PieHandler) OnLegendButtonEnter(_ int, legendName string) bool {
	return h.highlight(legendName, true)
}

// OnLegendButtonExit clears the highlight of the slice named legendName.
func (h *PieHandler) OnLegendButtonExit(_ int, legendName string) bool {
	return h.highlight(legendName, false)
}

func (h *PieHandler) highlight(name string, on bool) bool {
	d := h.dataByName(name)
	if d == nil {
		return false
	}
	if d.Context.Highlight != on {
		d.Context.Highlight = on
		h.serie.SetVerticesDirty()
		h.RefreshLabelNextFrame()
	}
	return true
}

func (h *PieHandler) dataByName(name string) *series.Data {
	for _, d := range h.serie.Data {
		if d.Name == name {
			return d
		}
	}
	return nil
}

var _ Handler = (*PieHandler)(nil)
