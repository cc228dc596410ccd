package ggchart

import (
	"strings"

	"github.com/gogpu/ggchart/series"
)

// LineHandler handles series plotted against a category axis: line, bar
// and scatter.
type LineHandler struct {
	*SerieHandler
}

// NewLineHandler creates a handler for a coordinate serie.
func NewLineHandler(chart Chart, s *series.Serie, opts ...HandlerOption) *LineHandler {
	return &LineHandler{SerieHandler: NewSerieHandler(chart, s, opts...)}
}

// UpdateTooltipSerieParams binds coordinate parameters.
func (h *LineHandler) UpdateTooltipSerieParams(params []*Param, q ParamQuery) []*Param {
	return h.BindCoordParams(params, q)
}

// OnPointerEnter hovers the point whose category slot is nearest to the
// pointer, so that tooltips bound with DataIndex -1 describe it.
func (h *LineHandler) OnPointerEnter(e PointerEvent) {
	h.trackPointer(e.Position, axisDistance)
}

// OnPointerExit clears the hovered point.
func (h *LineHandler) OnPointerExit(PointerEvent) {
	h.clearPointer()
}

// CheckComponent reports configurations that render nothing.
func (h *LineHandler) CheckComponent(sb *strings.Builder) {
	checkPerformanceLabels(h.serie, sb)
}

func checkPerformanceLabels(s *series.Serie, sb *strings.Builder) {
	if s.Label.IsShow() && s.IsPerformanceMode() {
		sb.WriteString("serie ")
		sb.WriteString(s.Name)
		sb.WriteString(": labels are not shown in performance mode\n")
	}
}

var _ Handler = (*LineHandler)(nil)
