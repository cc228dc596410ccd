package ggchart

import (
	"strings"

	"github.com/gogpu/ggchart/series"
)

// Handler is the full lifecycle and event surface a chart drives for each
// serie. Embed BaseHandler to get no-op defaults and override only what a
// serie kind needs.
type Handler interface {
	Serie() *series.Serie

	InitComponent()
	RemoveComponent()
	CheckComponent(sb *strings.Builder)
	Update()

	// Draw* are called by the drawing backend once per frame, in this order.
	DrawBase(m Mesh)
	DrawSerie(m Mesh)
	DrawTop(m Mesh)

	OnPointerClick(e PointerEvent)
	OnPointerDown(e PointerEvent)
	OnPointerUp(e PointerEvent)
	OnPointerEnter(e PointerEvent)
	OnPointerExit(e PointerEvent)
	OnDrag(e PointerEvent)
	OnBeginDrag(e PointerEvent)
	OnEndDrag(e PointerEvent)
	OnScroll(e PointerEvent)

	RefreshLabelNextFrame()
	RefreshLabelInternal()

	// UpdateTooltipSerieParams appends the parameter record for q to params
	// and returns the extended slice. See Param for the reuse contract.
	UpdateTooltipSerieParams(params []*Param, q ParamQuery) []*Param

	OnLegendButtonClick(index int, legendName string, show bool) bool
	OnLegendButtonEnter(index int, legendName string) bool
	OnLegendButtonExit(index int, legendName string) bool
}

// BaseHandler implements every Handler method as a no-op, except Serie which
// returns nil.
type BaseHandler struct{}

func (BaseHandler) Serie() *series.Serie                       { return nil }
func (BaseHandler) InitComponent()                             {}
func (BaseHandler) RemoveComponent()                           {}
func (BaseHandler) CheckComponent(*strings.Builder)            {}
func (BaseHandler) Update()                                    {}
func (BaseHandler) DrawBase(Mesh)                              {}
func (BaseHandler) DrawSerie(Mesh)                             {}
func (BaseHandler) DrawTop(Mesh)                               {}
func (BaseHandler) OnPointerClick(PointerEvent)                {}
func (BaseHandler) OnPointerDown(PointerEvent)                 {}
func (BaseHandler) OnPointerUp(PointerEvent)                   {}
func (BaseHandler) OnPointerEnter(PointerEvent)                {}
func (BaseHandler) OnPointerExit(PointerEvent)                 {}
func (BaseHandler) OnDrag(PointerEvent)                        {}
func (BaseHandler) OnBeginDrag(PointerEvent)                   {}
func (BaseHandler) OnEndDrag(PointerEvent)                     {}
func (BaseHandler) OnScroll(PointerEvent)                      {}
func (BaseHandler) RefreshLabelNextFrame()                     {}
func (BaseHandler) RefreshLabelInternal()                      {}
func (BaseHandler) OnLegendButtonClick(int, string, bool) bool { return false }
func (BaseHandler) OnLegendButtonEnter(int, string) bool       { return false }
func (BaseHandler) OnLegendButtonExit(int, string) bool        { return false }

func (BaseHandler) UpdateTooltipSerieParams(params []*Param, _ ParamQuery) []*Param {
	return params
}

var _ Handler = BaseHandler{}
