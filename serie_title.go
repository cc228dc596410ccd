package ggchart

import (
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// RebuildTitle creates or updates the single title text of the serie,
// centered on the serie center and showing the name of the first point.
func (h *SerieHandler) RebuildTitle() {
	if h.root == nil {
		h.initRoot()
	}
	s := h.serie
	ts := s.TitleStyle
	if ts == nil {
		Logger().Warn("serie has no title style", "serie", s.Index)
		return
	}

	color := ts.TextStyle.Color
	if color.IsClear() {
		color = h.chart.Theme().Color(s.Index)
	}

	txt := widget.AddText(h.opts.titleObjectName, h.root, h.opts.titleSize, ts.TextStyle, h.opts.titleFontSize)
	txt.SetText("")
	txt.SetColor(color)
	txt.SetLocalPosition(style.Vec2{})
	txt.SetLocalRotation(0)
	txt.SetActive(ts.Show)

	ts.RuntimeText = txt
	ts.UpdatePosition(s.Context.Center)
	if d := s.GetData(0); d != nil {
		txt.SetText(d.Name)
	}

	h.chart.Hub().Publish(Event{Kind: EventTitleRebuilt, Serie: s})
}

// Title returns the title text created by the last RebuildTitle, or nil.
func (h *SerieHandler) Title() *widget.Text {
	if h.serie.TitleStyle == nil {
		return nil
	}
	t, _ := h.serie.TitleStyle.RuntimeText.(*widget.Text)
	return t
}
