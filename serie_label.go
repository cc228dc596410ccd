package ggchart

import (
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// RebuildLabels releases every pooled label of the serie and materializes a
// label for each data point that shows one, depth-first in pre-order.
// Materialized points receive consecutive label indices starting at 0.
func (h *SerieHandler) RebuildLabels() {
	if h.root == nil {
		h.initRoot()
	}
	s := h.serie

	labelRoot, _ := h.root.GetOrAddChild(h.opts.labelObjectName)
	labelRoot.SetBounds(h.chart.Bounds())
	labelRoot.SetActive(true)
	h.labelRoot = labelRoot

	h.chart.LabelPool().ReleaseAll(labelRoot)
	s.UpdateCenter(h.chart.Bounds())
	s.UnbindLabels()

	next := 0
	for _, d := range s.TopLevel() {
		var ok bool
		next, ok = h.addSerieLabel(labelRoot, d, next)
		if ok {
			h.initedLabel = true
		}
	}

	Logger().Debug("serie labels rebuilt", "serie", s.Index, "labels", next)
	h.chart.Hub().Publish(Event{Kind: EventLabelsRebuilt, Serie: s})
}

// addSerieLabel materializes the label of d and then of its children.
// count is the next free label index; the returned index is the next free
// one after d's subtree. ok is false when d itself got no label, in which
// case its children are skipped and no index is consumed.
func (h *SerieHandler) addSerieLabel(root *widget.Node, d *series.Data, count int) (next int, ok bool) {
	if root == nil || d == nil {
		return count, false
	}
	s := h.serie
	if s.IsPerformanceMode() {
		return count, false
	}

	ls := s.LabelFor(d)
	icon := s.IconStyleFor(d)
	if !ls.IsShow() && !s.EmphasisLabelFor(d).IsShow() && !icon.IsShow() {
		return count, false
	}

	name := format.LabelObjectName(h.opts.labelObjectName, s.Index, d.Index)
	color := h.labelColor(ls, count)
	w := h.chart.LabelPool().Get(name, root, ls, color, icon.Width, icon.Height)
	if w == nil {
		Logger().Warn("label pool returned no widget", "serie", s.Index, "data", d.Index)
		return count, false
	}

	autoSize := ls.BackgroundWidth == 0 || ls.BackgroundHeight == 0
	w.SetLabel(autoSize, ls.PaddingLeftRight, ls.PaddingTopBottom)
	if !autoSize {
		w.SetSize(ls.BackgroundWidth, ls.BackgroundHeight)
	}
	w.UpdateIcon(icon)
	w.SetIconActive(icon.IsShow())
	w.SetBackgroundColor(ls.TextStyle.BackgroundColor)
	s.BindLabel(d, w, count)

	next = count + 1
	for _, ci := range d.Children {
		next, _ = h.addSerieLabel(root, s.GetData(ci), next)
	}
	return next, true
}

// labelColor resolves the text color of a newly materialized label.
//
// Series colored by category name use white inside the shape and the palette
// entry for the running label count outside it. Other series use the
// explicit label color, or the palette entry of the serie itself.
func (h *SerieHandler) labelColor(ls *style.LabelStyle, count int) style.RGBA {
	theme := h.chart.Theme()
	if h.serie.UseDataNameForColor {
		if ls.Position == style.PositionInside {
			return style.White
		}
		return theme.Color(count)
	}
	if !ls.TextStyle.Color.IsClear() {
		return ls.TextStyle.Color
	}
	return theme.Color(h.serie.Index)
}

// RefreshLabelInternal updates text, position and visibility of the labels
// bound by the last structural rebuild, without touching the pool.
// It is a no-op until a label has been materialized.
func (h *SerieHandler) RefreshLabelInternal() {
	if !h.initedLabel {
		return
	}
	s := h.serie
	theme := h.chart.Theme()
	colorIndex := h.chart.LegendColorIndex(s.LegendKey())
	color := theme.Color(colorIndex)
	total := s.YTotal()

	for _, d := range s.Data {
		w := d.LabelObject
		if w == nil {
			continue
		}
		base := s.LabelFor(d)
		ls := base
		if d.Context.Highlight {
			if es := s.EmphasisLabelFor(d); es.IsShow() {
				ls = es
			}
		}
		ignore := s.IsIgnoreIndex(d.Index)

		w.SetPosition(d.Context.Position)
		w.UpdateIcon(s.IconStyleFor(d))

		if !s.Show || !ls.IsShow() || !d.Context.CanShowLabel || ignore {
			d.SetLabelActive(false)
			continue
		}

		value := d.GetData(1)
		content := format.Content(s, d, value, total, ls, color)
		invert := ls.AutoOffset &&
			s.Type == series.TypeLine &&
			s.IsDownPoint(d.Index) &&
			!s.AreaStyle.IsShow()

		resetLabel(w, ls, h.labelColor(base, d.LabelIndex))
		d.SetLabelActive(true)
		offset := ls.Offset
		if invert {
			offset = offset.Neg()
		}
		w.SetPosition(d.Context.Position.Add(offset))
		w.SetText(content)
	}
}

// resetLabel re-applies the text style of ls. A clear text color falls back
// to fallback, the color the label was materialized with, so that leaving
// the emphasis style restores it.
func resetLabel(w *widget.Label, ls *style.LabelStyle, fallback style.RGBA) {
	size := ls.TextStyle.FontSize
	if size <= 0 {
		size = widget.DefaultFontSize
	}
	if size != w.FontSize() {
		w.SetFontSize(size)
	}
	if !ls.TextStyle.Color.IsClear() {
		fallback = ls.TextStyle.Color
	}
	w.SetTextColor(fallback)
}
