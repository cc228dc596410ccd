package ggchart

import (
	"github.com/gogpu/ggchart/format"
	"github.com/gogpu/ggchart/series"
)

// resolveParamData applies the hover fallback of a query.
func (h *SerieHandler) resolveParamData(dataIndex int) *series.Data {
	if dataIndex < 0 {
		dataIndex = h.serie.Context.PointerItemDataIndex
	}
	if dataIndex < 0 {
		return nil
	}
	return h.serie.GetData(dataIndex)
}

// fillCommon sets the fields both binders fill the same way.
func (h *SerieHandler) fillCommon(d *series.Data, q ParamQuery) *Param {
	s := h.serie
	p := &h.param
	p.SerieName = s.Name
	p.SerieIndex = s.Index
	p.SerieType = s.Type
	p.Category = q.Category
	p.Data = d
	p.Marker = s.ItemMarker(d, q.Marker)
	p.ItemFormatter = s.ItemFormatter(d, q.ItemFormatter)
	p.NumericFormatter = s.NumericFormatter(d, q.NumericFormatter)
	return p
}

// BindCoordParams describes a point of a serie plotted against a shared
// category axis and appends the record to params. The value is read from
// dimension 1, the total is the serie aggregate and the color is the serie's
// legend color. Nothing is appended when the index resolves to no point.
func (h *SerieHandler) BindCoordParams(params []*Param, q ParamQuery) []*Param {
	d := h.resolveParamData(q.DataIndex)
	if d == nil {
		return params
	}
	s := h.serie
	p := h.fillCommon(d, q)
	p.Dimension = 1
	p.Value = d.GetData(1)
	p.Total = s.YTotal()
	p.Color = h.chart.LegendColor(s.Name)

	name := s.Name
	if q.ShowCategory {
		name = q.Category
	}
	p.Columns = append(p.Columns[:0], p.Marker, name, format.NumberToStr(p.Value, p.NumericFormatter))
	return append(params, p)
}

// BindItemParams describes a point of a serie without a shared axis (pie
// slices) and appends the record to params. The total is the maximum at the
// queried dimension, not the sum, and the color is the palette entry at the
// raw data index.
func (h *SerieHandler) BindItemParams(params []*Param, q ParamQuery) []*Param {
	d := h.resolveParamData(q.DataIndex)
	if d == nil {
		return params
	}
	dim := q.Dimension
	if dim < 1 {
		dim = 1
	}
	s := h.serie
	p := h.fillCommon(d, q)
	p.Dimension = dim
	p.Value = d.GetData(dim)
	p.Total = s.MaxAt(dim)
	p.Color = h.chart.Theme().Color(d.Index)

	p.Columns = append(p.Columns[:0], p.Marker, d.Name, format.NumberToStr(p.Value, p.NumericFormatter))
	return append(params, p)
}
