package ggchart

import (
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
)

// ParamQuery selects the data point a tooltip or legend wants parameters for.
type ParamQuery struct {
	// DataIndex is the point to describe; -1 means the point last hovered by
	// the pointer.
	DataIndex int
	// ShowCategory puts Category in the name column instead of the serie name.
	// Only coordinate series honor it.
	ShowCategory bool
	Category     string

	// Marker, ItemFormatter and NumericFormatter are used when the point's
	// item style does not set its own.
	Marker           string
	ItemFormatter    string
	NumericFormatter string

	// Dimension is the value dimension item series read. Zero means 1.
	Dimension int
}

// Param describes one data point for tooltip and legend renderers.
//
// A handler owns a single Param and refills it on every binder call, so a
// *Param is valid only until the next UpdateTooltipSerieParams call on the
// same handler. Callers that keep values across calls must take a Snapshot.
type Param struct {
	SerieName        string
	SerieIndex       int
	SerieType        series.Type
	Category         string
	Dimension        int
	Data             *series.Data
	Value            float64
	Total            float64
	Color            style.RGBA
	Marker           string
	ItemFormatter    string
	NumericFormatter string

	// Columns is the display row: marker, name, formatted value.
	Columns []string
}

// ParamSnapshot is an immutable copy of a Param.
type ParamSnapshot struct {
	SerieName        string     `json:"serieName" msgpack:"serieName"`
	SerieIndex       int        `json:"serieIndex" msgpack:"serieIndex"`
	SerieType        string     `json:"serieType" msgpack:"serieType"`
	Category         string     `json:"category,omitempty" msgpack:"category,omitempty"`
	Dimension        int        `json:"dimension" msgpack:"dimension"`
	DataIndex        int        `json:"dataIndex" msgpack:"dataIndex"`
	DataName         string     `json:"dataName,omitempty" msgpack:"dataName,omitempty"`
	Value            float64    `json:"value" msgpack:"value"`
	Total            float64    `json:"total" msgpack:"total"`
	Color            style.RGBA `json:"color" msgpack:"color"`
	Marker           string     `json:"marker" msgpack:"marker"`
	ItemFormatter    string     `json:"itemFormatter,omitempty" msgpack:"itemFormatter,omitempty"`
	NumericFormatter string     `json:"numericFormatter,omitempty" msgpack:"numericFormatter,omitempty"`
	Columns          []string   `json:"columns" msgpack:"columns"`
}

// Snapshot copies p so it survives later binder calls.
func (p *Param) Snapshot() ParamSnapshot {
	s := ParamSnapshot{
		SerieName:        p.SerieName,
		SerieIndex:       p.SerieIndex,
		SerieType:        p.SerieType.String(),
		Category:         p.Category,
		Dimension:        p.Dimension,
		DataIndex:        -1,
		Value:            p.Value,
		Total:            p.Total,
		Color:            p.Color,
		Marker:           p.Marker,
		ItemFormatter:    p.ItemFormatter,
		NumericFormatter: p.NumericFormatter,
		Columns:          append([]string(nil), p.Columns...),
	}
	if p.Data != nil {
		s.DataIndex = p.Data.Index
		s.DataName = p.Data.Name
	}
	return s
}
