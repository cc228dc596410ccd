package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
)

var (
	errNoSeries    = errors.New("input has no series")
	errUnknownType = errors.New("unknown serie type")
)

type inputDoc struct {
	Theme  string        `json:"theme"`
	Series []inputSerie `json:"series"`
}

type inputSerie struct {
	Name        string       `json:"name"`
	LegendName  string       `json:"legendName"`
	Type        string       `json:"type"`
	ColorByName bool         `json:"colorByName"`
	Center      *[2]float64  `json:"center"`
	Radius      *[2]float64  `json:"radius"`
	Ignore      *float64     `json:"ignoreValue"`
	Label       *inputLabel  `json:"label"`
	Title       *inputTitle  `json:"title"`
	Area        bool         `json:"area"`
	Performance int          `json:"performanceThreshold"`
	Data        []inputPoint `json:"data"`
}

type inputLabel struct {
	Show             bool       `json:"show"`
	Position         string     `json:"position"`
	Formatter        string     `json:"formatter"`
	NumericFormatter string     `json:"numericFormatter"`
	Offset           [2]float64 `json:"offset"`
	AutoOffset       bool       `json:"autoOffset"`
	FontSize         float64    `json:"fontSize"`
	Color            style.RGBA `json:"color"`
	Background       style.RGBA `json:"background"`
	Width            float64    `json:"width"`
	Height           float64    `json:"height"`
}

type inputTitle struct {
	Show   bool       `json:"show"`
	Offset [2]float64 `json:"offset"`
	Color  style.RGBA `json:"color"`
}

type inputPoint struct {
	Name     string       `json:"name"`
	Value    *float64     `json:"value"`
	Values   []float64    `json:"values"`
	Ignore   bool         `json:"ignore"`
	Label    *inputLabel  `json:"label"`
	Children []inputPoint `json:"children"`
}

// decodeInput parses a JSON chart description into series.
func decodeInput(r io.Reader) (string, []*series.Serie, error) {
	var doc inputDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("decode input: %w", err)
	}
	if len(doc.Series) == 0 {
		return "", nil, errNoSeries
	}

	out := make([]*series.Serie, 0, len(doc.Series))
	for i, in := range doc.Series {
		s, err := in.build(i)
		if err != nil {
			return "", nil, fmt.Errorf("serie %d: %w", i, err)
		}
		out = append(out, s)
	}
	return doc.Theme, out, nil
}

func (in inputSerie) build(index int) (*series.Serie, error) {
	typ := series.TypeLine
	if in.Type != "" {
		t, ok := series.ParseType(in.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownType, in.Type)
		}
		typ = t
	}

	s := series.New(index, in.Name, typ)
	s.LegendName = in.LegendName
	s.UseDataNameForColor = in.ColorByName
	if in.Center != nil {
		s.Center = *in.Center
	}
	if in.Radius != nil {
		s.Radius = *in.Radius
	}
	if in.Ignore != nil {
		s.Ignore = true
		s.IgnoreValue = *in.Ignore
	}
	if in.Performance > 0 {
		s.PerformanceMode = true
		s.PerformanceThreshold = in.Performance
	}
	s.AreaStyle.Show = in.Area
	if in.Label != nil {
		s.Label = in.Label.style()
	}
	if in.Title != nil {
		s.TitleStyle.Show = in.Title.Show
		s.TitleStyle.Offset = style.Vec2{X: in.Title.Offset[0], Y: in.Title.Offset[1]}
		s.TitleStyle.TextStyle.Color = in.Title.Color
	}

	for _, p := range in.Data {
		p.add(s, nil)
	}
	return s, nil
}

func (p inputPoint) add(s *series.Serie, parent *series.Data) {
	values := p.Values
	if p.Value != nil {
		values = []float64{float64(len(s.Data)), *p.Value}
	}
	d := s.AddChild(parent, p.Name, values...)
	d.Ignore = p.Ignore
	if p.Label != nil {
		d.Label = p.Label.style()
	}
	for _, c := range p.Children {
		c.add(s, d)
	}
}

func (in *inputLabel) style() *style.LabelStyle {
	ls := style.NewLabelStyle()
	ls.Show = in.Show
	ls.Position = style.ParsePosition(in.Position)
	ls.Formatter = in.Formatter
	ls.NumericFormatter = in.NumericFormatter
	ls.Offset = style.Vec2{X: in.Offset[0], Y: in.Offset[1]}
	ls.AutoOffset = in.AutoOffset
	ls.BackgroundWidth = in.Width
	ls.BackgroundHeight = in.Height
	ls.TextStyle.Color = in.Color
	ls.TextStyle.BackgroundColor = in.Background
	if in.FontSize > 0 {
		ls.TextStyle.FontSize = in.FontSize
	}
	return ls
}
