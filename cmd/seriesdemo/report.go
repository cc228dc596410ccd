package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/container"
	"github.com/gogpu/ggchart/widget"
)

type labelReport struct {
	Serie      int     `json:"serie" msgpack:"serie"`
	Data       int     `json:"data" msgpack:"data"`
	LabelIndex int     `json:"labelIndex" msgpack:"labelIndex"`
	Name       string  `json:"name" msgpack:"name"`
	Text       string  `json:"text" msgpack:"text"`
	X          float64 `json:"x" msgpack:"x"`
	Y          float64 `json:"y" msgpack:"y"`
	Width      float64 `json:"width" msgpack:"width"`
	Height     float64 `json:"height" msgpack:"height"`
	Color      string  `json:"color" msgpack:"color"`
	Active     bool    `json:"active" msgpack:"active"`
}

type titleReport struct {
	Serie  int     `json:"serie" msgpack:"serie"`
	Text   string  `json:"text" msgpack:"text"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Active bool    `json:"active" msgpack:"active"`
}

type legendReport struct {
	Name  string `json:"name" msgpack:"name"`
	Color string `json:"color" msgpack:"color"`
	Shown bool   `json:"shown" msgpack:"shown"`
}

type report struct {
	Frames      int                     `json:"frames" msgpack:"frames"`
	Labels      []labelReport           `json:"labels" msgpack:"labels"`
	Titles      []titleReport           `json:"titles,omitempty" msgpack:"titles,omitempty"`
	Legend      []legendReport          `json:"legend" msgpack:"legend"`
	Tooltip     []ggchart.ParamSnapshot `json:"tooltip,omitempty" msgpack:"tooltip,omitempty"`
	Diagnostics string                  `json:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

// buildReport collects the materialized labels, titles and legend of c.
// A non-negative tooltip index also collects tooltip parameters.
func buildReport(c *container.Chart, tooltip int) report {
	r := report{Frames: c.Frame(), Diagnostics: c.Check()}

	for _, s := range c.Series() {
		for _, d := range s.Data {
			l := d.LabelObject
			if l == nil {
				continue
			}
			w, h := l.Size()
			pos := l.Position()
			r.Labels = append(r.Labels, labelReport{
				Serie:      s.Index,
				Data:       d.Index,
				LabelIndex: d.LabelIndex,
				Name:       l.Name(),
				Text:       l.Text(),
				X:          pos.X,
				Y:          pos.Y,
				Width:      w,
				Height:     h,
				Color:      l.TextColor().HexString(),
				Active:     l.Active(),
			})
		}
	}

	for _, h := range c.Handlers() {
		title := titleOf(h)
		if title == nil {
			continue
		}
		pos := title.LocalPosition()
		r.Titles = append(r.Titles, titleReport{
			Serie:  h.Serie().Index,
			Text:   title.Text(),
			X:      pos.X,
			Y:      pos.Y,
			Active: title.Active(),
		})
	}

	for _, e := range c.Legend().Entries() {
		r.Legend = append(r.Legend, legendReport{Name: e.Name, Color: e.Color.HexString(), Shown: e.Shown})
	}

	if tooltip >= 0 {
		r.Tooltip = c.Tooltip(ggchart.ParamQuery{DataIndex: tooltip})
	}
	return r
}

func titleOf(h ggchart.Handler) *widget.Text {
	type titled interface{ Title() *widget.Text }
	if t, ok := h.(titled); ok {
		return t.Title()
	}
	return nil
}

// writeReport encodes r as "json" or "msgpack".
func writeReport(w io.Writer, r report, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
