package format

import (
	"strings"

	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
)

// Placeholders understood by label formatters:
//
//	{a}  serie name
//	{b}  data point name
//	{c}  value
//	{d}  percentage of total (0-100)
//	{.}  color marker, "<color=#rrggbb>●</color>"
//
// {c} and {d} accept a numeric formatter after a colon: "{c:f2}", "{d:0.0}".
// A literal "\n" sequence becomes a newline.

// defaultPercentFormatter is applied to {d} when nothing else is configured.
const defaultPercentFormatter = "f1"

// Content computes the text of a data point label. With no template on the
// label style the value is formatted on its own.
func Content(s *series.Serie, d *series.Data, value, total float64, ls *style.LabelStyle, color style.RGBA) string {
	var template, nf string
	if ls != nil {
		template = ls.Formatter
		nf = ls.NumericFormatter
	}
	nf = s.NumericFormatter(d, nf)
	if template == "" {
		return NumberToStr(value, nf)
	}
	name := ""
	if d != nil {
		name = d.Name
	}
	return Expand(template, Fields{
		SerieName:        s.Name,
		DataName:         name,
		Value:            value,
		Total:            total,
		Color:            color,
		NumericFormatter: nf,
	})
}

// Fields are the values a template is expanded with.
type Fields struct {
	SerieName        string
	DataName         string
	Value            float64
	Total            float64
	Color            style.RGBA
	NumericFormatter string
}

// Percent returns Value as a percentage of Total, 0 when Total is 0.
func (f Fields) Percent() float64 {
	if f.Total == 0 {
		return 0
	}
	return f.Value / f.Total * 100
}

// Expand substitutes placeholders in template. Unknown placeholders are kept
// verbatim.
func Expand(template string, f Fields) string {
	var b strings.Builder
	b.Grow(len(template) + 8)

	for i := 0; i < len(template); {
		c := template[i]
		if c == '\\' && i+1 < len(template) && template[i+1] == 'n' {
			b.WriteByte('\n')
			i += 2
			continue
		}
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		token := template[i+1 : i+end]
		if !expandToken(&b, token, f) {
			b.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}

func expandToken(b *strings.Builder, token string, f Fields) bool {
	key, nf, hasFormat := strings.Cut(token, ":")
	switch key {
	case "a":
		b.WriteString(f.SerieName)
	case "b":
		b.WriteString(f.DataName)
	case "c":
		if !hasFormat {
			nf = f.NumericFormatter
		}
		b.WriteString(NumberToStr(f.Value, nf))
	case "d":
		if !hasFormat {
			nf = f.NumericFormatter
			if nf == "" {
				nf = defaultPercentFormatter
			}
		}
		b.WriteString(NumberToStr(f.Percent(), nf))
	case ".":
		b.WriteString(ColorMarker(f.Color))
	default:
		return false
	}
	return true
}

// ColorMarker returns a rich-text marker dot in color c.
func ColorMarker(c style.RGBA) string {
	return "<color=" + c.HexString() + ">" + series.DefaultMarker + "</color>"
}
