package series

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/ggchart/style"
)

// DefaultMarker is the tooltip marker used when nothing overrides it.
const DefaultMarker = "●"

// values collects dimension dim of every top-level point that is not
// ignored. Children are breakdowns of their parent and do not add to totals.
func (s *Serie) values(dim int) []float64 {
	vs := make([]float64, 0, len(s.Data))
	for _, d := range s.Data {
		if !d.IsTopLevel() || s.isIgnoreData(d) {
			continue
		}
		vs = append(vs, d.GetData(dim))
	}
	return vs
}

// TotalAt returns the sum of dimension dim over the top-level points that
// are not ignored.
func (s *Serie) TotalAt(dim int) float64 {
	vs := s.values(dim)
	if len(vs) == 0 {
		return 0
	}
	return floats.Sum(vs)
}

// YTotal returns the aggregate of the primary value dimension.
func (s *Serie) YTotal() float64 { return s.TotalAt(1) }

// MaxAt returns the maximum of dimension dim over the top-level points that
// are not ignored, or 0 for an empty serie.
func (s *Serie) MaxAt(dim int) float64 {
	vs := s.values(dim)
	if len(vs) == 0 {
		return 0
	}
	return floats.Max(vs)
}

// IsPerformanceMode reports whether the large-dataset fast path is active.
// Labels are disabled in that mode.
func (s *Serie) IsPerformanceMode() bool {
	if !s.PerformanceMode {
		return false
	}
	threshold := s.PerformanceThreshold
	if threshold <= 0 {
		threshold = DefaultPerformanceThreshold
	}
	return len(s.Data) >= threshold
}

func (s *Serie) isIgnoreData(d *Data) bool {
	if d.Ignore {
		return true
	}
	return s.Ignore && d.GetData(1) == s.IgnoreValue
}

// IsIgnoreIndex reports whether the point at index is excluded from display.
func (s *Serie) IsIgnoreIndex(index int) bool {
	d := s.GetData(index)
	if d == nil {
		return false
	}
	return s.isIgnoreData(d)
}

// IsDownPoint reports whether the point at index forms a downward kink in
// the primary dimension: below the chord of its neighbours, or lower than
// its only neighbour at either end. Neighbours are siblings: other
// top-level points for a top-level point, the parent's other children for
// a child.
func (s *Serie) IsDownPoint(index int) bool {
	d := s.GetData(index)
	if d == nil {
		return false
	}
	sib := s.siblings(d)
	n := len(sib)
	pos := slices.Index(sib, d)
	if n < 2 || pos < 0 {
		return false
	}
	cur := d.GetData(1)
	switch pos {
	case 0:
		return cur < sib[1].GetData(1)
	case n - 1:
		return cur < sib[n-2].GetData(1)
	}
	prev := sib[pos-1].GetData(1)
	next := sib[pos+1].GetData(1)
	return 2*cur-prev-next < 0
}

// siblings returns d and the points sharing its parent, in display order.
func (s *Serie) siblings(d *Data) []*Data {
	if d.IsTopLevel() {
		return s.TopLevel()
	}
	p := s.GetData(d.Parent)
	if p == nil {
		return nil
	}
	out := make([]*Data, 0, len(p.Children))
	for _, ci := range p.Children {
		if c := s.GetData(ci); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// LabelFor returns the label style in effect for d. It is never nil.
func (s *Serie) LabelFor(d *Data) *style.LabelStyle {
	if d != nil && d.Label != nil {
		return d.Label
	}
	if s.Label != nil {
		return s.Label
	}
	return &style.LabelStyle{}
}

// EmphasisLabelFor returns the emphasis label style for d, possibly nil.
func (s *Serie) EmphasisLabelFor(d *Data) *style.LabelStyle {
	if d != nil && d.EmphasisLabel != nil {
		return d.EmphasisLabel
	}
	return s.EmphasisLabel
}

// IconStyleFor returns the icon style in effect for d. It is never nil.
func (s *Serie) IconStyleFor(d *Data) *style.IconStyle {
	if d != nil && d.IconStyle != nil {
		return d.IconStyle
	}
	if s.IconStyle != nil {
		return s.IconStyle
	}
	return &style.IconStyle{}
}

// ItemStyleFor returns the item style for d, possibly nil.
func (s *Serie) ItemStyleFor(d *Data) *style.ItemStyle {
	if d != nil && d.ItemStyle != nil {
		return d.ItemStyle
	}
	return s.ItemStyle
}

// ItemMarker resolves the tooltip marker: item style first, then fallback,
// then DefaultMarker.
func (s *Serie) ItemMarker(d *Data, fallback string) string {
	if is := s.ItemStyleFor(d); is != nil && is.ItemMarker != "" {
		return is.ItemMarker
	}
	if fallback != "" {
		return fallback
	}
	return DefaultMarker
}

// ItemFormatter resolves the tooltip item formatter.
func (s *Serie) ItemFormatter(d *Data, fallback string) string {
	if is := s.ItemStyleFor(d); is != nil && is.ItemFormatter != "" {
		return is.ItemFormatter
	}
	return fallback
}

// NumericFormatter resolves the numeric formatter for tooltips and labels.
func (s *Serie) NumericFormatter(d *Data, fallback string) string {
	if is := s.ItemStyleFor(d); is != nil && is.NumericFormatter != "" {
		return is.NumericFormatter
	}
	return fallback
}

// UpdateCenter recomputes Context.Center and the radii from the chart bounds.
func (s *Serie) UpdateCenter(bounds style.Rect) {
	s.Context.Center = style.Vec2{
		X: bounds.X + resolve(s.Center[0], bounds.W),
		Y: bounds.Y + resolve(s.Center[1], bounds.H),
	}
	base := bounds.Min()
	s.Context.InsideRadius = resolve(s.Radius[0], base)
	s.Context.OutsideRadius = resolve(s.Radius[1], base)
}

// resolve treats v <= 1 as a ratio of full, anything larger as pixels.
func resolve(v, full float64) float64 {
	if v <= 1 {
		return v * full
	}
	return v
}
