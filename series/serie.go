// Package series holds the data model a series handler renders: the serie,
// its data points (optionally hierarchical), its styles and the dirty flags
// mutation sites set to schedule rebuilds.
package series

import (
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// Type is the chart kind of a serie.
type Type int

const (
	TypeLine Type = iota
	TypeBar
	TypeScatter
	TypePie
	TypeRing
	TypeRadar
	TypeGauge
)

var typeNames = [...]string{"line", "bar", "scatter", "pie", "ring", "radar", "gauge"}

// String returns the lower-case type name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType maps a name back to a Type.
func ParseType(s string) (Type, bool) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), true
		}
	}
	return TypeLine, false
}

// ItemColored reports whether points of this type are colored independently
// (pie slices) rather than with one color per serie (line points).
func (t Type) ItemColored() bool {
	return t == TypePie || t == TypeRing
}

// DirtyKind selects one of the serie's dirty flags.
type DirtyKind int

const (
	DirtyLabel DirtyKind = iota
	DirtyTitle
	DirtyName
	DirtyVertices
	dirtyKinds
)

// DefaultPerformanceThreshold is the data count from which a serie with
// PerformanceMode enabled drops per-point labels.
const DefaultPerformanceThreshold = 200

// Context holds values derived from the serie and the chart bounds.
type Context struct {
	Center        style.Vec2
	InsideRadius  float64
	OutsideRadius float64

	// PointerItemDataIndex is the data index last hovered by the pointer,
	// -1 when nothing is hovered.
	PointerItemDataIndex int
	PointerEnter         bool
}

// Serie is the dataset of one chart trace. It is owned by the chart; a
// handler borrows it for its lifetime.
type Serie struct {
	Index      int
	Name       string
	LegendName string
	Type       Type
	Show       bool

	// Data holds every point, top-level and children, in creation order.
	// A point's Index is its position here.
	Data []*Data

	Label         *style.LabelStyle
	EmphasisLabel *style.LabelStyle
	TitleStyle    *style.TitleStyle
	IconStyle     *style.IconStyle
	AreaStyle     *style.AreaStyle
	ItemStyle     *style.ItemStyle

	// UseDataNameForColor colors each point by its category name.
	UseDataNameForColor bool

	// Center and Radius are ratios of the chart bounds when <= 1, pixels
	// otherwise. Radius is {inside, outside}.
	Center [2]float64
	Radius [2]float64

	PerformanceMode      bool
	PerformanceThreshold int

	// Points whose dimension-1 value equals IgnoreValue are skipped when
	// Ignore is set.
	Ignore      bool
	IgnoreValue float64

	Context Context

	dirty   [dirtyKinds]style.DirtyFlag
	boundBy map[*widget.Label]*Data
}

// New creates a visible serie with default styles.
func New(index int, name string, typ Type) *Serie {
	s := &Serie{
		Index:                index,
		Name:                 name,
		Type:                 typ,
		Show:                 true,
		Label:                style.NewLabelStyle(),
		TitleStyle:           style.NewTitleStyle(),
		IconStyle:            &style.IconStyle{},
		AreaStyle:            &style.AreaStyle{},
		ItemStyle:            &style.ItemStyle{},
		Center:               [2]float64{0.5, 0.5},
		Radius:               [2]float64{0, 0.28},
		PerformanceThreshold: DefaultPerformanceThreshold,
		Context:              Context{PointerItemDataIndex: -1},
	}
	s.SetVerticesDirty()
	return s
}

// LegendKey returns the name the legend lists the serie under.
func (s *Serie) LegendKey() string {
	if s.LegendName != "" {
		return s.LegendName
	}
	return s.Name
}

// SetName renames the serie and marks the name dirty.
func (s *Serie) SetName(name string) {
	if s.Name == name {
		return
	}
	s.Name = name
	s.SetNameDirty()
}

// SetShow toggles the serie and schedules a repaint.
func (s *Serie) SetShow(show bool) {
	if s.Show == show {
		return
	}
	s.Show = show
	s.SetVerticesDirty()
}

// AddData appends a top-level point with raw values.
func (s *Serie) AddData(name string, values ...float64) *Data {
	d := newData(len(s.Data), -1, name, values)
	s.Data = append(s.Data, d)
	s.SetLabelDirty()
	s.SetVerticesDirty()
	return d
}

// AddValue appends a top-level point whose x is its index and y is value.
func (s *Serie) AddValue(name string, value float64) *Data {
	return s.AddData(name, float64(len(s.Data)), value)
}

// AddChild appends a child of parent with raw values. Children are kept in
// insertion order and never reordered independently of their parent.
func (s *Serie) AddChild(parent *Data, name string, values ...float64) *Data {
	if parent == nil {
		return s.AddData(name, values...)
	}
	d := newData(len(s.Data), parent.Index, name, values)
	s.Data = append(s.Data, d)
	parent.Children = append(parent.Children, d.Index)
	s.SetLabelDirty()
	s.SetVerticesDirty()
	return d
}

// UpdateData sets one value of the point at index. Only geometry is marked
// dirty; labels pick the value up on the next content refresh.
func (s *Serie) UpdateData(index, dim int, value float64) bool {
	d := s.GetData(index)
	if d == nil || dim < 0 {
		return false
	}
	for len(d.Values) <= dim {
		d.Values = append(d.Values, 0)
	}
	d.Values[dim] = value
	s.SetVerticesDirty()
	return true
}

// ClearData removes every point and marks everything dirty.
func (s *Serie) ClearData() {
	s.UnbindLabels()
	s.Data = nil
	s.SetAllDirty()
}

// GetData returns the point at index, or nil.
func (s *Serie) GetData(index int) *Data {
	if index < 0 || index >= len(s.Data) {
		return nil
	}
	return s.Data[index]
}

// DataCount returns the number of points, children included.
func (s *Serie) DataCount() int { return len(s.Data) }

// TopLevel returns the points without a parent, in order.
func (s *Serie) TopLevel() []*Data {
	out := make([]*Data, 0, len(s.Data))
	for _, d := range s.Data {
		if d.IsTopLevel() {
			out = append(out, d)
		}
	}
	return out
}

// BindLabel binds w to d with the given label index. Any previous binding of
// d is dropped, and if w was bound to another point that point loses it.
func (s *Serie) BindLabel(d *Data, w *widget.Label, labelIndex int) {
	if s.boundBy == nil {
		s.boundBy = make(map[*widget.Label]*Data)
	}
	if d.LabelObject != nil {
		delete(s.boundBy, d.LabelObject)
	}
	if prev, ok := s.boundBy[w]; ok && prev != d {
		prev.unbindLabel()
	}
	d.LabelObject = w
	d.LabelIndex = labelIndex
	s.boundBy[w] = d
}

// UnbindLabels drops every label binding.
func (s *Serie) UnbindLabels() {
	for _, d := range s.Data {
		d.unbindLabel()
	}
	clear(s.boundBy)
}

// BoundData returns the point w is bound to.
func (s *Serie) BoundData(w *widget.Label) (*Data, bool) {
	d, ok := s.boundBy[w]
	return d, ok
}

// SetDirty sets the flag for k.
func (s *Serie) SetDirty(k DirtyKind) { s.dirty[k].Set() }

// IsDirty reports whether the flag for k is set.
func (s *Serie) IsDirty(k DirtyKind) bool { return s.dirty[k].IsDirty() }

// DirtyMark returns the generation of flag k. Pass it to ClearDirty once the
// rebuild triggered by k has finished.
func (s *Serie) DirtyMark(k DirtyKind) uint64 { return s.dirty[k].Mark() }

// ClearDirty clears flag k up to mark. Sets that happened after the mark was
// taken keep the flag dirty.
func (s *Serie) ClearDirty(k DirtyKind, mark uint64) { s.dirty[k].ClearTo(mark) }

// SetLabelDirty schedules a structural label rebuild.
func (s *Serie) SetLabelDirty() { s.SetDirty(DirtyLabel) }

// SetTitleDirty schedules a title rebuild.
func (s *Serie) SetTitleDirty() { s.SetDirty(DirtyTitle) }

// SetNameDirty schedules a "serie renamed" notification.
func (s *Serie) SetNameDirty() { s.SetDirty(DirtyName) }

// SetVerticesDirty schedules a geometry repaint.
func (s *Serie) SetVerticesDirty() { s.SetDirty(DirtyVertices) }

// SetAllDirty sets every flag.
func (s *Serie) SetAllDirty() {
	for k := DirtyKind(0); k < dirtyKinds; k++ {
		s.SetDirty(k)
	}
}

// LabelDirty reports whether a structural label rebuild is pending.
func (s *Serie) LabelDirty() bool { return s.IsDirty(DirtyLabel) }

// TitleDirty reports whether a title rebuild is pending.
func (s *Serie) TitleDirty() bool { return s.IsDirty(DirtyTitle) }

// NameDirty reports whether a rename notification is pending.
func (s *Serie) NameDirty() bool { return s.IsDirty(DirtyName) }

// VerticesDirty reports whether a geometry repaint is pending.
func (s *Serie) VerticesDirty() bool { return s.IsDirty(DirtyVertices) }
