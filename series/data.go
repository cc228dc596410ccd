package series

import (
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// DataContext holds values computed for a data point by layout.
type DataContext struct {
	// Position is the screen position labels are anchored at.
	Position style.Vec2
	// CanShowLabel is false while the point is outside the showable area.
	CanShowLabel bool
	// Highlight is set while the point is hovered or emphasised.
	Highlight bool
}

// Data is one entry of a serie.
type Data struct {
	// Index is the stable position of the point in Serie.Data.
	Index int
	// Parent is the index of the parent point, or -1 for top-level points.
	Parent int
	// Children are indices of child points in display order.
	Children []int

	Name   string
	Values []float64
	Show   bool
	Ignore bool

	// Per-point overrides; nil means "use the serie's style".
	Label         *style.LabelStyle
	EmphasisLabel *style.LabelStyle
	IconStyle     *style.IconStyle
	ItemStyle     *style.ItemStyle

	// LabelObject is the label widget bound to this point by the last
	// structural rebuild, and LabelIndex its depth-first label index.
	// LabelObject is nil and LabelIndex -1 when no label is bound.
	LabelObject *widget.Label
	LabelIndex  int

	Context DataContext
}

func newData(index, parent int, name string, values []float64) *Data {
	return &Data{
		Index:      index,
		Parent:     parent,
		Name:       name,
		Values:     values,
		Show:       true,
		LabelIndex: -1,
		Context:    DataContext{CanShowLabel: true},
	}
}

// GetData returns the value at dimension dim, or 0 if out of range.
func (d *Data) GetData(dim int) float64 {
	if d == nil || dim < 0 || dim >= len(d.Values) {
		return 0
	}
	return d.Values[dim]
}

// HasChildren reports whether the point has child points.
func (d *Data) HasChildren() bool { return len(d.Children) > 0 }

// IsTopLevel reports whether the point has no parent.
func (d *Data) IsTopLevel() bool { return d.Parent < 0 }

// SetLabelActive shows or hides the bound label widget, if any.
func (d *Data) SetLabelActive(active bool) {
	if d.LabelObject != nil {
		d.LabelObject.SetActive(active)
	}
}

// unbindLabel drops the label binding. The widget itself belongs to the pool.
func (d *Data) unbindLabel() {
	d.LabelObject = nil
	d.LabelIndex = -1
}
