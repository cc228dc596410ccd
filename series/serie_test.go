package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

func TestTypeString(t *testing.T) {
	for _, typ := range []Type{TypeLine, TypeBar, TypeScatter, TypePie, TypeRing, TypeRadar, TypeGauge} {
		got, ok := ParseType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}
	assert.Equal(t, "unknown", Type(99).String())
	_, ok := ParseType("donut")
	assert.False(t, ok)

	assert.True(t, TypePie.ItemColored())
	assert.True(t, TypeRing.ItemColored())
	assert.False(t, TypeBar.ItemColored())
}

func TestNewSerieDefaults(t *testing.T) {
	s := New(2, "a", TypeLine)
	assert.True(t, s.Show)
	assert.NotNil(t, s.Label)
	assert.False(t, s.Label.Show)
	assert.Equal(t, -1, s.Context.PointerItemDataIndex)
	assert.True(t, s.VerticesDirty())
	assert.False(t, s.LabelDirty())
	assert.False(t, s.NameDirty())
}

func TestAddDataAndChildren(t *testing.T) {
	s := New(0, "a", TypeLine)
	p := s.AddValue("p", 5)
	c := s.AddChild(p, "c", 0, 1)
	q := s.AddValue("q", 6)

	assert.Equal(t, []float64{0, 5}, p.Values)
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 0, c.Parent)
	assert.Equal(t, []int{1}, p.Children)
	assert.True(t, p.HasChildren())
	assert.False(t, c.IsTopLevel())
	assert.Equal(t, []*Data{p, q}, s.TopLevel())
	assert.Equal(t, 3, s.DataCount())
	assert.True(t, s.LabelDirty())

	orphan := s.AddChild(nil, "o", 1, 1)
	assert.True(t, orphan.IsTopLevel())
}

func TestGetDataBounds(t *testing.T) {
	s := New(0, "a", TypeLine)
	s.AddValue("x", 3)
	assert.Nil(t, s.GetData(-1))
	assert.Nil(t, s.GetData(1))

	d := s.GetData(0)
	assert.Equal(t, 3.0, d.GetData(1))
	assert.Equal(t, 0.0, d.GetData(5))
	assert.Equal(t, 0.0, (*Data)(nil).GetData(0))
}

func TestUpdateDataMarksVerticesOnly(t *testing.T) {
	s := New(0, "a", TypeLine)
	s.AddValue("x", 1)
	s.ClearDirty(DirtyLabel, s.DirtyMark(DirtyLabel))
	s.ClearDirty(DirtyVertices, s.DirtyMark(DirtyVertices))

	require.True(t, s.UpdateData(0, 3, 9))
	assert.Equal(t, []float64{0, 1, 0, 9}, s.Data[0].Values)
	assert.True(t, s.VerticesDirty())
	assert.False(t, s.LabelDirty())

	assert.False(t, s.UpdateData(7, 1, 1))
	assert.False(t, s.UpdateData(0, -1, 1))
}

func TestSetNameAndShow(t *testing.T) {
	s := New(0, "a", TypeLine)
	s.SetName("a")
	assert.False(t, s.NameDirty())
	s.SetName("b")
	assert.True(t, s.NameDirty())
	assert.Equal(t, "b", s.LegendKey())
	s.LegendName = "legend"
	assert.Equal(t, "legend", s.LegendKey())

	s.ClearDirty(DirtyVertices, s.DirtyMark(DirtyVertices))
	s.SetShow(true)
	assert.False(t, s.VerticesDirty())
	s.SetShow(false)
	assert.True(t, s.VerticesDirty())
}

func TestDirtyMarkSurvivesConcurrentSet(t *testing.T) {
	s := New(0, "a", TypeLine)
	s.SetLabelDirty()
	mark := s.DirtyMark(DirtyLabel)
	s.SetLabelDirty()
	s.ClearDirty(DirtyLabel, mark)
	assert.True(t, s.LabelDirty())

	s.ClearDirty(DirtyLabel, s.DirtyMark(DirtyLabel))
	assert.False(t, s.LabelDirty())

	s.SetAllDirty()
	assert.True(t, s.LabelDirty())
	assert.True(t, s.TitleDirty())
	assert.True(t, s.NameDirty())
	assert.True(t, s.VerticesDirty())
}

func TestBindLabelUnique(t *testing.T) {
	s := New(0, "a", TypeLine)
	a := s.AddValue("a", 1)
	b := s.AddValue("b", 2)
	pool := widget.NewPool(nil)
	root := widget.NewNode("root")
	w1 := pool.Get("w1", root, nil, style.Black, 0, 0)
	w2 := pool.Get("w2", root, nil, style.Black, 0, 0)

	s.BindLabel(a, w1, 0)
	s.BindLabel(b, w1, 1)
	assert.Nil(t, a.LabelObject, "rebinding a widget unbinds its previous point")
	assert.Equal(t, -1, a.LabelIndex)
	assert.Same(t, w1, b.LabelObject)

	s.BindLabel(b, w2, 1)
	_, ok := s.BoundData(w1)
	assert.False(t, ok)
	got, ok := s.BoundData(w2)
	require.True(t, ok)
	assert.Same(t, b, got)

	s.UnbindLabels()
	assert.Nil(t, b.LabelObject)
	_, ok = s.BoundData(w2)
	assert.False(t, ok)
}

func TestClearData(t *testing.T) {
	s := New(0, "a", TypeLine)
	s.AddValue("a", 1)
	s.ClearData()
	assert.Zero(t, s.DataCount())
	assert.True(t, s.NameDirty())
}
