package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/series"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

func lineSerie(index int, name string, values ...float64) *series.Serie {
	s := series.New(index, name, series.TypeLine)
	s.Label.Show = true
	for i, v := range values {
		s.AddValue(string(rune('a'+i)), v)
	}
	return s
}

func pieSerie(index int, names []string, values ...float64) *series.Serie {
	s := series.New(index, "pie", series.TypePie)
	s.Label.Show = true
	s.UseDataNameForColor = true
	for i, v := range values {
		s.AddValue(names[i], v)
	}
	return s
}

func assertVec(t *testing.T, want, got style.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func texts(s *series.Serie) []string {
	var out []string
	for _, d := range s.Data {
		if d.LabelObject != nil && d.LabelObject.Active() {
			out = append(out, d.LabelObject.Text())
		}
	}
	return out
}

func TestChartLineEndToEnd(t *testing.T) {
	painter := &LayoutPainter{}
	c := New(WithBounds(style.Rect{W: 300, H: 300}), WithPainter(painter))
	s := lineSerie(0, "sales", 10, 20, 30)
	h := c.AddSerie(s)
	require.IsType(t, &ggchart.LineHandler{}, h)

	c.Update()
	c.Update()
	assert.Equal(t, []string{"10", "20", "30"}, texts(s))
	assert.Equal(t, 1, painter.Repaints())
	assertVec(t, style.Vec2{X: 50, Y: 200}, s.Data[0].LabelObject.Position())
	assertVec(t, style.Vec2{X: 250, Y: 0}, s.Data[2].LabelObject.Position())

	s.UpdateData(1, 1, 25)
	c.Update()
	c.Update()
	assert.Equal(t, []string{"10", "25", "30"}, texts(s))
	assert.Equal(t, 2, painter.Repaints())
	assert.Equal(t, 3, c.LabelPool().(*widget.Pool).Created())
	assert.Equal(t, 4, c.Frame())
}

func TestChartLegendFollowsRename(t *testing.T) {
	c := New()
	s := lineSerie(0, "sales", 1, 2)
	c.AddSerie(s)
	c.AddSerie(lineSerie(1, "costs", 3, 4))
	c.Update()

	entries := c.Legend().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "sales", entries[0].Name)
	assert.Equal(t, c.Theme().Color(1), entries[1].Color)
	assert.Equal(t, 1, c.LegendColorIndex("costs"))

	s.SetName("revenue")
	c.Update()
	assert.Equal(t, "revenue", c.Legend().Entries()[0].Name)
	assert.Equal(t, 1, c.Refreshes())
	assert.False(t, c.Legend().Dirty())

	c.Legend().Close()
	s.SetName("again")
	c.Update()
	assert.Equal(t, "revenue", c.Legend().Entries()[0].Name, "closed legend ignores renames")
}

func TestChartPieLegendToggle(t *testing.T) {
	c := New()
	s := pieSerie(0, []string{"x", "y", "z"}, 1, 2, 3)
	h := c.AddSerie(s)
	require.IsType(t, &ggchart.PieHandler{}, h)
	c.Update()
	c.Update()

	assert.Equal(t, []string{"1", "2", "3"}, texts(s))
	assert.Equal(t, 1, c.LegendColorIndex("y"))
	assert.Equal(t, c.Theme().Color(2), c.LegendColor("z"))

	require.True(t, c.ToggleLegend("y", false))
	c.Update()
	c.Update()
	assert.Equal(t, []string{"1", "3"}, texts(s))
	assert.False(t, c.Legend().Entries()[1].Shown)
	assert.Equal(t, 2, c.LegendColorIndex("z"), "hidden entries keep their slot")
	assert.Equal(t, 1, c.LegendColorIndex("y"))

	assert.False(t, c.ToggleLegend("missing", false))
}

func TestChartLineLegendToggle(t *testing.T) {
	c := New()
	s := lineSerie(0, "sales", 1, 2)
	c.AddSerie(s)
	c.Update()
	c.Update()
	require.Len(t, texts(s), 2)

	require.True(t, c.ToggleLegend("sales", false))
	c.Update()
	assert.False(t, s.Show)
	assert.Empty(t, texts(s))
}

func TestChartTooltip(t *testing.T) {
	c := New()
	c.AddSerie(lineSerie(0, "a", 1, 2, 3))
	c.AddSerie(lineSerie(1, "b", 10, 20, 30))
	hidden := lineSerie(2, "c", 7, 7, 7)
	hidden.Show = false
	c.AddSerie(hidden)
	c.Update()

	snaps := c.Tooltip(ggchart.ParamQuery{DataIndex: 1})
	require.Len(t, snaps, 2)
	assert.Equal(t, 2.0, snaps[0].Value)
	assert.Equal(t, 20.0, snaps[1].Value)
	assert.Equal(t, "b", snaps[1].SerieName)

	assert.Empty(t, c.Tooltip(ggchart.ParamQuery{DataIndex: -1}))

	c.Hover(1, 2)
	snaps = c.Tooltip(ggchart.ParamQuery{DataIndex: -1})
	require.Len(t, snaps, 1)
	assert.Equal(t, 30.0, snaps[0].Value)

	c.Hover(1, -1)
	assert.Empty(t, c.Tooltip(ggchart.ParamQuery{DataIndex: -1}))
}

func TestChartResizeRelayouts(t *testing.T) {
	painter := &LayoutPainter{}
	c := New(WithBounds(style.Rect{W: 100, H: 100}), WithPainter(painter))
	s := lineSerie(0, "a", 5, 10)
	c.AddSerie(s)
	c.Update()
	c.Update()
	assertVec(t, style.Vec2{X: 25, Y: 50}, s.Data[0].LabelObject.Position())

	c.Resize(style.Rect{W: 200, H: 200})
	c.Update()
	c.Update()
	assert.Equal(t, 2, painter.Repaints())
	assertVec(t, style.Vec2{X: 50, Y: 100}, s.Data[0].LabelObject.Position())
	assert.Equal(t, style.Rect{W: 200, H: 200}, c.Root().Bounds())
}

func TestChartCheck(t *testing.T) {
	c := New()
	assert.Empty(t, c.Check())

	s := lineSerie(0, "big", 1, 2, 3)
	s.PerformanceMode = true
	s.PerformanceThreshold = 2
	c.AddSerie(s)
	assert.Contains(t, c.Check(), "big")
}

func TestChartOptionsIgnoreNil(t *testing.T) {
	c := New(WithTheme(nil), WithPool(nil), WithPainter(nil))
	assert.NotNil(t, c.Theme())
	assert.NotNil(t, c.LabelPool())
	assert.NotNil(t, c.Hub())
	assert.Equal(t, 0, c.LegendColorIndex("nobody"))

	dark := style.DarkTheme()
	c = New(WithTheme(dark))
	assert.Same(t, dark, c.Theme())
}

func TestLayoutPainterPie(t *testing.T) {
	s := pieSerie(0, []string{"a", "b"}, 1, 1)
	p := &LayoutPainter{}
	p.Repaint(s, style.Rect{W: 200, H: 200})

	// The first slice spans the right half, starting at twelve o'clock.
	a := s.Data[0].Context.Position
	b := s.Data[1].Context.Position
	assert.InDelta(t, 100+56, a.X, 1e-9)
	assert.InDelta(t, 100, a.Y, 1e-9)
	assert.InDelta(t, 100-56, b.X, 1e-9)
	assert.InDelta(t, 100, b.Y, 1e-9)
}
