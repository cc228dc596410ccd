package style

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#00f", RGB(0, 0, 1)},
		{"#ffffff00", RGBA{1, 1, 1, 0}},
		{"#0000", RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want.R, got.R, 1e-9, tt.in)
		assert.InDelta(t, tt.want.G, got.G, 1e-9, tt.in)
		assert.InDelta(t, tt.want.B, got.B, 1e-9, tt.in)
		assert.InDelta(t, tt.want.A, got.A, 1e-9, tt.in)
	}

	for _, bad := range []string{"", "#12", "#ggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.True(t, errors.Is(err, ErrInvalidColor), bad)
	}
	assert.Equal(t, Black, Hex("nope"))
}

func TestHexStringRoundTrip(t *testing.T) {
	assert.Equal(t, "#c23531", Hex("#c23531").HexString())
	assert.Equal(t, "#ffffff80", Hex("#ffffff80").HexString())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, RGB(1, 0, 0).Color())
}

func TestRGBAText(t *testing.T) {
	type doc struct {
		Color RGBA `json:"color"`
	}
	b, err := json.Marshal(doc{Color: Hex("#2f4554")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#2f4554"}`, string(b))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"color":""}`), &d))
	assert.True(t, d.Color.IsClear())

	assert.Error(t, json.Unmarshal([]byte(`{"color":"#xyz"}`), &d))
}

func TestThemeColorWraps(t *testing.T) {
	th := DefaultTheme()
	n := len(th.Palette)
	require.Positive(t, n)

	assert.Equal(t, Hex("#c23531"), th.Color(0))
	assert.Equal(t, th.Color(1), th.Color(n+1))
	assert.Equal(t, th.Color(n-1), th.Color(-1))

	var empty Theme
	assert.Equal(t, Grey, empty.Color(3))
	assert.Equal(t, Grey, (*Theme)(nil).Color(0))
}

func TestThemeByName(t *testing.T) {
	th, ok := ThemeByName("DARK")
	require.True(t, ok)
	assert.Equal(t, "dark", th.Name)

	th, ok = ThemeByName("")
	require.True(t, ok)
	assert.Equal(t, "default", th.Name)

	_, ok = ThemeByName("neon")
	assert.False(t, ok)

	_, err := ThemeFromHex("bad", "#fff", "zz")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestDirtyFlag(t *testing.T) {
	var f DirtyFlag
	assert.False(t, f.IsDirty())

	f.Set()
	f.Set()
	assert.True(t, f.IsDirty())

	mark := f.Mark()
	f.Set()
	f.ClearTo(mark)
	assert.True(t, f.IsDirty(), "set after mark must survive")

	f.ClearTo(mark - 1)
	assert.True(t, f.IsDirty(), "older marks never roll back")

	f.Clear()
	assert.False(t, f.IsDirty())
}

func TestLabelStyleSettersMarkComponent(t *testing.T) {
	ls := NewLabelStyle()
	assert.False(t, ls.IsShow())
	assert.False(t, (*LabelStyle)(nil).IsShow())

	ls.SetShow(false)
	assert.False(t, ls.ComponentDirty())
	ls.SetShow(true)
	assert.True(t, ls.ComponentDirty())

	ls.ClearComponentDirty(ls.ComponentMark())
	ls.SetPosition(PositionInside)
	assert.True(t, ls.ComponentDirty())

	ls.ClearComponentDirty(ls.ComponentMark())
	ls.SetTextColor(White)
	assert.True(t, ls.ComponentDirty())
}

type fakeText struct{ pos Vec2 }

func (f *fakeText) SetLocalPosition(p Vec2) { f.pos = p }

func TestTitleUpdatePosition(t *testing.T) {
	ts := NewTitleStyle()
	ts.UpdatePosition(Vec2{X: 1})

	ft := &fakeText{}
	ts.RuntimeText = ft
	ts.Offset = Vec2{X: 5, Y: -5}
	ts.UpdatePosition(Vec2{X: 10, Y: 10})
	assert.Equal(t, Vec2{X: 15, Y: 5}, ft.pos)

	var nilStyle *TitleStyle
	assert.NotPanics(t, func() { nilStyle.UpdatePosition(Vec2{}) })
}

func TestPosition(t *testing.T) {
	for _, p := range []Position{PositionOutside, PositionInside, PositionCenter, PositionTop, PositionBottom, PositionLeft, PositionRight} {
		assert.Equal(t, p, ParsePosition(p.String()))
	}
	assert.Equal(t, PositionOutside, ParsePosition("sideways"))
}

func TestGeom(t *testing.T) {
	v := Vec2{X: 1, Y: 2}
	assert.Equal(t, Vec2{X: 2, Y: 4}, v.Add(v))
	assert.Equal(t, Vec2{}, v.Sub(v))
	assert.Equal(t, Vec2{X: -1, Y: -2}, v.Neg())

	r := Rect{X: 0, Y: 0, W: 10, H: 4}
	assert.Equal(t, 4.0, r.Min())
	assert.True(t, r.Contains(Vec2{X: 10, Y: 4}))
	assert.False(t, r.Contains(Vec2{X: 11, Y: 0}))
}
