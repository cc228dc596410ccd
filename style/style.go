package style

// Position is where a label sits relative to its data point.
type Position int

const (
	PositionOutside Position = iota
	PositionInside
	PositionCenter
	PositionTop
	PositionBottom
	PositionLeft
	PositionRight
)

var positionNames = [...]string{"outside", "inside", "center", "top", "bottom", "left", "right"}

// String returns the lower-case position name.
func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "unknown"
	}
	return positionNames[p]
}

// ParsePosition maps a name back to a Position. Unknown names yield PositionOutside.
func ParsePosition(s string) Position {
	for i, n := range positionNames {
		if n == s {
			return Position(i)
		}
	}
	return PositionOutside
}

// TextStyle describes text appearance. A clear Color means "use the theme".
type TextStyle struct {
	Color           RGBA
	BackgroundColor RGBA
	FontSize        float64
	Rotate          float64
}

// LabelStyle configures the per-data-point labels of a serie.
type LabelStyle struct {
	Component

	Show             bool
	Position         Position
	Formatter        string
	NumericFormatter string
	Offset           Vec2
	AutoOffset       bool
	BackgroundWidth  float64
	BackgroundHeight float64
	PaddingLeftRight float64
	PaddingTopBottom float64
	TextStyle        TextStyle
}

// NewLabelStyle returns a hidden label style with default padding.
func NewLabelStyle() *LabelStyle {
	return &LabelStyle{
		PaddingLeftRight: 2,
		PaddingTopBottom: 2,
		TextStyle:        TextStyle{FontSize: 14},
	}
}

// IsShow reports whether the style is present and shown.
func (l *LabelStyle) IsShow() bool { return l != nil && l.Show }

// SetShow toggles the label and requests a rebuild when it changes.
func (l *LabelStyle) SetShow(show bool) {
	if l.Show != show {
		l.Show = show
		l.SetComponentDirty()
	}
}

// SetPosition moves the label and requests a rebuild when it changes.
func (l *LabelStyle) SetPosition(p Position) {
	if l.Position != p {
		l.Position = p
		l.SetComponentDirty()
	}
}

// SetTextColor changes the label text color and requests a rebuild.
func (l *LabelStyle) SetTextColor(c RGBA) {
	if l.TextStyle.Color != c {
		l.TextStyle.Color = c
		l.SetComponentDirty()
	}
}

// TextElement is the runtime text a title style positions.
type TextElement interface {
	SetLocalPosition(p Vec2)
}

// TitleStyle configures the single title label of a serie.
type TitleStyle struct {
	Component

	Show      bool
	Offset    Vec2
	TextStyle TextStyle

	// RuntimeText is the element created for this style by the last title
	// rebuild. Nil until then.
	RuntimeText TextElement
}

// NewTitleStyle returns a hidden title style.
func NewTitleStyle() *TitleStyle {
	return &TitleStyle{TextStyle: TextStyle{FontSize: 10}}
}

// SetShow toggles the title and requests a rebuild when it changes.
func (t *TitleStyle) SetShow(show bool) {
	if t.Show != show {
		t.Show = show
		t.SetComponentDirty()
	}
}

// UpdatePosition anchors the runtime text at center plus the configured offset.
func (t *TitleStyle) UpdatePosition(center Vec2) {
	if t == nil || t.RuntimeText == nil {
		return
	}
	t.RuntimeText.SetLocalPosition(center.Add(t.Offset))
}

// IconStyle configures the optional icon drawn next to a label.
type IconStyle struct {
	Show   bool
	Width  float64
	Height float64
	Sprite string
	Color  RGBA
	Offset Vec2
}

// IsShow reports whether the style is present and shown.
func (s *IconStyle) IsShow() bool { return s != nil && s.Show }

// AreaStyle configures the fill under a line serie.
type AreaStyle struct {
	Show    bool
	Color   RGBA
	Opacity float64
}

// IsShow reports whether the style is present and shown.
func (s *AreaStyle) IsShow() bool { return s != nil && s.Show }

// ItemStyle holds per-item tooltip overrides.
type ItemStyle struct {
	Color            RGBA
	ItemMarker       string
	ItemFormatter    string
	NumericFormatter string
}
