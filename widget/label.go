package widget

import (
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/text"
)

// Icon is the icon sub-element of a Label.
type Icon struct {
	Active bool
	Width  float64
	Height float64
	Sprite string
	Color  style.RGBA
	Offset style.Vec2
}

// Label is a pooled label widget: a text box with an optional icon, bound to
// at most one data point at a time. Labels are obtained from a Pool and never
// constructed directly.
type Label struct {
	node     *Node
	measurer text.Measurer

	text            string
	textColor       style.RGBA
	backgroundColor style.RGBA
	fontSize        float64
	position        style.Vec2

	autoSize         bool
	paddingLeftRight float64
	paddingTopBottom float64
	width, height    float64

	icon Icon
}

// Name returns the pool name the label was acquired under.
func (l *Label) Name() string { return l.node.Name() }

// Node returns the node the label is attached to.
func (l *Label) Node() *Node { return l.node }

// SetLabel configures the text box. With autoSize the box follows the text
// extent plus padding on every SetText.
func (l *Label) SetLabel(autoSize bool, paddingLeftRight, paddingTopBottom float64) {
	l.autoSize = autoSize
	l.paddingLeftRight = paddingLeftRight
	l.paddingTopBottom = paddingTopBottom
	l.fit()
}

// AutoSize reports whether the box follows the text extent.
func (l *Label) AutoSize() bool { return l.autoSize }

// SetSize fixes the box size. Ignored while AutoSize is on.
func (l *Label) SetSize(w, h float64) {
	if l.autoSize {
		return
	}
	l.width, l.height = w, h
}

// Size returns the current box size.
func (l *Label) Size() (w, h float64) { return l.width, l.height }

// Text returns the displayed string.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed string and refits the box.
func (l *Label) SetText(s string) {
	l.text = s
	l.fit()
}

// TextColor returns the text color.
func (l *Label) TextColor() style.RGBA { return l.textColor }

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c style.RGBA) { l.textColor = c }

// BackgroundColor returns the box fill color.
func (l *Label) BackgroundColor() style.RGBA { return l.backgroundColor }

// SetBackgroundColor sets the box fill color.
func (l *Label) SetBackgroundColor(c style.RGBA) { l.backgroundColor = c }

// FontSize returns the font size.
func (l *Label) FontSize() float64 { return l.fontSize }

// SetFontSize sets the font size and refits the box.
func (l *Label) SetFontSize(size float64) {
	l.fontSize = size
	l.fit()
}

// Position returns the label anchor in chart space.
func (l *Label) Position() style.Vec2 { return l.position }

// SetPosition moves the label anchor.
func (l *Label) SetPosition(p style.Vec2) { l.position = p }

// Active reports whether the label is shown.
func (l *Label) Active() bool { return l.node.Active() }

// SetActive shows or hides the label.
func (l *Label) SetActive(active bool) { l.node.SetActive(active) }

// Icon returns a copy of the icon state.
func (l *Label) Icon() Icon { return l.icon }

// SetIconActive shows or hides the icon.
func (l *Label) SetIconActive(active bool) { l.icon.Active = active }

// UpdateIcon copies the icon style onto the icon sub-element. A nil style
// hides the icon.
func (l *Label) UpdateIcon(s *style.IconStyle) {
	if s == nil {
		l.icon.Active = false
		return
	}
	l.icon = Icon{
		Active: s.Show,
		Width:  s.Width,
		Height: s.Height,
		Sprite: s.Sprite,
		Color:  s.Color,
		Offset: s.Offset,
	}
}

func (l *Label) fit() {
	if !l.autoSize || l.measurer == nil {
		return
	}
	w, h := l.measurer.Measure(l.text, l.fontSize)
	l.width = w + 2*l.paddingLeftRight
	l.height = h + 2*l.paddingTopBottom
}

func (l *Label) reset() {
	m, n := l.measurer, l.node
	*l = Label{node: n, measurer: m}
}
