package widget

import "github.com/gogpu/ggchart/style"

// Text is a single text element, used for serie titles.
type Text struct {
	node          *Node
	text          string
	color         style.RGBA
	fontSize      float64
	size          style.Vec2
	localPosition style.Vec2
	rotation      float64
}

var _ style.TextElement = (*Text)(nil)

// AddText returns the Text attached to the named child of parent, creating
// the child and the element if needed. Style and size are (re)applied.
func AddText(name string, parent *Node, size style.Vec2, ts style.TextStyle, fontSize float64) *Text {
	n, _ := parent.GetOrAddChild(name)
	t, ok := n.element.(*Text)
	if !ok {
		t = &Text{node: n}
		n.element = t
	}
	t.size = size
	t.fontSize = fontSize
	if ts.FontSize > 0 {
		t.fontSize = ts.FontSize
	}
	t.color = ts.Color
	return t
}

// Node returns the node the text is attached to.
func (t *Text) Node() *Node { return t.node }

// Text returns the current string.
func (t *Text) Text() string { return t.text }

// SetText replaces the string.
func (t *Text) SetText(s string) { t.text = s }

// Color returns the text color.
func (t *Text) Color() style.RGBA { return t.color }

// SetColor sets the text color.
func (t *Text) SetColor(c style.RGBA) { t.color = c }

// FontSize returns the font size.
func (t *Text) FontSize() float64 { return t.fontSize }

// Size returns the text box size.
func (t *Text) Size() style.Vec2 { return t.size }

// LocalPosition returns the position relative to the parent node.
func (t *Text) LocalPosition() style.Vec2 { return t.localPosition }

// SetLocalPosition implements style.TextElement.
func (t *Text) SetLocalPosition(p style.Vec2) { t.localPosition = p }

// Rotation returns the local rotation in degrees.
func (t *Text) Rotation() float64 { return t.rotation }

// SetLocalRotation sets the local rotation in degrees.
func (t *Text) SetLocalRotation(deg float64) { t.rotation = deg }

// Active reports whether the text node is shown.
func (t *Text) Active() bool { return t.node.Active() }

// SetActive shows or hides the text node.
func (t *Text) SetActive(active bool) { t.node.SetActive(active) }
