package widget

import (
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/text"
)

// DefaultFontSize is applied when a label style leaves FontSize at zero.
const DefaultFontSize = 14

// Pool manages reusable Label widgets keyed by name under a parent node.
// Released labels are kept on a free list, so a rebuild that releases and
// re-acquires the same number of labels allocates nothing.
//
// Usage:
//
//	pool := widget.NewPool(nil)
//	l := pool.Get("label_0_3", root, labelStyle, color, 0, 0)
//	// ...
//	pool.ReleaseAll(root)
type Pool struct {
	measurer text.Measurer
	free     []*Label
	live     map[*Node][]*Label
	created  int
}

// NewPool creates a pool. A nil measurer selects text.NewBasicMeasurer.
func NewPool(m text.Measurer) *Pool {
	if m == nil {
		m = text.NewBasicMeasurer()
	}
	return &Pool{
		measurer: m,
		live:     make(map[*Node][]*Label),
	}
}

// Get returns an active label named name under parent, styled from ls.
// If parent already holds a live label of that name it is returned again.
// A nil parent yields nil.
func (p *Pool) Get(name string, parent *Node, ls *style.LabelStyle, color style.RGBA, iconWidth, iconHeight float64) *Label {
	if parent == nil {
		return nil
	}
	for _, l := range p.live[parent] {
		if l.Name() == name {
			p.apply(l, ls, color, iconWidth, iconHeight)
			return l
		}
	}

	var l *Label
	if n := len(p.free); n > 0 {
		l = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		l.reset()
		l.node.rename(name)
	} else {
		node := NewNode(name)
		l = &Label{node: node, measurer: p.measurer}
		node.element = l
		p.created++
	}

	parent.AddChild(l.node)
	l.node.SetActive(true)
	p.apply(l, ls, color, iconWidth, iconHeight)
	p.live[parent] = append(p.live[parent], l)
	return l
}

func (p *Pool) apply(l *Label, ls *style.LabelStyle, color style.RGBA, iconWidth, iconHeight float64) {
	l.fontSize = DefaultFontSize
	if ls != nil {
		if ls.TextStyle.FontSize > 0 {
			l.fontSize = ls.TextStyle.FontSize
		}
		l.backgroundColor = ls.TextStyle.BackgroundColor
	}
	l.textColor = color
	l.icon.Width = iconWidth
	l.icon.Height = iconHeight
}

// ReleaseAll returns every live label under parent to the free list.
// Released labels are detached and hidden, never destroyed.
func (p *Pool) ReleaseAll(parent *Node) {
	if parent == nil {
		return
	}
	for _, l := range p.live[parent] {
		l.node.SetActive(false)
		parent.RemoveChild(l.node)
		p.free = append(p.free, l)
	}
	delete(p.live, parent)
}

// Warmup pre-allocates count labels onto the free list.
func (p *Pool) Warmup(count int) {
	for i := 0; i < count; i++ {
		node := NewNode("")
		node.active = false
		l := &Label{node: node, measurer: p.measurer}
		node.element = l
		p.created++
		p.free = append(p.free, l)
	}
}

// Live returns the live labels under parent in acquisition order.
func (p *Pool) Live(parent *Node) []*Label { return p.live[parent] }

// Free returns the number of labels waiting on the free list.
func (p *Pool) Free() int { return len(p.free) }

// Created returns how many labels the pool has ever allocated.
func (p *Pool) Created() int { return p.created }
