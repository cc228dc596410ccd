package container

import (
	"slices"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/style"
)

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Name  string
	Color style.RGBA
	Shown bool
}

// Legend lists serie names (or slice names for item series) in palette
// order. It marks itself stale when a serie is renamed and is refreshed by
// Chart.Update.
type Legend struct {
	chart   *Chart
	entries []LegendEntry
	hidden  map[string]bool
	dirty   style.DirtyFlag
	unsub   func()
}

func newLegend(c *Chart) *Legend {
	l := &Legend{chart: c, hidden: make(map[string]bool)}
	l.unsub = c.hub.Subscribe(ggchart.EventSerieRenamed, func(ggchart.Event) {
		l.dirty.Set()
	})
	return l
}

// Close stops listening to chart events.
func (l *Legend) Close() {
	if l.unsub != nil {
		l.unsub()
		l.unsub = nil
	}
}

// SetAllDirty forces a refresh on the next frame.
func (l *Legend) SetAllDirty() { l.dirty.Set() }

// Dirty reports whether the entries are stale.
func (l *Legend) Dirty() bool { return l.dirty.IsDirty() }

// Refresh recomputes the entries from the attached series.
func (l *Legend) Refresh() {
	mark := l.dirty.Mark()
	l.entries = l.entries[:0]
	for _, s := range l.chart.series {
		if s.Type.ItemColored() {
			for _, d := range s.TopLevel() {
				l.add(d.Name)
			}
			continue
		}
		l.add(s.LegendKey())
	}
	for i := range l.entries {
		l.entries[i].Color = l.chart.theme.Color(i)
	}
	l.dirty.ClearTo(mark)
	ggchart.Logger().Debug("legend refreshed", "entries", len(l.entries))
}

func (l *Legend) add(name string) {
	if name == "" {
		return
	}
	if slices.ContainsFunc(l.entries, func(e LegendEntry) bool { return e.Name == name }) {
		return
	}
	l.entries = append(l.entries, LegendEntry{Name: name, Shown: !l.hidden[name]})
}

// Entries returns a copy of the current entries.
func (l *Legend) Entries() []LegendEntry {
	return slices.Clone(l.entries)
}

// IndexOf returns the palette index of the entry named name, or -1.
func (l *Legend) IndexOf(name string) int {
	return slices.IndexFunc(l.entries, func(e LegendEntry) bool { return e.Name == name })
}

// SetShown records the visibility of an entry.
func (l *Legend) SetShown(name string, shown bool) {
	if shown {
		delete(l.hidden, name)
	} else {
		l.hidden[name] = true
	}
	if i := l.IndexOf(name); i >= 0 {
		l.entries[i].Shown = shown
	}
}
