package style

// DirtyFlag is a sticky "needs rebuild" marker that survives a rebuild racing
// with a new mutation.
//
// Setters bump a generation counter. A consumer takes Mark before rebuilding
// and calls ClearTo(mark) afterwards: if nothing was set in between the flag
// becomes clean, otherwise it stays dirty for the next tick.
//
// The zero value is clean.
type DirtyFlag struct {
	gen     uint64
	cleared uint64
}

// Set marks the flag dirty. Multiple sets before the next clear coalesce.
func (f *DirtyFlag) Set() { f.gen++ }

// IsDirty reports whether a set happened after the last clear.
func (f *DirtyFlag) IsDirty() bool { return f.gen != f.cleared }

// Mark returns the current generation.
func (f *DirtyFlag) Mark() uint64 { return f.gen }

// ClearTo marks everything up to mark as handled.
func (f *DirtyFlag) ClearTo(mark uint64) {
	if mark > f.cleared {
		f.cleared = mark
	}
}

// Clear drops every pending set.
func (f *DirtyFlag) Clear() { f.cleared = f.gen }

// Component carries the "component dirty" indicator shared by styles that own
// runtime visuals (labels, titles).
type Component struct {
	dirty DirtyFlag
}

// SetComponentDirty requests a rebuild of the visuals driven by this style.
func (c *Component) SetComponentDirty() { c.dirty.Set() }

// ComponentDirty reports whether a rebuild was requested.
func (c *Component) ComponentDirty() bool { return c.dirty.IsDirty() }

// ComponentMark returns the generation to pass to ClearComponentDirty.
func (c *Component) ComponentMark() uint64 { return c.dirty.Mark() }

// ClearComponentDirty clears requests up to mark.
func (c *Component) ClearComponentDirty(mark uint64) { c.dirty.ClearTo(mark) }
