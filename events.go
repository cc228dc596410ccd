package ggchart

import "github.com/gogpu/ggchart/series"

// EventKind identifies what happened to a serie.
type EventKind int

const (
	// EventSerieRenamed fires when a serie's name changed. Legends and other
	// components that list serie names should mark themselves stale.
	EventSerieRenamed EventKind = iota
	// EventLabelsRebuilt fires after a structural label rebuild.
	EventLabelsRebuilt
	// EventTitleRebuilt fires after a title rebuild.
	EventTitleRebuilt
)

func (k EventKind) String() string {
	switch k {
	case EventSerieRenamed:
		return "serie-renamed"
	case EventLabelsRebuilt:
		return "labels-rebuilt"
	case EventTitleRebuilt:
		return "title-rebuilt"
	}
	return "unknown"
}

// Event is published on a Hub.
type Event struct {
	Kind  EventKind
	Serie *series.Serie
}

type subscription struct {
	id int
	fn func(Event)
}

// Hub is the chart-owned subscription list handlers publish events to.
// Handlers never reach into chart components directly.
type Hub struct {
	subs   map[EventKind][]subscription
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[EventKind][]subscription)}
}

// Subscribe registers fn for events of kind and returns a function that
// removes the subscription.
func (h *Hub) Subscribe(kind EventKind, fn func(Event)) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.subs[kind] = append(h.subs[kind], subscription{id: id, fn: fn})
	return func() {
		subs := h.subs[kind]
		for i, s := range subs {
			if s.id == id {
				h.subs[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every subscriber of e.Kind in subscription order.
func (h *Hub) Publish(e Event) {
	for _, s := range h.subs[e.Kind] {
		s.fn(e)
	}
}

// Len returns the number of subscribers for kind.
func (h *Hub) Len(kind EventKind) int { return len(h.subs[kind]) }
