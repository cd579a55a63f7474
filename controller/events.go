package controller

import "github.com/go-gl/mathgl/mgl64"

// EventKind identifies a discrete controller event.
type EventKind int

const (
	EventJump EventKind = iota
	EventGrounded
	EventWallGrab
	EventDash
	EventDashRecharged
	EventStep
	EventLedgeNudge
)

var eventNames = [...]string{
	EventJump:          "jump",
	EventGrounded:      "grounded",
	EventWallGrab:      "wallGrab",
	EventDash:          "dash",
	EventDashRecharged: "dashRecharged",
	EventStep:          "step",
	EventLedgeNudge:    "ledgeNudge",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// EventKinds lists every event kind in declaration order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(eventNames))
	for i := range kinds {
		kinds[i] = EventKind(i)
	}
	return kinds
}

// Event is emitted synchronously from Tick. Direction is only set for
// EventLedgeNudge and points towards the ledge that was detected.
type Event struct {
	Kind      EventKind
	Direction mgl64.Vec2
}

// Listener receives controller events.
type Listener func(Event)

// ListenerID identifies a registered listener for Off.
type ListenerID uint64

type listenerEntry struct {
	id   ListenerID
	kind EventKind
	fn   Listener
}

// On registers fn for events of the given kind.
func (c *Controller) On(kind EventKind, fn Listener) ListenerID {
	c.nextListener++
	c.listeners = append(c.listeners, listenerEntry{id: c.nextListener, kind: kind, fn: fn})
	return c.nextListener
}

// Off removes a listener. It reports whether the listener was registered.
func (c *Controller) Off(id ListenerID) bool {
	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Controller) emit(e Event) {
	if len(c.listeners) == 0 {
		return
	}
	// Listeners may register or remove listeners while being called.
	snapshot := append([]listenerEntry(nil), c.listeners...)
	for _, l := range snapshot {
		if l.kind == e.Kind {
			l.fn(e)
		}
	}
}
