package combobox

import (
	"fmt"
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. A nil logger silences output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Event is a lifecycle notification emitted by a combo box.
type Event struct {
	Kind   EventKind
	Source *ComboBox
	// Frame is the overlay rectangle at the time of the event.
	Frame Rect
}

// Observer receives lifecycle notifications.
type Observer interface {
	HandleComboBoxEvent(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// HandleComboBoxEvent implements Observer.
func (f ObserverFunc) HandleComboBoxEvent(ev Event) {
	f(ev)
}

// Subscription identifies a registered observer.
type Subscription uint64

type subscriber struct {
	id       Subscription
	observer Observer
	active   bool
}

// Bus delivers events to observers synchronously, in registration order.
// A panicking observer is logged and skipped; the others still receive the
// event.
type Bus struct {
	subs   []*subscriber
	nextID Subscription
}

// Subscribe registers o and returns a handle for Unsubscribe.
func (b *Bus) Subscribe(o Observer) Subscription {
	b.nextID++
	b.subs = append(b.subs, &subscriber{id: b.nextID, observer: o, active: true})
	return b.nextID
}

// Unsubscribe removes the observer. Unknown handles are ignored. It is safe
// to call from inside an observer.
func (b *Bus) Unsubscribe(id Subscription) {
	for i, s := range b.subs {
		if s.id == id {
			s.active = false
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Publish delivers ev to every observer registered at the time of the call.
// It returns the number of observers that panicked.
func (b *Bus) Publish(ev Event) int {
	snapshot := make([]*subscriber, len(b.subs))
	copy(snapshot, b.subs)

	failed := 0
	for _, s := range snapshot {
		if !s.active {
			continue
		}
		if err := deliver(s.observer, ev); err != nil {
			failed++
			logger.Warn("observer failed", "event", ev.Kind.String(), "subscription", uint64(s.id), "err", err)
		}
	}
	return failed
}

func deliver(o Observer, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	o.HandleComboBoxEvent(ev)
	return nil
}
