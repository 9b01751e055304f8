package events

import (
	"slices"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

var _ Bus = (*EventBus)(nil)

// EventBus keeps each event type's listeners sorted by priority, lowest
// first, ties in subscription order. A cancelled event stops the chain.
type EventBus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

func NewEventBus() *EventBus {
	return &EventBus{listeners: map[EventType][]EventListener{}}
}

func (eb *EventBus) Subscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	chain := eb.listeners[eventType]
	at := len(chain)
	for at > 0 && chain[at-1].Priority() > listener.Priority() {
		at--
	}
	eb.listeners[eventType] = slices.Insert(chain, at, listener)
}

func (eb *EventBus) Unsubscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	chain := eb.listeners[eventType]
	if i := slices.Index(chain, listener); i >= 0 {
		eb.listeners[eventType] = slices.Delete(slices.Clone(chain), i, i+1)
	}
}

// Emit runs the chain for event.Type. Listeners may subscribe from inside
// a handler; they join the next emit.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return dnderr.InvalidArgument("cannot emit nil event")
	}

	eb.mu.RLock()
	chain := slices.Clone(eb.listeners[event.Type])
	eb.mu.RUnlock()

	for _, listener := range chain {
		if err := listener.HandleEvent(event); err != nil {
			return dnderr.Wrapf(err, "listener failed on %s", event.Type)
		}
		if event.Cancelled {
			return nil
		}
	}
	return nil
}

func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	clear(eb.listeners)
}

func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.listeners[eventType])
}

type funcListener struct {
	priority int
	handle   func(event *GameEvent) error
}

func (l *funcListener) HandleEvent(event *GameEvent) error { return l.handle(event) }
func (l *funcListener) Priority() int                      { return l.priority }

// NewListener adapts a function. Unsubscribe needs the returned value.
func NewListener(priority int, handle func(event *GameEvent) error) EventListener {
	return &funcListener{priority: priority, handle: handle}
}
