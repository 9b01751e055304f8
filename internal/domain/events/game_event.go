package events

import (
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
)

// Damage is one typed value of an application, with the color the host
// uses when it scrolls the number over the token
type Damage struct {
	Type  damage.Type
	Value float64
	Color string
}

// GameEvent is an event emitted while resolving and applying damage
type GameEvent struct {
	Type       EventType
	Actor      *actor.Actor
	Amount     int     // total before the multiplier
	Multiplier float64 // 1, 0.5, -1 ...; negative is healing or undo
	Delta      int     // signed hit point change requested from the host
	Damages    []Damage
	Context    map[string]any
	Cancelled  bool
}

func NewGameEvent(eventType EventType, target *actor.Actor) *GameEvent {
	return &GameEvent{Type: eventType, Actor: target, Context: map[string]any{}}
}

// WithAmount sets the pre-multiplier amount and the delta sent to the host
func (e *GameEvent) WithAmount(amount int, multiplier float64, delta int) *GameEvent {
	e.Amount, e.Multiplier, e.Delta = amount, multiplier, delta
	return e
}

func (e *GameEvent) WithDamages(damages []Damage) *GameEvent {
	e.Damages = damages
	return e
}

// WithContext sets one of the Context* keys
func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops later listeners and, for BeforeApplyDamage, the host write
func (e *GameEvent) Cancel() { e.Cancelled = true }

func (e *GameEvent) IsCancelled() bool { return e.Cancelled }

// ContextValue reads a context key as T. The bool is false when the key is
// missing or holds another type.
func ContextValue[T any](e *GameEvent, key string) (T, bool) {
	v, ok := e.Context[key].(T)
	return v, ok
}

// ColoredDamages pairs each typed value with its vocabulary color
func ColoredDamages(vocab *damage.Vocabulary, values []damage.TypedValue) []Damage {
	out := make([]Damage, 0, len(values))
	for _, v := range values {
		out = append(out, Damage{Type: v.Type, Value: v.Value, Color: vocab.Color(v.Type)})
	}
	return out
}
