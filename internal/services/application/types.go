package application

import (
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
)

// SkipReason explains why a target was not written to
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipIneligible   SkipReason = "ineligible"    // no hit points, or none left
	SkipSaveCanceled SkipReason = "save_canceled" // save prompt dismissed
	SkipNegated      SkipReason = "negated"       // cantrip saved under the negate policy
	SkipNotGreater   SkipReason = "not_greater"   // temp hp lower than what the actor has
	SkipAwaitingSave SkipReason = "awaiting_save" // session target has not rolled yet
)

// QuickRequest identifies a quick action on a chat message
type QuickRequest struct {
	UserID    string
	MessageID string
	Undo      bool // shift-click
}

// SaveResult is the outcome of one saving throw
type SaveResult struct {
	Ability string `json:"ability"`
	DC      int    `json:"dc"`
	Total   int    `json:"total"`
	Success bool   `json:"success"`
}

// Application is what happened to one target
type Application struct {
	ActorID     string          `json:"actor_id"`
	ActorName   string          `json:"actor_name"`
	Kind        message.Kind    `json:"kind"`
	Amount      int             `json:"amount"`
	Multiplier  float64         `json:"multiplier"`
	Delta       int             `json:"delta"`
	TempHP      int             `json:"temp_hp,omitempty"`
	Damages     []events.Damage `json:"damages,omitempty"`
	Save        *SaveResult     `json:"save,omitempty"`
	Skipped     SkipReason      `json:"skipped,omitempty"`
	Intercepted bool            `json:"intercepted,omitempty"` // a listener wrote instead of the host
}

// Applied reports whether the target was written to
func (a *Application) Applied() bool {
	return a != nil && a.Skipped == SkipNone
}

// BatchResult collects the applications of a batch in target order
type BatchResult struct {
	MessageID    string         `json:"message_id"`
	Applications []*Application `json:"applications"`
}

// AppliedCount returns how many targets were written to
func (b *BatchResult) AppliedCount() int {
	n := 0
	for _, a := range b.Applications {
		if a.Applied() {
			n++
		}
	}
	return n
}

func (b *BatchResult) add(app *Application) {
	b.Applications = append(b.Applications, app)
}

// TypeValue is an editable damage row
type TypeValue struct {
	Type  damage.Type `json:"type"`
	Label string      `json:"label"`
	Value int         `json:"value"`
}
