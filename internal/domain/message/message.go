package message

import (
	"time"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
)

// RollType is the kind of roll a chat message carries
type RollType string

const (
	RollTypeDamage RollType = "damage"
	RollTypeAttack RollType = "attack"
)

// Kind is how a resolved message is applied
type Kind string

const (
	KindDamage  Kind = "damage"
	KindHealing Kind = "healing"
	KindTempHP  Kind = "temphp"
)

// SaveData is the saving throw attached to a damage source
type SaveData struct {
	Ability string `json:"ability"`
	DC      int    `json:"dc"`
}

// Flags are captured when the roll is made and stored on the message
type Flags struct {
	RollType    RollType `json:"roll_type"`
	ItemID      string   `json:"item_id,omitempty"`
	Targets     []string `json:"targets,omitempty"` // token ids targeted by the roller
	SaveData    SaveData `json:"save_data"`
	HasSave     bool     `json:"has_save"`
	BonusSaveDC int      `json:"bonus_save_dc,omitempty"`
	IsCantrip   bool     `json:"is_cantrip"`
}

// AttackTarget is one evaluated target of an attack message
type AttackTarget struct {
	TokenID string `json:"token_id"`
	ActorID string `json:"actor_id"`
	Hit     bool   `json:"hit"`
}

// AttackTargetIDs returns the token ids of the attack targets that hit, or
// that missed when hit is false
func (m *Message) AttackTargetIDs(hit bool) []string {
	var ids []string
	for _, t := range m.AttackTargets {
		if t.Hit == hit {
			ids = append(ids, t.TokenID)
		}
	}
	return ids
}

// Message is a chat message carrying rolls
type Message struct {
	ID            string         `json:"id"`
	AuthorID      string         `json:"author_id"`
	Rolls         []*roll.Roll   `json:"rolls"`
	Flags         Flags          `json:"flags"`
	AttackTargets []AttackTarget `json:"attack_targets,omitempty"`

	// Resolution is attached the first time the message is resolved and is
	// the source of truth from then on
	Resolution *Resolution `json:"resolution,omitempty"`
}

// IsDamage reports whether the message carries a damage roll
func (m *Message) IsDamage() bool {
	return m != nil && m.Flags.RollType == RollTypeDamage
}

// IsAttack reports whether the message carries an attack roll
func (m *Message) IsAttack() bool {
	return m != nil && m.Flags.RollType == RollTypeAttack
}

// RollTotal sums the totals of every roll on the message
func (m *Message) RollTotal() int {
	total := 0
	for _, r := range m.Rolls {
		total += r.Total
	}
	return total
}

// Resolution is the persisted outcome of resolving a damage message
type Resolution struct {
	MessageID  string             `json:"message_id"`
	Values     damage.Values      `json:"values"`
	Properties damage.PropertySet `json:"properties"`
	SaveData   SaveData           `json:"save_data"`
	HasSave    bool               `json:"has_save"`
	IsCantrip  bool               `json:"is_cantrip"`
	Targets    []string           `json:"targets"`
	ResolvedAt time.Time          `json:"resolved_at"`
}

// Kind derives how the resolution is applied from the types it holds
func (r *Resolution) Kind() Kind {
	switch {
	case r.Values.Has(damage.TypeTempHP):
		return KindTempHP
	case r.Values.Has(damage.TypeHealing):
		return KindHealing
	default:
		return KindDamage
	}
}

// Total sums all resolved values
func (r *Resolution) Total() int {
	return r.Values.Total()
}

// Resolve builds the resolution for a damage message. Values are aggregated
// across every roll; only physical bypass properties are kept. It returns
// nil for messages that are not damage rolls.
func Resolve(m *Message, resolver *damage.Resolver, vocab *damage.Vocabulary, now time.Time) *Resolution {
	if !m.IsDamage() {
		return nil
	}

	values := damage.Values{}
	properties := damage.NewPropertySet()
	for _, r := range m.Rolls {
		values.Merge(resolver.Resolve(r.FlatTerms(), r.Index(), r.Total))
		for p := range vocab.PhysicalProperties(r.Properties) {
			properties.Add(p)
		}
	}

	save := m.Flags.SaveData
	if m.Flags.BonusSaveDC > save.DC {
		save.DC = m.Flags.BonusSaveDC
	}

	targets := make([]string, len(m.Flags.Targets))
	copy(targets, m.Flags.Targets)

	return &Resolution{
		MessageID:  m.ID,
		Values:     values.Pruned(),
		Properties: properties,
		SaveData:   save,
		HasSave:    m.Flags.HasSave,
		IsCantrip:  m.Flags.IsCantrip,
		Targets:    targets,
		ResolvedAt: now,
	}
}
