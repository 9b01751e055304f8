package message

import (
	"fmt"

	"github.com/KirkDiggler/dnd-damage-application/internal/dice"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
)

// Item is the source of a damage roll: a weapon, a spell, a feature
type Item struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"` // "weapon", "spell", ...
	Level      int         `json:"level"`
	Parts      []roll.Part `json:"parts"`
	Save       *SaveData   `json:"save,omitempty"`
	Properties []string    `json:"properties,omitempty"`
}

// IsCantrip reports whether the item is a level 0 spell
func (i *Item) IsCantrip() bool {
	return i.Type == "spell" && i.Level == 0
}

// HasSave reports whether the item calls for a saving throw
func (i *Item) HasSave() bool {
	return i.Save != nil && i.Save.Ability != ""
}

// DamageRequest describes a damage roll about to be posted
type DamageRequest struct {
	MessageID   string
	AuthorID    string
	Item        *Item
	Targets     []string // the author's current targets
	BonusSaveDC int
	ExtraParts  []roll.Part // bonus dice added on top of the item's parts
}

// NewDamageMessage rolls the item's parts and records the author's targets
// and the item's save data on the message flags
func NewDamageMessage(roller dice.Roller, req *DamageRequest) (*Message, error) {
	if req == nil || req.Item == nil {
		return nil, fmt.Errorf("damage request needs an item")
	}

	parts := make([]roll.Part, 0, len(req.Item.Parts)+len(req.ExtraParts))
	parts = append(parts, req.Item.Parts...)
	parts = append(parts, req.ExtraParts...)

	r, err := roll.Build(roller, parts, req.Item.Properties...)
	if err != nil {
		return nil, fmt.Errorf("failed to roll damage for %s: %w", req.Item.Name, err)
	}

	flags := Flags{
		RollType:    RollTypeDamage,
		ItemID:      req.Item.ID,
		Targets:     append([]string(nil), req.Targets...),
		HasSave:     req.Item.HasSave(),
		BonusSaveDC: req.BonusSaveDC,
		IsCantrip:   req.Item.IsCantrip(),
	}
	if req.Item.Save != nil {
		flags.SaveData = *req.Item.Save
	}

	return &Message{
		ID:       req.MessageID,
		AuthorID: req.AuthorID,
		Rolls:    []*roll.Roll{r},
		Flags:    flags,
	}, nil
}
