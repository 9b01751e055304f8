package testutils

import (
	"time"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
)

// CreateTestActor creates an actor with full hit points and no traits
func CreateTestActor(id, name string, hp int) *actor.Actor {
	return &actor.Actor{
		ID:   id,
		Name: name,
		HP:   &actor.HitPoints{Value: hp, Max: hp},
		Traits: damage.Traits{
			Resistance:    damage.Trait{Types: damage.NewTypeSet(), Bypasses: damage.NewPropertySet()},
			Immunity:      damage.Trait{Types: damage.NewTypeSet(), Bypasses: damage.NewPropertySet()},
			Vulnerability: damage.Trait{Types: damage.NewTypeSet(), Bypasses: damage.NewPropertySet()},
		},
		SaveBonuses: map[string]int{},
	}
}

// CreateTestWerewolf creates an actor immune to non-silvered physical damage
func CreateTestWerewolf(id string) *actor.Actor {
	a := CreateTestActor(id, "Werewolf", 58)
	a.Traits.Immunity = damage.Trait{
		Types:    damage.NewTypeSet(damage.TypeBludgeoning, damage.TypePiercing, damage.TypeSlashing),
		Bypasses: damage.NewPropertySet(damage.PropertySilvered),
	}
	a.SaveBonuses["dex"] = 2
	a.SaveBonuses["con"] = 3
	return a
}

// CreateTestResolution creates a resolution for a dexterity save spell
func CreateTestResolution(messageID string, values damage.Values) *message.Resolution {
	return &message.Resolution{
		MessageID:  messageID,
		Values:     values,
		Properties: damage.NewPropertySet(damage.PropertyMagical),
		SaveData:   message.SaveData{Ability: "dex", DC: 14},
		HasSave:    true,
		Targets:    []string{},
		ResolvedAt: time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC),
	}
}
