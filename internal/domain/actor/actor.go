package actor

import (
	"math"
	"strings"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
)

// HitPoints is the hit point block of a character
type HitPoints struct {
	Value   int `json:"value"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
	TempMax int `json:"tempmax"`
}

// Effective returns current plus temporary hit points
func (hp HitPoints) Effective() int {
	return hp.Value + hp.Temp
}

// EffectiveMax returns maximum plus temporary maximum
func (hp HitPoints) EffectiveMax() int {
	return hp.Max + hp.TempMax
}

// HealthPercent returns the rounded health percentage clamped to 0..100
func (hp HitPoints) HealthPercent() int {
	max := hp.EffectiveMax()
	if max <= 0 {
		return 0
	}
	pct := int(math.Round(float64(hp.Effective()) / float64(max) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ApplyDelta removes delta hit points, temporary hit points first. A
// negative delta restores hit points up to the effective maximum and never
// touches temporary hit points.
func (hp *HitPoints) ApplyDelta(delta int) {
	if delta >= 0 {
		fromTemp := delta
		if fromTemp > hp.Temp {
			fromTemp = hp.Temp
		}
		hp.Temp -= fromTemp
		hp.Value -= delta - fromTemp
		if hp.Value < 0 {
			hp.Value = 0
		}
		return
	}

	hp.Value -= delta
	if max := hp.EffectiveMax(); hp.Value > max {
		hp.Value = max
	}
}

// GrantTemp replaces temporary hit points when amount is greater
func (hp *HitPoints) GrantTemp(amount int) bool {
	if amount <= hp.Temp {
		return false
	}
	hp.Temp = amount
	return true
}

// Actor is the live view of a character the engine reads and the host writes
type Actor struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Img     string        `json:"img,omitempty"`
	OwnerID string        `json:"owner_id,omitempty"`
	HP      *HitPoints    `json:"hp,omitempty"`
	Traits  damage.Traits `json:"traits"`

	// SaveBonuses maps an ability key ("dex", "con", ...) to the saving
	// throw modifier
	SaveBonuses map[string]int `json:"save_bonuses,omitempty"`
}

// SaveBonus returns the saving throw modifier for an ability
func (a *Actor) SaveBonus(ability string) int {
	return a.SaveBonuses[strings.ToLower(ability)]
}

// FirstName returns the first word of the actor's name
func (a *Actor) FirstName() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return a.Name
	}
	return fields[0]
}

// HasHitPoints reports whether the actor has a hit point attribute at all
func (a *Actor) HasHitPoints() bool {
	return a != nil && a.HP != nil
}

// CanTakeDamage reports whether the actor has hit points and is above zero
func (a *Actor) CanTakeDamage() bool {
	return a.HasHitPoints() && a.HP.Effective() > 0
}

// Clone returns a deep enough copy to mutate hit points and traits freely
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	c := *a
	if a.HP != nil {
		hp := *a.HP
		c.HP = &hp
	}
	if a.SaveBonuses != nil {
		c.SaveBonuses = make(map[string]int, len(a.SaveBonuses))
		for k, v := range a.SaveBonuses {
			c.SaveBonuses[k] = v
		}
	}
	c.Traits = damage.Traits{
		Resistance:    cloneTrait(a.Traits.Resistance),
		Immunity:      cloneTrait(a.Traits.Immunity),
		Vulnerability: cloneTrait(a.Traits.Vulnerability),
	}
	return &c
}

func cloneTrait(t damage.Trait) damage.Trait {
	return damage.Trait{
		Types:    damage.NewTypeSet(t.Types.Slice()...),
		Bypasses: damage.NewPropertySet(t.Bypasses.Slice()...),
		Custom:   t.Custom,
	}
}

// Token is a placed instance of an actor on the scene
type Token struct {
	ID      string `json:"id"`
	ActorID string `json:"actor_id"`
}
