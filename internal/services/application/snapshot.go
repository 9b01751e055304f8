package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

var abilityLabels = map[string]string{
	"str": "Strength",
	"dex": "Dexterity",
	"con": "Constitution",
	"int": "Intelligence",
	"wis": "Wisdom",
	"cha": "Charisma",
}

// AbilityLabel returns the display name of an ability key
func AbilityLabel(ability string) string {
	if label, ok := abilityLabels[strings.ToLower(ability)]; ok {
		return label
	}
	return strings.ToUpper(ability)
}

// View is everything a UI needs to draw a session
type View struct {
	SessionID string        `json:"session_id"`
	MessageID string        `json:"message_id"`
	Kind      message.Kind  `json:"kind"`
	Targets   []*TargetView `json:"targets"`
	Types     []TypeValue   `json:"types"`
	Total     int           `json:"total"`
	IsCantrip bool          `json:"is_cantrip"`
	HasSave   bool          `json:"has_save"`
	Save      *SaveView     `json:"save,omitempty"`
}

// SaveView describes the message's saving throw
type SaveView struct {
	Ability string `json:"ability"`
	Label   string `json:"label"`
	DC      int    `json:"dc"`
}

// TargetView is one target row
type TargetView struct {
	ActorID       string          `json:"actor_id"`
	Name          string          `json:"name"`
	FirstName     string          `json:"first_name"`
	Img           string          `json:"img,omitempty"`
	HP            actor.HitPoints `json:"hp"`
	HealthPercent int             `json:"health_percent"`
	IsTarget      bool            `json:"is_target"`
	Save          SaveState       `json:"save"`
	SaveResult    *SaveResult     `json:"save_result,omitempty"`
	SaveCSSClass  string          `json:"save_css_class"`
	SaveIcon      string          `json:"save_icon"`
	Traits        []TraitGroup    `json:"traits"`
	NoTraits      bool            `json:"no_traits"`
}

// TraitGroup lists the relevant rows of one trait kind
type TraitGroup struct {
	Kind damage.TraitKind `json:"kind"`
	Rows []TraitRow       `json:"rows"`
}

// TraitRow is a trait that matters for the session's damage types
type TraitRow struct {
	Type    damage.Type `json:"type"`
	Label   string      `json:"label"`
	Bypass  bool        `json:"bypass"` // only applies to attacks without the bypass properties
	Enabled bool        `json:"enabled"`
}

// Snapshot reads every target again and returns the session's view
func (sess *Session) Snapshot(ctx context.Context) (*View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, dnderr.FailedPreconditionf("session '%s' is closed", sess.ID)
	}

	vocab := sess.svc.vocab
	view := &View{
		SessionID: sess.ID,
		MessageID: sess.MessageID,
		Kind:      sess.res.Kind(),
		Total:     sess.values.Total(),
		IsCantrip: sess.res.IsCantrip,
		HasSave:   sess.res.HasSave,
	}

	for _, typ := range sess.values.Types() {
		row := TypeValue{Type: typ, Label: vocab.Label(typ), Value: sess.values[typ]}
		if !vocab.Known(typ) {
			row.Type = damage.TypeUnknown
		}
		view.Types = append(view.Types, row)
	}

	if sess.res.HasSave {
		view.Save = &SaveView{
			Ability: sess.res.SaveData.Ability,
			Label:   AbilityLabel(sess.res.SaveData.Ability),
			DC:      sess.res.SaveData.DC,
		}
	}

	for _, id := range sess.order {
		t := sess.targets[id]
		if err := sess.refresh(ctx, t); err != nil {
			return nil, err
		}
		view.Targets = append(view.Targets, sess.targetView(t))
	}
	return view, nil
}

func (sess *Session) targetView(t *sessionTarget) *TargetView {
	a := t.actor
	tv := &TargetView{
		ActorID:    a.ID,
		Name:       a.Name,
		FirstName:  a.FirstName(),
		Img:        a.Img,
		IsTarget:   t.isTarget,
		Save:       t.save,
		SaveResult: t.saveResult,
		NoTraits:   true,
	}
	if a.HP != nil {
		tv.HP = *a.HP
		tv.HealthPercent = a.HP.HealthPercent()
	}

	switch t.save {
	case SaveSucceeded:
		tv.SaveCSSClass, tv.SaveIcon = "success", "fa-check"
	case SaveFailed:
		tv.SaveCSSClass, tv.SaveIcon = "failure", "fa-times"
	default:
		tv.SaveIcon = "fa-person-falling-burst"
	}

	for _, kind := range damage.TraitKinds {
		group := TraitGroup{Kind: kind, Rows: sess.traitRows(t, kind)}
		if len(group.Rows) > 0 {
			tv.NoTraits = false
		}
		tv.Traits = append(tv.Traits, group)
	}
	return tv
}

func (sess *Session) hasTraitRow(t *sessionTarget, kind damage.TraitKind, typ damage.Type) bool {
	trait := t.actor.Traits.Get(kind)
	if !trait.Types.Has(typ) || !sess.svc.vocab.Known(typ) || !sess.values.Has(typ) {
		return false
	}
	return !sess.svc.calculator.Bypassed(trait, typ, sess.res.Properties)
}

// traitRows lists the declared types of a trait that the session's values
// contain and that the attack does not bypass outright
func (sess *Session) traitRows(t *sessionTarget, kind damage.TraitKind) []TraitRow {
	vocab := sess.svc.vocab
	trait := t.actor.Traits.Get(kind)
	bypasses := vocab.PhysicalProperties(trait.Bypasses)

	var rows []TraitRow
	for _, typ := range trait.Types.Slice() {
		if !sess.hasTraitRow(t, kind, typ) {
			continue
		}

		physical := vocab.IsPhysical(typ)
		row := TraitRow{
			Type:    typ,
			Label:   vocab.Label(typ),
			Bypass:  physical && len(bypasses) > 0,
			Enabled: sess.traitEnabled(t, kind, typ),
		}
		if row.Bypass {
			row.Label = fmt.Sprintf("%s from attacks that aren't %s",
				row.Label, strings.Join(vocab.PropertyLabels(bypasses), ", "))
		}
		rows = append(rows, row)
	}
	return rows
}
