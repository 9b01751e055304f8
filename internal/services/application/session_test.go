package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	mockdice "github.com/KirkDiggler/dnd-damage-application/internal/dice/mock"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/host/memory"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
	"github.com/KirkDiggler/dnd-damage-application/internal/testutils"
	"github.com/KirkDiggler/dnd-damage-application/internal/uuid"
)

const (
	wolfID    = "wolf"
	fighterID = "fighter"
)

type SessionTestSuite struct {
	suite.Suite
	ctx        context.Context
	saveRoller *mockdice.ManualMockRoller
	host       *memory.Host
	bus        *events.EventBus
	svc        application.Service
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.saveRoller = mockdice.NewManualMockRoller()
	s.host = memory.New(s.saveRoller)
	s.bus = events.NewEventBus()

	s.host.AddActor(testutils.CreateTestWerewolf(wolfID), "tok-wolf")
	s.host.AddActor(testutils.CreateTestActor(fighterID, "Grog Strongjaw", 40), "tok-fighter")
	s.host.AddUser(&memory.User{ID: "gm", Name: "Matt", GM: true})
	s.host.AddUser(&memory.User{ID: "player", Name: "Sam"})
	s.Require().NoError(s.host.Select(s.ctx, "gm", []string{"tok-wolf", "tok-fighter"}))

	s.svc = application.NewService(&application.ServiceConfig{
		Host:          s.host.Bundle(),
		EventBus:      s.bus,
		UUIDGenerator: uuid.NewSequenceGenerator("session"),
	})
}

// postSwordHit posts a magical flame sword hit of 9 slashing and 5 fire,
// targeting the werewolf, with an optional DC 13 dexterity save
func (s *SessionTestSuite) postSwordHit(id string, withSave bool) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6, 5})

	item := &message.Item{
		ID:   "flame-tongue",
		Name: "Flame Tongue",
		Type: "weapon",
		Parts: []roll.Part{
			{Formula: "1d8 + 3", Type: damage.TypeSlashing},
			{Formula: "1d6", Type: damage.TypeFire},
		},
		Properties: []string{damage.PropertyMagical},
	}
	if withSave {
		item.Save = &message.SaveData{Ability: "dex", DC: 13}
	}

	msg, err := message.NewDamageMessage(roller, &message.DamageRequest{
		MessageID: id,
		AuthorID:  "gm",
		Item:      item,
		Targets:   []string{"tok-wolf"},
	})
	s.Require().NoError(err)
	s.host.PostMessage(msg)
}

func (s *SessionTestSuite) open(messageID string) *application.Session {
	sess, err := s.svc.OpenSession(s.ctx, "gm", messageID)
	s.Require().NoError(err)
	return sess
}

func (s *SessionTestSuite) hp(actorID string) int {
	a, err := s.host.GetActor(s.ctx, actorID)
	s.Require().NoError(err)
	return a.HP.Value
}

func (s *SessionTestSuite) TestOpenSession_Snapshot() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	s.Equal("session-1", sess.ID)
	s.Equal([]string{wolfID, fighterID}, sess.ActorIDs())

	view, err := sess.Snapshot(s.ctx)
	s.Require().NoError(err)

	s.Equal(message.KindDamage, view.Kind)
	s.Equal(14, view.Total)
	s.Equal([]application.TypeValue{
		{Type: damage.TypeFire, Label: "Fire", Value: 5},
		{Type: damage.TypeSlashing, Label: "Slashing", Value: 9},
	}, view.Types)
	s.Require().NotNil(view.Save)
	s.Equal("Dexterity", view.Save.Label)
	s.Equal(13, view.Save.DC)

	s.Require().Len(view.Targets, 2)
	wolf := view.Targets[0]
	s.True(wolf.IsTarget)
	s.Equal("Werewolf", wolf.FirstName)
	s.Equal(100, wolf.HealthPercent)
	s.Equal(application.SaveAwaiting, wolf.Save)
	s.Equal("fa-person-falling-burst", wolf.SaveIcon)
	s.False(wolf.NoTraits)

	var immunity application.TraitGroup
	for _, g := range wolf.Traits {
		if g.Kind == damage.Immunity {
			immunity = g
		}
	}
	s.Equal([]application.TraitRow{{
		Type:    damage.TypeSlashing,
		Label:   "Slashing from attacks that aren't Silvered",
		Bypass:  true,
		Enabled: true,
	}}, immunity.Rows)

	fighter := view.Targets[1]
	s.False(fighter.IsTarget)
	s.True(fighter.NoTraits)
	s.Equal("Grog", fighter.FirstName)
}

func (s *SessionTestSuite) TestSnapshot_SilveredAttackHidesBypassedRow() {
	s.postSwordHit("msg-1", false)
	msg, err := s.host.GetMessage(s.ctx, "msg-1")
	s.Require().NoError(err)
	msg.Rolls[0].Properties.Add(damage.PropertySilvered)

	sess := s.open("msg-1")
	view, err := sess.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.True(view.Targets[0].NoTraits)
	s.Nil(view.Save)
}

func (s *SessionTestSuite) TestToggleTrait_OnlyShownRows() {
	s.postSwordHit("msg-1", false)
	msg, err := s.host.GetMessage(s.ctx, "msg-1")
	s.Require().NoError(err)
	msg.Rolls[0].Properties.Add(damage.PropertySilvered)
	sess := s.open("msg-1")

	tests := []struct {
		name string
		kind damage.TraitKind
		typ  damage.Type
	}{
		{name: "row bypassed by silver", kind: damage.Immunity, typ: damage.TypeSlashing},
		{name: "type not in the roll", kind: damage.Immunity, typ: damage.TypePiercing},
		{name: "trait not declared", kind: damage.Resistance, typ: damage.TypeFire},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := sess.ToggleTrait(wolfID, tt.kind, tt.typ)
			s.True(dnderr.IsFailedPrecondition(err))
		})
	}

	app, err := sess.Apply(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(14, app.Delta)
	s.Equal(44, s.hp(wolfID))
}

func (s *SessionTestSuite) TestAwaitingSave_BlocksApplyAndToggle() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	_, err := sess.Apply(s.ctx, wolfID)
	s.True(dnderr.IsFailedPrecondition(err))

	_, err = sess.Undo(s.ctx, wolfID)
	s.True(dnderr.IsFailedPrecondition(err))

	state, err := sess.ToggleSuccess(wolfID)
	s.True(dnderr.IsFailedPrecondition(err))
	s.Equal(application.SaveAwaiting, state)

	s.Equal(58, s.hp(wolfID))
}

func (s *SessionTestSuite) TestRollSave_HalfApplyUndoRoundTrip() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	// 15 + 2 against DC 13
	s.saveRoller.SetNextRoll(15)
	result, err := sess.RollSave(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(17, result.Total)
	s.True(result.Success)

	state, err := sess.SaveState(wolfID)
	s.Require().NoError(err)
	s.Equal(application.SaveSucceeded, state)

	// Slashing is ignored, 5 fire halved to 2
	app, err := sess.Apply(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(5, app.Amount)
	s.Equal(0.5, app.Multiplier)
	s.Equal(2, app.Delta)
	s.Equal(56, s.hp(wolfID))

	app, err = sess.Undo(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(-2, app.Delta)
	s.Equal(58, s.hp(wolfID))
}

func (s *SessionTestSuite) TestToggleSuccess() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	s.saveRoller.SetNextRoll(2)
	result, err := sess.RollSave(s.ctx, fighterID)
	s.Require().NoError(err)
	s.False(result.Success)

	state, err := sess.ToggleSuccess(fighterID)
	s.Require().NoError(err)
	s.Equal(application.SaveSucceeded, state)

	app, err := sess.Apply(s.ctx, fighterID)
	s.Require().NoError(err)
	s.True(app.Save.Success)
	s.Equal(7, app.Delta)
	s.Equal(33, s.hp(fighterID))

	view, err := sess.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal("success", view.Targets[1].SaveCSSClass)
	s.Equal("fa-check", view.Targets[1].SaveIcon)
}

func (s *SessionTestSuite) TestToggleTrait() {
	s.postSwordHit("msg-1", false)
	sess := s.open("msg-1")

	state, err := sess.SaveState(wolfID)
	s.Require().NoError(err)
	s.Equal(application.SaveNotRequired, state)

	enabled, err := sess.ToggleTrait(wolfID, damage.Immunity, damage.TypeSlashing)
	s.Require().NoError(err)
	s.False(enabled)

	view, err := sess.Snapshot(s.ctx)
	s.Require().NoError(err)
	for _, g := range view.Targets[0].Traits {
		if g.Kind == damage.Immunity {
			s.Require().Len(g.Rows, 1)
			s.False(g.Rows[0].Enabled)
		}
	}

	app, err := sess.Apply(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(14, app.Delta)
	s.Equal(44, s.hp(wolfID))

	enabled, err = sess.ToggleTrait(wolfID, damage.Immunity, damage.TypeSlashing)
	s.Require().NoError(err)
	s.True(enabled)

	app, err = sess.Undo(s.ctx, wolfID)
	s.Require().NoError(err)
	s.Equal(-5, app.Delta)
}

func (s *SessionTestSuite) TestSetValue() {
	s.postSwordHit("msg-1", false)
	sess := s.open("msg-1")

	s.True(dnderr.IsInvalidArgument(sess.SetValue(damage.TypeFire, -1)))
	s.True(dnderr.IsInvalidArgument(sess.SetValue("sonic", 3)))

	s.Require().NoError(sess.SetValue(damage.TypeFire, 0))
	s.Require().NoError(sess.SetValue(damage.TypeCold, 2))
	s.Equal(damage.Values{damage.TypeSlashing: 9, damage.TypeCold: 2}, sess.Values())

	app, err := sess.Apply(s.ctx, fighterID)
	s.Require().NoError(err)
	s.Equal(11, app.Delta)
	s.Equal(29, s.hp(fighterID))

	// The stored resolution is untouched
	s.Equal(damage.Values{damage.TypeSlashing: 9, damage.TypeFire: 5}, sess.Resolution().Values)
}

func (s *SessionTestSuite) TestApplyAll_SkipsAwaitingTargets() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	s.saveRoller.SetNextRoll(4)
	_, err := sess.RollSave(s.ctx, fighterID)
	s.Require().NoError(err)

	batch, err := sess.ApplyAll(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(batch.Applications, 2)
	s.Equal(application.SkipAwaitingSave, batch.Applications[0].Skipped)
	s.Equal(14, batch.Applications[1].Delta)
	s.Equal(1, batch.AppliedCount())
	s.Equal(58, s.hp(wolfID))
	s.Equal(26, s.hp(fighterID))

	_, err = sess.ApplyAll(s.ctx, true)
	s.Require().NoError(err)
	s.Equal(40, s.hp(fighterID))
}

func (s *SessionTestSuite) TestRollSaveAll_CancelledPromptLeavesTargetAwaiting() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	s.host.CancelSavesFor(wolfID)
	s.saveRoller.SetNextRoll(20)

	results, err := sess.RollSaveAll(s.ctx)
	s.Require().NoError(err)
	s.Len(results, 1)
	s.True(results[fighterID].Success)

	state, err := sess.SaveState(wolfID)
	s.Require().NoError(err)
	s.Equal(application.SaveAwaiting, state)
}

func (s *SessionTestSuite) TestRollSave_NoSaveOnMessage() {
	s.postSwordHit("msg-1", false)
	sess := s.open("msg-1")

	_, err := sess.RollSave(s.ctx, wolfID)
	s.True(dnderr.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestHealingSession() {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{5})
	msg, err := message.NewDamageMessage(roller, &message.DamageRequest{
		MessageID: "heal-1",
		AuthorID:  "gm",
		Item: &message.Item{
			ID:    "cure-wounds",
			Name:  "Cure Wounds",
			Type:  "spell",
			Level: 1,
			Parts: []roll.Part{{Formula: "1d8", Type: damage.TypeHealing}},
		},
	})
	s.Require().NoError(err)
	s.host.PostMessage(msg)
	s.Require().NoError(s.host.ApplyHitPointDelta(s.ctx, fighterID, 15))

	sess := s.open("heal-1")

	app, err := sess.Apply(s.ctx, fighterID)
	s.Require().NoError(err)
	s.Equal(message.KindHealing, app.Kind)
	s.Equal(30, s.hp(fighterID))

	_, err = sess.Undo(s.ctx, fighterID)
	s.Require().NoError(err)
	s.Equal(25, s.hp(fighterID))
}

func (s *SessionTestSuite) TestCloseSession() {
	s.postSwordHit("msg-1", true)
	sess := s.open("msg-1")

	var closed int
	s.bus.Subscribe(events.OnSessionClose, events.NewListener(0, func(e *events.GameEvent) error {
		closed++
		return nil
	}))

	s.Require().NoError(s.svc.CloseSession(s.ctx, sess.ID))
	s.Equal(1, closed)

	_, err := s.svc.GetSession(sess.ID)
	s.True(dnderr.IsNotFound(err))

	_, err = sess.Apply(s.ctx, wolfID)
	s.True(dnderr.IsFailedPrecondition(err))

	err = s.svc.CloseSession(s.ctx, sess.ID)
	s.True(dnderr.IsNotFound(err))
}

func (s *SessionTestSuite) TestOpenSession_NoTargets() {
	s.postSwordHit("msg-1", false)

	_, err := s.svc.OpenSession(s.ctx, "player", "msg-1")
	s.True(dnderr.IsNoTargets(err))

	notes := s.host.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(application.NoTargetsWarning, notes[0].Text)
	s.Equal("warn", notes[0].Level)
}
