package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/roll"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/host"
	mockhost "github.com/KirkDiggler/dnd-damage-application/internal/host/mock"
	"github.com/KirkDiggler/dnd-damage-application/internal/repositories/resolutions"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
	"github.com/KirkDiggler/dnd-damage-application/internal/testutils"
	"github.com/KirkDiggler/dnd-damage-application/internal/uuid"
)

// actorMatcher matches an *actor.Actor argument by id
type actorMatcher string

func (m actorMatcher) Matches(x any) bool {
	a, ok := x.(*actor.Actor)
	return ok && a.ID == string(m)
}

func (m actorMatcher) String() string {
	return fmt.Sprintf("actor %s", string(m))
}

type ServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	actors   *mockhost.MockActors
	tokens   *mockhost.MockTokens
	users    *mockhost.MockUsers
	messages *mockhost.MockMessages
	saves    *mockhost.MockSavePrompter
	notifier *mockhost.MockNotifier
	repo     resolutions.Repository
	bus      *events.EventBus
	now      time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.actors = mockhost.NewMockActors(s.ctrl)
	s.tokens = mockhost.NewMockTokens(s.ctrl)
	s.users = mockhost.NewMockUsers(s.ctrl)
	s.messages = mockhost.NewMockMessages(s.ctrl)
	s.saves = mockhost.NewMockSavePrompter(s.ctrl)
	s.notifier = mockhost.NewMockNotifier(s.ctrl)
	s.repo = resolutions.NewInMemoryRepository()
	s.bus = events.NewEventBus()
	s.now = time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) newService(policy application.CantripPolicy) application.Service {
	return application.NewService(&application.ServiceConfig{
		Host: &host.Host{
			Actors:   s.actors,
			Tokens:   s.tokens,
			Users:    s.users,
			Messages: s.messages,
			Saves:    s.saves,
			Notifier: s.notifier,
		},
		Repository:    s.repo,
		EventBus:      s.bus,
		UUIDGenerator: uuid.NewSequenceGenerator("session"),
		CantripPolicy: policy,
		Colors:        true,
		Now:           func() time.Time { return s.now },
	})
}

// resolvedMessage returns a damage message that already carries its resolution
func (s *ServiceTestSuite) resolvedMessage(id string, values damage.Values, mutate func(*message.Resolution)) *message.Message {
	res := &message.Resolution{
		MessageID:  id,
		Values:     values,
		Properties: damage.NewPropertySet(),
		SaveData:   message.SaveData{Ability: "dex", DC: 15},
		HasSave:    true,
		ResolvedAt: s.now,
	}
	if mutate != nil {
		mutate(res)
	}
	msg := &message.Message{
		ID:         id,
		Flags:      message.Flags{RollType: message.RollTypeDamage},
		Resolution: res,
	}
	s.messages.EXPECT().GetMessage(gomock.Any(), id).Return(msg, nil).AnyTimes()
	return msg
}

// selectTargets makes the GM's selection the given actors, in order
func (s *ServiceTestSuite) selectTargets(userID string, actors ...*actor.Actor) {
	tokens := make([]*actor.Token, 0, len(actors))
	for _, a := range actors {
		tokens = append(tokens, &actor.Token{ID: "tok-" + a.ID, ActorID: a.ID})
		s.actors.EXPECT().GetActor(gomock.Any(), a.ID).Return(a.Clone(), nil).AnyTimes()
	}
	s.users.EXPECT().IsGM(gomock.Any(), userID).Return(true, nil).AnyTimes()
	s.tokens.EXPECT().SelectedTokens(gomock.Any(), userID).Return(tokens, nil).AnyTimes()
}

func (s *ServiceTestSuite) TestResolve_ComputesOnceAndAttaches() {
	svc := s.newService("")

	r := &roll.Roll{
		Parts: []roll.Part{{Formula: "1d8 + 3", Type: damage.TypePiercing}},
		Terms: []roll.TaggedTerm{
			{Term: damage.Term{Value: 5, Atomic: true}, Type: damage.TypePiercing},
			{Term: damage.Term{Operator: damage.OperatorPlus}},
			{Term: damage.Term{Value: 3, Atomic: true}, Type: damage.TypePiercing},
		},
		Total:      8,
		Properties: damage.NewPropertySet(damage.PropertyMagical, "fin"),
	}
	msg := &message.Message{
		ID:    "msg-1",
		Rolls: []*roll.Roll{r},
		Flags: message.Flags{
			RollType:    message.RollTypeDamage,
			Targets:     []string{"tok-1"},
			SaveData:    message.SaveData{Ability: "con", DC: 12},
			BonusSaveDC: 14,
			HasSave:     true,
		},
	}

	s.messages.EXPECT().GetMessage(gomock.Any(), "msg-1").Return(msg, nil)
	s.messages.EXPECT().AttachResolution(gomock.Any(), "msg-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, res *message.Resolution) error {
			msg.Resolution = res
			return nil
		})

	resolved := 0
	s.bus.Subscribe(events.AfterResolve, events.NewListener(0, func(e *events.GameEvent) error {
		resolved++
		return nil
	}))

	res, err := svc.Resolve(s.ctx, "msg-1")
	s.Require().NoError(err)
	s.Equal(damage.Values{damage.TypePiercing: 8}, res.Values)
	s.Equal([]string{damage.PropertyMagical}, res.Properties.Slice())
	s.Equal(14, res.SaveData.DC)
	s.Equal(s.now, res.ResolvedAt)
	s.Equal(1, resolved)

	stored, err := s.repo.Get(s.ctx, "msg-1")
	s.Require().NoError(err)
	s.Equal(res.Values, stored.Values)

	// Second call reads the attached record
	s.messages.EXPECT().GetMessage(gomock.Any(), "msg-1").Return(msg, nil)
	again, err := svc.Resolve(s.ctx, "msg-1")
	s.Require().NoError(err)
	s.Same(msg.Resolution, again)
	s.Equal(1, resolved)
}

func (s *ServiceTestSuite) TestResolve_UsesStoredRecord() {
	svc := s.newService("")
	stored := testutils.CreateTestResolution("msg-2", damage.Values{damage.TypeCold: 4})
	s.Require().NoError(s.repo.Create(s.ctx, stored))

	msg := &message.Message{ID: "msg-2", Flags: message.Flags{RollType: message.RollTypeDamage}}
	s.messages.EXPECT().GetMessage(gomock.Any(), "msg-2").Return(msg, nil)
	s.messages.EXPECT().AttachResolution(gomock.Any(), "msg-2", gomock.Any()).Return(nil)

	res, err := svc.Resolve(s.ctx, "msg-2")
	s.Require().NoError(err)
	s.Equal(damage.Values{damage.TypeCold: 4}, res.Values)
}

func (s *ServiceTestSuite) TestHistory_SkipsUnresolvedMessages() {
	svc := s.newService("")
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestResolution("msg-a", damage.Values{damage.TypeFire: 7})))
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestResolution("msg-c", damage.Values{damage.TypeAcid: 2})))

	found, err := svc.History(s.ctx, []string{"msg-c", "msg-b", "msg-a"})
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal("msg-c", found[0].MessageID)
	s.Equal("msg-a", found[1].MessageID)

	none, err := svc.History(s.ctx, nil)
	s.NoError(err)
	s.Empty(none)
}

func (s *ServiceTestSuite) TestResolve_NotDamage() {
	svc := s.newService("")
	msg := &message.Message{ID: "msg-3", Flags: message.Flags{RollType: message.RollTypeAttack}}
	s.messages.EXPECT().GetMessage(gomock.Any(), "msg-3").Return(msg, nil)

	res, err := svc.Resolve(s.ctx, "msg-3")
	s.NoError(err)
	s.Nil(res)
}

func (s *ServiceTestSuite) TestCollectTargets_GM() {
	svc := s.newService("")
	pc := testutils.CreateTestActor("pc", "Pike Trickfoot", 20)
	wolf := testutils.CreateTestWerewolf("wolf")
	lamp := &actor.Actor{ID: "lamp", Name: "Lamp"}

	s.users.EXPECT().IsGM(gomock.Any(), "gm").Return(true, nil)
	s.tokens.EXPECT().SelectedTokens(gomock.Any(), "gm").Return([]*actor.Token{
		{ID: "t-pc", ActorID: "pc"},
		{ID: "t-lamp", ActorID: "lamp"},
	}, nil)
	s.tokens.EXPECT().GetToken(gomock.Any(), "t-wolf").Return(&actor.Token{ID: "t-wolf", ActorID: "wolf"}, nil)
	s.tokens.EXPECT().GetToken(gomock.Any(), "t-pc-2").Return(&actor.Token{ID: "t-pc-2", ActorID: "pc"}, nil)
	s.tokens.EXPECT().GetToken(gomock.Any(), "t-gone").Return(nil, dnderr.NotFoundf("token with ID 't-gone' not found"))
	s.actors.EXPECT().GetActor(gomock.Any(), "pc").Return(pc, nil)
	s.actors.EXPECT().GetActor(gomock.Any(), "lamp").Return(lamp, nil)
	s.actors.EXPECT().GetActor(gomock.Any(), "wolf").Return(wolf, nil)

	targets, err := svc.CollectTargets(s.ctx, "gm", []string{"t-wolf", "t-pc-2", "t-gone"})
	s.Require().NoError(err)
	s.Require().Len(targets, 2)
	s.Equal("pc", targets[0].ID)
	s.Equal("wolf", targets[1].ID)
}

func (s *ServiceTestSuite) TestCollectTargets_PlayerFallsBackToCharacter() {
	svc := s.newService("")
	pc := testutils.CreateTestActor("pc", "Keyleth", 30)

	s.users.EXPECT().IsGM(gomock.Any(), "player").Return(false, nil)
	s.tokens.EXPECT().SelectedTokens(gomock.Any(), "player").Return(nil, nil)
	s.tokens.EXPECT().CharacterTokens(gomock.Any(), "player").Return([]*actor.Token{{ID: "t-pc", ActorID: "pc"}}, nil)
	s.actors.EXPECT().GetActor(gomock.Any(), "pc").Return(pc, nil)

	// Stored targets are ignored for players
	targets, err := svc.CollectTargets(s.ctx, "player", []string{"t-other"})
	s.Require().NoError(err)
	s.Require().Len(targets, 1)
	s.Equal("pc", targets[0].ID)
}

func (s *ServiceTestSuite) TestQuickApply_NoTargets() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeFire: 10}, nil)

	s.users.EXPECT().IsGM(gomock.Any(), "player").Return(false, nil)
	s.tokens.EXPECT().SelectedTokens(gomock.Any(), "player").Return(nil, nil)
	s.tokens.EXPECT().CharacterTokens(gomock.Any(), "player").Return(nil, nil)
	s.notifier.EXPECT().Warn(gomock.Any(), "player", application.NoTargetsWarning)

	batch, err := svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "player", MessageID: "msg-1"})
	s.Error(err)
	s.True(dnderr.IsNoTargets(err))
	s.Nil(batch)
}

func (s *ServiceTestSuite) TestQuickApply_Resistance() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeFire: 11}, nil)

	a := testutils.CreateTestActor("a1", "Scanlan Shorthalt", 40)
	a.Traits.Resistance.Types = damage.NewTypeSet(damage.TypeFire)
	s.selectTargets("gm", a)

	s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a1", 5).Return(nil)

	batch, err := svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Require().Len(batch.Applications, 1)

	app := batch.Applications[0]
	s.Equal(5, app.Amount)
	s.Equal(1.0, app.Multiplier)
	s.Require().Len(app.Damages, 1)
	s.Equal("FF4500", app.Damages[0].Color)
}

func (s *ServiceTestSuite) TestQuickApply_SkipsDownedButUndoReachesThem() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeSlashing: 9}, nil)

	down := testutils.CreateTestActor("down", "Tary", 20)
	down.HP.Value = 0
	s.selectTargets("gm", down)

	batch, err := svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Equal(application.SkipIneligible, batch.Applications[0].Skipped)
	s.Equal(0, batch.AppliedCount())

	s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "down", -9).Return(nil)
	batch, err = svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1", Undo: true})
	s.Require().NoError(err)
	s.Equal(1, batch.AppliedCount())
}

func (s *ServiceTestSuite) TestQuickApplyHalf_UndoRoundTrip() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeThunder: 13}, nil)
	s.selectTargets("gm", testutils.CreateTestActor("a1", "Trinket", 50))

	gomock.InOrder(
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a1", 6).Return(nil),
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a1", -6).Return(nil),
	)

	_, err := svc.QuickApplyHalf(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	_, err = svc.QuickApplyHalf(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1", Undo: true})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestQuickSaveAndApply_SaveHalves() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeSlashing: 13}, nil)

	saver := testutils.CreateTestActor("saver", "Vax", 40)
	failer := testutils.CreateTestActor("failer", "Percy", 40)
	s.selectTargets("gm", saver, failer)

	s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("saver"), "dex", 15).Return(15, true, nil)
	s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("failer"), "dex", 15).Return(14, true, nil)
	s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "saver", 6).Return(nil)
	s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "failer", 13).Return(nil)

	var saveEvents int
	s.bus.Subscribe(events.AfterSavingThrow, events.NewListener(0, func(e *events.GameEvent) error {
		saveEvents++
		return nil
	}))

	batch, err := svc.QuickSaveAndApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Require().Len(batch.Applications, 2)
	s.True(batch.Applications[0].Save.Success)
	s.Equal(0.5, batch.Applications[0].Multiplier)
	s.False(batch.Applications[1].Save.Success)
	s.Equal(2, saveEvents)
}

func (s *ServiceTestSuite) TestQuickSaveAndApply_CancelledSaveSkipsOnlyThatTarget() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeFire: 10}, nil)

	first := testutils.CreateTestActor("first", "Grog", 60)
	second := testutils.CreateTestActor("second", "Kima", 40)
	third := testutils.CreateTestActor("third", "Allura", 40)
	s.selectTargets("gm", first, second, third)

	gomock.InOrder(
		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("first"), "dex", 15).Return(3, true, nil),
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "first", 10).Return(nil),
		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("second"), "dex", 15).Return(0, false, nil),
		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("third"), "dex", 15).Return(4, true, nil),
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "third", 10).Return(nil),
	)

	batch, err := svc.QuickSaveAndApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Require().Len(batch.Applications, 3)
	s.Equal(application.SkipSaveCanceled, batch.Applications[1].Skipped)
	s.Equal(2, batch.AppliedCount())
}

func (s *ServiceTestSuite) TestQuickSaveAndApply_CantripPolicy() {
	cantrip := func(res *message.Resolution) { res.IsCantrip = true }

	s.Run("half", func() {
		s.SetupTest()
		svc := s.newService(application.CantripHalf)
		s.resolvedMessage("msg-1", damage.Values{damage.TypeRadiant: 9}, cantrip)
		s.selectTargets("gm", testutils.CreateTestActor("a1", "Caleb", 30))

		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("a1"), "dex", 15).Return(18, true, nil)
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a1", 4).Return(nil)

		_, err := svc.QuickSaveAndApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
		s.NoError(err)
	})

	s.Run("negate", func() {
		s.SetupTest()
		svc := s.newService(application.CantripNegate)
		s.resolvedMessage("msg-1", damage.Values{damage.TypeRadiant: 9}, cantrip)
		s.selectTargets("gm", testutils.CreateTestActor("a1", "Caleb", 30))

		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("a1"), "dex", 15).Return(18, true, nil)

		batch, err := svc.QuickSaveAndApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
		s.Require().NoError(err)
		s.Equal(application.SkipNegated, batch.Applications[0].Skipped)
	})
}

func (s *ServiceTestSuite) TestQuickSaveAndApply_NoSave() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeFire: 10}, func(res *message.Resolution) {
		res.HasSave = false
	})
	s.selectTargets("gm", testutils.CreateTestActor("a1", "Jester", 30))

	_, err := svc.QuickSaveAndApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.True(dnderr.IsFailedPrecondition(err))
}

func (s *ServiceTestSuite) TestQuickApply_HostFailureStopsBatch() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeAcid: 7}, nil)
	s.selectTargets("gm",
		testutils.CreateTestActor("a1", "Fjord", 30),
		testutils.CreateTestActor("a2", "Beau", 30),
		testutils.CreateTestActor("a3", "Yasha", 30))

	gomock.InOrder(
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a1", 7).Return(nil),
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "a2", 7).Return(errors.New("write failed")),
	)

	batch, err := svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Error(err)
	s.Contains(err.Error(), "write failed")
	s.Require().NotNil(batch)
	s.Len(batch.Applications, 1)
}

func (s *ServiceTestSuite) TestQuickApply_ListenerIntercepts() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeFire: 6, damage.TypeCold: 2}, nil)
	s.selectTargets("gm", testutils.CreateTestActor("a1", "Nott", 20))

	var seen []events.Damage
	s.bus.Subscribe(events.BeforeApplyDamage, events.NewListener(0, func(e *events.GameEvent) error {
		seen = e.Damages
		e.Cancel()
		return nil
	}))
	after := 0
	s.bus.Subscribe(events.AfterApplyDamage, events.NewListener(0, func(e *events.GameEvent) error {
		after++
		return nil
	}))

	batch, err := svc.QuickApply(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.True(batch.Applications[0].Intercepted)
	s.Require().Len(seen, 2)
	s.Equal(damage.TypeFire, seen[0].Type)
	s.Equal(6.0, seen[0].Value)
	s.Equal(1, after)
}

func (s *ServiceTestSuite) TestQuickApplyHealing() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeHealing: 8}, nil)

	down := testutils.CreateTestActor("down", "Vex", 30)
	down.HP.Value = 0
	s.selectTargets("gm", down)

	gomock.InOrder(
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "down", -8).Return(nil),
		s.actors.EXPECT().ApplyHitPointDelta(gomock.Any(), "down", 8).Return(nil),
	)

	batch, err := svc.QuickApplyHealing(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Equal(message.KindHealing, batch.Applications[0].Kind)
	s.Equal(-1.0, batch.Applications[0].Multiplier)

	_, err = svc.QuickApplyHealing(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1", Undo: true})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestQuickApplyTempHP_ReplaceIfGreater() {
	svc := s.newService("")
	s.resolvedMessage("msg-1", damage.Values{damage.TypeTempHP: 6}, nil)

	low := testutils.CreateTestActor("low", "Caduceus", 30)
	low.HP.Temp = 2
	high := testutils.CreateTestActor("high", "Essek", 30)
	high.HP.Temp = 10
	s.selectTargets("gm", low, high)

	s.actors.EXPECT().SetTempHP(gomock.Any(), "low", 6).Return(nil)

	batch, err := svc.QuickApplyTempHP(s.ctx, &application.QuickRequest{UserID: "gm", MessageID: "msg-1"})
	s.Require().NoError(err)
	s.Require().Len(batch.Applications, 2)
	s.True(batch.Applications[0].Applied())
	s.Equal(application.SkipNotGreater, batch.Applications[1].Skipped)
}

func (s *ServiceTestSuite) TestSelectTargets() {
	svc := s.newService("")
	msg := &message.Message{
		ID:    "atk-1",
		Flags: message.Flags{RollType: message.RollTypeAttack},
		AttackTargets: []message.AttackTarget{
			{TokenID: "t1", Hit: true},
			{TokenID: "t2", Hit: false},
		},
	}
	s.messages.EXPECT().GetMessage(gomock.Any(), "atk-1").Return(msg, nil).Times(2)
	s.tokens.EXPECT().Select(gomock.Any(), "gm", []string{"t2"}).Return(nil)

	ids, err := svc.SelectTargets(s.ctx, "gm", "atk-1", false)
	s.Require().NoError(err)
	s.Equal([]string{"t2"}, ids)

	s.tokens.EXPECT().Select(gomock.Any(), "gm", []string{"t1"}).Return(nil)
	ids, err = svc.SelectTargets(s.ctx, "gm", "atk-1", true)
	s.Require().NoError(err)
	s.Equal([]string{"t1"}, ids)
}

func (s *ServiceTestSuite) TestRollAbilitySave() {
	svc := s.newService("")

	s.Run("ineligible actor is not prompted", func() {
		a := testutils.CreateTestActor("a1", "Orthax", 10)
		a.HP.Value = 0
		res, err := svc.RollAbilitySave(s.ctx, a, message.SaveData{Ability: "wis", DC: 12})
		s.NoError(err)
		s.Nil(res)
	})

	s.Run("meets the DC", func() {
		a := testutils.CreateTestActor("a2", "Taryon", 10)
		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("a2"), "wis", 12).Return(12, true, nil)

		res, err := svc.RollAbilitySave(s.ctx, a, message.SaveData{Ability: "wis", DC: 12})
		s.Require().NoError(err)
		s.True(res.Success)
		s.Equal(12, res.Total)
	})

	s.Run("prompt error", func() {
		a := testutils.CreateTestActor("a3", "Reani", 10)
		s.saves.EXPECT().PromptSave(gomock.Any(), actorMatcher("a3"), "wis", 12).Return(0, false, errors.New("socket closed"))

		_, err := svc.RollAbilitySave(s.ctx, a, message.SaveData{Ability: "wis", DC: 12})
		s.Error(err)
	})
}

func TestParseCantripPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    application.CantripPolicy
		wantErr bool
	}{
		{in: "", want: application.CantripHalf},
		{in: "half", want: application.CantripHalf},
		{in: " Negate ", want: application.CantripNegate},
		{in: "double", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := application.ParseCantripPolicy(tt.in)
			if tt.wantErr {
				if !dnderr.IsInvalidArgument(err) {
					t.Fatalf("expected invalid argument, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseCantripPolicy(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}
