package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/actions"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
	mockapplication "github.com/KirkDiggler/dnd-damage-application/internal/services/application/mock"
)

type DamageRouterTestSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller
	svc  *mockapplication.MockService
	mux  *actions.Mux
}

func TestDamageRouterSuite(t *testing.T) {
	suite.Run(t, new(DamageRouterTestSuite))
}

func (s *DamageRouterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.svc = mockapplication.NewMockService(s.ctrl)

	mux, err := actions.NewMux(
		actions.NewDamageRouter(s.svc, zap.NewNop()),
		actions.NewSessionRouter(s.svc, zap.NewNop()),
	)
	s.Require().NoError(err)
	s.mux = mux
}

func (s *DamageRouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DamageRouterTestSuite) TestEveryActionRegistered() {
	r := actions.NewDamageRouter(s.svc, nil)
	s.ElementsMatch(actions.DamageActions, r.Actions())

	sr := actions.NewSessionRouter(s.svc, nil)
	s.ElementsMatch(actions.SessionActions, sr.Actions())
}

func (s *DamageRouterTestSuite) TestQuickActions() {
	batch := &application.BatchResult{MessageID: "msg-1"}
	req := func(undo bool) *application.QuickRequest {
		return &application.QuickRequest{UserID: "gm", MessageID: "msg-1", Undo: undo}
	}

	tests := []struct {
		action string
		expect func()
	}{
		{actions.ActionApply, func() { s.svc.EXPECT().QuickApply(gomock.Any(), req(false)).Return(batch, nil) }},
		{actions.ActionUndo, func() { s.svc.EXPECT().QuickApply(gomock.Any(), req(true)).Return(batch, nil) }},
		{actions.ActionApplyHalf, func() { s.svc.EXPECT().QuickApplyHalf(gomock.Any(), req(false)).Return(batch, nil) }},
		{actions.ActionUndoHalf, func() { s.svc.EXPECT().QuickApplyHalf(gomock.Any(), req(true)).Return(batch, nil) }},
		{actions.ActionSaveApply, func() { s.svc.EXPECT().QuickSaveAndApply(gomock.Any(), req(false)).Return(batch, nil) }},
		{actions.ActionHeal, func() { s.svc.EXPECT().QuickApplyHealing(gomock.Any(), req(false)).Return(batch, nil) }},
		{actions.ActionUndoHeal, func() { s.svc.EXPECT().QuickApplyHealing(gomock.Any(), req(true)).Return(batch, nil) }},
		{actions.ActionTempHP, func() { s.svc.EXPECT().QuickApplyTempHP(gomock.Any(), req(false)).Return(batch, nil) }},
		{actions.ActionUndoTempHP, func() { s.svc.EXPECT().QuickApplyTempHP(gomock.Any(), req(true)).Return(batch, nil) }},
	}

	ids := actions.NewCustomIDBuilder(actions.DomainDamage)
	for _, tt := range tests {
		s.Run(tt.action, func() {
			tt.expect()
			result, err := s.mux.Dispatch(s.ctx, "gm", ids.Button(tt.action, "msg-1"), "")
			s.Require().NoError(err)
			s.Same(batch, result.Batch)
		})
	}
}

func (s *DamageRouterTestSuite) TestQuickAction_NoTargets() {
	s.svc.EXPECT().QuickApply(gomock.Any(), gomock.Any()).
		Return(nil, dnderr.NoTargets("no valid tokens to apply damage to"))

	result, err := s.mux.Dispatch(s.ctx, "player", "damage:apply:msg-1", "")
	s.True(dnderr.IsNoTargets(err))
	s.Equal(application.NoTargetsWarning, result.Message)
}

func (s *DamageRouterTestSuite) TestQuickAction_MissingMessage() {
	_, err := s.mux.Dispatch(s.ctx, "gm", "damage:apply", "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *DamageRouterTestSuite) TestSelectTargets() {
	s.svc.EXPECT().SelectTargets(gomock.Any(), "gm", "atk-1", true).Return([]string{"t1", "t3"}, nil)
	s.svc.EXPECT().SelectTargets(gomock.Any(), "gm", "atk-1", false).Return([]string{"t2"}, nil)

	result, err := s.mux.Dispatch(s.ctx, "gm", "damage:select-hit:atk-1", "")
	s.Require().NoError(err)
	s.Equal([]string{"t1", "t3"}, result.Selected)

	result, err = s.mux.Dispatch(s.ctx, "gm", "damage:select-miss:atk-1", "")
	s.Require().NoError(err)
	s.Equal([]string{"t2"}, result.Selected)
}

func (s *DamageRouterTestSuite) TestSessionActions_UnknownSession() {
	s.svc.EXPECT().GetSession("session-9").
		Return(nil, dnderr.NotFoundf("session '%s' not found", "session-9"))

	result, err := s.mux.Dispatch(s.ctx, "gm", "session:apply:session-9:wolf", "")
	s.True(dnderr.IsNotFound(err))
	s.Equal("That is no longer available.", result.Message)
}

func (s *DamageRouterTestSuite) TestCloseSession() {
	s.svc.EXPECT().CloseSession(gomock.Any(), "session-1").Return(nil)

	result, err := s.mux.Dispatch(s.ctx, "gm", "session:close:session-1", "")
	s.Require().NoError(err)
	s.Equal("session-1", result.SessionID)
}
