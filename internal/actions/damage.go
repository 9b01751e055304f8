package actions

import (
	"context"

	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
)

// DomainDamage is the domain of the chat card buttons
const DomainDamage = "damage"

// Chat card actions. The target is the message id.
const (
	ActionApply       = "apply"
	ActionUndo        = "undo"
	ActionApplyHalf   = "apply-half"
	ActionUndoHalf    = "undo-half"
	ActionSaveApply   = "save-apply"
	ActionHeal        = "heal"
	ActionUndoHeal    = "undo-heal"
	ActionTempHP      = "temphp"
	ActionUndoTempHP  = "undo-temphp"
	ActionSelectHit   = "select-hit"
	ActionSelectMiss  = "select-miss"
	ActionOpenSession = "open"
)

// DamageActions lists every chat card action
var DamageActions = []string{
	ActionApply, ActionUndo,
	ActionApplyHalf, ActionUndoHalf,
	ActionSaveApply,
	ActionHeal, ActionUndoHeal,
	ActionTempHP, ActionUndoTempHP,
	ActionSelectHit, ActionSelectMiss,
	ActionOpenSession,
}

type quickAction struct {
	run  func(context.Context, *application.QuickRequest) (*application.BatchResult, error)
	undo bool
}

// NewDamageRouter routes chat card buttons to the service's quick actions
func NewDamageRouter(svc application.Service, logger *zap.Logger) *Router {
	if svc == nil {
		panic("service is required")
	}

	r := NewRouter(DomainDamage).
		Require(DamageActions...).
		Use(RecoveryMiddleware(logger), LoggingMiddleware(logger))

	quick := map[string]quickAction{
		ActionApply:      {run: svc.QuickApply},
		ActionUndo:       {run: svc.QuickApply, undo: true},
		ActionApplyHalf:  {run: svc.QuickApplyHalf},
		ActionUndoHalf:   {run: svc.QuickApplyHalf, undo: true},
		ActionSaveApply:  {run: svc.QuickSaveAndApply},
		ActionHeal:       {run: svc.QuickApplyHealing},
		ActionUndoHeal:   {run: svc.QuickApplyHealing, undo: true},
		ActionTempHP:     {run: svc.QuickApplyTempHP},
		ActionUndoTempHP: {run: svc.QuickApplyTempHP, undo: true},
	}
	for action, q := range quick {
		q := q
		r.HandleFunc(action, func(req *Request) (*Result, error) {
			if req.CustomID.Target == "" {
				return nil, dnderr.InvalidArgument("message ID is required")
			}
			batch, err := q.run(req.Context, &application.QuickRequest{
				UserID:    req.UserID,
				MessageID: req.CustomID.Target,
				Undo:      q.undo,
			})
			if err != nil {
				return &Result{Batch: batch, Message: UserMessage(err)}, err
			}
			return &Result{Batch: batch}, nil
		})
	}

	selectTargets := func(hit bool) func(*Request) (*Result, error) {
		return func(req *Request) (*Result, error) {
			ids, err := svc.SelectTargets(req.Context, req.UserID, req.CustomID.Target, hit)
			if err != nil {
				return &Result{Message: UserMessage(err)}, err
			}
			return &Result{Selected: ids}, nil
		}
	}
	r.HandleFunc(ActionSelectHit, selectTargets(true))
	r.HandleFunc(ActionSelectMiss, selectTargets(false))

	r.HandleFunc(ActionOpenSession, func(req *Request) (*Result, error) {
		sess, err := svc.OpenSession(req.Context, req.UserID, req.CustomID.Target)
		if err != nil {
			return &Result{Message: UserMessage(err)}, err
		}
		view, err := sess.Snapshot(req.Context)
		if err != nil {
			return &Result{SessionID: sess.ID, Message: UserMessage(err)}, err
		}
		return &Result{SessionID: sess.ID, View: view}, nil
	})

	return r
}
