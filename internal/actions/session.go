package actions

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
)

// DomainSession is the domain of the applicator window controls
const DomainSession = "session"

// Session actions. The target is the session id; actor actions carry the
// actor id as their first argument.
const (
	ActionSnapshot      = "snapshot"
	ActionRollSave      = "roll-save"
	ActionRollSaveAll   = "roll-save-all"
	ActionToggleSuccess = "toggle-success"
	ActionToggleTrait   = "toggle-trait" // args: actor, trait kind, type
	ActionSetValue      = "set-value"    // args: type; value in the request
	ActionApplyTarget   = "apply"
	ActionUndoTarget    = "undo"
	ActionApplyAll      = "apply-all"
	ActionUndoAll       = "undo-all"
	ActionClose         = "close"
)

// SessionActions lists every applicator window action
var SessionActions = []string{
	ActionSnapshot,
	ActionRollSave, ActionRollSaveAll, ActionToggleSuccess,
	ActionToggleTrait, ActionSetValue,
	ActionApplyTarget, ActionUndoTarget,
	ActionApplyAll, ActionUndoAll,
	ActionClose,
}

type sessionHandler func(req *Request, sess *application.Session) (*Result, error)

// NewSessionRouter routes applicator window controls to an open session
func NewSessionRouter(svc application.Service, logger *zap.Logger) *Router {
	if svc == nil {
		panic("service is required")
	}

	r := NewRouter(DomainSession).
		Require(SessionActions...).
		Use(RecoveryMiddleware(logger), LoggingMiddleware(logger))

	withSession := func(fn sessionHandler) func(*Request) (*Result, error) {
		return func(req *Request) (*Result, error) {
			sess, err := svc.GetSession(req.CustomID.Target)
			if err != nil {
				return &Result{Message: UserMessage(err)}, err
			}
			result, err := fn(req, sess)
			if err != nil {
				if result == nil {
					result = &Result{}
				}
				result.SessionID = sess.ID
				result.Message = UserMessage(err)
				return result, err
			}
			result.SessionID = sess.ID
			return result, nil
		}
	}

	r.HandleFunc(ActionSnapshot, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		view, err := sess.Snapshot(req.Context)
		return &Result{View: view}, err
	}))

	r.HandleFunc(ActionRollSave, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		actorID, err := actorArg(req)
		if err != nil {
			return nil, err
		}
		save, err := sess.RollSave(req.Context, actorID)
		return &Result{Save: save}, err
	}))

	r.HandleFunc(ActionRollSaveAll, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		saves, err := sess.RollSaveAll(req.Context)
		return &Result{Saves: saves}, err
	}))

	r.HandleFunc(ActionToggleSuccess, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		actorID, err := actorArg(req)
		if err != nil {
			return nil, err
		}
		state, err := sess.ToggleSuccess(actorID)
		return &Result{SaveState: state.String()}, err
	}))

	r.HandleFunc(ActionToggleTrait, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		actorID, err := actorArg(req)
		if err != nil {
			return nil, err
		}
		kind := damage.TraitKind(req.CustomID.Arg(1))
		typ := damage.Type(req.CustomID.Arg(2))
		if !validTraitKind(kind) || typ == "" {
			return nil, dnderr.InvalidArgumentf("toggle-trait needs a trait kind and a type, got %q %q", kind, typ)
		}
		enabled, err := sess.ToggleTrait(actorID, kind, typ)
		if err != nil {
			return nil, err
		}
		return &Result{Enabled: &enabled}, nil
	}))

	r.HandleFunc(ActionSetValue, withSession(func(req *Request, sess *application.Session) (*Result, error) {
		typ := damage.Type(req.CustomID.Arg(0))
		value, err := strconv.Atoi(req.Value)
		if err != nil {
			return nil, dnderr.InvalidArgumentf("value %q is not a number", req.Value)
		}
		if err := sess.SetValue(typ, value); err != nil {
			return nil, err
		}
		view, err := sess.Snapshot(req.Context)
		return &Result{View: view}, err
	}))

	applyOne := func(undo bool) sessionHandler {
		return func(req *Request, sess *application.Session) (*Result, error) {
			actorID, err := actorArg(req)
			if err != nil {
				return nil, err
			}
			apply := sess.Apply
			if undo {
				apply = sess.Undo
			}
			app, err := apply(req.Context, actorID)
			return &Result{Application: app}, err
		}
	}
	r.HandleFunc(ActionApplyTarget, withSession(applyOne(false)))
	r.HandleFunc(ActionUndoTarget, withSession(applyOne(true)))

	applyAll := func(undo bool) sessionHandler {
		return func(req *Request, sess *application.Session) (*Result, error) {
			batch, err := sess.ApplyAll(req.Context, undo)
			return &Result{Batch: batch}, err
		}
	}
	r.HandleFunc(ActionApplyAll, withSession(applyAll(false)))
	r.HandleFunc(ActionUndoAll, withSession(applyAll(true)))

	r.HandleFunc(ActionClose, func(req *Request) (*Result, error) {
		if err := svc.CloseSession(req.Context, req.CustomID.Target); err != nil {
			return &Result{Message: UserMessage(err)}, err
		}
		return &Result{SessionID: req.CustomID.Target}, nil
	})

	return r
}

func actorArg(req *Request) (string, error) {
	actorID := req.CustomID.Arg(0)
	if actorID == "" {
		return "", dnderr.InvalidArgumentf("%s needs an actor ID", req.CustomID.Action)
	}
	return actorID, nil
}

func validTraitKind(kind damage.TraitKind) bool {
	for _, k := range damage.TraitKinds {
		if k == kind {
			return true
		}
	}
	return false
}
