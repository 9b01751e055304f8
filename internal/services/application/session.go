package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// SaveState is where a session target stands with its saving throw
type SaveState int

const (
	SaveNotRequired SaveState = iota
	SaveAwaiting
	SaveSucceeded
	SaveFailed
)

func (s SaveState) String() string {
	switch s {
	case SaveNotRequired:
		return "not_required"
	case SaveAwaiting:
		return "awaiting"
	case SaveSucceeded:
		return "succeeded"
	case SaveFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// HasOutcome reports whether a save has been rolled
func (s SaveState) HasOutcome() bool {
	return s == SaveSucceeded || s == SaveFailed
}

type sessionTarget struct {
	actor      *actor.Actor
	isTarget   bool
	save       SaveState
	saveResult *SaveResult
	overrides  damage.Overrides
}

// Session is one damage application interaction: the targets, their
// save outcomes and trait toggles, and an editable copy of the values.
// Everything is discarded when the session closes.
type Session struct {
	ID        string
	UserID    string
	MessageID string

	svc     *service
	res     *message.Resolution
	values  damage.Values
	order   []string
	targets map[string]*sessionTarget
	closed  bool
	mu      sync.Mutex
}

// OpenSession collects the user's targets for a damage message
func (s *service) OpenSession(ctx context.Context, userID, messageID string) (*Session, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	res, err := s.Resolve(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, dnderr.InvalidArgumentf("message %s is not a damage roll", messageID).
			WithMeta("message_id", messageID)
	}

	actors, err := s.CollectTargets(ctx, userID, res.Targets)
	if err != nil {
		return nil, err
	}
	if len(actors) == 0 {
		s.host.Notifier.Warn(ctx, userID, NoTargetsWarning)
		return nil, dnderr.NoTargets("no valid tokens to apply damage to").
			WithMeta("user_id", userID).
			WithMeta("message_id", messageID)
	}

	targeted, err := s.targetedActors(ctx, res.Targets)
	if err != nil {
		return nil, err
	}

	initial := SaveNotRequired
	if res.HasSave {
		initial = SaveAwaiting
	}

	sess := &Session{
		ID:        s.uuidGenerator.New(),
		UserID:    userID,
		MessageID: messageID,
		svc:       s,
		res:       res,
		values:    res.Values.Clone(),
		targets:   make(map[string]*sessionTarget, len(actors)),
	}
	for _, a := range actors {
		sess.order = append(sess.order, a.ID)
		sess.targets[a.ID] = &sessionTarget{
			actor:     a,
			isTarget:  targeted[a.ID],
			save:      initial,
			overrides: damage.Overrides{},
		}
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("opened session",
		zap.String("session_id", sess.ID),
		zap.String("message_id", messageID),
		zap.Int("targets", len(sess.order)))

	if err := s.emit(events.NewGameEvent(events.OnSessionOpen, nil).
		WithContext(events.ContextSessionID, sess.ID).
		WithContext(events.ContextMessageID, messageID)); err != nil {
		return nil, err
	}
	return sess, nil
}

// targetedActors maps the message's stored token targets to actor ids
func (s *service) targetedActors(ctx context.Context, tokenIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(tokenIDs))
	for _, id := range tokenIDs {
		token, err := s.host.Tokens.GetToken(ctx, id)
		if err != nil {
			if dnderr.IsNotFound(err) {
				continue
			}
			return nil, dnderr.Wrapf(err, "failed to get token %s", id)
		}
		out[token.ActorID] = true
	}
	return out, nil
}

// GetSession returns an open session
func (s *service) GetSession(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, dnderr.NotFoundf("session '%s' not found", sessionID).
			WithMeta("session_id", sessionID)
	}
	return sess, nil
}

// CloseSession discards a session
func (s *service) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !exists {
		return dnderr.NotFoundf("session '%s' not found", sessionID).
			WithMeta("session_id", sessionID)
	}

	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()

	s.logger.Info("closed session", zap.String("session_id", sessionID))
	return s.emit(events.NewGameEvent(events.OnSessionClose, nil).
		WithContext(events.ContextSessionID, sessionID).
		WithContext(events.ContextMessageID, sess.MessageID))
}

func (sess *Session) target(actorID string) (*sessionTarget, error) {
	if sess.closed {
		return nil, dnderr.FailedPreconditionf("session '%s' is closed", sess.ID).
			WithMeta("session_id", sess.ID)
	}
	t, exists := sess.targets[actorID]
	if !exists {
		return nil, dnderr.NotFoundf("actor '%s' is not part of session '%s'", actorID, sess.ID).
			WithMeta("session_id", sess.ID).
			WithMeta("actor_id", actorID)
	}
	return t, nil
}

// refresh reads the actor again so traits and hit points are current
func (sess *Session) refresh(ctx context.Context, t *sessionTarget) error {
	a, err := sess.svc.host.Actors.GetActor(ctx, t.actor.ID)
	if err != nil {
		return dnderr.Wrapf(err, "failed to refresh actor %s", t.actor.ID)
	}
	t.actor = a
	return nil
}

// Resolution returns the resolution the session was opened for
func (sess *Session) Resolution() *message.Resolution {
	return sess.res
}

// ActorIDs returns the session's targets in collection order
func (sess *Session) ActorIDs() []string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return append([]string(nil), sess.order...)
}

// Values returns a copy of the session's current values
func (sess *Session) Values() damage.Values {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.values.Clone()
}

// SaveState returns the save state of a target
func (sess *Session) SaveState(actorID string) (SaveState, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := sess.target(actorID)
	if err != nil {
		return SaveNotRequired, err
	}
	return t.save, nil
}

// SetValue edits one type's value for this session only. Zero removes it.
func (sess *Session) SetValue(typ damage.Type, value int) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return dnderr.FailedPreconditionf("session '%s' is closed", sess.ID)
	}
	if value < 0 {
		return dnderr.InvalidArgumentf("value for %s cannot be negative", typ).
			WithMeta("type", string(typ))
	}
	if typ != damage.TypeUnknown && !sess.svc.vocab.Known(typ) {
		return dnderr.InvalidArgumentf("unknown damage type %q", typ).
			WithMeta("type", string(typ))
	}

	if value == 0 {
		delete(sess.values, typ)
		return nil
	}
	sess.values[typ] = value
	return nil
}

// ToggleTrait flips whether one trait row applies to a target and returns
// the new state. Only rows the snapshot shows can be toggled: the type must
// be in the session's values, declared by the trait and not bypassed.
func (sess *Session) ToggleTrait(actorID string, kind damage.TraitKind, typ damage.Type) (bool, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := sess.target(actorID)
	if err != nil {
		return false, err
	}
	if !sess.hasTraitRow(t, kind, typ) {
		return false, dnderr.FailedPreconditionf("%s has no %s row for %s", t.actor.Name, kind, typ).
			WithMeta("actor_id", actorID).
			WithMeta("type", string(typ))
	}

	enabled := sess.traitEnabled(t, kind, typ)
	t.overrides.Set(kind, typ, !enabled)
	return !enabled, nil
}

func (sess *Session) traitEnabled(t *sessionTarget, kind damage.TraitKind, typ damage.Type) bool {
	return sess.svc.calculator.Applies(kind, &damage.Input{
		Traits:    t.actor.Traits,
		Bypasses:  sess.res.Properties,
		Overrides: t.overrides,
	}, typ)
}

// RollSave prompts one target's save. A cancelled prompt leaves the state
// unchanged and returns nil.
func (sess *Session) RollSave(ctx context.Context, actorID string) (*SaveResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := sess.target(actorID)
	if err != nil {
		return nil, err
	}
	return sess.rollSave(ctx, t)
}

func (sess *Session) rollSave(ctx context.Context, t *sessionTarget) (*SaveResult, error) {
	if !sess.res.HasSave {
		return nil, dnderr.FailedPreconditionf("message %s has no saving throw", sess.MessageID).
			WithMeta("message_id", sess.MessageID)
	}
	if err := sess.refresh(ctx, t); err != nil {
		return nil, err
	}

	result, err := sess.svc.RollAbilitySave(ctx, t.actor, sess.res.SaveData)
	if err != nil || result == nil {
		return nil, err
	}

	t.saveResult = result
	if result.Success {
		t.save = SaveSucceeded
	} else {
		t.save = SaveFailed
	}
	return result, nil
}

// RollSaveAll prompts every damageable target in order. Targets whose
// prompt was cancelled or who cannot take damage are left out.
func (sess *Session) RollSaveAll(ctx context.Context) (map[string]*SaveResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, dnderr.FailedPreconditionf("session '%s' is closed", sess.ID)
	}

	results := make(map[string]*SaveResult, len(sess.order))
	for _, id := range sess.order {
		result, err := sess.rollSave(ctx, sess.targets[id])
		if err != nil {
			return results, err
		}
		if result != nil {
			results[id] = result
		}
	}
	return results, nil
}

// ToggleSuccess flips a rolled save without rolling again
func (sess *Session) ToggleSuccess(actorID string) (SaveState, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := sess.target(actorID)
	if err != nil {
		return SaveNotRequired, err
	}
	if !t.save.HasOutcome() {
		return t.save, dnderr.FailedPreconditionf("actor '%s' has no save outcome to toggle", actorID).
			WithMeta("actor_id", actorID).
			WithMeta("state", t.save.String())
	}

	if t.save == SaveSucceeded {
		t.save = SaveFailed
	} else {
		t.save = SaveSucceeded
	}
	if t.saveResult != nil {
		t.saveResult.Success = t.save == SaveSucceeded
	}
	return t.save, nil
}

// Apply writes the session's values to one target
func (sess *Session) Apply(ctx context.Context, actorID string) (*Application, error) {
	return sess.applyOne(ctx, actorID, false)
}

// Undo reverses what Apply wrote to one target
func (sess *Session) Undo(ctx context.Context, actorID string) (*Application, error) {
	return sess.applyOne(ctx, actorID, true)
}

func (sess *Session) applyOne(ctx context.Context, actorID string, undo bool) (*Application, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := sess.target(actorID)
	if err != nil {
		return nil, err
	}
	if t.save == SaveAwaiting {
		return nil, dnderr.FailedPreconditionf("actor '%s' has not rolled a save", actorID).
			WithMeta("actor_id", actorID)
	}
	return sess.apply(ctx, t, undo)
}

// ApplyAll writes to every target in order, skipping those still waiting
// on a save. A failed write stops the batch; earlier writes stay.
func (sess *Session) ApplyAll(ctx context.Context, undo bool) (*BatchResult, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, dnderr.FailedPreconditionf("session '%s' is closed", sess.ID)
	}

	batch := &BatchResult{MessageID: sess.MessageID}
	for _, id := range sess.order {
		t := sess.targets[id]
		if t.save == SaveAwaiting {
			batch.add(skipped(t.actor, sess.res.Kind(), SkipAwaitingSave))
			continue
		}

		app, err := sess.apply(ctx, t, undo)
		if err != nil {
			return batch, err
		}
		batch.add(app)
	}
	return batch, nil
}

func (sess *Session) apply(ctx context.Context, t *sessionTarget, undo bool) (*Application, error) {
	if err := sess.refresh(ctx, t); err != nil {
		return nil, err
	}
	a := t.actor
	svc := sess.svc

	switch sess.res.Kind() {
	case message.KindTempHP:
		return svc.applyTempHP(ctx, a, sess.values.Total(), sess.MessageID, sess.ID, undo)
	case message.KindHealing:
		return svc.applyHealing(ctx, a, sess.values.Total(), sess.MessageID, sess.ID, undo)
	}

	saved := t.save == SaveSucceeded
	if svc.cantrip.negates(sess.res.IsCantrip, saved) {
		app := skipped(a, message.KindDamage, SkipNegated)
		app.Save = t.saveResult
		return app, nil
	}
	if !undo && !a.CanTakeDamage() {
		return skipped(a, message.KindDamage, SkipIneligible), nil
	}

	app, err := svc.applyDamage(ctx, a, &damageInput{
		messageID:  sess.MessageID,
		sessionID:  sess.ID,
		values:     sess.values,
		properties: sess.res.Properties,
		overrides:  t.overrides,
		mode:       damage.Mode{Half: saved, Undo: undo},
	})
	if app != nil {
		app.Save = t.saveResult
	}
	return app, err
}
