package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// damageInput carries what a single damage write needs
type damageInput struct {
	messageID  string
	sessionID  string
	values     damage.Values
	properties damage.PropertySet
	overrides  damage.Overrides
	mode       damage.Mode
}

func skipped(a *actor.Actor, kind message.Kind, reason SkipReason) *Application {
	return &Application{ActorID: a.ID, ActorName: a.Name, Kind: kind, Skipped: reason}
}

// applyDamage adjusts values for the actor's traits and writes the change
func (s *service) applyDamage(ctx context.Context, a *actor.Actor, in *damageInput) (*Application, error) {
	result := s.calculator.Compute(&damage.Input{
		Values:    in.values,
		Traits:    a.Traits,
		Bypasses:  in.properties,
		Overrides: in.overrides,
	}, in.mode)

	app := &Application{
		ActorID:    a.ID,
		ActorName:  a.Name,
		Kind:       message.KindDamage,
		Amount:     result.Amount,
		Multiplier: result.Multiplier,
		Delta:      result.Delta,
	}
	if s.colors {
		app.Damages = events.ColoredDamages(s.vocab, result.Damages())
	}

	err := s.write(ctx, a, app, events.BeforeApplyDamage, events.AfterApplyDamage, in.messageID, in.sessionID, in.mode.Undo,
		func() error {
			return s.host.Actors.ApplyHitPointDelta(ctx, a.ID, app.Delta)
		})
	if err != nil {
		return app, err
	}

	s.logger.Info("applied damage",
		zap.String("message_id", in.messageID),
		zap.String("actor_id", a.ID),
		zap.Int("amount", app.Amount),
		zap.Float64("multiplier", app.Multiplier),
		zap.Int("delta", app.Delta))
	return app, nil
}

// applyHealing restores value hit points, or removes them again on undo
func (s *service) applyHealing(ctx context.Context, a *actor.Actor, value int, messageID, sessionID string, undo bool) (*Application, error) {
	if value < 0 {
		value = 0
	}
	mult := -1.0
	if undo {
		mult = 1
	}

	app := &Application{
		ActorID:    a.ID,
		ActorName:  a.Name,
		Kind:       message.KindHealing,
		Amount:     value,
		Multiplier: mult,
		Delta:      damage.HealingDelta(value, undo),
	}
	if s.colors && value > 0 {
		app.Damages = events.ColoredDamages(s.vocab, []damage.TypedValue{
			{Type: damage.TypeHealing, Value: float64(value) * mult},
		})
	}

	err := s.write(ctx, a, app, events.BeforeApplyDamage, events.AfterApplyDamage, messageID, sessionID, undo,
		func() error {
			return s.host.Actors.ApplyHitPointDelta(ctx, a.ID, app.Delta)
		})
	if err != nil {
		return app, err
	}

	s.logger.Info("applied healing",
		zap.String("message_id", messageID),
		zap.String("actor_id", a.ID),
		zap.Int("delta", app.Delta))
	return app, nil
}

// applyTempHP grants value temporary hit points when it beats the current
// amount. Undo removes up to value again.
func (s *service) applyTempHP(ctx context.Context, a *actor.Actor, value int, messageID, sessionID string, undo bool) (*Application, error) {
	if !a.HasHitPoints() {
		return skipped(a, message.KindTempHP, SkipIneligible), nil
	}
	if value < 0 {
		value = 0
	}

	current := a.HP.Temp
	temp := value
	if undo {
		temp = current - value
		if temp < 0 {
			temp = 0
		}
	} else if value <= current {
		return skipped(a, message.KindTempHP, SkipNotGreater), nil
	}

	app := &Application{
		ActorID:    a.ID,
		ActorName:  a.Name,
		Kind:       message.KindTempHP,
		Amount:     value,
		Multiplier: 1,
		TempHP:     temp,
	}

	err := s.write(ctx, a, app, events.BeforeApplyTempHP, events.AfterApplyTempHP, messageID, sessionID, undo,
		func() error {
			return s.host.Actors.SetTempHP(ctx, a.ID, temp)
		})
	if err != nil {
		return app, err
	}

	s.logger.Info("applied temp hp",
		zap.String("message_id", messageID),
		zap.String("actor_id", a.ID),
		zap.Int("temp", temp))
	return app, nil
}

// write runs the before listeners, the host write unless a listener
// cancelled it, then the after listeners
func (s *service) write(ctx context.Context, a *actor.Actor, app *Application, before, after events.EventType,
	messageID, sessionID string, undo bool, hostWrite func() error) error {
	event := func(t events.EventType) *events.GameEvent {
		e := events.NewGameEvent(t, a).
			WithAmount(app.Amount, app.Multiplier, app.Delta).
			WithDamages(app.Damages).
			WithContext(events.ContextMessageID, messageID).
			WithContext(events.ContextUndo, undo)
		if sessionID != "" {
			e.WithContext(events.ContextSessionID, sessionID)
		}
		return e
	}

	pre := event(before)
	if err := s.emit(pre); err != nil {
		return err
	}

	if pre.IsCancelled() {
		app.Intercepted = true
	} else if err := hostWrite(); err != nil {
		return dnderr.Wrapf(err, "failed to update actor %s", a.ID).
			WithMeta("actor_id", a.ID)
	}

	return s.emit(event(after))
}
