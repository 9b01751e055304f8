package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// prepare resolves the message and collects the user's targets. With no
// targets the user is warned and nothing is written.
func (s *service) prepare(ctx context.Context, req *QuickRequest) (*message.Resolution, []*actor.Actor, error) {
	if req == nil {
		return nil, nil, dnderr.InvalidArgument("request cannot be nil")
	}
	if req.UserID == "" {
		return nil, nil, dnderr.InvalidArgument("user ID is required")
	}

	res, err := s.Resolve(ctx, req.MessageID)
	if err != nil {
		return nil, nil, err
	}
	if res == nil {
		return nil, nil, dnderr.InvalidArgumentf("message %s is not a damage roll", req.MessageID).
			WithMeta("message_id", req.MessageID)
	}

	targets, err := s.CollectTargets(ctx, req.UserID, res.Targets)
	if err != nil {
		return nil, nil, err
	}
	if len(targets) == 0 {
		s.host.Notifier.Warn(ctx, req.UserID, NoTargetsWarning)
		s.logger.Info("no valid targets",
			zap.String("user_id", req.UserID),
			zap.String("message_id", req.MessageID))
		return nil, nil, dnderr.NoTargets("no valid tokens to apply damage to").
			WithMeta("user_id", req.UserID).
			WithMeta("message_id", req.MessageID)
	}

	return res, targets, nil
}

// QuickApply applies full damage, or undoes it
func (s *service) QuickApply(ctx context.Context, req *QuickRequest) (*BatchResult, error) {
	return s.quickDamage(ctx, req, false)
}

// QuickApplyHalf applies half damage, or undoes it
func (s *service) QuickApplyHalf(ctx context.Context, req *QuickRequest) (*BatchResult, error) {
	return s.quickDamage(ctx, req, true)
}

func (s *service) quickDamage(ctx context.Context, req *QuickRequest, half bool) (*BatchResult, error) {
	res, targets, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{MessageID: res.MessageID}
	for _, a := range targets {
		// Undo must still reach actors that the damage dropped to zero
		if !req.Undo && !a.CanTakeDamage() {
			batch.add(skipped(a, message.KindDamage, SkipIneligible))
			continue
		}

		app, err := s.applyDamage(ctx, a, &damageInput{
			messageID:  res.MessageID,
			values:     res.Values,
			properties: res.Properties,
			mode:       damage.Mode{Half: half, Undo: req.Undo},
		})
		if err != nil {
			return batch, err
		}
		batch.add(app)
	}
	return batch, nil
}

// QuickSaveAndApply prompts each target's save in order, then applies the
// damage, halved on a success. Cancelled prompts skip the target.
func (s *service) QuickSaveAndApply(ctx context.Context, req *QuickRequest) (*BatchResult, error) {
	res, targets, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if !res.HasSave {
		return nil, dnderr.FailedPreconditionf("message %s has no saving throw", res.MessageID).
			WithMeta("message_id", res.MessageID)
	}

	batch := &BatchResult{MessageID: res.MessageID}
	for _, a := range targets {
		if !a.CanTakeDamage() {
			batch.add(skipped(a, message.KindDamage, SkipIneligible))
			continue
		}

		save, err := s.RollAbilitySave(ctx, a, res.SaveData)
		if err != nil {
			return batch, err
		}
		if save == nil {
			batch.add(skipped(a, message.KindDamage, SkipSaveCanceled))
			continue
		}
		if s.cantrip.negates(res.IsCantrip, save.Success) {
			app := skipped(a, message.KindDamage, SkipNegated)
			app.Save = save
			batch.add(app)
			continue
		}

		app, err := s.applyDamage(ctx, a, &damageInput{
			messageID:  res.MessageID,
			values:     res.Values,
			properties: res.Properties,
			mode:       damage.Mode{Half: save.Success},
		})
		if app != nil {
			app.Save = save
		}
		if err != nil {
			return batch, err
		}
		batch.add(app)
	}
	return batch, nil
}

// QuickApplyHealing heals every target by the message total
func (s *service) QuickApplyHealing(ctx context.Context, req *QuickRequest) (*BatchResult, error) {
	res, targets, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{MessageID: res.MessageID}
	for _, a := range targets {
		app, err := s.applyHealing(ctx, a, res.Total(), res.MessageID, "", req.Undo)
		if err != nil {
			return batch, err
		}
		batch.add(app)
	}
	return batch, nil
}

// QuickApplyTempHP grants the message total as temporary hit points
func (s *service) QuickApplyTempHP(ctx context.Context, req *QuickRequest) (*BatchResult, error) {
	res, targets, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{MessageID: res.MessageID}
	for _, a := range targets {
		app, err := s.applyTempHP(ctx, a, res.Total(), res.MessageID, "", req.Undo)
		if err != nil {
			return batch, err
		}
		batch.add(app)
	}
	return batch, nil
}
