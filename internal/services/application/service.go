package application

//go:generate mockgen -destination=mock/mock_service.go -package=mockapplication -source=service.go

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/damage"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/host"
	"github.com/KirkDiggler/dnd-damage-application/internal/repositories/resolutions"
	"github.com/KirkDiggler/dnd-damage-application/internal/uuid"
)

// NoTargetsWarning is shown when a user has nothing to apply damage to
const NoTargetsWarning = "You have no valid tokens selected."

// Service applies resolved damage rolls to actors
type Service interface {
	// Resolve returns the resolution attached to a damage message,
	// computing and storing it the first time. Non-damage messages
	// resolve to nil.
	Resolve(ctx context.Context, messageID string) (*message.Resolution, error)

	// History returns the stored resolutions for messages that have one,
	// in the order asked. It never resolves a message.
	History(ctx context.Context, messageIDs []string) ([]*message.Resolution, error)

	// CollectTargets returns the actors the user is acting on
	CollectTargets(ctx context.Context, userID string, storedTargets []string) ([]*actor.Actor, error)

	// SelectTargets selects the tokens an attack hit, or missed
	SelectTargets(ctx context.Context, userID, messageID string, hit bool) ([]string, error)

	// RollAbilitySave prompts a saving throw. It returns nil when the
	// actor cannot take damage or the prompt was cancelled.
	RollAbilitySave(ctx context.Context, a *actor.Actor, save message.SaveData) (*SaveResult, error)

	// QuickApply applies, or undoes, full damage to every target
	QuickApply(ctx context.Context, req *QuickRequest) (*BatchResult, error)

	// QuickApplyHalf applies, or undoes, half damage to every target
	QuickApplyHalf(ctx context.Context, req *QuickRequest) (*BatchResult, error)

	// QuickSaveAndApply rolls a save for every target and applies the
	// damage, halved on a success
	QuickSaveAndApply(ctx context.Context, req *QuickRequest) (*BatchResult, error)

	// QuickApplyHealing heals, or undoes healing on, every target
	QuickApplyHealing(ctx context.Context, req *QuickRequest) (*BatchResult, error)

	// QuickApplyTempHP grants temporary hit points to every target
	QuickApplyTempHP(ctx context.Context, req *QuickRequest) (*BatchResult, error)

	// OpenSession starts an interaction session for a damage message
	OpenSession(ctx context.Context, userID, messageID string) (*Session, error)

	// GetSession returns an open session
	GetSession(sessionID string) (*Session, error)

	// CloseSession discards a session and its save outcomes
	CloseSession(ctx context.Context, sessionID string) error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Host          *host.Host             // Required
	Repository    resolutions.Repository // Optional, in-memory when nil
	Vocabulary    *damage.Vocabulary     // Optional, default vocabulary when nil
	EventBus      events.Bus             // Optional, events are dropped when nil
	UUIDGenerator uuid.Generator         // Optional, will use default if nil
	Logger        *zap.Logger            // Optional, no-op when nil
	CantripPolicy CantripPolicy          // Optional, CantripHalf when empty
	Colors        bool                   // attach colored per-type damages to events
	Now           func() time.Time       // Optional, time.Now when nil
}

type service struct {
	host          *host.Host
	repository    resolutions.Repository
	vocab         *damage.Vocabulary
	resolver      *damage.Resolver
	calculator    *damage.Calculator
	bus           events.Bus
	uuidGenerator uuid.Generator
	logger        *zap.Logger
	cantrip       CantripPolicy
	colors        bool
	now           func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a new damage application service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Host == nil {
		panic("host is required")
	}
	h := cfg.Host
	if h.Actors == nil || h.Tokens == nil || h.Users == nil || h.Messages == nil || h.Saves == nil || h.Notifier == nil {
		panic("host is missing a collaborator")
	}

	svc := &service{
		host:          h,
		repository:    cfg.Repository,
		vocab:         cfg.Vocabulary,
		bus:           cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		cantrip:       cfg.CantripPolicy,
		colors:        cfg.Colors,
		now:           cfg.Now,
		sessions:      make(map[string]*Session),
	}

	if svc.repository == nil {
		svc.repository = resolutions.NewInMemoryRepository()
	}
	if svc.vocab == nil {
		svc.vocab = damage.DefaultVocabulary()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.cantrip == "" {
		svc.cantrip = CantripHalf
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	svc.resolver = damage.NewResolver(svc.vocab)
	svc.calculator = damage.NewCalculator(svc.vocab)

	return svc
}

// Resolve returns the message's resolution, computing it once
func (s *service) Resolve(ctx context.Context, messageID string) (*message.Resolution, error) {
	if messageID == "" {
		return nil, dnderr.InvalidArgument("message ID is required")
	}

	msg, err := s.host.Messages.GetMessage(ctx, messageID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get message %s", messageID)
	}
	if !msg.IsDamage() {
		return nil, nil
	}
	if msg.Resolution != nil {
		return msg.Resolution, nil
	}

	res, err := s.repository.Get(ctx, messageID)
	switch {
	case err == nil:
	case dnderr.IsNotFound(err):
		res, err = s.resolveAndStore(ctx, msg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, dnderr.Wrapf(err, "failed to load resolution for message %s", messageID)
	}

	if err := s.host.Messages.AttachResolution(ctx, messageID, res); err != nil {
		return nil, dnderr.Wrapf(err, "failed to attach resolution to message %s", messageID)
	}
	return res, nil
}

func (s *service) History(ctx context.Context, messageIDs []string) ([]*message.Resolution, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	found, err := s.repository.ListByMessages(ctx, messageIDs)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list resolutions")
	}
	return found, nil
}

func (s *service) resolveAndStore(ctx context.Context, msg *message.Message) (*message.Resolution, error) {
	res := message.Resolve(msg, s.resolver, s.vocab, s.now())

	err := s.repository.Create(ctx, res)
	if dnderr.IsAlreadyExists(err) {
		// Someone else resolved it first; theirs is the record
		return s.repository.Get(ctx, msg.ID)
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to store resolution for message %s", msg.ID)
	}

	s.logger.Debug("resolved damage message",
		zap.String("message_id", msg.ID),
		zap.Any("values", res.Values),
		zap.Strings("properties", res.Properties.Slice()),
		zap.Bool("has_save", res.HasSave))

	if err := s.emit(events.NewGameEvent(events.AfterResolve, nil).
		WithAmount(res.Total(), 1, 0).
		WithContext(events.ContextMessageID, msg.ID)); err != nil {
		return nil, err
	}
	return res, nil
}

// CollectTargets gathers actors from the user's selection or assigned
// character. A GM also gets the tokens stored on the message.
func (s *service) CollectTargets(ctx context.Context, userID string, storedTargets []string) ([]*actor.Actor, error) {
	isGM, err := s.host.Users.IsGM(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to check user %s", userID)
	}

	selected, err := s.host.Tokens.SelectedTokens(ctx, userID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get selected tokens for user %s", userID)
	}

	tokens := selected
	if !isGM && len(selected) == 0 {
		tokens, err = s.host.Tokens.CharacterTokens(ctx, userID)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to get character tokens for user %s", userID)
		}
	}

	if isGM {
		for _, id := range storedTargets {
			token, err := s.host.Tokens.GetToken(ctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					continue
				}
				return nil, dnderr.Wrapf(err, "failed to get token %s", id)
			}
			tokens = append(tokens, token)
		}
	}

	seen := make(map[string]bool, len(tokens))
	actors := make([]*actor.Actor, 0, len(tokens))
	for _, token := range tokens {
		if token == nil || token.ActorID == "" || seen[token.ActorID] {
			continue
		}
		seen[token.ActorID] = true

		a, err := s.host.Actors.GetActor(ctx, token.ActorID)
		if err != nil {
			if dnderr.IsNotFound(err) {
				continue
			}
			return nil, dnderr.Wrapf(err, "failed to get actor %s", token.ActorID)
		}
		if !a.HasHitPoints() {
			continue
		}
		actors = append(actors, a)
	}

	return actors, nil
}

// SelectTargets replaces the user's selection with an attack's hit or
// missed targets
func (s *service) SelectTargets(ctx context.Context, userID, messageID string, hit bool) ([]string, error) {
	msg, err := s.host.Messages.GetMessage(ctx, messageID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get message %s", messageID)
	}
	if !msg.IsAttack() {
		return nil, dnderr.InvalidArgumentf("message %s is not an attack roll", messageID).
			WithMeta("message_id", messageID)
	}

	ids := msg.AttackTargetIDs(hit)
	if err := s.host.Tokens.Select(ctx, userID, ids); err != nil {
		return nil, dnderr.Wrapf(err, "failed to select tokens for user %s", userID)
	}
	return ids, nil
}

// RollAbilitySave prompts the actor's saving throw; success is total >= DC
func (s *service) RollAbilitySave(ctx context.Context, a *actor.Actor, save message.SaveData) (*SaveResult, error) {
	if !a.CanTakeDamage() {
		return nil, nil
	}

	total, ok, err := s.host.Saves.PromptSave(ctx, a, save.Ability, save.DC)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to prompt %s save for %s", save.Ability, a.Name)
	}
	if !ok {
		s.logger.Debug("save prompt cancelled", zap.String("actor_id", a.ID))
		return nil, nil
	}

	result := &SaveResult{
		Ability: save.Ability,
		DC:      save.DC,
		Total:   total,
		Success: total >= save.DC,
	}

	if err := s.emit(events.NewGameEvent(events.AfterSavingThrow, a).
		WithContext(events.ContextAbility, save.Ability).
		WithContext(events.ContextSaveDC, save.DC).
		WithContext(events.ContextSaveTotal, total).
		WithContext(events.ContextSaveResult, result.Success)); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) emit(event *events.GameEvent) error {
	if s.bus == nil {
		return nil
	}
	if err := s.bus.Emit(event); err != nil {
		return dnderr.Wrapf(err, "failed to emit %s", event.Type)
	}
	return nil
}
