// Package memory is an in-memory host used by the debug tool and tests
package memory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-damage-application/internal/dice"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/host"
)

var (
	_ host.Actors       = (*Host)(nil)
	_ host.Tokens       = (*Host)(nil)
	_ host.Users        = (*Host)(nil)
	_ host.Messages     = (*Host)(nil)
	_ host.SavePrompter = (*Host)(nil)
	_ host.Notifier     = (*Host)(nil)
)

// User is a player or GM connected to the table
type User struct {
	ID          string
	Name        string
	GM          bool
	CharacterID string
}

// Notification is a recorded notification
type Notification struct {
	UserID string
	Level  string
	Text   string
}

// Host keeps actors, tokens, users and messages in memory. Saving throws
// are rolled with the configured roller instead of prompting anyone.
type Host struct {
	mu            sync.RWMutex
	roller        dice.Roller
	actors        map[string]*actor.Actor
	tokens        map[string]*actor.Token
	tokenOrder    []string
	users         map[string]*User
	selections    map[string][]string
	messages      map[string]*message.Message
	cancelSaves   map[string]bool
	notifications []Notification
}

// New creates an empty host rolling saves with roller
func New(roller dice.Roller) *Host {
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &Host{
		roller:      roller,
		actors:      make(map[string]*actor.Actor),
		tokens:      make(map[string]*actor.Token),
		users:       make(map[string]*User),
		selections:  make(map[string][]string),
		messages:    make(map[string]*message.Message),
		cancelSaves: make(map[string]bool),
	}
}

// Bundle returns the host wired into every collaborator slot
func (h *Host) Bundle() *host.Host {
	return &host.Host{
		Actors:   h,
		Tokens:   h,
		Users:    h,
		Messages: h,
		Saves:    h,
		Notifier: h,
	}
}

// AddActor stores an actor and places a token for it
func (h *Host) AddActor(a *actor.Actor, tokenID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.actors[a.ID] = a.Clone()
	if tokenID != "" {
		if _, exists := h.tokens[tokenID]; !exists {
			h.tokenOrder = append(h.tokenOrder, tokenID)
		}
		h.tokens[tokenID] = &actor.Token{ID: tokenID, ActorID: a.ID}
	}
}

// AddUser registers a user
func (h *Host) AddUser(u *User) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := *u
	h.users[u.ID] = &c
}

// PostMessage stores a chat message
func (h *Host) PostMessage(m *message.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages[m.ID] = m
}

// CancelSavesFor makes every save prompt for the actor come back cancelled
func (h *Host) CancelSavesFor(actorID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancelSaves[actorID] = true
}

// Notifications returns every notification recorded so far
func (h *Host) Notifications() []Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Notification, len(h.notifications))
	copy(out, h.notifications)
	return out
}

// GetActor returns a copy of the stored actor
func (h *Host) GetActor(ctx context.Context, actorID string) (*actor.Actor, error) {
	if actorID == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	a, exists := h.actors[actorID]
	if !exists {
		return nil, dnderr.NotFoundf("actor with ID '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	return a.Clone(), nil
}

// ApplyHitPointDelta changes the actor's hit points
func (h *Host) ApplyHitPointDelta(ctx context.Context, actorID string, delta int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, exists := h.actors[actorID]
	if !exists {
		return dnderr.NotFoundf("actor with ID '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	if a.HP == nil {
		return dnderr.FailedPreconditionf("actor '%s' has no hit points", a.Name).
			WithMeta("actor_id", actorID)
	}

	a.HP.ApplyDelta(delta)
	return nil
}

// SetTempHP replaces the actor's temporary hit points
func (h *Host) SetTempHP(ctx context.Context, actorID string, temp int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, exists := h.actors[actorID]
	if !exists {
		return dnderr.NotFoundf("actor with ID '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	if a.HP == nil {
		return dnderr.FailedPreconditionf("actor '%s' has no hit points", a.Name).
			WithMeta("actor_id", actorID)
	}

	if temp < 0 {
		temp = 0
	}
	a.HP.Temp = temp
	return nil
}

// GetToken returns a placed token
func (h *Host) GetToken(ctx context.Context, tokenID string) (*actor.Token, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	t, exists := h.tokens[tokenID]
	if !exists {
		return nil, dnderr.NotFoundf("token with ID '%s' not found", tokenID).
			WithMeta("token_id", tokenID)
	}
	c := *t
	return &c, nil
}

// SelectedTokens returns the user's selection in selection order
func (h *Host) SelectedTokens(ctx context.Context, userID string) ([]*actor.Token, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []*actor.Token
	for _, id := range h.selections[userID] {
		if t, exists := h.tokens[id]; exists {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

// CharacterTokens returns the tokens placed for the user's character
func (h *Host) CharacterTokens(ctx context.Context, userID string) ([]*actor.Token, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	u, exists := h.users[userID]
	if !exists || u.CharacterID == "" {
		return nil, nil
	}

	var out []*actor.Token
	for _, id := range h.tokenOrder {
		t := h.tokens[id]
		if t.ActorID == u.CharacterID {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

// Select replaces the user's selection with the known tokens among ids
func (h *Host) Select(ctx context.Context, userID string, tokenIDs []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	selection := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		if _, exists := h.tokens[id]; exists {
			selection = append(selection, id)
		}
	}
	h.selections[userID] = selection
	return nil
}

// IsGM reports whether the user is a game master
func (h *Host) IsGM(ctx context.Context, userID string) (bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	u, exists := h.users[userID]
	if !exists {
		return false, dnderr.NotFoundf("user with ID '%s' not found", userID).
			WithMeta("user_id", userID)
	}
	return u.GM, nil
}

// GetMessage returns a posted chat message
func (h *Host) GetMessage(ctx context.Context, messageID string) (*message.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	m, exists := h.messages[messageID]
	if !exists {
		return nil, dnderr.NotFoundf("message with ID '%s' not found", messageID).
			WithMeta("message_id", messageID)
	}
	return m, nil
}

// AttachResolution stores the resolution on the message
func (h *Host) AttachResolution(ctx context.Context, messageID string, res *message.Resolution) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, exists := h.messages[messageID]
	if !exists {
		return dnderr.NotFoundf("message with ID '%s' not found", messageID).
			WithMeta("message_id", messageID)
	}
	m.Resolution = res
	return nil
}

// PromptSave rolls a d20 plus the actor's save bonus
func (h *Host) PromptSave(ctx context.Context, a *actor.Actor, ability string, dc int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	h.mu.RLock()
	cancelled := h.cancelSaves[a.ID]
	h.mu.RUnlock()
	if cancelled {
		return 0, false, nil
	}

	result, err := h.roller.Roll(1, 20, a.SaveBonus(ability))
	if err != nil {
		return 0, false, dnderr.Wrapf(err, "failed to roll %s save for %s", ability, a.Name)
	}
	return result.Total, true, nil
}

// Warn records a warning
func (h *Host) Warn(ctx context.Context, userID, text string) {
	h.notify(userID, "warn", text)
}

// Info records an informational notification
func (h *Host) Info(ctx context.Context, userID, text string) {
	h.notify(userID, "info", text)
}

func (h *Host) notify(userID, level, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.notifications = append(h.notifications, Notification{UserID: userID, Level: level, Text: text})
}
