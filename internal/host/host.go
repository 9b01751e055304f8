// Package host declares what the damage engine needs from the virtual
// tabletop that owns actors, tokens, users and the chat log.
package host

//go:generate mockgen -destination=mock/mock_host.go -package=mockhost -source=host.go

import (
	"context"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/actor"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
)

// Actors reads live actors and writes hit point changes
type Actors interface {
	// GetActor returns the current state of an actor
	GetActor(ctx context.Context, actorID string) (*actor.Actor, error)

	// ApplyHitPointDelta applies a signed change: positive damages
	// (temporary hit points first), negative heals
	ApplyHitPointDelta(ctx context.Context, actorID string, delta int) error

	// SetTempHP replaces the actor's temporary hit points
	SetTempHP(ctx context.Context, actorID string, temp int) error
}

// Tokens resolves placed tokens and the user's selection
type Tokens interface {
	// GetToken returns a token on the scene by id
	GetToken(ctx context.Context, tokenID string) (*actor.Token, error)

	// SelectedTokens returns the tokens the user has selected
	SelectedTokens(ctx context.Context, userID string) ([]*actor.Token, error)

	// CharacterTokens returns the tokens of the user's assigned character
	CharacterTokens(ctx context.Context, userID string) ([]*actor.Token, error)

	// Select replaces the user's selection
	Select(ctx context.Context, userID string, tokenIDs []string) error
}

// Users answers questions about the acting user
type Users interface {
	IsGM(ctx context.Context, userID string) (bool, error)
}

// Messages reads chat messages and stores the resolution attached to them
type Messages interface {
	GetMessage(ctx context.Context, messageID string) (*message.Message, error)
	AttachResolution(ctx context.Context, messageID string, res *message.Resolution) error
}

// SavePrompter asks the owner of an actor to roll a saving throw.
// ok is false when the prompt was cancelled.
type SavePrompter interface {
	PromptSave(ctx context.Context, a *actor.Actor, ability string, dc int) (total int, ok bool, err error)
}

// Notifier shows a notification to a user
type Notifier interface {
	Warn(ctx context.Context, userID, text string)
	Info(ctx context.Context, userID, text string)
}

// Host bundles every collaborator the engine talks to
type Host struct {
	Actors   Actors
	Tokens   Tokens
	Users    Users
	Messages Messages
	Saves    SavePrompter
	Notifier Notifier
}
