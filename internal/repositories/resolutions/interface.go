package resolutions

//go:generate mockgen -destination=mock/mock_repository.go -package=mockresolutions -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
)

// Repository stores the resolution computed for a damage message. A
// resolution is written once and is the source of truth from then on.
type Repository interface {
	// Create stores a resolution, failing with an already exists error
	// when the message has one
	Create(ctx context.Context, res *message.Resolution) error

	// Get returns the resolution of a message
	Get(ctx context.Context, messageID string) (*message.Resolution, error)

	// Delete removes the resolution of a message
	Delete(ctx context.Context, messageID string) error

	// ListByMessages returns the resolutions that exist for the given
	// messages, in the order requested
	ListByMessages(ctx context.Context, messageIDs []string) ([]*message.Resolution, error)
}
