package resolutions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
)

// InMemoryRepository keeps resolutions in a map. Useful for testing and
// for running without Redis.
type InMemoryRepository struct {
	mu          sync.RWMutex
	resolutions map[string]*Data
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		resolutions: make(map[string]*Data),
	}
}

// Create stores a resolution once
func (r *InMemoryRepository) Create(ctx context.Context, res *message.Resolution) error {
	if res == nil {
		return dnderr.InvalidArgument("resolution cannot be nil")
	}
	if res.MessageID == "" {
		return dnderr.InvalidArgument("message ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resolutions[res.MessageID]; exists {
		return dnderr.AlreadyExistsf("resolution for message '%s' already exists", res.MessageID).
			WithMeta("message_id", res.MessageID)
	}

	// Stored in serialized form so callers cannot mutate it
	r.resolutions[res.MessageID] = toData(res)
	return nil
}

// Get returns a copy of a stored resolution
func (r *InMemoryRepository) Get(ctx context.Context, messageID string) (*message.Resolution, error) {
	if messageID == "" {
		return nil, dnderr.InvalidArgument("message ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.resolutions[messageID]
	if !exists {
		return nil, dnderr.NotFoundf("resolution for message '%s' not found", messageID).
			WithMeta("message_id", messageID)
	}

	res := toResolution(data)
	res.Targets = append([]string(nil), data.Targets...)
	return res, nil
}

// Delete removes a stored resolution
func (r *InMemoryRepository) Delete(ctx context.Context, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resolutions[messageID]; !exists {
		return dnderr.NotFoundf("resolution for message '%s' not found", messageID).
			WithMeta("message_id", messageID)
	}
	delete(r.resolutions, messageID)
	return nil
}

// ListByMessages returns the stored resolutions among messageIDs
func (r *InMemoryRepository) ListByMessages(ctx context.Context, messageIDs []string) ([]*message.Resolution, error) {
	out := make([]*message.Resolution, 0, len(messageIDs))
	for _, id := range messageIDs {
		res, err := r.Get(ctx, id)
		if err != nil {
			if dnderr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
