package resolutions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dnd-damage-application/internal/domain/message"
	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const keyPrefix = "resolution:"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration // zero keeps resolutions forever
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed resolution repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}
}

func resolutionKey(messageID string) string {
	return fmt.Sprintf("%s%s", keyPrefix, messageID)
}

func (r *redisRepo) Create(ctx context.Context, res *message.Resolution) error {
	if res == nil {
		return dnderr.InvalidArgument("resolution cannot be nil")
	}
	if res.MessageID == "" {
		return dnderr.InvalidArgument("message ID is required")
	}

	jsonData, err := json.Marshal(toData(res))
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal resolution data")
	}

	created, err := r.client.SetNX(ctx, resolutionKey(res.MessageID), string(jsonData), r.ttl).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to store resolution in Redis").
			WithMeta("message_id", res.MessageID)
	}
	if !created {
		return dnderr.AlreadyExistsf("resolution for message '%s' already exists", res.MessageID).
			WithMeta("message_id", res.MessageID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, messageID string) (*message.Resolution, error) {
	if messageID == "" {
		return nil, dnderr.InvalidArgument("message ID is required")
	}

	jsonData, err := r.client.Get(ctx, resolutionKey(messageID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("resolution for message '%s' not found", messageID).
				WithMeta("message_id", messageID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to get resolution from Redis").
			WithMeta("message_id", messageID)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal resolution data").
			WithMeta("message_id", messageID)
	}

	return toResolution(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, messageID string) error {
	if messageID == "" {
		return dnderr.InvalidArgument("message ID is required")
	}

	deleted, err := r.client.Del(ctx, resolutionKey(messageID)).Result()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to delete resolution from Redis").
			WithMeta("message_id", messageID)
	}
	if deleted == 0 {
		return dnderr.NotFoundf("resolution for message '%s' not found", messageID).
			WithMeta("message_id", messageID)
	}

	return nil
}

func (r *redisRepo) ListByMessages(ctx context.Context, messageIDs []string) ([]*message.Resolution, error) {
	found := make([]*message.Resolution, len(messageIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range messageIDs {
		i, id := i, id
		g.Go(func() error {
			res, err := r.Get(ctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return dnderr.Wrapf(err, "failed to get resolution %s", id)
			}
			found[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*message.Resolution, 0, len(found))
	for _, res := range found {
		if res != nil {
			out = append(out, res)
		}
	}
	return out, nil
}
