package savegame

import (
	"context"
	"errors"

	redis "github.com/redis/go-redis/v9"

	internalerrors "github.com/KirkDiggler/rpg-idle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-idle/internal/redis"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// Codec defaults to NewCodec(DefaultMinPoolSize)
	Codec *Codec
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return internalerrors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	codec  *Codec
}

// NewRedis creates a Redis backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, internalerrors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, internalerrors.Wrap(err, "invalid config")
	}

	codec := cfg.Codec
	if codec == nil {
		codec = NewCodec(DefaultMinPoolSize)
	}
	return &redisRepository{client: cfg.Client, codec: codec}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, internalerrors.InvalidArgument(errSlotIDEmpty)
	}

	data, err := r.codec.Encode(input.State)
	if err != nil {
		return nil, err
	}

	// saves never expire
	if err := r.client.Set(ctx, slotKey(input.SlotID), data, 0).Err(); err != nil {
		return nil, internalerrors.Wrapf(err, "failed to store save %s in Redis", input.SlotID)
	}
	return &SaveOutput{Bytes: len(data)}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, internalerrors.InvalidArgument(errSlotIDEmpty)
	}

	data, err := r.client.Get(ctx, slotKey(input.SlotID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, internalerrors.NotFoundf("save %s not found", input.SlotID)
		}
		return nil, internalerrors.Wrapf(err, "failed to get save %s from Redis", input.SlotID)
	}

	state, err := r.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{State: state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, internalerrors.InvalidArgument(errSlotIDEmpty)
	}

	n, err := r.client.Del(ctx, slotKey(input.SlotID)).Result()
	if err != nil {
		return nil, internalerrors.Wrapf(err, "failed to delete save %s from Redis", input.SlotID)
	}
	return &DeleteOutput{Deleted: n > 0}, nil
}
