package channeldraw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ireh1214/discodebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const drawKeyPrefix = "channeldraw:"

// ErrDrawNotFound is returned when a draw is not found or already expired
var ErrDrawNotFound = errors.New("channel draw not found")

// Config holds configuration for the Redis draw repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed draw repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveDraw persists a draw to Redis
func (r *redisRepository) SaveDraw(ctx context.Context, input *SaveDrawInput) error {
	if input == nil || input.Draw == nil {
		return errors.New("input and draw cannot be nil")
	}

	drawJSON, err := json.Marshal(input.Draw)
	if err != nil {
		return fmt.Errorf("failed to marshal draw: %w", err)
	}

	if err := r.client.Set(ctx, drawKeyPrefix+input.Draw.ID, drawJSON, input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save draw: %w", err)
	}

	return nil
}

// GetDraw retrieves a draw by ID from Redis
func (r *redisRepository) GetDraw(ctx context.Context, input *GetDrawInput) (*models.ChannelDraw, error) {
	if input == nil || input.DrawID == "" {
		return nil, errors.New("input and draw ID cannot be nil")
	}

	drawJSON, err := r.client.Get(ctx, drawKeyPrefix+input.DrawID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDrawNotFound
		}
		return nil, fmt.Errorf("failed to get draw: %w", err)
	}

	var draw models.ChannelDraw
	if err := json.Unmarshal([]byte(drawJSON), &draw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw: %w", err)
	}

	return &draw, nil
}
