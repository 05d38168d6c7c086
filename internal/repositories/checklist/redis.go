package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ireh1214/discodebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// checklistKeyPrefix namespaces checklist records in Redis
const checklistKeyPrefix = "checklist:"

// ErrChecklistNotFound is returned when a checklist is not found
var ErrChecklistNotFound = errors.New("checklist not found")

// Config holds configuration for the Redis checklist repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed checklist repository
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

// SaveChecklist persists a checklist to Redis
func (r *redisRepository) SaveChecklist(ctx context.Context, input *SaveChecklistInput) error {
	if input == nil || input.Checklist == nil {
		return errors.New("input and checklist cannot be nil")
	}

	checklistJSON, err := json.Marshal(input.Checklist)
	if err != nil {
		return fmt.Errorf("failed to marshal checklist: %w", err)
	}

	if err := r.client.Set(ctx, checklistKeyPrefix+input.Checklist.ID, checklistJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}

	return nil
}

// GetChecklist retrieves a checklist by ID from Redis
func (r *redisRepository) GetChecklist(ctx context.Context, input *GetChecklistInput) (*models.PayoutChecklist, error) {
	if input == nil || input.ChecklistID == "" {
		return nil, errors.New("input and checklist ID cannot be nil")
	}

	checklistJSON, err := r.client.Get(ctx, checklistKeyPrefix+input.ChecklistID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrChecklistNotFound
		}
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	var checklist models.PayoutChecklist
	if err := json.Unmarshal([]byte(checklistJSON), &checklist); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checklist: %w", err)
	}

	return &checklist, nil
}
