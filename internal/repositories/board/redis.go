package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ireh1214/discodebot/internal/models"
	"github.com/redis/go-redis/v9"
)

// boardKeyPrefix namespaces board records in Redis
const boardKeyPrefix = "board:"

// ErrBoardNotFound is returned when a board is not found
var ErrBoardNotFound = errors.New("board not found")

// Config holds configuration for the Redis board repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed board repository
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

// SaveBoard persists a board to Redis
func (r *redisRepository) SaveBoard(ctx context.Context, input *SaveBoardInput) error {
	if input == nil || input.Board == nil {
		return errors.New("input and board cannot be nil")
	}

	boardJSON, err := json.Marshal(input.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	boardKey := boardKeyPrefix + input.Board.ID
	if err := r.client.Set(ctx, boardKey, boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	return nil
}

// GetBoard retrieves a board by ID from Redis
func (r *redisRepository) GetBoard(ctx context.Context, input *GetBoardInput) (*models.SignupBoard, error) {
	if input == nil || input.BoardID == "" {
		return nil, errors.New("input and board ID cannot be nil")
	}

	boardKey := boardKeyPrefix + input.BoardID
	boardJSON, err := r.client.Get(ctx, boardKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	var board models.SignupBoard
	if err := json.Unmarshal([]byte(boardJSON), &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return &board, nil
}
