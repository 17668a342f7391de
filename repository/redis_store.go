package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legalease-backend/models"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

const (
	recentKey   = "legalease:analyses:recent"
	analysisTTL = 7 * 24 * time.Hour
)

// RedisStore keeps per-id analysis keys with a TTL plus a trimmed list of
// the most recent analyses for recovery lookups.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Close releases the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func analysisKey(id uuid.UUID) string {
	return "legalease:analysis:" + id.String()
}

// Put stores the analysis under its id key and pushes it onto the trimmed
// recent list.
func (s *RedisStore) Put(ctx context.Context, stored *models.StoredAnalysis) error {
	payload, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, analysisKey(stored.ID), payload, analysisTTL)
	pipe.LPush(ctx, recentKey, payload)
	pipe.LTrim(ctx, recentKey, 0, RecentLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves an analysis by id
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*models.StoredAnalysis, error) {
	payload, err := s.client.Get(ctx, analysisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stored := &models.StoredAnalysis{}
	if err := json.Unmarshal(payload, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Recent returns the bounded most-recent list, newest first
func (s *RedisStore) Recent(ctx context.Context) ([]*models.StoredAnalysis, error) {
	payloads, err := s.client.LRange(ctx, recentKey, 0, RecentLimit-1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*models.StoredAnalysis, 0, len(payloads))
	for _, payload := range payloads {
		stored := &models.StoredAnalysis{}
		if err := json.Unmarshal([]byte(payload), stored); err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

// MostRecent returns the newest stored analysis
func (s *RedisStore) MostRecent(ctx context.Context) (*models.StoredAnalysis, error) {
	payload, err := s.client.LIndex(ctx, recentKey, 0).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stored := &models.StoredAnalysis{}
	if err := json.Unmarshal(payload, stored); err != nil {
		return nil, err
	}
	return stored, nil
}
