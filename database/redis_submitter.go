package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coder-yr/taste-link/config"
	"github.com/coder-yr/taste-link/models"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance holding the join stream
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// RedisSubmitter appends join requests to a redis stream for the
// approval workers to pick up
type RedisSubmitter struct {
	client redis.Cmdable
	stream string
}

// NewRedisSubmitter creates a submitter writing to stream
func NewRedisSubmitter(client redis.Cmdable, stream string) *RedisSubmitter {
	return &RedisSubmitter{client: client, stream: stream}
}

// Submit adds req to the stream
func (s *RedisSubmitter) Submit(ctx context.Context, req models.JoinRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode join request: %w", err)
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"id":          req.ID,
			"campaign_id": req.CampaignID,
			"payload":     string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish join request %s: %w", req.ID, err)
	}
	return nil
}
