package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food_ordering/internal/services"

	"github.com/go-redis/redis/v8"
)

// Client stores login sessions in Redis, keyed by token ID with a TTL.
// Implements services.SessionStore.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Set(tokenID string, session *services.Session, ttl time.Duration) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}
	return c.rdb.Set(context.Background(), "session:"+tokenID, jsonData, ttl).Err()
}

func (c *Client) Get(tokenID string) (*services.Session, error) {
	val, err := c.rdb.Get(context.Background(), "session:"+tokenID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, services.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session services.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &session, nil
}

func (c *Client) Delete(tokenID string) error {
	return c.rdb.Del(context.Background(), "session:"+tokenID).Err()
}
