package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"daydo/models"
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		Logger.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	// Configure connection pooling
	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		Logger.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// RedisRegistry stores one hash per session token plus a per-user index set.
// Entries get no TTL: sessions only end on Destroy.
type RedisRegistry struct {
	Client *redis.Client
}

func (rr *RedisRegistry) Create(userID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session := models.Session{
		SessionToken: GenerateToken(16),
		UserID:       userID,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	key := "session:" + session.SessionToken

	sessionMap := map[string]any{
		"user_id":    session.UserID,
		"created_at": session.CreatedAt,
	}
	if err := rr.Client.HSet(ctx, key, sessionMap).Err(); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	// Add to the user's session index
	if err := rr.Client.SAdd(ctx, "user_sessions:"+userID, key).Err(); err != nil {
		return "", fmt.Errorf("indexing session: %w", err)
	}
	return session.SessionToken, nil
}

func (rr *RedisRegistry) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := rr.Client.HGet(ctx, "session:"+token, "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("fetching session: %w", err)
	}
	return userID, nil
}

func (rr *RedisRegistry) Destroy(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "session:" + token

	// Get the user ID from the session
	userID, err := rr.Client.HGet(ctx, key, "user_id").Result()
	if errors.Is(err, redis.Nil) {
		// Unknown token, nothing to destroy
		return nil
	}
	if err != nil {
		return err
	}

	// Remove from the user's session index
	if err := rr.Client.SRem(ctx, "user_sessions:"+userID, key).Err(); err != nil {
		return err
	}

	// Delete the session
	return rr.Client.Del(ctx, key).Err()
}
