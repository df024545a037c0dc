package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"daydo/models"
)

func OpenDB(dsn string) (*pgxpool.Pool, error) {
	// Parse the connection string into a pgxpool.Config
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	config.MaxConns = 50
	config.MaxConnIdleTime = 20 * time.Second
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Test the connection
	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

// PGStore keeps one row per user with the whole record as jsonb, so Save has
// the same overwrite granularity as the file store.
type PGStore struct {
	Pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) (*PGStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "CREATE TABLE IF NOT EXISTS users (user_id TEXT PRIMARY KEY, record JSONB NOT NULL);"
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return nil, fmt.Errorf("ensuring users table: %w", err)
	}
	return &PGStore{Pool: pool}, nil
}

func (s *PGStore) Load(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var data []byte
	stmt := "SELECT record FROM users WHERE user_id = $1;"
	if err := s.Pool.QueryRow(ctx, stmt, userID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user %s: %w", userID, err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing user %s: %w", userID, err)
	}
	if user.Tasks == nil {
		user.Tasks = map[string][]models.Task{}
	}
	return &user, nil
}

func (s *PGStore) Save(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user %s: %w", user.UserID, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "INSERT INTO users (user_id, record) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET record = EXCLUDED.record;"
	if _, err := s.Pool.Exec(ctx, stmt, user.UserID, data); err != nil {
		return fmt.Errorf("writing user %s: %w", user.UserID, err)
	}
	return nil
}

func (s *PGStore) Exists(userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)"

	var exists bool
	if err := s.Pool.QueryRow(ctx, stmt, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("database error checking user: %w", err)
	}
	return exists, nil
}
