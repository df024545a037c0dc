package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"daydo/models"
)

// UserStore is the persistence contract: whole records in, whole records out.
// Save overwrites the stored record; the last writer wins.
type UserStore interface {
	Load(userID string) (*models.User, error)
	Save(user *models.User) error
	Exists(userID string) (bool, error)
}

// FileStore keeps one pretty-printed JSON file per user under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.Dir, userID+".json")
}

func (s *FileStore) Load(userID string) (*models.User, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("reading user %s: %w", userID, err)
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

func (s *FileStore) Save(user *models.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user %s: %w", user.UserID, err)
	}
	if err := os.WriteFile(s.path(user.UserID), data, 0o644); err != nil {
		return fmt.Errorf("writing user %s: %w", user.UserID, err)
	}
	return nil
}

func (s *FileStore) Exists(userID string) (bool, error) {
	_, err := os.Stat(s.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
