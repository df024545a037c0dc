package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"daydo/models"
)

func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		Logger.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// RegisterUser creates a brand-new record; the userId must be unused.
// The password is stored verbatim in the record.
func RegisterUser(store UserStore, req models.RegisterRequest) (*models.User, error) {
	exists, err := store.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &models.User{
		Name:     req.Name,
		UserID:   req.UserID,
		Password: req.Password,
		Gmail:    req.Gmail,
		Tasks:    map[string][]models.Task{},
	}
	if err := store.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser checks credentials and opens a session. An unknown user and a
// wrong password come back as the same error.
func LoginUser(store UserStore, registry SessionRegistry, userID string, password string) (string, error) {
	user, err := store.Load(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if user.Password != password {
		return "", ErrInvalidCredentials
	}
	return registry.Create(userID)
}
