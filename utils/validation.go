package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ValidateTaskText rejects empty content. Text is otherwise stored as given.
func ValidateTaskText(text string) error {
	if text == "" {
		return ErrTaskTextRequired
	}
	return nil
}

var userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._@-]{1,64}$`)

// ValidateUserID keeps ids usable as file names under the storage directory.
func ValidateUserID(userID string) error {
	if !userIDPattern.MatchString(userID) {
		return errors.New("user id must be 1-64 characters: letters, digits, . _ @ -")
	}
	if strings.Contains(userID, "..") {
		return errors.New("user id must not contain ..")
	}
	return nil
}
