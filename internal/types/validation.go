package types

import (
	"errors"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrInvalidUserID is returned before any network I/O when a caller passes a
// non-positive user id.
var ErrInvalidUserID = errors.New("user_id must be a positive integer")

// ErrEmptyUsername is returned before any network I/O when a username is
// empty after stripping the leading "@" marker.
var ErrEmptyUsername = errors.New("username cannot be empty")

// ------------------------------
// Input Validation
// ------------------------------

// ValidateUserID checks the numeric identifier precondition shared by the
// estimation endpoints.
func ValidateUserID(userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// NormalizeUsername strips the optional leading "@" marker and rejects
// usernames that are empty afterwards. Normalization is idempotent: "name"
// and "@name" produce the same outbound request.
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimLeft(username, "@")
	if username == "" {
		return "", ErrEmptyUsername
	}
	return username, nil
}
