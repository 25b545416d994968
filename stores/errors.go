package stores

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrNotFound      = errors.New("record not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrAlreadyVoted  = errors.New("already voted for this menu")
	ErrNoMenusToday  = errors.New("no menus uploaded for today")
)

// isDuplicate reports whether err is a unique-constraint violation. GORM's
// error translation covers the mysql, postgres and sqlite drivers; the string
// checks catch connections opened without TranslateError.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}
