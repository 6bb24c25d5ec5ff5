// Package store persists contacts, preferences and notes through gorm.
package store

import (
	"contact-service/internal/apperror"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stores groups the three stores sharing one connection
type Stores struct {
	Contacts    *ContactStore
	Preferences *PreferenceStore
	Notes       *NoteStore
}

// New creates all stores over db
func New(db *gorm.DB, log *zap.Logger) *Stores {
	return &Stores{
		Contacts:    NewContactStore(db, log),
		Preferences: NewPreferenceStore(db, log),
		Notes:       NewNoteStore(db, log),
	}
}

const (
	msgNotFound       = "Not found"
	msgEmailConflict  = "Email already exists"
	msgNoteBodyNeeded = "Note body required"
)

// classify maps a gorm error to the application taxonomy. internalMsg is
// the client-facing message used for unexpected failures.
func classify(err error, internalMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(msgNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Conflict(msgEmailConflict, err)
	default:
		return apperror.Internal(internalMsg, err)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, treating
// wildcard characters in s literally. Case folding is left to the engine.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
