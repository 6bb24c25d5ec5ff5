package store

import (
	"contact-service/internal/apperror"
	"contact-service/internal/model"
	"contact-service/prometheus"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteStore owns the notes collection. Notes are append-only.
type NoteStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewNoteStore creates a note store over db
func NewNoteStore(db *gorm.DB, log *zap.Logger) *NoteStore {
	return &NoteStore{db: db, log: log.With(zap.String("store", "notes"))}
}

// ListByContact returns the user's notes for a contact, newest first
func (s *NoteStore) ListByContact(ctx context.Context, userID string, contactID uint) ([]model.Note, error) {
	defer prometheus.TrackDBOperation("note_list")(time.Now())

	notes := []model.Note{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		s.log.Error("Failed to list notes", zap.Uint("contact_id", contactID), zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve notes", err)
	}
	return notes, nil
}

// Add appends a note. The body must contain non-whitespace text; it is
// stored as given. The contact is not required to exist.
func (s *NoteStore) Add(ctx context.Context, userID string, contactID uint, body string) (*model.Note, error) {
	defer prometheus.TrackDBOperation("note_add")(time.Now())

	if strings.TrimSpace(body) == "" {
		err := apperror.Validation(msgNoteBodyNeeded, map[string][]string{
			"body": {msgNoteBodyNeeded},
		})
		prometheus.RecordNoteOperation("add", err)
		return nil, err
	}

	note := model.Note{
		ContactID: contactID,
		UserID:    userID,
		Body:      body,
	}
	err := s.db.WithContext(ctx).Create(&note).Error
	if err != nil {
		s.log.Error("Failed to add note", zap.Uint("contact_id", contactID), zap.Error(err))
		err = apperror.Internal("Failed to add note", err)
	}
	prometheus.RecordNoteOperation("add", err)
	if err != nil {
		return nil, err
	}
	return &note, nil
}
