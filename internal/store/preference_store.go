package store

import (
	"contact-service/internal/apperror"
	"contact-service/internal/model"
	"contact-service/prometheus"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceStore keeps one preference document per user identity
type PreferenceStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPreferenceStore creates a preference store over db
func NewPreferenceStore(db *gorm.DB, log *zap.Logger) *PreferenceStore {
	return &PreferenceStore{db: db, log: log.With(zap.String("store", "preferences"))}
}

// Get returns the stored preferences, or the defaults when the user has
// none. Defaults are not persisted.
func (s *PreferenceStore) Get(ctx context.Context, userID string) (*model.Preference, error) {
	defer prometheus.TrackDBOperation("preference_get")(time.Now())

	var record model.PreferenceRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Preference{UserID: userID, PreferenceSettings: model.DefaultPreferenceSettings()}, nil
	}
	if err != nil {
		s.log.Error("Failed to load preferences", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to load preferences", err)
	}
	return &model.Preference{UserID: userID, PreferenceSettings: record.Document.Data()}, nil
}

// Set replaces the user's preference document. Fields missing from in are
// reset to their defaults, not carried over.
func (s *PreferenceStore) Set(ctx context.Context, userID string, in model.PreferenceInput) (*model.Preference, error) {
	defer prometheus.TrackDBOperation("preference_set")(time.Now())

	settings := in.Resolve()
	record := model.PreferenceRecord{
		UserID:   userID,
		Document: datatypes.NewJSONType(settings),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		s.log.Error("Failed to save preferences", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to save preferences", err)
	}

	prometheus.RecordPreferenceWrite(string(settings.Theme))
	return &model.Preference{UserID: userID, PreferenceSettings: settings}, nil
}
