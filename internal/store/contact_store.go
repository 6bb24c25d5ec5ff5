package store

import (
	"contact-service/internal/apperror"
	"contact-service/internal/model"
	"contact-service/prometheus"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactStore owns the contacts table
type ContactStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewContactStore creates a contact store over db
func NewContactStore(db *gorm.DB, log *zap.Logger) *ContactStore {
	return &ContactStore{db: db, log: log.With(zap.String("store", "contacts"))}
}

// List returns one page of contacts matching q together with the total
// number of matches before pagination.
func (s *ContactStore) List(ctx context.Context, q model.ListQuery) (*model.ContactPage, error) {
	defer prometheus.TrackDBOperation("contact_list")(time.Now())

	q = q.Normalize()
	column, desc := model.ParseSort(q.Sort)
	search := searchScope(q.Search)

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Contact{}).Scopes(search).Count(&total).Error; err != nil {
		s.log.Error("Failed to count contacts", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve contacts", err)
	}

	contacts := []model.Contact{}
	err := s.db.WithContext(ctx).
		Scopes(search).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order("id").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&contacts).Error
	if err != nil {
		s.log.Error("Failed to list contacts", zap.Error(err))
		return nil, apperror.Internal("Failed to retrieve contacts", err)
	}

	return &model.ContactPage{
		Data:     contacts,
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
	}, nil
}

// searchScope matches search against names and email. SQLite's LIKE folds
// ASCII case and compares other text exactly; postgres needs ILIKE.
func searchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		op := "LIKE"
		if db.Dialector.Name() == "postgres" {
			op = "ILIKE"
		}
		pattern := containsPattern(search)
		return db.Where(
			fmt.Sprintf(`first_name %[1]s ? ESCAPE '\' OR last_name %[1]s ? ESCAPE '\' OR email %[1]s ? ESCAPE '\'`, op),
			pattern, pattern, pattern)
	}
}

// Get returns the contact with the given id
func (s *ContactStore) Get(ctx context.Context, id uint) (*model.Contact, error) {
	defer prometheus.TrackDBOperation("contact_get")(time.Now())

	var contact model.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, classify(err, "Failed to retrieve contact")
	}
	return &contact, nil
}

// Create inserts a contact. A duplicate email yields a conflict error.
func (s *ContactStore) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	defer prometheus.TrackDBOperation("contact_create")(time.Now())

	contact := model.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
	}
	err := classify(s.db.WithContext(ctx).Create(&contact).Error, "Insert failed")
	prometheus.RecordContactOperation("create", err)
	if err != nil {
		s.log.Warn("Failed to create contact", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	return &contact, nil
}

// Update merges patch onto the stored contact and refreshes updated_at.
// The read and the write are separate statements, so concurrent updates of
// one row resolve as last writer wins.
func (s *ContactStore) Update(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error) {
	defer prometheus.TrackDBOperation("contact_update")(time.Now())

	var contact model.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, classify(err, "Update failed")
	}

	patch.Apply(&contact)

	result := s.db.WithContext(ctx).Model(&contact).Select("*").Updates(&contact)
	err := classify(result.Error, "Update failed")
	if err == nil && result.RowsAffected == 0 {
		// deleted since it was read
		err = apperror.NotFound(msgNotFound)
	}
	prometheus.RecordContactOperation("update", err)
	if err != nil {
		s.log.Warn("Failed to update contact", zap.Uint("contact_id", id), zap.Error(err))
		return nil, err
	}
	return &contact, nil
}

// Delete removes the contact with the given id
func (s *ContactStore) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("contact_delete")(time.Now())

	result := s.db.WithContext(ctx).Delete(&model.Contact{}, id)
	if result.Error != nil {
		err := apperror.Internal("Delete failed", result.Error)
		prometheus.RecordContactOperation("delete", err)
		return err
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound(msgNotFound)
	}
	prometheus.RecordContactOperation("delete", nil)
	return nil
}

// Count returns the number of stored contacts
func (s *ContactStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Contact{}).Count(&count).Error; err != nil {
		return 0, apperror.Internal("Failed to count contacts", err)
	}
	return count, nil
}
