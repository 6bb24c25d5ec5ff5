package database

import (
	"contact-service/internal/model"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedContact struct {
	first, last, email, phone, company string
}

var sampleContacts = []seedContact{
	{"John", "Smith", "john.smith@example.com", "555-0101", "Acme Corp"},
	{"Jane", "Doe", "jane.doe@example.com", "555-0102", "Globex"},
	{"Alice", "Johnson", "alice.johnson@example.com", "555-0103", "Initech"},
	{"Bob", "Williams", "bob.williams@example.com", "", "Umbrella"},
	{"Carol", "Brown", "carol.brown@example.com", "555-0105", ""},
	{"David", "Jones", "david.jones@example.com", "555-0106", "Hooli"},
	{"Emma", "Garcia", "emma.garcia@example.com", "555-0107", "Stark Industries"},
	{"Frank", "Miller", "frank.miller@example.com", "", "Wayne Enterprises"},
	{"Grace", "Davis", "grace.davis@example.com", "555-0109", "Acme Corp"},
	{"Henry", "Rodriguez", "henry.rodriguez@example.com", "555-0110", "Globex"},
	{"Isabel", "Martinez", "isabel.martinez@example.com", "555-0111", ""},
	{"Jack", "Hernandez", "jack.hernandez@example.com", "555-0112", "Initech"},
	{"Karen", "Lopez", "karen.lopez@example.com", "555-0113", "Umbrella"},
	{"Leo", "Gonzalez", "leo.gonzalez@example.com", "", "Hooli"},
	{"Mia", "Wilson", "mia.wilson@example.com", "555-0115", "Stark Industries"},
	{"Noah", "Anderson", "noah.anderson@example.com", "555-0116", "Wayne Enterprises"},
	{"Olivia", "Thomas", "olivia.thomas@example.com", "555-0117", "Acme Corp"},
	{"Paul", "Taylor", "paul.taylor@example.com", "555-0118", ""},
	{"Quinn", "Moore", "quinn.moore@example.com", "555-0119", "Globex"},
	{"Rachel", "Jackson", "rachel.jackson@example.com", "555-0120", "Initech"},
	{"Sam", "Martin", "sam.martin@example.com", "", "Umbrella"},
	{"Tina", "Lee", "tina.lee@example.com", "555-0122", "Hooli"},
	{"Umar", "Perez", "umar.perez@example.com", "555-0123", "Stark Industries"},
	{"Vera", "Smithson", "vera.smithson@example.com", "555-0124", "Wayne Enterprises"},
	{"Will", "Clark", "will.clark@example.com", "555-0125", "Acme Corp"},
}

// Seed inserts the sample contacts. With reset, existing contacts are removed
// first; without it, seeding is skipped when any contact exists.
// It returns the number of contacts inserted.
func Seed(conn *gorm.DB, reset bool, log *zap.Logger) (int, error) {
	if reset {
		result := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Contact{})
		if result.Error != nil {
			return 0, fmt.Errorf("failed to clear contacts: %w", result.Error)
		}
		log.Info("Removed existing contacts", zap.Int64("rows_affected", result.RowsAffected))
	} else {
		var count int64
		if err := conn.Model(&model.Contact{}).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to count contacts: %w", err)
		}
		if count > 0 {
			log.Info("Contacts already present, skipping seed", zap.Int64("count", count))
			return 0, nil
		}
	}

	contacts := make([]model.Contact, 0, len(sampleContacts))
	for _, s := range sampleContacts {
		contacts = append(contacts, model.Contact{
			FirstName: s.first,
			LastName:  s.last,
			Email:     s.email,
			Phone:     optional(s.phone),
			Company:   optional(s.company),
		})
	}

	if err := conn.CreateInBatches(&contacts, 100).Error; err != nil {
		return 0, fmt.Errorf("failed to insert seed data: %w", err)
	}
	log.Info("Inserted seed data", zap.Int("count", len(contacts)))
	return len(contacts), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
