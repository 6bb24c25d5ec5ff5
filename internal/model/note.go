package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a freeform note attached to a contact. ContactID is not a
// foreign key; notes may outlive their contact.
type Note struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ContactID uint      `json:"contactId" gorm:"not null;index:idx_notes_owner_contact"`
	UserID    string    `json:"userId" gorm:"type:varchar(64);not null;index:idx_notes_owner_contact"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate assigns a UUID when the caller did not
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NoteInput is the payload for adding a note
type NoteInput struct {
	Body string `json:"body"`
}
