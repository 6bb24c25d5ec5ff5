package model

import (
	"time"
)

// Contact represents a person in the contact book
type Contact struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FirstName string    `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName  string    `json:"last_name" gorm:"type:varchar(255);not null;index"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     *string   `json:"phone" gorm:"type:varchar(64)"`
	Company   *string   `json:"company" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInput is the payload for creating a contact
type ContactInput struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
}

// ContactPatch is the payload for a partial update. Nil name/email fields
// are left unchanged; phone and company distinguish an absent key from null.
type ContactPatch struct {
	FirstName *string        `json:"first_name,omitempty" validate:"omitnil,min=1"`
	LastName  *string        `json:"last_name,omitempty" validate:"omitnil,min=1"`
	Email     *string        `json:"email,omitempty" validate:"omitnil,email"`
	Phone     OptionalString `json:"phone,omitzero"`
	Company   OptionalString `json:"company,omitzero"`
}

// Apply merges the supplied fields onto c
func (p ContactPatch) Apply(c *Contact) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone.Set {
		c.Phone = p.Phone.Value
	}
	if p.Company.Set {
		c.Company = p.Company.Value
	}
}

// ContactPage is one page of a contact listing
type ContactPage struct {
	Data     []Contact `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int64     `json:"total"`
}
