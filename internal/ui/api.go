package ui

import (
	"contact-service/internal/model"
	"context"
)

// API is the contact-book backend the controller talks to. It is served
// over HTTP by pkg/client and in-process by the handler package.
type API interface {
	ListContacts(ctx context.Context, q model.ListQuery) (*model.ContactPage, error)
	GetContact(ctx context.Context, id uint) (*model.Contact, error)
	CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error)
	UpdateContact(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error)
	DeleteContact(ctx context.Context, id uint) error
	ListNotes(ctx context.Context, contactID uint) ([]model.Note, error)
	AddNote(ctx context.Context, contactID uint, body string) (*model.Note, error)
	GetPreferences(ctx context.Context) (*model.Preference, error)
	SavePreferences(ctx context.Context, in model.PreferenceInput) (*model.Preference, error)
}
