package handler

import (
	"contact-service/internal/model"
	"contact-service/internal/store"
	"context"
)

// LocalAPI serves the UI controller in-process, applying the same
// validation as the HTTP routes before reaching the stores.
type LocalAPI struct {
	stores   *store.Stores
	validate *RequestValidator
	userID   string
}

// NewLocalAPI creates an API acting as userID
func NewLocalAPI(stores *store.Stores, validate *RequestValidator, userID string) *LocalAPI {
	return &LocalAPI{stores: stores, validate: validate, userID: userID}
}

func (a *LocalAPI) ListContacts(ctx context.Context, q model.ListQuery) (*model.ContactPage, error) {
	return a.stores.Contacts.List(ctx, q)
}

func (a *LocalAPI) GetContact(ctx context.Context, id uint) (*model.Contact, error) {
	return a.stores.Contacts.Get(ctx, id)
}

func (a *LocalAPI) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	if err := a.validate.Validate(&in); err != nil {
		return nil, err
	}
	return a.stores.Contacts.Create(ctx, in)
}

func (a *LocalAPI) UpdateContact(ctx context.Context, id uint, patch model.ContactPatch) (*model.Contact, error) {
	if err := a.validate.Validate(&patch); err != nil {
		return nil, err
	}
	return a.stores.Contacts.Update(ctx, id, patch)
}

func (a *LocalAPI) DeleteContact(ctx context.Context, id uint) error {
	return a.stores.Contacts.Delete(ctx, id)
}

func (a *LocalAPI) ListNotes(ctx context.Context, contactID uint) ([]model.Note, error) {
	return a.stores.Notes.ListByContact(ctx, a.userID, contactID)
}

func (a *LocalAPI) AddNote(ctx context.Context, contactID uint, body string) (*model.Note, error) {
	return a.stores.Notes.Add(ctx, a.userID, contactID, body)
}

func (a *LocalAPI) GetPreferences(ctx context.Context) (*model.Preference, error) {
	return a.stores.Preferences.Get(ctx, a.userID)
}

func (a *LocalAPI) SavePreferences(ctx context.Context, in model.PreferenceInput) (*model.Preference, error) {
	if err := a.validate.Validate(&in); err != nil {
		return nil, err
	}
	return a.stores.Preferences.Set(ctx, a.userID, in)
}
