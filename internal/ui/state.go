// Package ui drives the contact-book screen: a view state, the controller
// that moves it between states in response to user events, and renderers
// that draw it as HTML or terminal text.
package ui

import (
	"contact-service/internal/model"
	"strings"
)

// Modal names the dialog currently open on top of the list
type Modal string

const (
	ModalNone          Modal = "none"
	ModalCreate        Modal = "create"
	ModalEdit          Modal = "edit"
	ModalNotes         Modal = "notes"
	ModalConfirmDelete Modal = "confirm-delete"
)

// Mode is the coarse screen state derived from a ViewState
type Mode string

const (
	ModeIdle          Mode = "idle"
	ModeLoadingList   Mode = "loading-list"
	ModeEditing       Mode = "modal-open(create|edit)"
	ModeNotes         Mode = "modal-open(notes)"
	ModeConfirmDelete Mode = "modal-open(confirm-delete)"
)

// ContactForm holds the raw text of the create/edit dialog
type ContactForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// FormFromContact prefills the edit dialog
func FormFromContact(c model.Contact) ContactForm {
	return ContactForm{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     deref(c.Phone),
		Company:   deref(c.Company),
	}
}

// Input returns the trimmed form as a create payload. Blank optional
// fields become null.
func (f ContactForm) Input() model.ContactInput {
	return model.ContactInput{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     blankToNil(f.Phone),
		Company:   blankToNil(f.Company),
	}
}

// Patch returns the trimmed form as an update that sends every field
func (f ContactForm) Patch() model.ContactPatch {
	in := f.Input()
	return model.ContactPatch{
		FirstName: &in.FirstName,
		LastName:  &in.LastName,
		Email:     &in.Email,
		Phone:     model.OptionalFrom(in.Phone),
		Company:   model.OptionalFrom(in.Company),
	}
}

// ViewState is everything needed to draw the screen
type ViewState struct {
	Theme        model.Theme     `json:"theme"`
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	Sort         string          `json:"sort"`
	Search       string          `json:"search"`
	Loading      bool            `json:"loading"`
	Contacts     []model.Contact `json:"contacts"`
	Total        int64           `json:"total"`
	Modal        Modal           `json:"modal"`
	TargetID     uint            `json:"targetId,omitempty"`
	Form         ContactForm     `json:"form"`
	NotesContact *model.Contact  `json:"notesContact,omitempty"`
	Notes        []model.Note    `json:"notes,omitempty"`
	NoteDraft    string          `json:"noteDraft,omitempty"`
	Alert        string          `json:"alert,omitempty"`
	Toast        string          `json:"toast,omitempty"`
}

// InitialState is the screen before preferences or contacts are loaded
func InitialState() ViewState {
	return ViewState{
		Theme:    model.ThemeLight,
		Page:     model.DefaultPage,
		PageSize: model.DefaultPageSize,
		Sort:     model.DefaultSort,
		Modal:    ModalNone,
	}
}

// TotalPages is the page count for the last applied listing, at least 1
func (s ViewState) TotalPages() int {
	if s.PageSize <= 0 || s.Total <= 0 {
		return 1
	}
	return int((s.Total + int64(s.PageSize) - 1) / int64(s.PageSize))
}

func (s ViewState) CanPrev() bool {
	return s.Page > 1
}

func (s ViewState) CanNext() bool {
	return s.Page < s.TotalPages()
}

// Mode reports the screen state. An open dialog takes precedence over a
// list fetch running behind it.
func (s ViewState) Mode() Mode {
	switch s.Modal {
	case ModalCreate, ModalEdit:
		return ModeEditing
	case ModalNotes:
		return ModeNotes
	case ModalConfirmDelete:
		return ModeConfirmDelete
	}
	if s.Loading {
		return ModeLoadingList
	}
	return ModeIdle
}

func (s ViewState) query() model.ListQuery {
	return model.ListQuery{
		Search:   s.Search,
		Page:     s.Page,
		PageSize: s.PageSize,
		Sort:     s.Sort,
	}
}

func (s ViewState) preferences() model.PreferenceInput {
	return model.PreferenceSettings{
		Theme:       s.Theme,
		DefaultSort: s.Sort,
		RowsPerPage: s.PageSize,
	}.Input()
}

func (s *ViewState) closeModal() {
	s.Modal = ModalNone
	s.TargetID = 0
	s.Form = ContactForm{}
	s.NotesContact = nil
	s.Notes = nil
	s.NoteDraft = ""
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func blankToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
