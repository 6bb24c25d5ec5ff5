package handler

import (
	"contact-service/internal/middleware"
	"contact-service/internal/model"
	"contact-service/internal/store"
	"contact-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NoteHandler serves the notes attached to a contact
type NoteHandler struct {
	notes *store.NoteStore
}

// NewNoteHandler creates a note handler backed by notes
func NewNoteHandler(notes *store.NoteStore) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// ListNotes returns the caller's notes for a contact, newest first
func (h *NoteHandler) ListNotes(c echo.Context) error {
	contactID, err := parseID(c)
	if err != nil {
		return respondError(c, err, "")
	}
	userID, _ := middleware.UserIDFromContext(c)

	notes, err := h.notes.ListByContact(c.Request().Context(), userID, contactID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve notes")
	}
	return c.JSON(http.StatusOK, notes)
}

// AddNote appends a note to a contact
func (h *NoteHandler) AddNote(c echo.Context) error {
	log := logger.FromContext(c)

	contactID, err := parseID(c)
	if err != nil {
		return respondError(c, err, "")
	}
	userID, _ := middleware.UserIDFromContext(c)

	var req model.NoteInput
	if err := bindBody(c, &req); err != nil {
		return respondError(c, err, "")
	}

	note, err := h.notes.Add(c.Request().Context(), userID, contactID, req.Body)
	if err != nil {
		return respondError(c, err, "Failed to add note")
	}

	log.Info("Note added", zap.Uint("contact_id", contactID), zap.String("note_id", note.ID))
	return c.JSON(http.StatusCreated, note)
}
