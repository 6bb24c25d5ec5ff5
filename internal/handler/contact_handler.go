package handler

import (
	"contact-service/internal/model"
	"contact-service/internal/store"
	"contact-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContactHandler serves the /contacts routes
type ContactHandler struct {
	contacts *store.ContactStore
}

// NewContactHandler creates a contact handler backed by contacts
func NewContactHandler(contacts *store.ContactStore) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ListContacts returns one page of contacts
func (h *ContactHandler) ListContacts(c echo.Context) error {
	log := logger.FromContext(c)

	q := model.ListQuery{
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
		Sort:     c.QueryParam("sort"),
	}

	page, err := h.contacts.List(c.Request().Context(), q)
	if err != nil {
		return respondError(c, err, "Failed to list contacts")
	}

	log.Debug("Listed contacts",
		zap.String("search", q.Search),
		zap.Int("page", page.Page),
		zap.Int64("total", page.Total))
	return c.JSON(http.StatusOK, page)
}

// GetContact returns a single contact
func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "")
	}

	contact, err := h.contacts.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to retrieve contact")
	}
	return c.JSON(http.StatusOK, contact)
}

// CreateContact validates the payload and stores a new contact
func (h *ContactHandler) CreateContact(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.ContactInput
	if err := bindBody(c, &req); err != nil {
		return respondError(c, err, "")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err, "Failed to create contact")
	}

	contact, err := h.contacts.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to create contact")
	}

	log.Info("Contact created", zap.Uint("contact_id", contact.ID))
	return c.JSON(http.StatusCreated, contact)
}

// UpdateContact applies a partial update
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req model.ContactPatch
	if err := bindBody(c, &req); err != nil {
		return respondError(c, err, "")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err, "Failed to update contact")
	}

	contact, err := h.contacts.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err, "Failed to update contact")
	}

	log.Info("Contact updated", zap.Uint("contact_id", contact.ID))
	return c.JSON(http.StatusOK, contact)
}

// DeleteContact removes a contact
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "")
	}

	if err := h.contacts.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete contact")
	}

	log.Info("Contact deleted", zap.Uint("contact_id", id))
	return c.NoContent(http.StatusNoContent)
}
