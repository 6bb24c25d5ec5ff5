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

// PreferenceHandler serves the caller's UI preferences
type PreferenceHandler struct {
	prefs *store.PreferenceStore
}

// NewPreferenceHandler creates a preference handler backed by prefs
func NewPreferenceHandler(prefs *store.PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// GetPreferences returns stored preferences or the defaults
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)

	pref, err := h.prefs.Get(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve preferences")
	}
	return c.JSON(http.StatusOK, pref)
}

// UpdatePreferences replaces the caller's preferences
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	log := logger.FromContext(c)
	userID, _ := middleware.UserIDFromContext(c)

	var req model.PreferenceInput
	if err := bindBody(c, &req); err != nil {
		return respondError(c, err, "")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err, "Failed to save preferences")
	}

	pref, err := h.prefs.Set(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, err, "Failed to save preferences")
	}

	log.Info("Preferences saved", zap.String("theme", string(pref.Theme)))
	return c.JSON(http.StatusOK, pref)
}
