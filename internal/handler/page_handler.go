package handler

import (
	"bytes"
	"contact-service/internal/middleware"
	"contact-service/internal/store"
	"contact-service/internal/ui"
	"contact-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered contact page
type PageHandler struct {
	stores   *store.Stores
	validate *RequestValidator
	renderer ui.Renderer
}

// NewPageHandler creates a page handler drawing with renderer
func NewPageHandler(stores *store.Stores, validate *RequestValidator, renderer ui.Renderer) *PageHandler {
	return &PageHandler{stores: stores, validate: validate, renderer: renderer}
}

// Index renders the contact list for the search and page query parameters
func (h *PageHandler) Index(c echo.Context) error {
	log := logger.FromContext(c)
	userID, _ := middleware.UserIDFromContext(c)

	ctrl := ui.NewController(
		NewLocalAPI(h.stores, h.validate, userID),
		ui.WithLogger(log),
		ui.WithQuery(c.QueryParam("search"), queryInt(c, "page")),
	)
	defer ctrl.Close()
	ctrl.Load(c.Request().Context())

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, ctrl.State()); err != nil {
		log.Error("Failed to render contact page", zap.Error(err))
		return c.String(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
