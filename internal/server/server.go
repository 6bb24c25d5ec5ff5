// Package server assembles the echo application: middleware, validator
// and routes.
package server

import (
	"contact-service/internal/handler"
	"contact-service/internal/middleware"
	"contact-service/internal/store"
	"contact-service/internal/ui"
	"contact-service/pkg/config"
	"contact-service/pkg/logger"
	"fmt"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the HTTP application over db
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*echo.Echo, error) {
	renderer, err := ui.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("create page renderer: %w", err)
	}

	stores := store.New(db, log)
	validate := handler.NewRequestValidator()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate
	e.HTTPErrorHandler = handler.ErrorHandler

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)
	e.Use(logger.Middleware())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.IdentityMiddleware(cfg.User.DefaultID))

	contacts := handler.NewContactHandler(stores.Contacts)
	notes := handler.NewNoteHandler(stores.Notes)
	prefs := handler.NewPreferenceHandler(stores.Preferences)
	health := handler.NewHealthHandler(db, stores.Contacts)
	page := handler.NewPageHandler(stores, validate, renderer)

	// Public routes
	e.GET("/", page.Index)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/contacts", contacts.ListContacts)
	api.POST("/contacts", contacts.CreateContact)
	api.GET("/contacts/:id", contacts.GetContact)
	api.PUT("/contacts/:id", contacts.UpdateContact)
	api.DELETE("/contacts/:id", contacts.DeleteContact)

	api.GET("/contacts/:id/notes", notes.ListNotes)
	api.POST("/contacts/:id/notes", notes.AddNote)

	api.GET("/preferences", prefs.GetPreferences)
	api.PUT("/preferences", prefs.UpdatePreferences)

	log.Info("Routes registered", zap.Int("count", len(e.Routes())))
	return e, nil
}
