package handler

import (
	"contact-service/internal/store"
	"contact-service/pkg/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	db       *gorm.DB
	contacts *store.ContactStore
}

// NewHealthHandler creates a health handler that can ping db
func NewHealthHandler(db *gorm.DB, contacts *store.ContactStore) *HealthHandler {
	return &HealthHandler{db: db, contacts: contacts}
}

// HealthCheck handles the health check endpoint
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Debug("Health check requested")

	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Check database connection if requested
	if c.QueryParam("check") == "db" {
		sqlDB, err := h.db.DB()
		if err != nil {
			log.Error("Database connection error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to get database connection"
			return c.JSON(http.StatusInternalServerError, response)
		}

		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			log.Error("Database ping error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to ping database"
			return c.JSON(http.StatusInternalServerError, response)
		}

		count, err := h.contacts.Count(c.Request().Context())
		if err != nil {
			log.Error("Contact count error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to query contacts"
			return c.JSON(http.StatusInternalServerError, response)
		}

		response["db_status"] = "ok"
		response["contacts"] = count
	}

	return c.JSON(http.StatusOK, response)
}
