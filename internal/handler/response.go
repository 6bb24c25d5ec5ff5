package handler

import (
	"contact-service/internal/apperror"
	"contact-service/pkg/logger"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError writes err as a JSON error response. Internal failures are
// logged with their cause and answered with their generic message only.
func respondError(c echo.Context, err error, fallback string) error {
	log := logger.FromContext(c)
	status := apperror.StatusCode(err)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(fallback, err)
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		log.Warn("Validation failed", zap.Any("field_errors", appErr.Fields))
		body := echo.Map{"error": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["fieldErrors"] = appErr.Fields
		}
		return c.JSON(status, body)
	case apperror.KindNotFound:
		log.Info("Entity not found", zap.String("path", c.Request().URL.Path))
	case apperror.KindConflict:
		log.Warn("Uniqueness conflict", zap.Error(appErr.Cause))
	default:
		log.Error(appErr.Message, zap.Error(appErr.Cause))
	}
	return c.JSON(status, echo.Map{"error": appErr.Message})
}

// bindBody decodes the JSON body into dst; malformed input is a validation error
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		logger.FromContext(c).Warn("Invalid request data", zap.Error(err))
		return apperror.Validation("Invalid request data", nil)
	}
	return nil
}

// parseID reads the {id} path parameter. An id that is not a positive
// integer cannot name an entity, so it is reported as not found.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, apperror.NotFound("Not found")
	}
	return uint(id), nil
}

// queryInt parses an integer query parameter, returning 0 when absent or malformed
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics, in the API's JSON error shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = respondError(c, err, "Internal server error")
		return
	}

	msg := http.StatusText(httpErr.Code)
	switch httpErr.Code {
	case http.StatusNotFound:
		msg = "Not found"
	case http.StatusInternalServerError:
		logger.FromContext(c).Error("Unhandled error", zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Code)
	} else {
		err = c.JSON(httpErr.Code, echo.Map{"error": msg})
	}
	if err != nil {
		logger.FromContext(c).Error("Failed to write error response", zap.Error(err))
	}
}
