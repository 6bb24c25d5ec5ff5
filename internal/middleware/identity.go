package middleware

import (
	"contact-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// IdentityMiddleware attaches the identity every request acts as. There is
// no authentication; all requests run as defaultUserID.
func IdentityMiddleware(defaultUserID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userIDKey, defaultUserID)
			logger.WithContext(c, logger.FromContext(c).With(zap.String("user_id", defaultUserID)))
			return next(c)
		}
	}
}

// UserIDFromContext retrieves the identity set by IdentityMiddleware
func UserIDFromContext(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDKey).(string)
	return userID, ok && userID != ""
}
