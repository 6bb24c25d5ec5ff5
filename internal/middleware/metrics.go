package middleware

import (
	"contact-service/prometheus"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		if prometheus.HttpRequestsTotal == nil {
			return nil
		}

		method := c.Request().Method
		path := c.Path()
		status := c.Response().Status
		statusStr := strconv.Itoa(status)
		duration := time.Since(start).Seconds()

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)
		if category := prometheus.StatusCategory(status); category != "" {
			prometheus.HttpStatusCategoryCounter.WithLabelValues(category, method, path).Inc()
		}

		return nil
	}
}
