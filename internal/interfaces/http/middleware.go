package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/infrastructure/metrics"
)

// MetricsMiddleware counts every handled request by method, route pattern and status.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if ferr, ok := err.(*fiber.Error); ok {
				status = ferr.Code
			}
		}
		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}
