package middleware

import (
	"strconv"
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per method/path/status.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		method := c.Request().Method
		// Use the route pattern, not the raw URL, to keep cardinality bounded.
		path := c.Path()
		code := strconv.Itoa(status)

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())

		return err
	}
}
