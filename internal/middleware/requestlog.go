package middleware

import (
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLog writes one structured log line per completed request.
func RequestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		logger.FromContext(c).Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.RealIP()),
		)

		return err
	}
}
