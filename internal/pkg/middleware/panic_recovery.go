package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/logger"
)

// PanicRecoveryWithZapMiddleware recovers panics, logs them with the
// zap logger and returns a 500 without leaking internals.
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					requestID, _ := c.Get("request_id").(string)

					zapLogger.Error("Panic recovered",
						logger.String("request_id", requestID),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)

					err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success":    false,
						"error":      "Internal server error",
						"request_id": requestID,
					})
					if err != nil {
						zapLogger.Error("Failed to send panic response",
							logger.Err(fmt.Errorf("panic response: %w", err)))
					}
				}
			}()

			return next(c)
		}
	}
}
