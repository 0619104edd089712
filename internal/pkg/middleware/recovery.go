package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/china630/bolt-usta-app/internal/pkg/logger"
)

// RecoveryMiddleware recovers from handler panics, logs the stack trace and
// answers 500 so one bad request cannot take the process down
func RecoveryMiddleware(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Panic recovered during request processing",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					)

					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, map[string]interface{}{
							"error":      "Internal Server Error",
							"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
						})
					}
				}
			}()

			return next(c)
		}
	}
}
