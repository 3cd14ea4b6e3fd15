package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// AuditWriter defines how request audit records are persisted.
type AuditWriter interface {
	WriteAudit(userID, method, path, ip, userAgent string, status int) error
}

// AuditMiddleware records every API request.
func AuditMiddleware(writer AuditWriter) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Capture request data BEFORE handler execution (Fiber reuses context objects)
		method := c.Method()
		path := c.Path()
		ip := c.IP()
		userAgent := c.Get("User-Agent")

		err := c.Next()

		userID := "anonymous"
		if uc := GetUserContext(c); uc != nil {
			userID = uc.UserID
		}
		status := c.Response().StatusCode()

		// Write asynchronously — all values are captured, safe to use in goroutine
		go func() {
			if writeErr := writer.WriteAudit(userID, method, path, ip, userAgent, status); writeErr != nil {
				slog.Error("failed to write audit log", "error", writeErr)
			}
		}()

		return err
	}
}
