package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/port"
)

// errorResponse maps service-layer sentinel errors to HTTP statuses and
// renders the standard error body. Unrecognized errors become 500s and
// are logged without leaking internals to the client.
func errorResponse(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, port.ErrInvalidInput),
		errors.Is(err, port.ErrEmailTaken):
		status = fiber.StatusBadRequest
	case errors.Is(err, port.ErrInvalidCredentials),
		errors.Is(err, port.ErrTokenInvalid):
		status = fiber.StatusUnauthorized
	case errors.Is(err, port.ErrForbidden),
		errors.Is(err, port.ErrUserInactive):
		status = fiber.StatusForbidden
	case errors.Is(err, port.ErrUserNotFound),
		errors.Is(err, port.ErrResumeNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, port.ErrResumeExists):
		status = fiber.StatusConflict
	case errors.Is(err, port.ErrPersonalRequired):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, port.ErrEmbedderUnavailable),
		errors.Is(err, port.ErrSummarizerUnavailable):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
