package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/domain"
	"resume-builder/internal/middleware"
	"resume-builder/internal/service"
)

// AuthHandler handles signup, login, and current-user endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register sets up the public auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
}

// RegisterProtected sets up auth routes that require a valid token.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Get("/me", h.Me)
}

// Signup registers a new account and returns a bearer token.
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req domain.SignupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, _, err := h.auth.Signup(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(domain.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, _, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(domain.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := h.auth.CurrentUser(c.Context(), uc.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}
