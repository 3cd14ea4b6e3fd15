package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/domain"
	"resume-builder/internal/middleware"
	"resume-builder/internal/service"
)

// ResumeHandler handles résumé CRUD endpoints.
type ResumeHandler struct {
	resumes *service.ResumeService
}

// NewResumeHandler creates a new résumé handler.
func NewResumeHandler(resumes *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// Register sets up résumé routes. Fixed paths must come before the
// parameterized ones so "me" and "lookup" are not captured as ids.
func (h *ResumeHandler) Register(router fiber.Router) {
	resumes := router.Group("/resumes")
	resumes.Post("/", h.Create)
	resumes.Get("/me", h.GetOwn)
	resumes.Get("/lookup/experience-projects", h.LookupItemsByEmail)
	resumes.Get("/:id", h.GetByID)
	resumes.Put("/:id", h.Update)
	resumes.Delete("/:id", h.Delete)
	resumes.Get("/:id/experience-projects", h.GetItems)
}

// Create ingests a résumé payload for the authenticated user.
func (h *ResumeHandler) Create(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var payload domain.IngestResume
	if err := c.Bind().JSON(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	resume, err := h.resumes.CreateFromIngest(c.Context(), uc.UserID, payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resume)
}

// GetOwn returns the authenticated user's résumé.
func (h *ResumeHandler) GetOwn(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	resume, err := h.resumes.GetOwn(c.Context(), uc.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resume)
}

// GetByID returns a résumé by id, owner only.
func (h *ResumeHandler) GetByID(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	resume, err := h.resumes.GetByID(c.Context(), c.Params("id"), uc.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resume)
}

// Update replaces a résumé with a freshly ingested payload.
func (h *ResumeHandler) Update(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var payload domain.IngestResume
	if err := c.Bind().JSON(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	resume, err := h.resumes.Update(c.Context(), c.Params("id"), uc.UserID, payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resume)
}

// Delete removes a résumé, owner only.
func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := h.resumes.Delete(c.Context(), c.Params("id"), uc.UserID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "resume deleted"})
}

// GetItems returns the work-experience and project sections of a résumé.
func (h *ResumeHandler) GetItems(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	work, projects, err := h.resumes.FetchItems(c.Context(), c.Params("id"), uc.UserID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"work_experience": work,
		"projects":        projects,
	})
}

// LookupItemsByEmail returns the same sections located by contact email.
func (h *ResumeHandler) LookupItemsByEmail(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter is required"})
	}

	resume, err := h.resumes.GetByEmail(c.Context(), email)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"work_experience": resume.WorkExperience,
		"projects":        resume.Projects,
	})
}
