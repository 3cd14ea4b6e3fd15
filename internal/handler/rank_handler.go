package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/middleware"
	"resume-builder/internal/service"
)

// RankHandler exposes the rank-and-summarize pipeline.
type RankHandler struct {
	rank *service.RankService
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(rank *service.RankService) *RankHandler {
	return &RankHandler{rank: rank}
}

// Register sets up the ranking route.
func (h *RankHandler) Register(router fiber.Router) {
	router.Post("/resumes/:id/rank-items", h.RankItems)
}

// RankItems ranks a résumé's entries against a job description and
// returns the top items per category with rewritten bullets.
func (h *RankHandler) RankItems(c fiber.Ctx) error {
	uc := middleware.GetUserContext(c)
	if uc == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var body struct {
		JobDescription string `json:"job_description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "job_description is required"})
	}

	result, err := h.rank.RankAndSummarize(c.Context(), c.Params("id"), uc.UserID, body.JobDescription)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}
