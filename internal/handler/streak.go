package handler

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"
	"vocaquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StreakHandler handles streak-related HTTP requests
type StreakHandler struct {
	service service.StreakService
}

// NewStreakHandler creates a new StreakHandler instance
func NewStreakHandler(service service.StreakService) *StreakHandler {
	return &StreakHandler{
		service: service,
	}
}

// Initialize godoc
// @Summary Initialize a streak for a user
// @Description Creates a zero streak if the user has none; returns the existing one otherwise
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body dto.InitializeStreakRequest true "Initialize request"
// @Success 201 {object} dto.StreakResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /streaks/initialize [post]
func (h *StreakHandler) Initialize(c *fiber.Ctx) error {
	var req dto.InitializeStreakRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.Initialize(c.UserContext(), req.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetCurrent godoc
// @Summary Get a user's current streak
// @Tags streaks
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.StreakResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /streaks/{userId} [get]
func (h *StreakHandler) GetCurrent(c *fiber.Ctx) error {
	userID := c.Params("userId")

	resp, err := h.service.GetCurrent(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RecordActivity godoc
// @Summary Record a learning activity
// @Description Advances the streak for one qualifying activity; idempotent within a calendar day
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body dto.RecordActivityRequest true "Activity event"
// @Success 200 {object} dto.StreakResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /streaks/activity [post]
func (h *StreakHandler) RecordActivity(c *fiber.Ctx) error {
	var req dto.RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.RecordActivity(c.UserContext(), req.UserID, req.ActivityType)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Reset godoc
// @Summary Reset a user's streak
// @Tags streaks
// @Accept json
// @Produce json
// @Param request body dto.ResetStreakRequest true "Reset request"
// @Success 200 {object} dto.StreakResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /streaks/reset [post]
func (h *StreakHandler) Reset(c *fiber.Ctx) error {
	var req dto.ResetStreakRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.Reset(c.UserContext(), req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetHistory godoc
// @Summary Get a user's trailing 7-day activity window
// @Tags streaks
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.StreakHistoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /streaks/{userId}/history [get]
func (h *StreakHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")

	resp, err := h.service.History(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetStats godoc
// @Summary Get streak summary statistics
// @Tags streaks
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.StreakStatsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /streaks/{userId}/stats [get]
func (h *StreakHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Params("userId")

	resp, err := h.service.Stats(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
