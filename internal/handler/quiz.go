package handler

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/dto"
	"vocaquiz/internal/logger"
	"vocaquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// CreateCategoryQuiz godoc
// @Summary Create a quiz from one category
// @Description Generates a quiz from the words the user has remembered in the category
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CategoryQuizRequest true "Category quiz request"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/category [post]
func (h *QuizHandler) CreateCategoryQuiz(c *fiber.Ctx) error {
	var req dto.CategoryQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateCategoryQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateComprehensiveQuiz godoc
// @Summary Create a quiz from all remembered words
// @Description Generates a quiz spanning every category the user has learned in
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.ComprehensiveQuizRequest true "Comprehensive quiz request"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/comprehensive [post]
func (h *QuizHandler) CreateComprehensiveQuiz(c *fiber.Ctx) error {
	var req dto.ComprehensiveQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateComprehensiveQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateRandomQuiz godoc
// @Summary Create a quiz from the whole word pool
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.RandomQuizRequest true "Random quiz request"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/random [post]
func (h *QuizHandler) CreateRandomQuiz(c *fiber.Ctx) error {
	var req dto.RandomQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.CreateRandomQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")

	resp, err := h.service.GetQuiz(c.UserContext(), quizID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Scores the answers, records the submission, marks correctly answered words as learned and advances the streak
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Submission"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SubmitQuiz(c.UserContext(), quizID, &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz submitted",
		zap.String("quizID", quizID),
		zap.String("userID", req.UserID),
		zap.Int("score", resp.Result.Score),
	)

	return c.JSON(resp)
}

// GetUserQuizHistory godoc
// @Summary Get a user's submission history
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.UserQuizHistoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /users/{userId}/quizzes [get]
func (h *QuizHandler) GetUserQuizHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")

	resp, err := h.service.GetUserQuizHistory(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
