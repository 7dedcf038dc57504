package middleware

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizID validates the :id path parameter of quiz routes
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Params("id")

		if errors := vm.validator.ValidateQuizID(quizID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals("validated_quiz_id", quizID)
		return c.Next()
	}
}

// ValidateUserIDParam validates the :userId path parameter
func (vm *ValidationMiddleware) ValidateUserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		if errors := vm.validator.ValidateUserID(userID); len(errors) > 0 {
			return errors
		}

		c.Locals("validated_user_id", userID)
		return c.Next()
	}
}

// RequireJSONBody rejects requests without a JSON content type before the
// handler attempts to parse the body.
func RequireJSONBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return domain.ValidationErrors{
				domain.NewValidationFailure("body", "must be application/json"),
			}
		}
		return c.Next()
	}
}
