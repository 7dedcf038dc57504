package validation

import (
	"regexp"
	"strings"

	"vocaquiz/internal/domain"
)

const (
	// MinQuestionCount and MaxQuestionCount bound the number of questions a
	// single quiz may contain.
	MinQuestionCount = 1
	MaxQuestionCount = 60
)

// Validator provides request validation functionality.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionCount checks the requested question count range.
func (v *Validator) ValidateQuestionCount(count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if count < MinQuestionCount || count > MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, MinQuestionCount, MaxQuestionCount))
	}

	return errors
}

// ValidateUserID checks that a user id is present.
func (v *Validator) ValidateUserID(userID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(userID) == "" {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	}

	return errors
}

// ValidateCategoryQuizRequest validates a category quiz request.
func (v *Validator) ValidateCategoryQuizRequest(categoryID, userID string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(categoryID) == "" {
		errors = append(errors, domain.NewMissingFieldError("category_id"))
	} else if !isValidULID(categoryID) {
		errors = append(errors, domain.NewInvalidFormatError("category_id", categoryID))
	}

	errors = append(errors, v.ValidateUserID(userID)...)
	errors = append(errors, v.ValidateQuestionCount(count)...)

	return errors
}

// ValidateComprehensiveQuizRequest validates a comprehensive quiz request.
func (v *Validator) ValidateComprehensiveQuizRequest(userID string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateUserID(userID)...)
	errors = append(errors, v.ValidateQuestionCount(count)...)

	return errors
}

// ValidateQuizID checks that a quiz id is a well-formed ULID.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	return errors
}

// ValidateSubmitQuizRequest validates a quiz submission.
func (v *Validator) ValidateSubmitQuizRequest(quizID, userID string, answers []domain.Answer) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateQuizID(quizID)...)
	errors = append(errors, v.ValidateUserID(userID)...)

	if len(answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}
	for _, answer := range answers {
		if strings.TrimSpace(answer.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.question_id"))
			break
		}
	}

	return errors
}

// ValidateActivityType checks the activity type of a streak event.
func (v *Validator) ValidateActivityType(activityType string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	switch domain.ActivityType(activityType) {
	case domain.ActivityWordsLearned, domain.ActivityQuizCompleted:
	default:
		errors = append(errors, domain.NewInvalidFormatError("activity_type", activityType))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format.
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
