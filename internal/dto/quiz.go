package dto

import (
	"time"

	"vocaquiz/internal/domain"
)

// CategoryQuizRequest asks for a quiz built from the words a user has
// remembered in one category.
// @Description Request body for a category quiz
type CategoryQuizRequest struct {
	CategoryID string `json:"category_id"`
	UserID     string `json:"user_id"`
	Count      int    `json:"count"`
}

// ComprehensiveQuizRequest asks for a quiz built from all words a user has
// remembered across categories.
// @Description Request body for a comprehensive quiz
type ComprehensiveQuizRequest struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

// RandomQuizRequest asks for a quiz drawn from the whole word pool.
// @Description Request body for a random quiz
type RandomQuizRequest struct {
	Count int `json:"count"`
}

// QuizResponse represents a generated quiz in the API response. Question
// bodies keep their wire shape, keyed q1..qN.
// @Description Generated quiz
type QuizResponse struct {
	ID             string                     `json:"id"`
	Questions      map[string]domain.Question `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
	Summary        string                     `json:"summary"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// SubmitQuizRequest carries a user's answers to a quiz.
// @Description Request body for submitting quiz answers
type SubmitQuizRequest struct {
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Answers    []domain.Answer `json:"answers"`
}

// SubmitQuizResponse is the scored outcome of a submission. The learning
// record update is best-effort: when it fails the result is still returned
// with learning_update_failed set.
// @Description Scored submission result
type SubmitQuizResponse struct {
	QuizID               string          `json:"quiz_id"`
	Result               *domain.Result  `json:"result"`
	WordsMarkedAsLearned int             `json:"words_marked_as_learned"`
	LearningUpdateFailed bool            `json:"learning_update_failed,omitempty"`
	Streak               *StreakResponse `json:"streak,omitempty"`
}

// SubmissionResponse represents one past submission in a user's history.
type SubmissionResponse struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// UserQuizHistoryResponse lists a user's submissions, newest first.
// @Description Submission history for a user
type UserQuizHistoryResponse struct {
	UserID      string               `json:"user_id"`
	Submissions []SubmissionResponse `json:"submissions"`
}

// ErrorResponse represents an error in the API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
