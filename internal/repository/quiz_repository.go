package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/repository/models"
	"vocaquiz/internal/util"
)

// SQLXQuizRepository implements domain.QuizRepository using sqlx.
type SQLXQuizRepository struct {
	db DBTX
}

// NewSQLXQuizRepository creates a new quiz repository.
func NewSQLXQuizRepository(db DBTX) domain.QuizRepository {
	return &SQLXQuizRepository{db: db}
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	if quiz == nil {
		return nil
	}
	return &models.Quiz{
		ID:             quiz.ID,
		Questions:      models.QuestionMap(quiz.Questions),
		WordIDs:        models.StringSlice(quiz.WordIDs),
		RequestedCount: quiz.RequestedCount,
		Summary:        sql.NullString{String: quiz.Summary, Valid: quiz.Summary != ""},
		CreatedAt:      quiz.CreatedAt,
		UpdatedAt:      quiz.UpdatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:             m.ID,
		Questions:      map[string]domain.Question(m.Questions),
		WordIDs:        []string(m.WordIDs),
		RequestedCount: m.RequestedCount,
		Summary:        m.Summary.String,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// SaveQuiz implements domain.QuizRepository. The id and timestamps are
// assigned here and written back to the domain object.
func (r *SQLXQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	modelQuiz.ID = util.NewULID()
	modelQuiz.CreatedAt = time.Now()
	modelQuiz.UpdatedAt = modelQuiz.CreatedAt

	executor := GetExecutor(ctx, r.db)

	query := `INSERT INTO quizzes (
		id, questions, word_ids, requested_count, summary, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := executor.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.Questions,
		modelQuiz.WordIDs,
		modelQuiz.RequestedCount,
		modelQuiz.Summary,
		modelQuiz.CreatedAt,
		modelQuiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	quiz.ID = modelQuiz.ID
	quiz.CreatedAt = modelQuiz.CreatedAt
	quiz.UpdatedAt = modelQuiz.UpdatedAt
	return nil
}

// GetQuizByID implements domain.QuizRepository. A missing quiz yields
// (nil, nil); the service layer decides whether that is an error.
func (r *SQLXQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, r.db)

	var modelQuiz models.Quiz
	query := `SELECT
		id "id",
		questions "questions",
		word_ids "word_ids",
		requested_count "requested_count",
		summary "summary",
		created_at "created_at",
		updated_at "updated_at"
	FROM quizzes
	WHERE id = :1`

	err := executor.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// AppendSubmission implements domain.QuizRepository.
func (r *SQLXQuizRepository) AppendSubmission(ctx context.Context, submission *domain.Submission) error {
	if submission == nil {
		return fmt.Errorf("cannot append nil submission")
	}
	if submission.ID == "" {
		submission.ID = util.NewULID()
	}
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}

	executor := GetExecutor(ctx, r.db)

	query := `INSERT INTO quiz_submissions (
		id, quiz_id, user_id, score, total_questions, percentage, submitted_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := executor.ExecContext(ctx, query,
		submission.ID,
		submission.QuizID,
		submission.UserID,
		submission.Score,
		submission.TotalQuestions,
		submission.Percentage,
		submission.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append submission for quiz %s: %w", submission.QuizID, err)
	}
	return nil
}

// GetSubmissionsByUser implements domain.QuizRepository. Newest first.
func (r *SQLXQuizRepository) GetSubmissionsByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Submission
	query := `SELECT
		id "id",
		quiz_id "quiz_id",
		user_id "user_id",
		score "score",
		total_questions "total_questions",
		percentage "percentage",
		submitted_at "submitted_at"
	FROM quiz_submissions
	WHERE user_id = :1
	ORDER BY submitted_at DESC`

	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get submissions for user %s: %w", userID, err)
	}

	submissions := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, domain.Submission{
			ID:             row.ID,
			QuizID:         row.QuizID,
			UserID:         row.UserID,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Percentage:     row.Percentage,
			SubmittedAt:    row.SubmittedAt,
		})
	}
	return submissions, nil
}
