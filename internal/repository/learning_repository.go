package repository

import (
	"context"
	"fmt"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/repository/models"
	"vocaquiz/internal/util"
)

// SQLXLearningRepository implements domain.LearningRepository using sqlx.
type SQLXLearningRepository struct {
	db DBTX
}

// NewSQLXLearningRepository creates a new learning record repository.
func NewSQLXLearningRepository(db DBTX) domain.LearningRepository {
	return &SQLXLearningRepository{db: db}
}

// GetRememberedWords implements domain.LearningRepository.
func (r *SQLXLearningRepository) GetRememberedWords(ctx context.Context, userID, categoryID string) ([]domain.Word, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Word
	query := `SELECT
		w.id "id",
		w.category_id "category_id",
		w.text "text",
		w.meaning "meaning",
		w.phonetic "phonetic",
		w.part_of_speech "part_of_speech",
		w.example "example",
		w.created_at "created_at",
		w.updated_at "updated_at"
	FROM learning_records lr
	JOIN words w ON w.id = lr.word_id
	WHERE lr.user_id = :1 AND lr.category_id = :2
	ORDER BY lr.learned_at`

	if err := executor.SelectContext(ctx, &rows, query, userID, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get remembered words for user %s: %w", userID, err)
	}
	return toDomainWords(rows), nil
}

// GetAllRememberedWords implements domain.LearningRepository. A word learned
// under several categories appears once.
func (r *SQLXLearningRepository) GetAllRememberedWords(ctx context.Context, userID string) ([]domain.Word, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Word
	query := `SELECT DISTINCT
		w.id "id",
		w.category_id "category_id",
		w.text "text",
		w.meaning "meaning",
		w.phonetic "phonetic",
		w.part_of_speech "part_of_speech",
		w.example "example",
		w.created_at "created_at",
		w.updated_at "updated_at"
	FROM learning_records lr
	JOIN words w ON w.id = lr.word_id
	WHERE lr.user_id = :1`

	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get remembered words for user %s: %w", userID, err)
	}
	return toDomainWords(rows), nil
}

// MarkLearned implements domain.LearningRepository. MERGE keeps the call
// idempotent: a word already recorded for the user and category is left
// untouched.
func (r *SQLXLearningRepository) MarkLearned(ctx context.Context, userID, categoryID string, wordIDs []string) error {
	if len(wordIDs) == 0 {
		return nil
	}

	executor := GetExecutor(ctx, r.db)

	query := `MERGE INTO learning_records lr
	USING (SELECT :1 user_id, :2 category_id, :3 word_id FROM dual) src
	ON (lr.user_id = src.user_id AND lr.category_id = src.category_id AND lr.word_id = src.word_id)
	WHEN NOT MATCHED THEN
		INSERT (id, user_id, category_id, word_id, learned_at)
		VALUES (:4, src.user_id, src.category_id, src.word_id, :5)`

	now := time.Now()
	for _, wordID := range wordIDs {
		if _, err := executor.ExecContext(ctx, query, userID, categoryID, wordID, util.NewULID(), now); err != nil {
			return fmt.Errorf("failed to mark word %s learned: %w", wordID, err)
		}
	}
	return nil
}
