package repository

import (
	"context"
	"fmt"
	"strings"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/repository/models"
)

const wordColumns = `
	id "id",
	category_id "category_id",
	text "text",
	meaning "meaning",
	phonetic "phonetic",
	part_of_speech "part_of_speech",
	example "example",
	created_at "created_at",
	updated_at "updated_at"`

// SQLXWordRepository implements domain.WordRepository using sqlx.
type SQLXWordRepository struct {
	db DBTX
}

// NewSQLXWordRepository creates a new word repository.
func NewSQLXWordRepository(db DBTX) domain.WordRepository {
	return &SQLXWordRepository{db: db}
}

func toDomainWord(m *models.Word) domain.Word {
	return domain.Word{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		Text:         m.Text,
		Meaning:      m.Meaning,
		Phonetic:     m.Phonetic.String,
		PartOfSpeech: m.PartOfSpeech.String,
		Example:      m.Example.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainWords(rows []models.Word) []domain.Word {
	words := make([]domain.Word, 0, len(rows))
	for i := range rows {
		words = append(words, toDomainWord(&rows[i]))
	}
	return words
}

// GetAllWords implements domain.WordRepository.
func (r *SQLXWordRepository) GetAllWords(ctx context.Context) ([]domain.Word, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Word
	query := `SELECT ` + wordColumns + `
	FROM words
	ORDER BY created_at`

	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get all words: %w", err)
	}
	return toDomainWords(rows), nil
}

// GetWordsByCategory implements domain.WordRepository.
func (r *SQLXWordRepository) GetWordsByCategory(ctx context.Context, categoryID string) ([]domain.Word, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Word
	query := `SELECT ` + wordColumns + `
	FROM words
	WHERE category_id = :1
	ORDER BY created_at`

	if err := executor.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get words for category %s: %w", categoryID, err)
	}
	return toDomainWords(rows), nil
}

// GetWordsByIDs implements domain.WordRepository.
func (r *SQLXWordRepository) GetWordsByIDs(ctx context.Context, ids []string) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	executor := GetExecutor(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}

	var rows []models.Word
	query := `SELECT ` + wordColumns + `
	FROM words
	WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	if err := executor.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get words by ids: %w", err)
	}
	return toDomainWords(rows), nil
}
