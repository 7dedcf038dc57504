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

const streakColumns = `
	id "id",
	user_id "user_id",
	streak_count "streak_count",
	start_date "start_date",
	end_date "end_date",
	created_at "created_at",
	updated_at "updated_at"`

// SQLXStreakRepository implements domain.StreakRepository using sqlx.
type SQLXStreakRepository struct {
	db DBTX
}

// NewSQLXStreakRepository creates a new streak repository.
func NewSQLXStreakRepository(db DBTX) domain.StreakRepository {
	return &SQLXStreakRepository{db: db}
}

func toDomainStreak(m *models.Streak) *domain.StreakRecord {
	if m == nil {
		return nil
	}
	record := &domain.StreakRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Count:     m.StreakCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.StartDate.Valid {
		d := util.DateOf(m.StartDate.Time)
		record.StartDate = &d
	}
	if m.EndDate.Valid {
		d := util.DateOf(m.EndDate.Time)
		record.EndDate = &d
	}
	return record
}

func nullDate(d *util.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time(), Valid: true}
}

func (r *SQLXStreakRepository) getByUserID(ctx context.Context, userID, lockClause string) (*domain.StreakRecord, error) {
	executor := GetExecutor(ctx, r.db)

	var row models.Streak
	query := `SELECT ` + streakColumns + `
	FROM streaks
	WHERE user_id = :1` + lockClause

	err := executor.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get streak for user %s: %w", userID, err)
	}
	return toDomainStreak(&row), nil
}

// GetByUserID implements domain.StreakRepository.
func (r *SQLXStreakRepository) GetByUserID(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	return r.getByUserID(ctx, userID, "")
}

// GetByUserIDForUpdate implements domain.StreakRepository. The row lock
// serializes concurrent activity recordings for the same user; callers must
// hold an open transaction in the context.
func (r *SQLXStreakRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	return r.getByUserID(ctx, userID, " FOR UPDATE")
}

// Insert implements domain.StreakRepository.
func (r *SQLXStreakRepository) Insert(ctx context.Context, record *domain.StreakRecord) error {
	if record == nil {
		return fmt.Errorf("cannot insert nil streak record")
	}
	record.ID = util.NewULID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	executor := GetExecutor(ctx, r.db)

	query := `INSERT INTO streaks (
		id, user_id, streak_count, start_date, end_date, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := executor.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Count,
		nullDate(record.StartDate),
		nullDate(record.EndDate),
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert streak for user %s: %w", record.UserID, err)
	}
	return nil
}

// Update implements domain.StreakRepository.
func (r *SQLXStreakRepository) Update(ctx context.Context, record *domain.StreakRecord) error {
	if record == nil {
		return fmt.Errorf("cannot update nil streak record")
	}
	record.UpdatedAt = time.Now()

	executor := GetExecutor(ctx, r.db)

	query := `UPDATE streaks SET
		streak_count = :1,
		start_date = :2,
		end_date = :3,
		updated_at = :4
	WHERE id = :5`

	_, err := executor.ExecContext(ctx, query,
		record.Count,
		nullDate(record.StartDate),
		nullDate(record.EndDate),
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update streak %s: %w", record.ID, err)
	}
	return nil
}
