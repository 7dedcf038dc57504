package models

import (
	"database/sql"
	"time"
)

// Streak is the row model for the streaks table. One row per user; start and
// end date are NULL while the streak is unstarted or after a reset.
type Streak struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	StreakCount int          `db:"streak_count"`
	StartDate   sql.NullTime `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}
