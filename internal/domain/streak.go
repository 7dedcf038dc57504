package domain

import (
	"time"

	"vocaquiz/internal/util"
)

// ActivityType distinguishes the events that can advance a streak.
type ActivityType string

const (
	ActivityWordsLearned  ActivityType = "words"
	ActivityQuizCompleted ActivityType = "quiz"
)

// StreakRecord tracks a user's consecutive days of learning activity.
// StartDate is the first day of the current streak and EndDate the most
// recent qualifying day; both are nil while the streak is unstarted or
// after a reset.
type StreakRecord struct {
	ID        string
	UserID    string
	Count     int
	StartDate *util.Date
	EndDate   *util.Date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStreakRecord creates an empty streak for a user. The first activity
// promotes it to an active one-day streak.
func NewStreakRecord(userID string) *StreakRecord {
	now := time.Now()
	return &StreakRecord{
		UserID:    userID,
		Count:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the record.
func (r *StreakRecord) Clone() *StreakRecord {
	if r == nil {
		return nil
	}
	out := *r
	if r.StartDate != nil {
		d := *r.StartDate
		out.StartDate = &d
	}
	if r.EndDate != nil {
		d := *r.EndDate
		out.EndDate = &d
	}
	return &out
}
