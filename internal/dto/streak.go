package dto

// InitializeStreakRequest lazily creates a zero streak for a user.
// @Description Request body for initializing a streak
type InitializeStreakRequest struct {
	UserID string `json:"user_id"`
}

// ResetStreakRequest zeroes a user's streak.
// @Description Request body for resetting a streak
type ResetStreakRequest struct {
	UserID string `json:"user_id"`
}

// RecordActivityRequest records one learning activity event for a user.
// ActivityType is "words" or "quiz"; both advance the streak the same way.
// @Description Request body for recording a learning activity
type RecordActivityRequest struct {
	UserID       string `json:"user_id"`
	ActivityType string `json:"activity_type"`
}

// StreakResponse represents a user's current streak. Dates are calendar days
// in "2006-01-02" form and empty while the streak is unstarted.
// @Description Current streak state
type StreakResponse struct {
	UserID      string `json:"user_id"`
	StreakCount int    `json:"streak_count"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// DayStatusResponse is one day of the trailing streak history window.
type DayStatusResponse struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	Completed bool   `json:"completed"`
	IsToday   bool   `json:"is_today"`
}

// StreakHistoryResponse is the trailing 7-day activity window for a user.
// @Description Trailing 7-day streak history
type StreakHistoryResponse struct {
	UserID string              `json:"user_id"`
	Days   []DayStatusResponse `json:"days"`
}

// StreakStatsResponse summarizes a user's streak.
// @Description Streak summary statistics
type StreakStatsResponse struct {
	UserID      string `json:"user_id"`
	StreakCount int    `json:"streak_count"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	IsActive    bool   `json:"is_active"`
	DaysTracked int    `json:"days_tracked"`
}
