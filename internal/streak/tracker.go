// Package streak implements the day-granularity state machine behind
// consecutive-activity tracking. All transitions are pure functions over a
// StreakRecord and an explicit "today", so the logic tests without mocking
// time; persistence and locking live in the streak service.
package streak

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/util"
)

// HistoryDays is the size of the trailing activity window reported to
// clients.
const HistoryDays = 7

// Advance applies one qualifying activity on the given day and returns the
// resulting record plus whether anything changed. The states:
//
//	no record        -> new record, count 1, start = end = today
//	end == today     -> unchanged (idempotent within one calendar day)
//	end == yesterday -> count+1, end = today
//	anything older   -> restart: count 1, start = end = today
//
// The same-day no-op is what keeps a quiz submission that also marks words
// learned from crediting the streak twice.
func Advance(record *domain.StreakRecord, today util.Date) (*domain.StreakRecord, bool) {
	if record == nil {
		fresh := domain.NewStreakRecord("")
		fresh.Count = 1
		fresh.StartDate = &today
		fresh.EndDate = &today
		return fresh, true
	}

	out := record.Clone()
	switch {
	case out.EndDate != nil && out.EndDate.Equal(today):
		return out, false
	case out.EndDate != nil && out.EndDate.Equal(today.AddDays(-1)):
		out.Count++
		out.EndDate = &today
	default:
		out.Count = 1
		out.StartDate = &today
		out.EndDate = &today
	}
	return out, true
}

// Reset returns the record with its streak zeroed and both dates cleared.
// Resetting an already-empty record is a no-op.
func Reset(record *domain.StreakRecord) *domain.StreakRecord {
	out := record.Clone()
	out.Count = 0
	out.StartDate = nil
	out.EndDate = nil
	return out
}

// IsActive reports whether the streak is still alive on the given day: the
// last qualifying activity was today or yesterday.
func IsActive(record *domain.StreakRecord, today util.Date) bool {
	if record == nil || record.EndDate == nil {
		return false
	}
	return record.EndDate.Equal(today) || record.EndDate.Equal(today.AddDays(-1))
}

// DayStatus describes one day inside the trailing history window.
type DayStatus struct {
	Date      string `json:"date"`
	DayName   string `json:"dayName"`
	Completed bool   `json:"completed"`
	IsToday   bool   `json:"isToday"`
}

// History builds the trailing window of HistoryDays days ending today. A day
// counts as completed iff it falls within [startDate, endDate] inclusive,
// compared as calendar dates.
func History(record *domain.StreakRecord, today util.Date) []DayStatus {
	history := make([]DayStatus, 0, HistoryDays)
	for i := HistoryDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		completed := false
		if record != nil && record.StartDate != nil && record.EndDate != nil {
			completed = !day.Before(*record.StartDate) && !day.After(*record.EndDate)
		}
		history = append(history, DayStatus{
			Date:      day.String(),
			DayName:   day.Weekday(),
			Completed: completed,
			IsToday:   i == 0,
		})
	}
	return history
}
