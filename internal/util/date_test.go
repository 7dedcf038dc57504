package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOfTruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 02:30 on the 5th in UTC+7 is still the 4th in UTC.
	local := time.Date(2025, time.March, 5, 2, 30, 0, 0, loc)

	d := DateOf(local)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 4}, d)
}

func TestDateAddDaysAcrossMonthBoundary(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 31}
	assert.Equal(t, Date{Year: 2025, Month: time.February, Day: 1}, d.AddDays(1))
	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 30}, d.AddDays(-1))
}

func TestDateDaysUntil(t *testing.T) {
	d1 := Date{Year: 2025, Month: time.February, Day: 27}
	d2 := Date{Year: 2025, Month: time.March, Day: 2}

	assert.Equal(t, 3, d1.DaysUntil(d2))
	assert.Equal(t, -3, d2.DaysUntil(d1))
	assert.Equal(t, 0, d1.DaysUntil(d1))
}

func TestDateOrdering(t *testing.T) {
	earlier := Date{Year: 2025, Month: time.June, Day: 1}
	later := Date{Year: 2025, Month: time.June, Day: 2}

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))
	assert.True(t, earlier.Equal(earlier))
}

func TestDateStringAndParseRoundTrip(t *testing.T) {
	d := Date{Year: 2025, Month: time.September, Day: 7}
	assert.Equal(t, "2025-09-07", d.String())

	parsed, err := ParseDate("2025-09-07")
	assert.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDate("07/09/2025")
	assert.Error(t, err)
}

func TestDateWeekday(t *testing.T) {
	// 2025-09-07 is a Sunday.
	d := Date{Year: 2025, Month: time.September, Day: 7}
	assert.Equal(t, "Sunday", d.Weekday())
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Today().IsZero())
}
