package domain

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// FormatMonthKey renders t as a "YYYY-MM" month key.
func FormatMonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey parses a "YYYY-MM" month key.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("month key %q: %w", key, err)
	}
	return t, nil
}

// MonthYear is one selectable month in the history form's picker.
type MonthYear struct {
	Date        time.Time
	MonthKey    string
	DisplayName string
}

// RecentMonths returns the n months before now, most recent first. The
// current month is excluded: history is recorded for completed months.
func RecentMonths(now time.Time, n int) []MonthYear {
	months := make([]MonthYear, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 1; i <= n; i++ {
		d := first.AddDate(0, -i, 0)
		months = append(months, MonthYear{
			Date:        d,
			MonthKey:    FormatMonthKey(d),
			DisplayName: d.Format("Jan 2006"),
		})
	}
	return months
}
