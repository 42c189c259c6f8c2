// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayBounds returns the [start, end) interval covering the calendar day the
// given YYYY-MM-DD string names.
func DayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.AddDate(0, 0, 1), nil
}

// RangeBounds returns the [start, end) interval covering the inclusive date
// range [startDate, endDate] given as YYYY-MM-DD strings.
func RangeBounds(startDate, endDate string) (time.Time, time.Time, error) {
	start, _, err := DayBounds(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end, err := DayBounds(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}
