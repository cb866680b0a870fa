package report

import (
	"errors"
	"regexp"
	"time"
)

var monthRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ErrBadMonth is returned for month strings not in YYYY-MM form.
var ErrBadMonth = errors.New("invalid month format, use YYYY-MM")

// MonthWindow translates a YYYY-MM string into the half-open UTC range
// [first of month, first of next month).
func MonthWindow(month string) (start, end time.Time, err error) {
	if !monthRE.MatchString(month) {
		return time.Time{}, time.Time{}, ErrBadMonth
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadMonth
	}
	return t, t.AddDate(0, 1, 0), nil
}
