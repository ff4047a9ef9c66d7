// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"
)

// DateLayout format tanggal yang dipakai API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parse "YYYY-MM-DD" ke tengah malam UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FirstOfMonth tanggal 1 di bulan yang sama, jam dibuang.
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// DueDateOf session_date → due_date (tanggal 1 bulan tsb).
func DueDateOf(sessionDate time.Time) time.Time {
	return FirstOfMonth(sessionDate)
}

// CurrentMonthKey "YYYY-MM-01" untuk bulan berjalan menurut now.
func CurrentMonthKey(now time.Time) string {
	return FirstOfMonth(now).Format(DateLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
