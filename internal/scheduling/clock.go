package scheduling

import (
	"strconv"
	"time"
)

const (
	// DateLayout is the fixed-width calendar date format used everywhere.
	// Fixed width makes lexicographic comparison equal to chronological.
	DateLayout = "2006-01-02"
	timeFormat = "HH:mm"
)

// ToMinutes converts an HH:mm wall-clock value into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' || !digits(hhmm[:2]) || !digits(hhmm[3:]) {
		return 0, &MalformedTimeError{Value: hhmm, Format: timeFormat}
	}
	hours, _ := strconv.Atoi(hhmm[:2])
	minutes, _ := strconv.Atoi(hhmm[3:])
	if hours > 23 || minutes > 59 {
		return 0, &MalformedTimeError{Value: hhmm, Format: timeFormat}
	}
	return hours*60 + minutes, nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LaterOf returns whichever of a and b is later in the day.
func LaterOf(a, b string) (string, error) {
	ma, mb, err := minutesPair(a, b)
	if err != nil {
		return "", err
	}
	if ma >= mb {
		return a, nil
	}
	return b, nil
}

// EarlierOf returns whichever of a and b is earlier in the day.
func EarlierOf(a, b string) (string, error) {
	ma, mb, err := minutesPair(a, b)
	if err != nil {
		return "", err
	}
	if ma <= mb {
		return a, nil
	}
	return b, nil
}

func minutesPair(a, b string) (int, int, error) {
	ma, err := ToMinutes(a)
	if err != nil {
		return 0, 0, err
	}
	mb, err := ToMinutes(b)
	if err != nil {
		return 0, 0, err
	}
	return ma, mb, nil
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &MalformedTimeError{Value: date, Format: "YYYY-MM-DD"}
	}
	return t, nil
}

// Midnight truncates now to the start of its day in its own location.
func Midnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// FormatLongDate renders a calendar date as "Monday, March 10, 2026".
func FormatLongDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
