package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "+1:00", "12-00", "12:000"} {
		_, err := ToMinutes(in)
		if !errors.Is(err, ErrMalformedTime) {
			t.Fatalf("ToMinutes(%q): expected ErrMalformedTime, got %v", in, err)
		}
		var mt *MalformedTimeError
		if !errors.As(err, &mt) || mt.Value != in {
			t.Fatalf("ToMinutes(%q): expected MalformedTimeError naming the value, got %v", in, err)
		}
	}
}

func TestLaterOfEarlierOf(t *testing.T) {
	later, err := LaterOf("09:30", "11:00")
	if err != nil || later != "11:00" {
		t.Fatalf("LaterOf = %q, %v; want 11:00", later, err)
	}
	earlier, err := EarlierOf("09:30", "11:00")
	if err != nil || earlier != "09:30" {
		t.Fatalf("EarlierOf = %q, %v; want 09:30", earlier, err)
	}
	tie, err := LaterOf("10:00", "10:00")
	if err != nil || tie != "10:00" {
		t.Fatalf("LaterOf tie = %q, %v", tie, err)
	}
	if _, err := EarlierOf("10:00", "bad"); !errors.Is(err, ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}

func TestMidnight(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	got := Midnight(now)
	if !got.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected midnight %s", got)
	}
}

func TestFormatLongDate(t *testing.T) {
	if got := FormatLongDate("2026-03-10"); got != "Tuesday, March 10, 2026" {
		t.Fatalf("unexpected format %q", got)
	}
	if got := FormatLongDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
