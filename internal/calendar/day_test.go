package calendar

import (
	"testing"
	"time"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestNewDayDerivedFields(t *testing.T) {
	day := NewDay(time.Date(2022, time.February, 3, 14, 30, 0, 0, time.UTC), "en-US")
	if day.Date() != 3 || day.MonthNumber() != 2 || day.Year() != 2022 {
		t.Fatalf("unexpected date parts: %s", day)
	}
	if day.Day() != "Thursday" || day.DayShort() != "Thu" {
		t.Fatalf("unexpected weekday names: %q %q", day.Day(), day.DayShort())
	}
	if day.DayNumber() != 5 {
		t.Fatalf("expected ordinal 5 for Thursday, got %d", day.DayNumber())
	}
	if day.Month() != "February" || day.MonthShort() != "Feb" {
		t.Fatalf("unexpected month names: %q %q", day.Month(), day.MonthShort())
	}
	if day.YearShort() != "22" {
		t.Fatalf("expected 2-digit year 22, got %q", day.YearShort())
	}
	if day.Week() != 5 {
		t.Fatalf("expected ISO week 5, got %d", day.Week())
	}
	if day.Timestamp() != day.Time().UnixMilli() {
		t.Fatalf("timestamp mismatch")
	}
	if day.Locale() != "en" {
		t.Fatalf("expected en locale, got %q", day.Locale())
	}
}

func TestNewDayZeroMeansNow(t *testing.T) {
	fixNow(t, d(2030, time.July, 4))
	day := NewDay(time.Time{}, "")
	if day.Year() != 2030 || day.MonthNumber() != 7 || day.Date() != 4 {
		t.Fatalf("expected fixed now, got %s", day)
	}
	if !day.IsToday() {
		t.Fatalf("expected IsToday")
	}
}

func TestNewDayLocaleOrdinal(t *testing.T) {
	day := NewDay(d(2022, time.February, 3), "de-DE")
	if day.Day() != "Donnerstag" {
		t.Fatalf("expected German weekday, got %q", day.Day())
	}
	if day.DayNumber() != 4 {
		t.Fatalf("expected Monday-first ordinal 4, got %d", day.DayNumber())
	}
}

func TestIsEqualToIgnoresTimeAndLocale(t *testing.T) {
	a := NewDay(time.Date(2022, time.March, 9, 1, 0, 0, 0, time.UTC), "en")
	b := NewDay(time.Date(2022, time.March, 9, 23, 59, 0, 0, time.UTC), "fr")
	if !a.IsEqualTo(a) {
		t.Fatalf("IsEqualTo should be reflexive")
	}
	if !a.IsEqualTo(b) || !b.IsEqualTo(a) {
		t.Fatalf("IsEqualTo should be symmetric across time of day")
	}
	c := NewDay(d(2022, time.March, 10), "en")
	if a.IsEqualTo(c) {
		t.Fatalf("different days should not be equal")
	}
}

func TestIsLessTo(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same day counts as less", d(2022, 5, 5), d(2022, 5, 5), true},
		{"earlier day", d(2022, 5, 4), d(2022, 5, 5), true},
		{"later day", d(2022, 5, 6), d(2022, 5, 5), false},
		{"earlier month later day", d(2022, 4, 30), d(2022, 5, 1), true},
		{"later month earlier day", d(2022, 6, 1), d(2022, 5, 31), false},
		{"earlier year", d(2021, 12, 31), d(2022, 1, 1), true},
		{"later year", d(2023, 1, 1), d(2022, 12, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDay(tt.a, "en").IsLessTo(NewDay(tt.b, "en"))
			if got != tt.want {
				t.Fatalf("IsLessTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := NewDay(d(2022, 5, 4), "en")
	b := NewDay(d(2022, 5, 5), "en")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("unexpected Compare results")
	}
}

func TestFormat(t *testing.T) {
	day := NewDay(d(2022, time.February, 3), "en")
	tests := []struct {
		pattern string
		want    string
	}{
		{"YYYY-MM-DD", "2022-02-03"},
		{"D/M/YYY", "3/2/22"},
		{"DD/MM/YYYY", "03/02/2022"},
		{"MM/DD/YYYY", "02/03/2022"},
		{"DDDD, MMMM D", "Thursday, February 3"},
		{"DDD MMM", "Thu Feb"},
		{"week WW", "week 05"},
		{"W", "5"},
		{"no tokens here", "no tokens here"},
		{"YYYYY", "YYYYY"},
		{"DD DD", "03 DD"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := day.Format(tt.pattern); got != tt.want {
				t.Fatalf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := NewDay(d(2024, 12, 1), "en").String(); got != "1/12/2024" {
		t.Fatalf("String = %q", got)
	}
}
