package calendar

import (
	"testing"
	"time"
)

func TestNewFallsBackToNow(t *testing.T) {
	fixNow(t, time.Date(2031, time.August, 20, 9, 0, 0, 0, time.UTC))
	c := New(0, 0, "")
	if c.Year() != 2031 || c.Month().Number() != 8 {
		t.Fatalf("expected 8/2031, got %d/%d", c.Month().Number(), c.Year())
	}
	if !c.Today.IsEqualTo(NewDay(time.Time{}, "")) {
		t.Fatalf("expected today to follow now")
	}
}

func TestWeekDaysEnglish(t *testing.T) {
	c := New(2022, 6, "en")
	want := [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if c.WeekDays != want {
		t.Fatalf("WeekDays = %v", c.WeekDays)
	}
}

func TestWeekDaysMondayFirst(t *testing.T) {
	c := New(2022, 6, "de")
	if c.WeekDays[0] != "Montag" || c.WeekDays[6] != "Sonntag" {
		t.Fatalf("WeekDays = %v", c.WeekDays)
	}
}

func TestNextThenPreviousMonthRoundTrips(t *testing.T) {
	for month := 2; month <= 11; month++ {
		c := New(2022, month, "en")
		c.ToNextMonth()
		c.ToPreviousMonth()
		if c.Month().Number() != month || c.Year() != 2022 {
			t.Fatalf("month %d: got %d/%d", month, c.Month().Number(), c.Year())
		}
	}
}

func TestYearBoundaries(t *testing.T) {
	c := New(2022, 12, "en")
	c.ToNextMonth()
	if c.Month().Number() != 1 || c.Year() != 2023 {
		t.Fatalf("December+1 = %d/%d", c.Month().Number(), c.Year())
	}
	c.ToPreviousMonth()
	if c.Month().Number() != 12 || c.Year() != 2022 {
		t.Fatalf("January-1 = %d/%d", c.Month().Number(), c.Year())
	}
	if c.Month().Year() != c.Year() {
		t.Fatalf("month year %d out of sync with cursor %d", c.Month().Year(), c.Year())
	}
}

func TestAdjacentMonthsDoNotMove(t *testing.T) {
	c := New(2022, 1, "en")
	prev := c.PreviousMonth()
	if prev.Number() != 12 || prev.Year() != 2021 {
		t.Fatalf("previous of Jan 2022 = %d/%d", prev.Number(), prev.Year())
	}
	c.ToDate(12, 2022)
	next := c.NextMonth()
	if next.Number() != 1 || next.Year() != 2023 {
		t.Fatalf("next of Dec 2022 = %d/%d", next.Number(), next.Year())
	}
	if c.Month().Number() != 12 || c.Year() != 2022 {
		t.Fatalf("cursor moved")
	}
	c.ToDate(6, 2022)
	if next := c.NextMonth(); next.Number() != 7 {
		t.Fatalf("next of June = %d", next.Number())
	}
}

func TestYearJumps(t *testing.T) {
	c := New(2022, 6, "en")
	c.ToNextYear()
	if c.Year() != 2023 || c.Month().Number() != 1 {
		t.Fatalf("ToNextYear = %d/%d", c.Month().Number(), c.Year())
	}
	c.ToPreviousYear()
	if c.Year() != 2022 || c.Month().Number() != 12 {
		t.Fatalf("ToPreviousYear = %d/%d", c.Month().Number(), c.Year())
	}
}

func TestToDateNormalizes(t *testing.T) {
	c := New(2022, 6, "en")
	c.ToDate(13, 2022)
	if c.Month().Number() != 1 || c.Year() != 2023 {
		t.Fatalf("ToDate(13, 2022) = %d/%d", c.Month().Number(), c.Year())
	}
}

func TestMonthDaysGridLeadingFillers(t *testing.T) {
	// 1 June 2022 is a Wednesday: ordinal 4 in a Sunday-first week.
	c := New(2022, 6, "en")
	if c.Month().GetDay(1).DayNumber() != 4 {
		t.Fatalf("expected ordinal 4")
	}
	grid := c.MonthDaysGrid()
	if len(grid) != 3+30 {
		t.Fatalf("expected 33 cells, got %d", len(grid))
	}
	for i, want := range []int{29, 30, 31} {
		if grid[i].Date() != want || grid[i].MonthNumber() != 5 {
			t.Fatalf("filler %d = %s", i, grid[i])
		}
	}
	for i := 3; i < len(grid); i++ {
		if grid[i].Date() != i-2 || grid[i].MonthNumber() != 6 {
			t.Fatalf("cell %d = %s", i, grid[i])
		}
	}
}

func TestMonthDaysGridNoFillers(t *testing.T) {
	// 1 May 2022 is a Sunday.
	c := New(2022, 5, "en")
	grid := c.MonthDaysGrid()
	if c.LeadingFillers() != 0 || len(grid) != 31 || grid[0].Date() != 1 {
		t.Fatalf("unexpected grid start %s (len %d)", grid[0], len(grid))
	}
}

func TestMonthDaysGridAcrossYear(t *testing.T) {
	// 1 January 2021 is a Friday: five December fillers.
	c := New(2021, 1, "en")
	grid := c.MonthDaysGrid()
	if c.LeadingFillers() != 5 {
		t.Fatalf("expected 5 fillers, got %d", c.LeadingFillers())
	}
	if grid[0].Date() != 27 || grid[0].MonthNumber() != 12 || grid[0].Year() != 2020 {
		t.Fatalf("first filler = %s", grid[0])
	}
}

func TestHeader(t *testing.T) {
	c := New(2022, 2, "en")
	if got := c.Header(); got != "February, 2022" {
		t.Fatalf("Header = %q", got)
	}
}
