package calendar

import (
	"fmt"
	"time"
)

// Calendar is a mutable cursor over (year, month). WeekDays holds the long
// weekday names placed by their ordinal in the locale's week.
type Calendar struct {
	WeekDays [7]string
	Today    Day

	year   int
	month  Month
	locale Locale
	loc    *time.Location
}

// New builds a calendar at monthNumber of year. Zero values fall back to the
// current month and year.
func New(year, monthNumber int, locale string) *Calendar {
	l := ResolveLocale(locale)
	today := newDay(now(), l)
	if year == 0 {
		year = today.Year()
	}
	if monthNumber == 0 {
		monthNumber = today.MonthNumber()
	}
	loc := today.Time().Location()
	c := &Calendar{
		Today:  today,
		locale: l,
		loc:    loc,
	}
	c.month = monthOf(year, monthNumber, l, loc)
	c.year = c.month.Year()

	seen := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		d := c.month.GetDay(i + 1)
		if seen[d.Day()] {
			continue
		}
		seen[d.Day()] = true
		c.WeekDays[d.DayNumber()-1] = d.Day()
	}
	return c
}

func (c *Calendar) Year() int { return c.year }
func (c *Calendar) Month() Month { return c.month }
func (c *Calendar) Locale() Locale { return c.locale }

// Header is the "<Month>, <Year>" caption of the displayed month.
func (c *Calendar) Header() string {
	return fmt.Sprintf("%s, %d", c.month.Name(), c.year)
}

// PreviousMonth returns the month before the cursor without moving it.
func (c *Calendar) PreviousMonth() Month {
	if c.month.Number() == 1 {
		return monthOf(c.year-1, 12, c.locale, c.loc)
	}
	return monthOf(c.year, c.month.Number()-1, c.locale, c.loc)
}

// NextMonth returns the month after the cursor without moving it.
func (c *Calendar) NextMonth() Month {
	if c.month.Number() == 12 {
		return monthOf(c.year+1, 1, c.locale, c.loc)
	}
	return monthOf(c.year, c.month.Number()+1, c.locale, c.loc)
}

// ToDate jumps the cursor.
func (c *Calendar) ToDate(monthNumber, year int) {
	c.month = monthOf(year, monthNumber, c.locale, c.loc)
	c.year = c.month.Year()
}

func (c *Calendar) ToNextYear() {
	c.year++
	c.month = monthOf(c.year, 1, c.locale, c.loc)
}

func (c *Calendar) ToPreviousYear() {
	c.year--
	c.month = monthOf(c.year, 12, c.locale, c.loc)
}

func (c *Calendar) ToNextMonth() {
	if c.month.Number() == 12 {
		c.ToNextYear()
		return
	}
	c.month = monthOf(c.year, c.month.Number()+1, c.locale, c.loc)
}

func (c *Calendar) ToPreviousMonth() {
	if c.month.Number() == 1 {
		c.ToPreviousYear()
		return
	}
	c.month = monthOf(c.year, c.month.Number()-1, c.locale, c.loc)
}

// LeadingFillers is the number of previous-month cells before day 1.
func (c *Calendar) LeadingFillers() int {
	return c.month.GetDay(1).DayNumber() - 1
}

// MonthDaysGrid lays out the displayed month for a 7-column grid: the
// trailing days of the previous month followed by every day of this month.
// Trailing cells after the last day are left to the renderer.
func (c *Calendar) MonthDaysGrid() []Day {
	fill := c.LeadingFillers()
	prev := c.PreviousMonth()
	total := c.month.NumberOfDays() + fill
	days := make([]Day, total)
	for i := 0; i < fill; i++ {
		inverted := fill - (i + 1)
		days[i] = prev.GetDay(prev.NumberOfDays() - inverted)
	}
	for i := fill; i < total; i++ {
		days[i] = c.month.GetDay(i + 1 - fill)
	}
	return days
}
