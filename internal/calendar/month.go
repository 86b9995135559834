package calendar

import "time"

var monthSizes = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	n := monthSizes[month-1]
	if month == time.February && IsLeapYear(year) {
		n++
	}
	return n
}

// Month is a (year, month) pair in a locale.
type Month struct {
	name         string
	number       int
	year         int
	numberOfDays int
	locale       Locale
	loc          *time.Location
}

// NewMonth derives the month containing t.
func NewMonth(t time.Time, locale string) Month {
	if t.IsZero() {
		t = now()
	}
	return newMonth(t, ResolveLocale(locale))
}

func newMonth(t time.Time, l Locale) Month {
	d := newDay(t, l)
	return Month{
		name:         d.month,
		number:       d.monthNumber,
		year:         d.year,
		numberOfDays: DaysIn(d.year, time.Month(d.monthNumber)),
		locale:       l,
		loc:          t.Location(),
	}
}

// monthOf normalizes out-of-range month numbers into the adjacent years.
func monthOf(year, number int, l Locale, loc *time.Location) Month {
	return newMonth(time.Date(year, time.Month(number), 1, 0, 0, 0, 0, loc), l)
}

func (m Month) Name() string { return m.name }
func (m Month) Number() int { return m.number }
func (m Month) Year() int { return m.year }
func (m Month) NumberOfDays() int { return m.numberOfDays }
func (m Month) Locale() string { return m.locale.Tag }

// GetDay returns day n of this month. Values outside 1..NumberOfDays roll
// into the neighbouring months; the grid padding relies on that.
func (m Month) GetDay(n int) Day {
	return newDay(time.Date(m.year, time.Month(m.number), n, 0, 0, 0, 0, m.loc), m.locale)
}
