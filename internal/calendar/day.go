// Package calendar provides the locale-aware date model behind the picker:
// immutable Day and Month values and a navigable Calendar cursor.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// now is replaced in tests.
var now = time.Now

// Day is an immutable snapshot of a calendar date in a locale. All derived
// fields are computed once by NewDay.
type Day struct {
	t           time.Time
	locale      Locale
	date        int
	day         string
	dayNumber   int
	dayShort    string
	year        int
	yearShort   string
	month       string
	monthShort  string
	monthNumber int
	timestamp   int64
	week        int
}

// NewDay wraps t in the given locale. A zero t means now.
func NewDay(t time.Time, locale string) Day {
	if t.IsZero() {
		t = now()
	}
	return newDay(t, ResolveLocale(locale))
}

func newDay(t time.Time, l Locale) Day {
	_, week := t.ISOWeek()
	wd := t.Weekday()
	m := t.Month()
	return Day{
		t:           t,
		locale:      l,
		date:        t.Day(),
		day:         l.Weekdays[wd],
		dayNumber:   l.Ordinal(wd),
		dayShort:    l.WeekdaysShort[wd],
		year:        t.Year(),
		yearShort:   fmt.Sprintf("%02d", abs(t.Year())%100),
		month:       l.Months[m-1],
		monthShort:  l.MonthsShort[m-1],
		monthNumber: int(m),
		timestamp:   t.UnixMilli(),
		week:        week,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (d Day) Time() time.Time { return d.t }
func (d Day) Locale() string { return d.locale.Tag }
func (d Day) Date() int { return d.date }
func (d Day) Day() string { return d.day }
func (d Day) DayNumber() int { return d.dayNumber }
func (d Day) DayShort() string { return d.dayShort }
func (d Day) Year() int { return d.year }
func (d Day) YearShort() string { return d.yearShort }
func (d Day) Month() string { return d.month }
func (d Day) MonthShort() string { return d.monthShort }
func (d Day) MonthNumber() int { return d.monthNumber }
func (d Day) Timestamp() int64 { return d.timestamp }
func (d Day) Week() int { return d.week }
func (d Day) IsZero() bool { return d.t.IsZero() }
func (d Day) String() string { return fmt.Sprintf("%d/%d/%d", d.date, d.monthNumber, d.year) }
func (d Day) IsToday() bool { return d.IsEqualTo(newDay(now(), d.locale)) }
func (d Day) IsEqualTo(o Day) bool { return d.date == o.date && d.monthNumber == o.monthNumber && d.year == o.year }

// IsLessTo orders by year, then month, then day. Equal days count as less:
// the day comparison is <=, and range highlighting depends on it.
func (d Day) IsLessTo(o Day) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.monthNumber != o.monthNumber {
		return d.monthNumber < o.monthNumber
	}
	return d.date <= o.date
}

// Compare is a strict three-way date comparison ignoring time of day.
func (d Day) Compare(o Day) int {
	switch {
	case d.IsEqualTo(o):
		return 0
	case d.IsLessTo(o):
		return -1
	default:
		return 1
	}
}

type formatToken struct {
	re    *regexp.Regexp
	value func(Day) string
}

// Longer tokens come first so that YYYY is never read as YYY.
var formatTokens = []formatToken{
	{regexp.MustCompile(`\bYYYY\b`), func(d Day) string { return strconv.Itoa(d.year) }},
	{regexp.MustCompile(`\bYYY\b`), func(d Day) string { return d.yearShort }},
	{regexp.MustCompile(`\bWW\b`), func(d Day) string { return fmt.Sprintf("%02d", d.week) }},
	{regexp.MustCompile(`\bW\b`), func(d Day) string { return strconv.Itoa(d.week) }},
	{regexp.MustCompile(`\bDDDD\b`), func(d Day) string { return d.day }},
	{regexp.MustCompile(`\bDDD\b`), func(d Day) string { return d.dayShort }},
	{regexp.MustCompile(`\bDD\b`), func(d Day) string { return fmt.Sprintf("%02d", d.date) }},
	{regexp.MustCompile(`\bD\b`), func(d Day) string { return strconv.Itoa(d.date) }},
	{regexp.MustCompile(`\bMMMM\b`), func(d Day) string { return d.month }},
	{regexp.MustCompile(`\bMMM\b`), func(d Day) string { return d.monthShort }},
	{regexp.MustCompile(`\bMM\b`), func(d Day) string { return fmt.Sprintf("%02d", d.monthNumber) }},
	{regexp.MustCompile(`\bM\b`), func(d Day) string { return strconv.Itoa(d.monthNumber) }},
}

// Format substitutes the first standalone occurrence of each token in pattern.
// Tokens: YYYY YYY WW W DDDD DDD DD D MMMM MMM MM M.
func (d Day) Format(pattern string) string {
	out := pattern
	for _, tok := range formatTokens {
		loc := tok.re.FindStringIndex(out)
		if loc == nil {
			continue
		}
		out = out[:loc[0]] + tok.value(d) + out[loc[1]:]
	}
	return out
}
