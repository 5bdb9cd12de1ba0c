package planning

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day, normalized to midnight UTC
// =============================================================================

// Date is a calendar day. All comparisons happen at day granularity; the
// engine never cares about hours.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary timestamp to its calendar day. This is the
// only place wall-clock time enters the engine, and callers do it, not us.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date  { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddYears(n int) Date { return Date{Time: d.Time.AddDate(n, 0, 0)} }

func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// DaysBetween returns the whole-day difference to - from. Negative when
// to precedes from.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// =============================================================================
// ANNUAL DATE - Year-agnostic month and day
// =============================================================================

// AnnualDate is a recurring calendar date (e.g. a birthday): a month and a
// day with no year attached.
type AnnualDate struct {
	Month time.Month
	Day   int
}

// NewAnnualDate validates the month/day pair. Feb 29 is accepted; how it
// lands in non-leap years is decided by ResolveNextOccurrence.
func NewAnnualDate(month time.Month, day int) (AnnualDate, error) {
	a := AnnualDate{Month: month, Day: day}
	if !a.Valid() {
		return AnnualDate{}, &InvalidInputError{
			Field: "annual_date",
			Value: fmt.Sprintf("%d-%d", month, day),
			Err:   ErrInvalidAnnualDate,
		}
	}
	return a, nil
}

func (a AnnualDate) IsZero() bool { return a.Month == 0 && a.Day == 0 }

func (a AnnualDate) Valid() bool {
	if a.Month < time.January || a.Month > time.December {
		return false
	}
	if a.Day < 1 || a.Day > daysInMonth(a.Month) {
		return false
	}
	return true
}

// daysInMonth returns the maximum day for a month across any year, so Feb
// allows 29.
func daysInMonth(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// inYear projects the annual date onto a concrete year. Feb 29 clamps to
// Feb 28 in non-leap years rather than spilling into March.
func (a AnnualDate) inYear(year int) Date {
	day := a.Day
	if a.Month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return NewDate(year, a.Month, day)
}

func (a AnnualDate) String() string {
	return fmt.Sprintf("%02d-%02d", int(a.Month), a.Day)
}
