/*
paycycle.go - Pay-cycle clock

PURPOSE:
  Converts between calendar time and pay-cycle counts, and resolves the
  next future occurrence of an annually-recurring date. Both the
  allocation planner and the readiness forecaster lean on this file to
  turn "due on June 4th" into "due in 6 paychecks".

CYCLE TABLE:
  weekly        52 cycles/year   7 days/cycle
  fortnightly   26 cycles/year   14 days/cycle
  twice_monthly 24 cycles/year   ~15.2 days/cycle
  monthly       12 cycles/year   ~30.4 days/cycle

APPROXIMATION NOTE:
  CyclesUntil divides calendar days by the AVERAGE cycle length. Exact pay
  dates depend on payroll timing this engine does not model, so the result
  is an estimate and is documented as such everywhere it surfaces.
*/
package planning

import "github.com/shopspring/decimal"

// =============================================================================
// PAY CYCLE - Income cadence
// =============================================================================

type PayCycle string

const (
	Weekly       PayCycle = "weekly"
	Fortnightly  PayCycle = "fortnightly"
	TwiceMonthly PayCycle = "twice_monthly"
	Monthly      PayCycle = "monthly"
)

func (c PayCycle) Valid() bool {
	switch c {
	case Weekly, Fortnightly, TwiceMonthly, Monthly:
		return true
	}
	return false
}

// ParsePayCycle rejects anything outside the enum; callers never get a
// silently-defaulted cadence.
func ParsePayCycle(s string) (PayCycle, error) {
	c := PayCycle(s)
	if !c.Valid() {
		return "", &InvalidInputError{Field: "pay_cycle", Value: s, Err: ErrUnknownPayCycle}
	}
	return c, nil
}

// CyclesPerYear is a pure constant lookup, exhaustive over the enum.
// Invalid cycles return 0; validated callers never see that.
func (c PayCycle) CyclesPerYear() int {
	switch c {
	case Weekly:
		return 52
	case Fortnightly:
		return 26
	case TwiceMonthly:
		return 24
	case Monthly:
		return 12
	}
	return 0
}

// AverageCycleDays is the estimated cycle length in days. Weekly and
// fortnightly are exact; the calendar-anchored cadences use a yearly
// average. Estimation only, never exact calendar math.
func (c PayCycle) AverageCycleDays() decimal.Decimal {
	switch c {
	case Weekly:
		return decimal.NewFromInt(7)
	case Fortnightly:
		return decimal.NewFromInt(14)
	case TwiceMonthly:
		return decimal.NewFromInt(365).Div(decimal.NewFromInt(24))
	case Monthly:
		return decimal.NewFromInt(365).Div(decimal.NewFromInt(12))
	}
	return decimal.Zero
}

// =============================================================================
// ANNUAL RECURRENCE
// =============================================================================

// ResolveNextOccurrence projects an annual date onto the current year; if
// that lands strictly before today it advances exactly one year. The result
// is always >= today. Feb 29 clamps to Feb 28 in non-leap target years.
func ResolveNextOccurrence(annual AnnualDate, today Date) Date {
	occurrence := annual.inYear(today.Year())
	if occurrence.Before(today) {
		occurrence = annual.inYear(today.Year() + 1)
	}
	return occurrence
}

// DaysUntil is the whole-day distance from today to date. Callers are
// expected to resolve the date first; an unresolved past date goes negative.
func DaysUntil(date, today Date) int {
	return DaysBetween(today, date)
}

// CyclesUntil estimates how many pay cycles fit into the given number of
// days: floor(days / average cycle length), clamped at 0.
func CyclesUntil(days int, cycle PayCycle) int {
	if days <= 0 {
		return 0
	}
	avg := cycle.AverageCycleDays()
	if avg.IsZero() {
		return 0
	}
	return int(decimal.NewFromInt(int64(days)).Div(avg).IntPart())
}
