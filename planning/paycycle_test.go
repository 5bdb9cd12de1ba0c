package planning_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hearth/budget-engine/planning"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) planning.Date {
	return planning.NewDate(year, month, day)
}

func money(v float64) planning.Money {
	return planning.NewMoney(v)
}

func annual(t *testing.T, month time.Month, day int) planning.AnnualDate {
	t.Helper()
	a, err := planning.NewAnnualDate(month, day)
	if err != nil {
		t.Fatalf("unexpected error building annual date: %v", err)
	}
	return a
}

// =============================================================================
// CYCLE CONSTANTS
// =============================================================================

func TestCyclesPerYear_ConstantTable(t *testing.T) {
	cases := []struct {
		cycle planning.PayCycle
		want  int
	}{
		{planning.Weekly, 52},
		{planning.Fortnightly, 26},
		{planning.TwiceMonthly, 24},
		{planning.Monthly, 12},
	}
	for _, c := range cases {
		if got := c.cycle.CyclesPerYear(); got != c.want {
			t.Errorf("%s: expected %d cycles/year, got %d", c.cycle, c.want, got)
		}
		// Pure constant lookup: idempotent across repeated calls.
		if got := c.cycle.CyclesPerYear(); got != c.want {
			t.Errorf("%s: second call returned %d", c.cycle, got)
		}
	}
}

func TestParsePayCycle_RejectsUnknown(t *testing.T) {
	if _, err := planning.ParsePayCycle("biweekly"); !errors.Is(err, planning.ErrUnknownPayCycle) {
		t.Fatalf("expected ErrUnknownPayCycle, got %v", err)
	}
	if !planning.IsClientError(&planning.InvalidInputError{Field: "pay_cycle", Value: "x", Err: planning.ErrUnknownPayCycle}) {
		t.Error("unknown pay cycle should classify as client error")
	}
}

// =============================================================================
// ANNUAL DATE RESOLUTION
// =============================================================================

func TestResolveNextOccurrence_FutureDateStaysInCurrentYear(t *testing.T) {
	// GIVEN: today is March 1, annual date June 4
	// WHEN: resolving the next occurrence
	// THEN: June 4 of the SAME year

	today := date(2026, time.March, 1)
	got := planning.ResolveNextOccurrence(annual(t, time.June, 4), today)

	if !got.Equal(date(2026, time.June, 4)) {
		t.Errorf("expected 2026-06-04, got %s", got)
	}
}

func TestResolveNextOccurrence_PastDateAdvancesOneYear(t *testing.T) {
	today := date(2026, time.August, 10)
	got := planning.ResolveNextOccurrence(annual(t, time.June, 4), today)

	if !got.Equal(date(2027, time.June, 4)) {
		t.Errorf("expected 2027-06-04, got %s", got)
	}
}

func TestResolveNextOccurrence_TodayCountsAsUpcoming(t *testing.T) {
	// The projected date is only advanced when STRICTLY before today.
	today := date(2026, time.June, 4)
	got := planning.ResolveNextOccurrence(annual(t, time.June, 4), today)

	if !got.Equal(today) {
		t.Errorf("expected today itself, got %s", got)
	}
}

func TestResolveNextOccurrence_IdempotentUnderReResolution(t *testing.T) {
	today := date(2026, time.January, 15)
	first := planning.ResolveNextOccurrence(annual(t, time.October, 31), today)
	second := planning.ResolveNextOccurrence(annual(t, time.October, 31), today)

	if !first.Equal(second) {
		t.Errorf("re-resolution changed the date: %s vs %s", first, second)
	}
	if first.Before(today) {
		t.Errorf("resolved date %s is before today %s", first, today)
	}
}

func TestResolveNextOccurrence_LeapDayClampsToFeb28(t *testing.T) {
	// GIVEN: a Feb 29 birthday, today in 2026 (non-leap) after February
	// WHEN: resolving
	// THEN: Feb 28 of 2027 (also non-leap), not Mar 1

	today := date(2026, time.March, 15)
	got := planning.ResolveNextOccurrence(annual(t, time.February, 29), today)

	if !got.Equal(date(2027, time.February, 28)) {
		t.Errorf("expected 2027-02-28, got %s", got)
	}
}

func TestResolveNextOccurrence_LeapDayKeptInLeapYear(t *testing.T) {
	today := date(2028, time.January, 1)
	got := planning.ResolveNextOccurrence(annual(t, time.February, 29), today)

	if !got.Equal(date(2028, time.February, 29)) {
		t.Errorf("expected 2028-02-29, got %s", got)
	}
}

func TestNewAnnualDate_RejectsImpossibleDays(t *testing.T) {
	if _, err := planning.NewAnnualDate(time.April, 31); !errors.Is(err, planning.ErrInvalidAnnualDate) {
		t.Errorf("April 31: expected ErrInvalidAnnualDate, got %v", err)
	}
	if _, err := planning.NewAnnualDate(time.Month(13), 1); !errors.Is(err, planning.ErrInvalidAnnualDate) {
		t.Errorf("month 13: expected ErrInvalidAnnualDate, got %v", err)
	}
	if _, err := planning.NewAnnualDate(time.February, 29); err != nil {
		t.Errorf("Feb 29 is a real annual date, got %v", err)
	}
}

// =============================================================================
// DAYS AND CYCLES
// =============================================================================

func TestDaysUntil_WholeDayDifference(t *testing.T) {
	today := date(2026, time.March, 1)
	if got := planning.DaysUntil(date(2026, time.April, 10), today); got != 40 {
		t.Errorf("expected 40 days, got %d", got)
	}
	if got := planning.DaysUntil(today, today); got != 0 {
		t.Errorf("expected 0 days, got %d", got)
	}
}

func TestCyclesUntil_FloorsAndClamps(t *testing.T) {
	cases := []struct {
		days  int
		cycle planning.PayCycle
		want  int
	}{
		{40, planning.Weekly, 5},       // 40/7 floored
		{14, planning.Weekly, 2},       // exact multiple
		{13, planning.Fortnightly, 0},  // under one cycle
		{28, planning.Fortnightly, 2},
		{30, planning.Monthly, 0},      // 30 / 30.42 floors to zero
		{31, planning.Monthly, 1},
		{365, planning.TwiceMonthly, 24},
		{0, planning.Weekly, 0},
		{-5, planning.Weekly, 0}, // clamped, never negative
	}
	for _, c := range cases {
		if got := planning.CyclesUntil(c.days, c.cycle); got != c.want {
			t.Errorf("CyclesUntil(%d, %s): expected %d, got %d", c.days, c.cycle, c.want, got)
		}
	}
}
