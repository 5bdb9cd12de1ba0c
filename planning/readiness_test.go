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

func event(t *testing.T, label string, month time.Month, day int, gift, party float64) planning.CelebrationEvent {
	t.Helper()
	return planning.CelebrationEvent{
		Label:     label,
		Annual:    annual(t, month, day),
		GiftCost:  money(gift),
		PartyCost: money(party),
	}
}

// =============================================================================
// EMPTY AND DEGENERATE INPUTS
// =============================================================================

func TestReadiness_NoEvents(t *testing.T) {
	today := date(2026, time.March, 1)

	result, err := planning.CalculateReadiness(money(500), nil, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != planning.StatusNoEvents {
		t.Errorf("expected no_events, got %s", result.Status)
	}
	if result.NextEvent != nil {
		t.Error("no_events must carry no next event")
	}
	if !result.AnnualTotal.IsZero() || !result.PerCycleCatchUp.IsZero() {
		t.Error("no_events must zero all amounts")
	}
}

func TestReadiness_ZeroCostEventsIgnored(t *testing.T) {
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "freebie", time.June, 1, 0, 0),
	}

	result, err := planning.CalculateReadiness(money(0), events, planning.Monthly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != planning.StatusNoEvents {
		t.Errorf("zero-cost events must not count, got %s", result.Status)
	}
}

func TestReadiness_RejectsInvalidInput(t *testing.T) {
	today := date(2026, time.March, 1)

	if _, err := planning.CalculateReadiness(money(10), nil, planning.PayCycle("daily"), today); !errors.Is(err, planning.ErrUnknownPayCycle) {
		t.Errorf("expected ErrUnknownPayCycle, got %v", err)
	}
	if _, err := planning.CalculateReadiness(money(-1), nil, planning.Weekly, today); !errors.Is(err, planning.ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

// =============================================================================
// CORE SCENARIOS
// =============================================================================

func TestReadiness_NeedsAttention_WeeklyCatchUp(t *testing.T) {
	// GIVEN: $50 saved, one event 40 days out costing $200, weekly cycle
	// WHEN: calculating readiness
	// THEN: shortfall 150, 5 cycles (40/7 floored), catch-up 30.00/cycle,
	//       needs_attention (25% ready, catch-up > $10)

	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "mia-birthday", time.April, 10, 150, 50), // 40 days out
	}

	result, err := planning.CalculateReadiness(money(50), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Shortfall.Equal(money(150)) {
		t.Errorf("shortfall: expected 150, got %s", result.Shortfall)
	}
	if result.NextEvent == nil || result.NextEvent.CyclesUntil != 5 {
		t.Fatalf("expected 5 cycles until, got %+v", result.NextEvent)
	}
	if !result.PerCycleCatchUp.Equal(money(30)) {
		t.Errorf("catch-up: expected 30.00, got %s", result.PerCycleCatchUp)
	}
	if result.Status != planning.StatusNeedsAttention {
		t.Errorf("expected needs_attention, got %s", result.Status)
	}
}

func TestReadiness_OnTrackWithSurplus(t *testing.T) {
	// Balance covers the event, any cycle: always on_track.
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "leo-birthday", time.April, 10, 400, 0),
	}

	for _, cycle := range []planning.PayCycle{planning.Weekly, planning.Fortnightly, planning.TwiceMonthly, planning.Monthly} {
		result, err := planning.CalculateReadiness(money(500), events, cycle, today)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", cycle, err)
		}
		if result.Status != planning.StatusOnTrack {
			t.Errorf("%s: expected on_track, got %s", cycle, result.Status)
		}
		if !result.Shortfall.IsZero() {
			t.Errorf("%s: expected zero shortfall, got %s", cycle, result.Shortfall)
		}
	}
}

func TestReadiness_ExactBalanceIsOnTrack(t *testing.T) {
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{event(t, "exact", time.May, 1, 400, 0)}

	result, err := planning.CalculateReadiness(money(400), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != planning.StatusOnTrack {
		t.Errorf("exact match must be on_track, got %s", result.Status)
	}
}

func TestReadiness_DueNowAndUnderfunded(t *testing.T) {
	// Event due within one cycle: whole gap is due immediately.
	today := date(2026, time.April, 8)
	events := []planning.CelebrationEvent{
		event(t, "tomorrow", time.April, 9, 100, 0),
	}

	result, err := planning.CalculateReadiness(money(40), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextEvent.CyclesUntil != 0 {
		t.Fatalf("expected 0 cycles until, got %d", result.NextEvent.CyclesUntil)
	}
	if !result.PerCycleCatchUp.Equal(money(60)) {
		t.Errorf("catch-up must equal the whole shortfall, got %s", result.PerCycleCatchUp)
	}
	if result.Status != planning.StatusNeedsAttention {
		t.Errorf("expected needs_attention, got %s", result.Status)
	}
}

func TestReadiness_SlightlyBehind_ByPercentage(t *testing.T) {
	// 85% ready with a big catch-up: percentage alone earns slightly_behind.
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "spring-fair", time.April, 10, 1000, 0),
	}

	result, err := planning.CalculateReadiness(money(850), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != planning.StatusSlightlyBehind {
		t.Errorf("expected slightly_behind at 85%% ready, got %s", result.Status)
	}
}

func TestReadiness_SlightlyBehind_BySmallCatchUp(t *testing.T) {
	// Low percentage but catch-up <= $10/cycle: still slightly_behind.
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "small-gift", time.April, 10, 55, 0), // 40 days, 5 weekly cycles
	}

	result, err := planning.CalculateReadiness(money(10), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// shortfall 45 over 5 cycles = 9.00/cycle
	if !result.PerCycleCatchUp.Equal(money(9)) {
		t.Fatalf("expected catch-up 9.00, got %s", result.PerCycleCatchUp)
	}
	if result.Status != planning.StatusSlightlyBehind {
		t.Errorf("expected slightly_behind, got %s", result.Status)
	}
}

// =============================================================================
// ORDERING, ROUNDING, TOTALS
// =============================================================================

func TestReadiness_PicksEarliestResolvedDate(t *testing.T) {
	// GIVEN: one event later this year, one that already passed (resolves
	// to next year)
	// WHEN: calculating readiness in August
	// THEN: the October event is next, not the (passed) June one

	today := date(2026, time.August, 1)
	events := []planning.CelebrationEvent{
		event(t, "june-passed", time.June, 4, 80, 0),
		event(t, "october-upcoming", time.October, 12, 120, 0),
	}

	result, err := planning.CalculateReadiness(money(0), events, planning.Fortnightly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextEvent.Label != "october-upcoming" {
		t.Errorf("expected october-upcoming next, got %s", result.NextEvent.Label)
	}
	// Both events still count toward the forward-twelve-months total.
	if !result.AnnualTotal.Equal(money(200)) {
		t.Errorf("annual total: expected 200, got %s", result.AnnualTotal)
	}
}

func TestReadiness_SameDateTieBreakKeepsInputOrder(t *testing.T) {
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "first-listed", time.July, 4, 60, 0),
		event(t, "second-listed", time.July, 4, 90, 0),
	}

	result, err := planning.CalculateReadiness(money(0), events, planning.Monthly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextEvent.Label != "first-listed" {
		t.Errorf("tie-break must preserve input order, got %s", result.NextEvent.Label)
	}
}

func TestReadiness_CatchUpRoundsUpToTheCent(t *testing.T) {
	// Property: catchUp * cyclesUntil >= shortfall whenever cycles > 0.
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		event(t, "odd-amount", time.April, 10, 100, 0), // 5 weekly cycles
	}

	result, err := planning.CalculateReadiness(money(0.01), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// shortfall 99.99 / 5 = 19.998 -> rounds UP to 20.00
	if !result.PerCycleCatchUp.Equal(money(20)) {
		t.Errorf("expected 20.00, got %s", result.PerCycleCatchUp)
	}
	covered := result.PerCycleCatchUp.Mul(planning.NewMoneyFromInt(result.NextEvent.CyclesUntil).Value)
	if covered.LessThan(result.Shortfall) {
		t.Errorf("catch-up undershoots: %s * %d < %s", result.PerCycleCatchUp, result.NextEvent.CyclesUntil, result.Shortfall)
	}
}

func TestReadiness_SteadyStatePerCycle(t *testing.T) {
	today := date(2026, time.January, 1)
	events := []planning.CelebrationEvent{
		event(t, "a", time.March, 1, 100, 0),
		event(t, "b", time.September, 1, 160, 0),
	}

	result, err := planning.CalculateReadiness(money(0), events, planning.Fortnightly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 260 / 26 cycles = 10.00
	if !result.SteadyStatePerCycle.Equal(money(10)) {
		t.Errorf("expected steady state 10.00, got %s", result.SteadyStatePerCycle)
	}
}

// =============================================================================
// PARTY-ONLY SENTINEL
// =============================================================================

func TestReadiness_PartyOnlyAloneIsDueNow(t *testing.T) {
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		{Label: planning.PartyOnlyLabel, PartyCost: money(75)},
	}

	result, err := planning.CalculateReadiness(money(25), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextEvent == nil || result.NextEvent.CyclesUntil != 0 {
		t.Fatalf("party-only sole entry must be due now, got %+v", result.NextEvent)
	}
	if !result.Shortfall.Equal(money(50)) {
		t.Errorf("expected shortfall 50, got %s", result.Shortfall)
	}
	if result.Status != planning.StatusNeedsAttention {
		t.Errorf("expected needs_attention, got %s", result.Status)
	}
}

func TestReadiness_PartyOnlyExcludedFromDateSorting(t *testing.T) {
	// With a dated event present, the dateless party fund never wins
	// "next", but its cost still counts toward the annual total.
	today := date(2026, time.March, 1)
	events := []planning.CelebrationEvent{
		{Label: planning.PartyOnlyLabel, PartyCost: money(75)},
		event(t, "dated", time.June, 1, 100, 0),
	}

	result, err := planning.CalculateReadiness(money(0), events, planning.Weekly, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextEvent.Label != "dated" {
		t.Errorf("dated event must be next, got %s", result.NextEvent.Label)
	}
	if !result.AnnualTotal.Equal(money(175)) {
		t.Errorf("annual total must include the party fund, got %s", result.AnnualTotal)
	}
}
