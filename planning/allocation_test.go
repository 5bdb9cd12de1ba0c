package planning_test

import (
	"testing"

	"github.com/hearth/budget-engine/planning"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func target(id string, required float64, tier planning.PriorityTier, allocations map[planning.SourceID]float64) planning.FundingTarget {
	alloc := make(map[planning.SourceID]planning.Money, len(allocations))
	for source, amount := range allocations {
		alloc[source] = money(amount)
	}
	return planning.FundingTarget{
		ID:               planning.TargetID(id),
		Name:             id,
		RequiredPerCycle: money(required),
		Tier:             tier,
		Allocations:      alloc,
	}
}

// =============================================================================
// FUNDEDNESS PRIMITIVES
// =============================================================================

func TestTotalAllocated_SumsAllSources(t *testing.T) {
	env := target("groceries", 300, planning.TierEssential,
		map[planning.SourceID]float64{"primary": 200, "secondary": 50})

	if got := env.TotalAllocated(); !got.Equal(money(250)) {
		t.Errorf("expected 250, got %s", got)
	}
}

func TestIsFullyFunded_EpsilonAbsorbsRounding(t *testing.T) {
	// GIVEN: allocations one sub-cent short of the requirement
	// WHEN: checking fundedness
	// THEN: still fully funded (epsilon = $0.01)

	env := target("rent", 1200, planning.TierEssential,
		map[planning.SourceID]float64{"primary": 1199.995})

	if !env.IsFullyFunded() {
		t.Error("expected funded within epsilon")
	}

	short := target("rent", 1200, planning.TierEssential,
		map[planning.SourceID]float64{"primary": 1199.98})
	if short.IsFullyFunded() {
		t.Error("two cents short should not count as funded")
	}
}

func TestIsFullyFunded_ZeroRequirementAlwaysFunded(t *testing.T) {
	env := target("paused", 0, planning.TierDiscretionary, nil)
	if !env.IsFullyFunded() {
		t.Error("zero requirement must always be funded")
	}
	if !env.Shortfall().IsZero() {
		t.Errorf("zero requirement must have zero shortfall, got %s", env.Shortfall())
	}
}

func TestShortfall_FlooredAtZero(t *testing.T) {
	over := target("fun", 50, planning.TierDiscretionary,
		map[planning.SourceID]float64{"primary": 80})
	if !over.Shortfall().IsZero() {
		t.Errorf("over-allocated target must show zero shortfall, got %s", over.Shortfall())
	}

	under := target("fun", 50, planning.TierDiscretionary,
		map[planning.SourceID]float64{"primary": 30})
	if !under.Shortfall().Equal(money(20)) {
		t.Errorf("expected shortfall 20, got %s", under.Shortfall())
	}
}

func TestShortfall_ClosesTheGapExactly(t *testing.T) {
	// Property: when allocated < required, shortfall + allocated >= required.
	env := target("clothes", 75.50, planning.TierImportant,
		map[planning.SourceID]float64{"primary": 20.25})

	sum := env.Shortfall().Add(env.TotalAllocated())
	if sum.LessThan(env.RequiredPerCycle) {
		t.Errorf("shortfall + allocated = %s, below required %s", sum, env.RequiredPerCycle)
	}
}

// =============================================================================
// TIER GROUPING
// =============================================================================

func TestGroupByPriority_PartitionsAndSubtotals(t *testing.T) {
	targets := []planning.FundingTarget{
		target("rent", 1200, planning.TierEssential, map[planning.SourceID]float64{"primary": 1200}),
		target("groceries", 300, planning.TierEssential, map[planning.SourceID]float64{"primary": 100}),
		target("swim-lessons", 45, planning.TierImportant, map[planning.SourceID]float64{"primary": 45}),
		target("toys", 25, planning.TierDiscretionary, nil),
	}

	groups := planning.GroupByPriority(targets)

	essential := groups[planning.TierEssential]
	if len(essential.Targets) != 2 {
		t.Fatalf("expected 2 essential targets, got %d", len(essential.Targets))
	}
	if !essential.SubtotalAllocated.Equal(money(1300)) {
		t.Errorf("essential subtotal allocated: expected 1300, got %s", essential.SubtotalAllocated)
	}
	if !essential.SubtotalShortfall.Equal(money(200)) {
		t.Errorf("essential subtotal shortfall: expected 200, got %s", essential.SubtotalShortfall)
	}
	if essential.FundedCount != 1 {
		t.Errorf("expected 1 funded essential, got %d", essential.FundedCount)
	}

	// Empty tier still present with zero subtotals.
	unfunded := groups[planning.TierUnfunded]
	if len(unfunded.Targets) != 0 || !unfunded.SubtotalAllocated.IsZero() {
		t.Errorf("empty tier must carry zero subtotals, got %+v", unfunded)
	}
}

func TestGroupByPriority_EmptyInput(t *testing.T) {
	groups := planning.GroupByPriority(nil)
	for _, tier := range planning.TierOrder() {
		g, ok := groups[tier]
		if !ok {
			t.Fatalf("tier %s missing from empty grouping", tier)
		}
		if !g.SubtotalAllocated.IsZero() || !g.SubtotalRequired.IsZero() {
			t.Errorf("tier %s: expected zero subtotals", tier)
		}
	}
}

// =============================================================================
// AUTO-BALANCE
// =============================================================================

func TestSuggestSplits_EvenSplitWithRemainderToPrimary(t *testing.T) {
	// GIVEN: $100.01 requirement across two income sources
	// WHEN: suggesting splits
	// THEN: 50.01 to primary, 50.00 to secondary; pieces sum back exactly

	sources := []planning.IncomeSource{
		{ID: "secondary", Label: "secondary", Ordinal: 1},
		{ID: "primary", Label: "primary", Ordinal: 0},
	}
	targets := []planning.FundingTarget{
		target("camp", 100.01, planning.TierImportant, nil),
	}

	suggestions, err := planning.SuggestSplits(targets, sources)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	splits := suggestions[0].Splits
	if !splits["primary"].Equal(money(50.01)) {
		t.Errorf("primary: expected 50.01, got %s", splits["primary"])
	}
	if !splits["secondary"].Equal(money(50.00)) {
		t.Errorf("secondary: expected 50.00, got %s", splits["secondary"])
	}

	total := splits["primary"].Add(splits["secondary"])
	if !total.Equal(money(100.01)) {
		t.Errorf("splits must sum to requirement, got %s", total)
	}
}

func TestSuggestSplits_SkipsLockedTargets(t *testing.T) {
	sources := []planning.IncomeSource{{ID: "primary", Ordinal: 0}}
	locked := target("pinned", 80, planning.TierEssential, map[planning.SourceID]float64{"primary": 10})
	locked.Locked = true
	open := target("open", 40, planning.TierEssential, nil)

	suggestions, err := planning.SuggestSplits([]planning.FundingTarget{locked, open}, sources)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Target != "open" {
		t.Fatalf("locked target must be excluded, got %+v", suggestions)
	}
}

func TestSuggestSplits_NoSources(t *testing.T) {
	suggestions, err := planning.SuggestSplits([]planning.FundingTarget{target("x", 10, planning.TierImportant, nil)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestions != nil {
		t.Errorf("no sources means no suggestions, got %+v", suggestions)
	}
}
