/*
allocation.go - Envelope funding analysis

PURPOSE:
  Answers the questions the budget screen asks about envelopes: how much
  is assigned to each one, is it fully funded, how big is the gap, and
  what do the totals look like per priority tier.

KEY INSIGHT:
  The sum of an envelope's per-source allocations is never required to
  equal its per-cycle requirement. Fundedness is a comparison, not an
  equation - partially funded envelopes are a normal state.

ROUNDING:
  Fundedness uses a one-cent epsilon so float noise from upstream currency
  arithmetic never flips a funded envelope to "short by $0.001".

LOCKING:
  A locked target's allocations are caller-pinned. SuggestSplits skips
  them entirely; the unlock decision (required amount changed, cadence
  changed) belongs to the caller, who uses Shortfall/IsFullyFunded to
  make it.
*/
package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// fundingEpsilon absorbs sub-cent rounding from upstream arithmetic when
// comparing allocated against required.
var fundingEpsilon = decimal.NewFromFloat(0.01)

// =============================================================================
// PER-TARGET PRIMITIVES
// =============================================================================

// TotalAllocated sums every income source's contribution to the target.
// Map iteration order does not matter: addition commutes.
func (t FundingTarget) TotalAllocated() Money {
	total := ZeroMoney()
	for _, amount := range t.Allocations {
		total = total.Add(amount)
	}
	return total
}

// IsFullyFunded reports whether allocations cover the requirement within
// one cent. A requirement of zero is always funded, regardless of
// allocations.
func (t FundingTarget) IsFullyFunded() bool {
	if t.RequiredPerCycle.IsZero() || t.RequiredPerCycle.IsNegative() {
		return true
	}
	gap := t.RequiredPerCycle.Sub(t.TotalAllocated())
	return gap.Value.LessThanOrEqual(fundingEpsilon)
}

// Shortfall is the remaining gap to the requirement, floored at zero.
func (t FundingTarget) Shortfall() Money {
	gap := t.RequiredPerCycle.Sub(t.TotalAllocated())
	if gap.IsNegative() {
		return ZeroMoney()
	}
	return gap
}

// =============================================================================
// TIER GROUPING
// =============================================================================

// TierGroup is one priority tier's slice of the budget.
type TierGroup struct {
	Tier              PriorityTier
	Targets           []FundingTarget
	SubtotalRequired  Money
	SubtotalAllocated Money
	SubtotalShortfall Money
	FundedCount       int
}

// GroupByPriority partitions targets into the four tiers. Every tier is
// present in the result, with zero subtotals when empty; callers decide
// whether to display empty tiers.
func GroupByPriority(targets []FundingTarget) map[PriorityTier]TierGroup {
	groups := make(map[PriorityTier]TierGroup, 4)
	for _, tier := range TierOrder() {
		groups[tier] = TierGroup{
			Tier:              tier,
			SubtotalRequired:  ZeroMoney(),
			SubtotalAllocated: ZeroMoney(),
			SubtotalShortfall: ZeroMoney(),
		}
	}

	for _, target := range targets {
		tier := target.Tier
		if !tier.Valid() {
			tier = TierUnfunded
		}
		group := groups[tier]
		group.Targets = append(group.Targets, target)
		group.SubtotalRequired = group.SubtotalRequired.Add(target.RequiredPerCycle)
		group.SubtotalAllocated = group.SubtotalAllocated.Add(target.TotalAllocated())
		group.SubtotalShortfall = group.SubtotalShortfall.Add(target.Shortfall())
		if target.IsFullyFunded() {
			group.FundedCount++
		}
		groups[tier] = group
	}
	return groups
}

// =============================================================================
// AUTO-BALANCE HELPER
// =============================================================================

// SplitSuggestion is a proposed set of per-source contributions for one
// unlocked target. The engine proposes; the caller persists.
type SplitSuggestion struct {
	Target TargetID
	Splits map[SourceID]Money
}

// SuggestSplits proposes contributions that fully fund every UNLOCKED
// target: the requirement is split evenly across income sources, with any
// leftover cents landing on the primary (lowest-ordinal) source so the
// pieces add back up exactly. Locked targets are excluded - their
// allocations are fixed by the caller.
func SuggestSplits(targets []FundingTarget, sources []IncomeSource) ([]SplitSuggestion, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	ordered := make([]IncomeSource, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Ordinal < ordered[j].Ordinal })

	n := decimal.NewFromInt(int64(len(ordered)))
	var suggestions []SplitSuggestion
	for _, target := range targets {
		if target.Locked {
			continue
		}
		if err := requireNonNegative("required_per_cycle", target.RequiredPerCycle); err != nil {
			return nil, err
		}

		required := target.RequiredPerCycle.RoundCents()
		base := Money{Value: required.Value.Div(n).RoundFloor(2)}
		remainder := required.Sub(base.Mul(n))

		splits := make(map[SourceID]Money, len(ordered))
		for i, source := range ordered {
			amount := base
			if i == 0 {
				amount = amount.Add(remainder)
			}
			splits[source.ID] = amount
		}
		suggestions = append(suggestions, SplitSuggestion{Target: target.ID, Splits: splits})
	}
	return suggestions, nil
}
