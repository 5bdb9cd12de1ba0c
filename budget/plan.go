/*
plan.go - Composite plan overview

PURPOSE:
  Assembles the single "how is the budget doing" view out of the three
  engine modules: tier-grouped envelope funding, celebration readiness,
  and the debt payoff plan. Pure like the engine - the caller loads the
  records and supplies today.
*/
package budget

import (
	"github.com/hearth/budget-engine/planning"
)

// OverviewInput is everything BuildOverview needs, loaded by the caller.
type OverviewInput struct {
	Envelopes   []Envelope
	Sources     []IncomeSource
	Allocations []Allocation
	Events      []Event
	Debts       []Debt
	Settings    Settings
	Today       planning.Date
}

// PlanOverview is the assembled result. Tiers appear in priority order,
// including empty ones; the API layer decides what to hide.
type PlanOverview struct {
	Cycle          planning.PayCycle
	Tiers          []planning.TierGroup
	TotalRequired  planning.Money
	TotalAllocated planning.Money
	TotalShortfall planning.Money
	Readiness      planning.ReadinessResult
	DebtPlan       *planning.PaymentPlan
}

// BuildOverview runs all three engine modules over the stored records.
func BuildOverview(in OverviewInput) (*PlanOverview, error) {
	cycle := in.Settings.PayCycle
	if !cycle.Valid() {
		return nil, &planning.InvalidInputError{
			Field: "pay_cycle",
			Value: string(cycle),
			Err:   planning.ErrUnknownPayCycle,
		}
	}

	targets := BuildTargets(in.Envelopes, in.Allocations)
	groups := planning.GroupByPriority(targets)

	overview := &PlanOverview{
		Cycle:          cycle,
		TotalRequired:  planning.ZeroMoney(),
		TotalAllocated: planning.ZeroMoney(),
		TotalShortfall: planning.ZeroMoney(),
	}
	for _, tier := range planning.TierOrder() {
		group := groups[tier]
		overview.Tiers = append(overview.Tiers, group)
		overview.TotalRequired = overview.TotalRequired.Add(group.SubtotalRequired)
		overview.TotalAllocated = overview.TotalAllocated.Add(group.SubtotalAllocated)
		overview.TotalShortfall = overview.TotalShortfall.Add(group.SubtotalShortfall)
	}

	events, err := BuildEvents(in.Events)
	if err != nil {
		return nil, err
	}
	readiness, err := planning.CalculateReadiness(in.Settings.CelebrationBalance, events, cycle, in.Today)
	if err != nil {
		return nil, err
	}
	overview.Readiness = readiness

	if len(in.Debts) > 0 {
		strategy := in.Settings.DebtStrategy
		if strategy == "" {
			strategy = planning.StrategySnowball
		}
		plan, err := planning.CalculatePaymentStrategy(BuildDebts(in.Debts), strategy, in.Settings.DebtSurplus)
		if err != nil {
			return nil, err
		}
		overview.DebtPlan = &plan
	}

	return overview, nil
}
