/*
Package budget maps the household's stored records onto the planning
engine's inputs and assembles the composite plan views the product shows.

PURPOSE:
  The planning package is pure math over value inputs; this package owns
  the shapes those values take when they live in the store (envelopes,
  income sources, per-source allocations, celebration events, debts) and
  the conversions between the two worlds. It also carries the one piece
  of allocation policy the engine deliberately leaves to callers: when a
  hand-pinned (locked) envelope should be unlocked again.

SEE ALSO:
  - plan.go: Composite plan overview assembly
  - presets.go: Starter budget configurations
  - factory: JSON parsing into these records
*/
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hearth/budget-engine/planning"
)

// =============================================================================
// STORED RECORDS
// =============================================================================

// Envelope is a stored funding target. Allocations live in their own rows
// (one per income source) so they can be edited independently.
type Envelope struct {
	ID               string
	Name             string
	RequiredPerCycle planning.Money
	Tier             planning.PriorityTier
	Locked           bool
	CreatedAt        time.Time
}

// IncomeSource is a paycheck stream. Ordinal 0 is the primary income.
type IncomeSource struct {
	ID      string
	Name    string
	Ordinal int
}

// Allocation assigns part of one income source to one envelope.
type Allocation struct {
	EnvelopeID string
	SourceID   string
	Amount     planning.Money
}

// Event is a stored celebration: an annual month/day plus gift and party
// cost components. Month 0 marks the dateless party fund.
type Event struct {
	ID        string
	Label     string
	Month     time.Month
	Day       int
	GiftCost  planning.Money
	PartyCost planning.Money
}

// Debt is a stored revolving-debt account. Exactly one minimum-payment
// rule applies: fixed, percent (with optional floor), or the engine's
// default when neither is set.
type Debt struct {
	ID         string
	Name       string
	Balance    planning.Money
	APRPercent decimal.Decimal

	MinimumFixed   *planning.Money
	MinimumPercent *decimal.Decimal
	MinimumFloor   *planning.Money
}

// Settings is the household's plan configuration.
type Settings struct {
	PayCycle           planning.PayCycle
	CelebrationBalance planning.Money
	DebtStrategy       planning.Strategy
	DebtSurplus        planning.Money
}

// =============================================================================
// CONVERSIONS TO ENGINE INPUTS
// =============================================================================

// BuildTargets joins envelopes with their allocation rows into engine
// funding targets.
func BuildTargets(envelopes []Envelope, allocations []Allocation) []planning.FundingTarget {
	bySource := make(map[string]map[planning.SourceID]planning.Money, len(envelopes))
	for _, a := range allocations {
		if bySource[a.EnvelopeID] == nil {
			bySource[a.EnvelopeID] = make(map[planning.SourceID]planning.Money)
		}
		bySource[a.EnvelopeID][planning.SourceID(a.SourceID)] = a.Amount
	}

	targets := make([]planning.FundingTarget, len(envelopes))
	for i, e := range envelopes {
		targets[i] = planning.FundingTarget{
			ID:               planning.TargetID(e.ID),
			Name:             e.Name,
			RequiredPerCycle: e.RequiredPerCycle,
			Tier:             e.Tier,
			Allocations:      bySource[e.ID],
			Locked:           e.Locked,
		}
	}
	return targets
}

func BuildSources(sources []IncomeSource) []planning.IncomeSource {
	out := make([]planning.IncomeSource, len(sources))
	for i, s := range sources {
		out[i] = planning.IncomeSource{
			ID:      planning.SourceID(s.ID),
			Label:   s.Name,
			Ordinal: s.Ordinal,
		}
	}
	return out
}

// BuildEvents validates each stored month/day on the way out; a row that
// was valid when written stays valid, so errors here mean store-level
// corruption and are worth surfacing loudly.
func BuildEvents(events []Event) ([]planning.CelebrationEvent, error) {
	out := make([]planning.CelebrationEvent, len(events))
	for i, e := range events {
		var annual planning.AnnualDate
		if e.Month != 0 {
			a, err := planning.NewAnnualDate(e.Month, e.Day)
			if err != nil {
				return nil, err
			}
			annual = a
		}
		out[i] = planning.CelebrationEvent{
			Label:     e.Label,
			Annual:    annual,
			GiftCost:  e.GiftCost,
			PartyCost: e.PartyCost,
		}
	}
	return out, nil
}

func BuildDebts(debts []Debt) []planning.DebtAccount {
	out := make([]planning.DebtAccount, len(debts))
	for i, d := range debts {
		out[i] = planning.DebtAccount{
			ID:             planning.DebtID(d.ID),
			Name:           d.Name,
			Balance:        d.Balance,
			APRPercent:     d.APRPercent,
			MinimumFixed:   d.MinimumFixed,
			MinimumPercent: d.MinimumPercent,
			MinimumFloor:   d.MinimumFloor,
		}
	}
	return out
}

// =============================================================================
// LOCK POLICY
// =============================================================================

// ShouldUnlock decides whether a locked envelope's pinned allocations
// should be released after an edit. The triggers are a changed per-cycle
// requirement or a changed pay cadence; anything else (rename, tier
// change) keeps the pin.
func ShouldUnlock(before, after Envelope, cycleChanged bool) bool {
	if !before.Locked {
		return false
	}
	if cycleChanged {
		return true
	}
	return !before.RequiredPerCycle.Equal(after.RequiredPerCycle)
}
