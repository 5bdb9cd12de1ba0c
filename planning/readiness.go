/*
readiness.go - Event readiness forecaster

PURPOSE:
  Given a savings balance and the household's dated one-off-per-year
  events (birthdays, holidays), decides whether the balance is on pace to
  cover the NEXT event by its due cycle, and how much extra per paycheck
  closes the gap.

STATUS LADDER (evaluated in order):
  no_events        nothing costed and upcoming
  on_track         balance already covers the next event
  slightly_behind  >= 80% saved, or catch-up is <= $10/cycle
  needs_attention  everything else, including "due now and underfunded"

  The 0.8 and $10 thresholds are product policy constants, not derived.

ROUNDING:
  Catch-up always rounds UP to the cent (never tell the user to save too
  little). Steady-state rounds half-up; it is a target, not a promise.

PARTY-ONLY SENTINEL:
  One event label carries no calendar date: the standing party fund. It
  never participates in date sorting, but when it is the only costed entry
  it is treated as due immediately.
*/
package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT - Celebration events
// =============================================================================

// PartyOnlyLabel marks the standing party fund: costed, but not tied to a
// calendar date.
const PartyOnlyLabel = "party_only"

// CelebrationEvent is a dated yearly obligation. TotalCost is gift plus an
// optional party component; events costing zero are ignored.
type CelebrationEvent struct {
	Label     string
	Annual    AnnualDate
	GiftCost  Money
	PartyCost Money
}

func (e CelebrationEvent) TotalCost() Money {
	return e.GiftCost.Add(e.PartyCost)
}

// Dateless reports whether the event has no usable calendar date.
func (e CelebrationEvent) Dateless() bool {
	return e.Label == PartyOnlyLabel || e.Annual.IsZero()
}

// =============================================================================
// OUTPUT - Readiness result
// =============================================================================

type ReadinessStatus string

const (
	StatusOnTrack        ReadinessStatus = "on_track"
	StatusSlightlyBehind ReadinessStatus = "slightly_behind"
	StatusNeedsAttention ReadinessStatus = "needs_attention"
	StatusNoEvents       ReadinessStatus = "no_events"
)

// UpcomingEvent describes the nearest dated obligation after resolution.
type UpcomingEvent struct {
	Label        string
	ResolvedDate Date
	AmountNeeded Money
	DaysUntil    int
	CyclesUntil  int
}

// ReadinessResult is recomputed from scratch on every call; nothing in it
// is ever mutated in place.
type ReadinessResult struct {
	Status              ReadinessStatus
	NextEvent           *UpcomingEvent
	CurrentBalance      Money
	AmountNeeded        Money
	Shortfall           Money
	PerCycleCatchUp     Money
	AnnualTotal         Money
	SteadyStatePerCycle Money
}

// Policy constants for the status ladder.
var (
	slightlyBehindReadyRatio = decimal.NewFromFloat(0.8)
	slightlyBehindCatchUpCap = NewMoneyFromInt(10)
)

// =============================================================================
// FORECASTER
// =============================================================================

// CalculateReadiness classifies whether currentBalance is on pace for the
// nearest costed event, as of an explicit today. Pure: same inputs, same
// answer.
func CalculateReadiness(currentBalance Money, events []CelebrationEvent, cycle PayCycle, today Date) (ReadinessResult, error) {
	if !cycle.Valid() {
		return ReadinessResult{}, &InvalidInputError{Field: "pay_cycle", Value: string(cycle), Err: ErrUnknownPayCycle}
	}
	if err := requireNonNegative("current_balance", currentBalance); err != nil {
		return ReadinessResult{}, err
	}

	// 1. Keep only events that actually cost something.
	var dated, dateless []CelebrationEvent
	for _, e := range events {
		if err := requireNonNegative("gift_cost", e.GiftCost); err != nil {
			return ReadinessResult{}, err
		}
		if err := requireNonNegative("party_cost", e.PartyCost); err != nil {
			return ReadinessResult{}, err
		}
		if !e.TotalCost().IsPositive() {
			continue
		}
		if e.Dateless() {
			dateless = append(dateless, e)
			continue
		}
		dated = append(dated, e)
	}

	// 2. Nothing to save for.
	if len(dated) == 0 && len(dateless) == 0 {
		return ReadinessResult{
			Status:              StatusNoEvents,
			CurrentBalance:      currentBalance,
			AmountNeeded:        ZeroMoney(),
			Shortfall:           ZeroMoney(),
			PerCycleCatchUp:     ZeroMoney(),
			AnnualTotal:         ZeroMoney(),
			SteadyStatePerCycle: ZeroMoney(),
		}, nil
	}

	// 3. Resolve and order the dated events. The sort is stable: same-day
	// events keep their input order.
	resolved := make([]UpcomingEvent, len(dated))
	for i, e := range dated {
		date := ResolveNextOccurrence(e.Annual, today)
		days := DaysUntil(date, today)
		resolved[i] = UpcomingEvent{
			Label:        e.Label,
			ResolvedDate: date,
			AmountNeeded: e.TotalCost(),
			DaysUntil:    days,
			CyclesUntil:  CyclesUntil(days, cycle),
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].ResolvedDate.Before(resolved[j].ResolvedDate)
	})

	// 4. The party-only fund only becomes "next" when no dated event
	// exists; it is then due immediately.
	var next UpcomingEvent
	if len(resolved) > 0 {
		next = resolved[0]
	} else {
		next = UpcomingEvent{
			Label:        dateless[0].Label,
			ResolvedDate: today,
			AmountNeeded: dateless[0].TotalCost(),
		}
	}

	shortfall := next.AmountNeeded.Sub(currentBalance).Max(ZeroMoney())

	// 5. Extra needed per paycheck to close the gap in time.
	catchUp := shortfall
	if next.CyclesUntil > 0 {
		catchUp = shortfall.Div(decimal.NewFromInt(int64(next.CyclesUntil))).CeilCents()
	}

	// 6. Classify.
	status := StatusNeedsAttention
	switch {
	case !shortfall.IsPositive():
		status = StatusOnTrack
	case next.CyclesUntil == 0:
		status = StatusNeedsAttention
	default:
		ready := currentBalance.Value.Div(next.AmountNeeded.Value)
		if ready.GreaterThanOrEqual(slightlyBehindReadyRatio) || catchUp.LessThanOrEqual(slightlyBehindCatchUpCap) {
			status = StatusSlightlyBehind
		}
	}

	// 7. The full forward-twelve-months obligation, not just the next one.
	annual := ZeroMoney()
	for _, e := range dated {
		annual = annual.Add(e.TotalCost())
	}
	for _, e := range dateless {
		annual = annual.Add(e.TotalCost())
	}
	steady := annual.Div(decimal.NewFromInt(int64(cycle.CyclesPerYear()))).RoundCents()

	return ReadinessResult{
		Status:              status,
		NextEvent:           &next,
		CurrentBalance:      currentBalance,
		AmountNeeded:        next.AmountNeeded,
		Shortfall:           shortfall,
		PerCycleCatchUp:     catchUp,
		AnnualTotal:         annual,
		SteadyStatePerCycle: steady,
	}, nil
}
