/*
Package planning provides the budget planning calculation engine.

PURPOSE:
  This package contains the pure, stateless math behind the budgeting
  product: pay-cycle timing, envelope funding analysis, celebration-event
  readiness forecasting, and debt payoff strategy. Callers (API handlers,
  schedulers) load data, pick "today", call in, and get plain computed
  results back.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - PriorityTier: Funding priority for envelopes (essential .. unfunded)
  - FundingTarget / IncomeSource: Allocation planner inputs
  - Type-safe identifiers for targets, sources, and debts

DESIGN PRINCIPLES:
  1. Purity: No I/O, no clocks, no caches. "Today" is always a parameter.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Determinism: Same inputs, same outputs, always
  4. Validation at the boundary: unknown enums and negative currency fail
     fast instead of defaulting

USAGE:
  today := planning.NewDate(2026, time.March, 14)
  result, err := planning.CalculateReadiness(balance, events, planning.Fortnightly, today)

SEE ALSO:
  - paycycle.go: Pay-cycle clock (cycles per year, next occurrence)
  - allocation.go: Envelope funding analysis
  - readiness.go: Event readiness forecaster
  - debt.go: Debt strategy calculator
*/
package planning

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount
// =============================================================================

// Money is a currency amount. The engine is currency-agnostic; all amounts
// in a single call are assumed to share one currency.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(b Money) Money              { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money              { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool       { return m.Value.GreaterThan(b.Value) }
func (m Money) GreaterThanOrEqual(b Money) bool { return m.Value.GreaterThanOrEqual(b.Value) }
func (m Money) LessThan(b Money) bool          { return m.Value.LessThan(b.Value) }
func (m Money) LessThanOrEqual(b Money) bool   { return m.Value.LessThanOrEqual(b.Value) }
func (m Money) Equal(b Money) bool             { return m.Value.Equal(b.Value) }
func (m Money) Min(b Money) Money              { if m.LessThan(b) { return m }; return b }
func (m Money) Max(b Money) Money              { if m.GreaterThan(b) { return m }; return b }

// RoundCents rounds half away from zero to the nearest cent.
func (m Money) RoundCents() Money { return Money{Value: m.Value.Round(2)} }

// CeilCents rounds up to the nearest cent. Used for catch-up amounts so the
// user is never told to save too little.
func (m Money) CeilCents() Money { return Money{Value: m.Value.RoundCeil(2)} }

func (m Money) String() string { return m.Value.StringFixed(2) }

// Float64 is for JSON/display at the edges only; internal math stays decimal.
func (m Money) Float64() float64 { f, _ := m.Value.Float64(); return f }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type TargetID string
type SourceID string
type DebtID string

// =============================================================================
// PRIORITY TIERS
// =============================================================================

// PriorityTier orders envelopes by how important it is to fund them.
type PriorityTier string

const (
	TierEssential     PriorityTier = "essential"
	TierImportant     PriorityTier = "important"
	TierDiscretionary PriorityTier = "discretionary"
	TierUnfunded      PriorityTier = "unfunded"
)

// TierOrder returns all tiers from most to least important.
func TierOrder() []PriorityTier {
	return []PriorityTier{TierEssential, TierImportant, TierDiscretionary, TierUnfunded}
}

func (t PriorityTier) Valid() bool {
	switch t {
	case TierEssential, TierImportant, TierDiscretionary, TierUnfunded:
		return true
	}
	return false
}

func ParsePriorityTier(s string) (PriorityTier, error) {
	t := PriorityTier(s)
	if !t.Valid() {
		return "", &InvalidInputError{Field: "priority_tier", Value: s, Err: ErrUnknownTier}
	}
	return t, nil
}

// =============================================================================
// ALLOCATION PLANNER INPUTS
// =============================================================================

// IncomeSource identifies a paycheck stream. Ordinal 0 is the primary
// source; contribution amounts live on the FundingTarget side.
type IncomeSource struct {
	ID      SourceID
	Label   string
	Ordinal int
}

// FundingTarget is an envelope: a bucket with a required per-cycle
// contribution, a priority tier, and the contributions currently assigned
// to it from each income source.
//
// Locked means the caller has pinned the allocations by hand; auto-balance
// helpers must leave them untouched. The engine never decides locking, it
// only respects it.
type FundingTarget struct {
	ID               TargetID
	Name             string
	RequiredPerCycle Money
	Tier             PriorityTier
	Allocations      map[SourceID]Money
	Locked           bool
}
