/*
debt.go - Debt strategy calculator

PURPOSE:
  Computes minimum payments, simple daily interest, and an ordered payoff
  plan for revolving debts. Independent of the other modules; it only
  shares the Money conventions.

STRATEGIES:
  pay_off          smallest balance first ("snowball")
  highest_interest largest APR first ("avalanche")

MONEY CONSERVATION:
  The plan guarantees sum(TotalPayment) == TotalMinimumPayment + applied
  surplus. When the surplus exceeds what the debts can absorb, the excess
  is reported in UnusedSurplus rather than silently dropped.

INTEREST MODEL:
  SimpleInterestAccrued is linear and non-compounding, sized for a single
  statement window (<= ~30 days). Reusing it for multi-month projections
  understates real accrual.
*/
package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// defaultMinimumPercent applies when an account configures no minimum
// payment rule at all: 2% of current balance.
var defaultMinimumPercent = decimal.NewFromInt(2)

// =============================================================================
// DEBT ACCOUNT
// =============================================================================

// DebtAccount is a revolving balance. Source ledgers may store the amount
// owed signed; here it is always a positive magnitude.
//
// Minimum payment resolves in order: fixed amount if set, else percent of
// balance (with optional currency floor), else the 2% default.
type DebtAccount struct {
	ID         DebtID
	Name       string
	Balance    Money
	APRPercent decimal.Decimal

	MinimumFixed   *Money
	MinimumPercent *decimal.Decimal
	MinimumFloor   *Money
}

// MinimumPayment resolves the account's configured rule. The result is
// clamped to [0, Balance]: a minimum never exceeds what is owed.
func (a DebtAccount) MinimumPayment() Money {
	var payment Money
	switch {
	case a.MinimumFixed != nil:
		payment = *a.MinimumFixed
	case a.MinimumPercent != nil:
		payment = a.Balance.Mul(a.MinimumPercent.Div(decimal.NewFromInt(100))).RoundCents()
		if a.MinimumFloor != nil && payment.LessThan(*a.MinimumFloor) {
			payment = *a.MinimumFloor
		}
	default:
		payment = a.Balance.Mul(defaultMinimumPercent.Div(decimal.NewFromInt(100))).RoundCents()
	}

	if payment.IsNegative() {
		return ZeroMoney()
	}
	return payment.Min(a.Balance)
}

// TotalMinimumPayment sums minimums across accounts.
func TotalMinimumPayment(accounts []DebtAccount) Money {
	total := ZeroMoney()
	for _, a := range accounts {
		total = total.Add(a.MinimumPayment())
	}
	return total
}

// SimpleInterestAccrued is balance * (apr/100/365) * days, rounded to the
// cent. Non-compounding on purpose; see the package note on the model.
func SimpleInterestAccrued(balance Money, aprPercent decimal.Decimal, days int) (Money, error) {
	if err := requireNonNegative("balance", balance); err != nil {
		return Money{}, err
	}
	if aprPercent.IsNegative() {
		return Money{}, &InvalidInputError{Field: "apr_percent", Value: aprPercent.String(), Err: ErrNegativeAmount}
	}
	if days < 0 {
		return Money{}, &InvalidInputError{Field: "days", Value: decimal.NewFromInt(int64(days)).String(), Err: ErrNegativeAmount}
	}

	dailyRate := aprPercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(365))
	accrued := balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
	return accrued.RoundCents(), nil
}

// =============================================================================
// PAYOFF STRATEGY
// =============================================================================

type Strategy string

const (
	// StrategySnowball pays the smallest balance first.
	StrategySnowball Strategy = "pay_off"

	// StrategyAvalanche pays the highest APR first.
	StrategyAvalanche Strategy = "highest_interest"
)

func (s Strategy) Valid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

func ParseStrategy(s string) (Strategy, error) {
	strategy := Strategy(s)
	if !strategy.Valid() {
		return "", &InvalidInputError{Field: "strategy", Value: s, Err: ErrUnknownStrategy}
	}
	return strategy, nil
}

// DebtPayment is one account's slice of the plan.
type DebtPayment struct {
	Account        DebtID
	MinimumPayment Money
	ExtraPayment   Money
	TotalPayment   Money
}

// PaymentPlan is the ordered allocation of minimums plus surplus.
type PaymentPlan struct {
	Strategy       Strategy
	Payments       []DebtPayment
	TotalMinimum   Money
	SurplusApplied Money
	UnusedSurplus  Money
}

// CalculatePaymentStrategy gives every account its minimum, then pours the
// surplus into the first account in strategy order up to its balance,
// rolling the remainder onward. Payments appear in strategy order.
func CalculatePaymentStrategy(accounts []DebtAccount, strategy Strategy, surplus Money) (PaymentPlan, error) {
	if !strategy.Valid() {
		return PaymentPlan{}, &InvalidInputError{Field: "strategy", Value: string(strategy), Err: ErrUnknownStrategy}
	}
	if err := requireNonNegative("surplus", surplus); err != nil {
		return PaymentPlan{}, err
	}
	for _, a := range accounts {
		if err := requireNonNegative("balance", a.Balance); err != nil {
			return PaymentPlan{}, err
		}
	}

	ordered := make([]DebtAccount, len(accounts))
	copy(ordered, accounts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if strategy == StrategyAvalanche {
			return ordered[i].APRPercent.GreaterThan(ordered[j].APRPercent)
		}
		return ordered[i].Balance.LessThan(ordered[j].Balance)
	})

	plan := PaymentPlan{
		Strategy:     strategy,
		TotalMinimum: ZeroMoney(),
	}

	remaining := surplus
	for _, account := range ordered {
		minimum := account.MinimumPayment()
		plan.TotalMinimum = plan.TotalMinimum.Add(minimum)

		// Extra is capped by what the balance can still absorb after the
		// minimum.
		headroom := account.Balance.Sub(minimum).Max(ZeroMoney())
		extra := remaining.Min(headroom)
		remaining = remaining.Sub(extra)

		plan.Payments = append(plan.Payments, DebtPayment{
			Account:        account.ID,
			MinimumPayment: minimum,
			ExtraPayment:   extra,
			TotalPayment:   minimum.Add(extra),
		})
	}

	plan.SurplusApplied = surplus.Sub(remaining)
	plan.UnusedSurplus = remaining
	return plan, nil
}
