package planning_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hearth/budget-engine/planning"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func debt(id string, balance, apr float64) planning.DebtAccount {
	return planning.DebtAccount{
		ID:         planning.DebtID(id),
		Name:       id,
		Balance:    money(balance),
		APRPercent: decimal.NewFromFloat(apr),
	}
}

func fixedMin(a planning.DebtAccount, amount float64) planning.DebtAccount {
	m := money(amount)
	a.MinimumFixed = &m
	return a
}

func percentMin(a planning.DebtAccount, percent, floor float64) planning.DebtAccount {
	p := decimal.NewFromFloat(percent)
	f := money(floor)
	a.MinimumPercent = &p
	a.MinimumFloor = &f
	return a
}

// =============================================================================
// MINIMUM PAYMENTS
// =============================================================================

func TestMinimumPayment_FixedRule(t *testing.T) {
	a := fixedMin(debt("card", 500, 19.99), 25)
	if got := a.MinimumPayment(); !got.Equal(money(25)) {
		t.Errorf("expected 25, got %s", got)
	}
}

func TestMinimumPayment_PercentWithFloor(t *testing.T) {
	// 3% of 500 = 15, floor 35 wins.
	a := percentMin(debt("card", 500, 19.99), 3, 35)
	if got := a.MinimumPayment(); !got.Equal(money(35)) {
		t.Errorf("expected floor 35, got %s", got)
	}

	// 3% of 5000 = 150, above the floor.
	b := percentMin(debt("card", 5000, 19.99), 3, 35)
	if got := b.MinimumPayment(); !got.Equal(money(150)) {
		t.Errorf("expected 150, got %s", got)
	}
}

func TestMinimumPayment_DefaultsToTwoPercent(t *testing.T) {
	a := debt("card", 1000, 19.99)
	if got := a.MinimumPayment(); !got.Equal(money(20)) {
		t.Errorf("expected 2%% default = 20, got %s", got)
	}
}

func TestMinimumPayment_NeverExceedsBalance(t *testing.T) {
	a := fixedMin(debt("stub", 15, 19.99), 25)
	if got := a.MinimumPayment(); !got.Equal(money(15)) {
		t.Errorf("minimum must cap at balance, got %s", got)
	}
}

func TestTotalMinimumPayment(t *testing.T) {
	accounts := []planning.DebtAccount{
		fixedMin(debt("a", 100, 22), 10),
		fixedMin(debt("b", 500, 18), 25),
	}
	if got := planning.TotalMinimumPayment(accounts); !got.Equal(money(35)) {
		t.Errorf("expected 35, got %s", got)
	}
}

// =============================================================================
// SIMPLE INTEREST
// =============================================================================

func TestSimpleInterest_ThirtyDayWindow(t *testing.T) {
	// 1000 * 0.18/365 * 30 = 14.7945.. -> 14.79
	got, err := planning.SimpleInterestAccrued(money(1000), decimal.NewFromFloat(18), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(money(14.79)) {
		t.Errorf("expected 14.79, got %s", got)
	}
}

func TestSimpleInterest_ZeroDays(t *testing.T) {
	got, err := planning.SimpleInterestAccrued(money(1000), decimal.NewFromFloat(18), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
}

func TestSimpleInterest_RejectsNegativeInputs(t *testing.T) {
	if _, err := planning.SimpleInterestAccrued(money(-1), decimal.NewFromFloat(18), 30); !errors.Is(err, planning.ErrNegativeAmount) {
		t.Errorf("negative balance: expected ErrNegativeAmount, got %v", err)
	}
	if _, err := planning.SimpleInterestAccrued(money(100), decimal.NewFromFloat(-1), 30); !errors.Is(err, planning.ErrNegativeAmount) {
		t.Errorf("negative APR: expected ErrNegativeAmount, got %v", err)
	}
	if _, err := planning.SimpleInterestAccrued(money(100), decimal.NewFromFloat(18), -3); !errors.Is(err, planning.ErrNegativeAmount) {
		t.Errorf("negative days: expected ErrNegativeAmount, got %v", err)
	}
}

// =============================================================================
// PAYOFF STRATEGY
// =============================================================================

func TestPaymentStrategy_SnowballSmallestBalanceFirst(t *testing.T) {
	// GIVEN: $100 debt ($10 min) and $500 debt ($25 min), surplus $50
	// WHEN: pay_off strategy
	// THEN: small account gets 10 + 50 = 60 (within its 100 balance);
	//       large account gets exactly its 25 minimum

	accounts := []planning.DebtAccount{
		fixedMin(debt("large", 500, 24.99), 25),
		fixedMin(debt("small", 100, 15.99), 10),
	}

	plan, err := planning.CalculatePaymentStrategy(accounts, planning.StrategySnowball, money(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Payments[0].Account != "small" {
		t.Fatalf("snowball must order smallest balance first, got %s", plan.Payments[0].Account)
	}
	if !plan.Payments[0].TotalPayment.Equal(money(60)) {
		t.Errorf("small: expected total 60, got %s", plan.Payments[0].TotalPayment)
	}
	if !plan.Payments[1].TotalPayment.Equal(money(25)) {
		t.Errorf("large: expected minimum only 25, got %s", plan.Payments[1].TotalPayment)
	}
	if !plan.UnusedSurplus.IsZero() {
		t.Errorf("expected no unused surplus, got %s", plan.UnusedSurplus)
	}
}

func TestPaymentStrategy_AvalancheHighestAPRFirst(t *testing.T) {
	accounts := []planning.DebtAccount{
		fixedMin(debt("low-apr", 100, 9.99), 10),
		fixedMin(debt("high-apr", 500, 24.99), 25),
	}

	plan, err := planning.CalculatePaymentStrategy(accounts, planning.StrategyAvalanche, money(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Payments[0].Account != "high-apr" {
		t.Fatalf("avalanche must order highest APR first, got %s", plan.Payments[0].Account)
	}
	if !plan.Payments[0].ExtraPayment.Equal(money(50)) {
		t.Errorf("high-apr: expected extra 50, got %s", plan.Payments[0].ExtraPayment)
	}
}

func TestPaymentStrategy_SurplusRollsToNextAccount(t *testing.T) {
	// Surplus exceeds the first account's headroom; remainder rolls on.
	accounts := []planning.DebtAccount{
		fixedMin(debt("small", 40, 15), 10), // headroom 30
		fixedMin(debt("large", 500, 20), 25),
	}

	plan, err := planning.CalculatePaymentStrategy(accounts, planning.StrategySnowball, money(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Payments[0].TotalPayment.Equal(money(40)) {
		t.Errorf("small must be paid off exactly, got %s", plan.Payments[0].TotalPayment)
	}
	if !plan.Payments[1].ExtraPayment.Equal(money(70)) {
		t.Errorf("remainder must roll to large: expected 70, got %s", plan.Payments[1].ExtraPayment)
	}
}

func TestPaymentStrategy_ConservationOfMoney(t *testing.T) {
	// Property: sum(TotalPayment) == TotalMinimum + SurplusApplied, and
	// SurplusApplied + UnusedSurplus == surplus.
	accounts := []planning.DebtAccount{
		fixedMin(debt("a", 60, 12), 10),
		fixedMin(debt("b", 90, 21), 15),
	}
	surplus := money(500) // far more than the debts can absorb

	plan, err := planning.CalculatePaymentStrategy(accounts, planning.StrategySnowball, surplus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := planning.ZeroMoney()
	for _, p := range plan.Payments {
		sum = sum.Add(p.TotalPayment)
	}
	if !sum.Equal(plan.TotalMinimum.Add(plan.SurplusApplied)) {
		t.Errorf("conservation broken: payments %s vs min %s + applied %s", sum, plan.TotalMinimum, plan.SurplusApplied)
	}
	if !plan.SurplusApplied.Add(plan.UnusedSurplus).Equal(surplus) {
		t.Errorf("surplus split broken: %s + %s != %s", plan.SurplusApplied, plan.UnusedSurplus, surplus)
	}
	// Both accounts fully paid off, remainder reported.
	if !sum.Equal(money(150)) {
		t.Errorf("expected total payments 150 (all debt), got %s", sum)
	}
	if !plan.UnusedSurplus.Equal(money(375)) {
		t.Errorf("expected unused surplus 375, got %s", plan.UnusedSurplus)
	}
}

func TestPaymentStrategy_RejectsInvalidInput(t *testing.T) {
	if _, err := planning.CalculatePaymentStrategy(nil, planning.Strategy("ladder"), money(0)); !errors.Is(err, planning.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := planning.CalculatePaymentStrategy(nil, planning.StrategySnowball, money(-5)); !errors.Is(err, planning.ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestPaymentStrategy_EmptyAccounts(t *testing.T) {
	plan, err := planning.CalculatePaymentStrategy(nil, planning.StrategyAvalanche, money(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Payments) != 0 {
		t.Errorf("expected no payments, got %d", len(plan.Payments))
	}
	if !plan.UnusedSurplus.Equal(money(25)) {
		t.Errorf("entire surplus must be reported unused, got %s", plan.UnusedSurplus)
	}
}
