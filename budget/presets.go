/*
presets.go - Starter budget configurations

PURPOSE:
  Ready-to-load budget JSON for onboarding and demos. These feed the
  factory parser; the API's scenario endpoints load them into the store.

AVAILABLE PRESETS:
  StarterFamilyBudgetJSON: Two incomes, a tiered envelope set, two kid
                           birthdays plus the standing party fund
  DebtFocusBudgetJSON:     Lean envelopes, three debts, avalanche surplus

CUSTOMIZATION:
  These are starting points; households edit everything after loading.
*/
package budget

// StarterFamilyBudgetJSON is the default onboarding budget: a two-income
// household on a fortnightly cycle.
func StarterFamilyBudgetJSON() string {
	return `{
  "pay_cycle": "fortnightly",
  "celebration_balance": 120,
  "income_sources": [
    {"id": "income-primary", "name": "Primary paycheck", "ordinal": 0},
    {"id": "income-secondary", "name": "Secondary paycheck", "ordinal": 1}
  ],
  "envelopes": [
    {"id": "env-rent", "name": "Rent", "required_per_cycle": 900, "tier": "essential",
      "allocations": {"income-primary": 700, "income-secondary": 200}},
    {"id": "env-groceries", "name": "Groceries", "required_per_cycle": 320, "tier": "essential",
      "allocations": {"income-primary": 320}},
    {"id": "env-utilities", "name": "Utilities", "required_per_cycle": 110, "tier": "essential",
      "allocations": {"income-primary": 60, "income-secondary": 50}},
    {"id": "env-activities", "name": "Kids activities", "required_per_cycle": 65, "tier": "important",
      "allocations": {"income-secondary": 40}},
    {"id": "env-clothes", "name": "Clothing", "required_per_cycle": 50, "tier": "important",
      "allocations": {}},
    {"id": "env-eating-out", "name": "Eating out", "required_per_cycle": 80, "tier": "discretionary",
      "allocations": {"income-primary": 30}},
    {"id": "env-someday", "name": "Someday fund", "required_per_cycle": 0, "tier": "unfunded",
      "allocations": {}}
  ],
  "events": [
    {"id": "evt-mia", "label": "Mia's birthday", "month": 4, "day": 10, "gift_cost": 80, "party_cost": 150},
    {"id": "evt-leo", "label": "Leo's birthday", "month": 9, "day": 22, "gift_cost": 80, "party_cost": 120},
    {"id": "evt-party-fund", "label": "party_only", "gift_cost": 0, "party_cost": 90}
  ],
  "debts": []
}`
}

// DebtFocusBudgetJSON demos the payoff calculator: minimal envelopes and
// three debts paid down highest-interest-first.
func DebtFocusBudgetJSON() string {
	return `{
  "pay_cycle": "monthly",
  "celebration_balance": 0,
  "debt_strategy": "highest_interest",
  "debt_surplus": 250,
  "income_sources": [
    {"id": "income-primary", "name": "Primary paycheck", "ordinal": 0}
  ],
  "envelopes": [
    {"id": "env-rent", "name": "Rent", "required_per_cycle": 1400, "tier": "essential",
      "allocations": {"income-primary": 1400}},
    {"id": "env-groceries", "name": "Groceries", "required_per_cycle": 600, "tier": "essential",
      "allocations": {"income-primary": 600}}
  ],
  "events": [],
  "debts": [
    {"id": "debt-visa", "name": "Visa", "balance": 4200, "apr_percent": 24.99,
      "minimum_percent": 2, "minimum_floor": 35},
    {"id": "debt-store-card", "name": "Store card", "balance": 750, "apr_percent": 29.99,
      "minimum_fixed": 25},
    {"id": "debt-car-loan", "name": "Car loan", "balance": 8900, "apr_percent": 6.4,
      "minimum_fixed": 310}
  ]
}`
}
