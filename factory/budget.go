/*
Package factory provides JSON to Go budget conversion.

PURPOSE:
  Converts JSON budget definitions into budget records and plan settings.
  This is the one boundary where untrusted shapes become validated domain
  values - scenario loading, the import endpoint, and onboarding presets
  all come through here.

WHY JSON?
  - Presets ship as readable documents
  - Easy integration with the onboarding UI
  - Version control for demo scenarios
  - One validation path for every external budget shape

JSON SCHEMA:
  {
    "pay_cycle": "fortnightly",
    "celebration_balance": 120,
    "debt_strategy": "highest_interest",
    "debt_surplus": 250,
    "income_sources": [{"id": "...", "name": "...", "ordinal": 0}],
    "envelopes": [{"id": "...", "name": "...", "required_per_cycle": 900,
                   "tier": "essential", "locked": false,
                   "allocations": {"income-id": 700}}],
    "events": [{"id": "...", "label": "...", "month": 4, "day": 10,
                "gift_cost": 80, "party_cost": 150}],
    "debts": [{"id": "...", "name": "...", "balance": 4200,
               "apr_percent": 24.99, "minimum_fixed": 25,
               "minimum_percent": 2, "minimum_floor": 35}]
  }

VALIDATION:
  Unknown enums, negative currency, and impossible month/day pairs are
  rejected here with the engine's sentinel errors, never defaulted.

SEE ALSO:
  - budget/presets.go: Preset JSON documents
  - api/scenarios.go: Demo scenario loading
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hearth/budget-engine/budget"
	"github.com/hearth/budget-engine/planning"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

type BudgetJSON struct {
	PayCycle           string             `json:"pay_cycle"`
	CelebrationBalance float64            `json:"celebration_balance"`
	DebtStrategy       string             `json:"debt_strategy,omitempty"`
	DebtSurplus        float64            `json:"debt_surplus,omitempty"`
	IncomeSources      []IncomeSourceJSON `json:"income_sources"`
	Envelopes          []EnvelopeJSON     `json:"envelopes"`
	Events             []EventJSON        `json:"events"`
	Debts              []DebtJSON         `json:"debts"`
}

type IncomeSourceJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

type EnvelopeJSON struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	RequiredPerCycle float64            `json:"required_per_cycle"`
	Tier             string             `json:"tier"`
	Locked           bool               `json:"locked,omitempty"`
	Allocations      map[string]float64 `json:"allocations"`
}

type EventJSON struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Month     int     `json:"month,omitempty"` // 0 = dateless (party fund)
	Day       int     `json:"day,omitempty"`
	GiftCost  float64 `json:"gift_cost"`
	PartyCost float64 `json:"party_cost"`
}

type DebtJSON struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Balance        float64  `json:"balance"`
	APRPercent     float64  `json:"apr_percent"`
	MinimumFixed   *float64 `json:"minimum_fixed,omitempty"`
	MinimumPercent *float64 `json:"minimum_percent,omitempty"`
	MinimumFloor   *float64 `json:"minimum_floor,omitempty"`
}

// =============================================================================
// PARSED OUTPUT
// =============================================================================

// Budget is the fully-validated result of parsing.
type Budget struct {
	Settings    budget.Settings
	Sources     []budget.IncomeSource
	Envelopes   []budget.Envelope
	Allocations []budget.Allocation
	Events      []budget.Event
	Debts       []budget.Debt
}

// =============================================================================
// PARSER
// =============================================================================

type BudgetFactory struct{}

func NewBudgetFactory() *BudgetFactory { return &BudgetFactory{} }

// ParseBudget turns a JSON document into validated budget records.
func (f *BudgetFactory) ParseBudget(jsonStr string) (*Budget, error) {
	var doc BudgetJSON
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return nil, fmt.Errorf("invalid budget JSON: %w", err)
	}
	return f.FromDocument(doc)
}

// FromDocument validates an already-unmarshaled document.
func (f *BudgetFactory) FromDocument(doc BudgetJSON) (*Budget, error) {
	cycle, err := planning.ParsePayCycle(doc.PayCycle)
	if err != nil {
		return nil, err
	}

	balance, err := nonNegativeMoney("celebration_balance", doc.CelebrationBalance)
	if err != nil {
		return nil, err
	}
	surplus, err := nonNegativeMoney("debt_surplus", doc.DebtSurplus)
	if err != nil {
		return nil, err
	}

	strategy := planning.Strategy("")
	if doc.DebtStrategy != "" {
		strategy, err = planning.ParseStrategy(doc.DebtStrategy)
		if err != nil {
			return nil, err
		}
	}

	result := &Budget{
		Settings: budget.Settings{
			PayCycle:           cycle,
			CelebrationBalance: balance,
			DebtStrategy:       strategy,
			DebtSurplus:        surplus,
		},
	}

	knownSources := make(map[string]bool, len(doc.IncomeSources))
	for _, s := range doc.IncomeSources {
		if s.ID == "" {
			return nil, fmt.Errorf("income source %q: missing id", s.Name)
		}
		knownSources[s.ID] = true
		result.Sources = append(result.Sources, budget.IncomeSource{
			ID:      s.ID,
			Name:    s.Name,
			Ordinal: s.Ordinal,
		})
	}

	for _, e := range doc.Envelopes {
		required, err := nonNegativeMoney("required_per_cycle", e.RequiredPerCycle)
		if err != nil {
			return nil, fmt.Errorf("envelope %q: %w", e.ID, err)
		}
		tier, err := planning.ParsePriorityTier(e.Tier)
		if err != nil {
			return nil, fmt.Errorf("envelope %q: %w", e.ID, err)
		}
		result.Envelopes = append(result.Envelopes, budget.Envelope{
			ID:               e.ID,
			Name:             e.Name,
			RequiredPerCycle: required,
			Tier:             tier,
			Locked:           e.Locked,
		})

		for sourceID, amount := range e.Allocations {
			if !knownSources[sourceID] {
				return nil, fmt.Errorf("envelope %q allocates from unknown income source %q", e.ID, sourceID)
			}
			money, err := nonNegativeMoney("allocation", amount)
			if err != nil {
				return nil, fmt.Errorf("envelope %q: %w", e.ID, err)
			}
			result.Allocations = append(result.Allocations, budget.Allocation{
				EnvelopeID: e.ID,
				SourceID:   sourceID,
				Amount:     money,
			})
		}
	}

	for _, e := range doc.Events {
		gift, err := nonNegativeMoney("gift_cost", e.GiftCost)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", e.ID, err)
		}
		party, err := nonNegativeMoney("party_cost", e.PartyCost)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", e.ID, err)
		}
		if e.Month != 0 {
			if _, err := planning.NewAnnualDate(time.Month(e.Month), e.Day); err != nil {
				return nil, fmt.Errorf("event %q: %w", e.ID, err)
			}
		}
		result.Events = append(result.Events, budget.Event{
			ID:        e.ID,
			Label:     e.Label,
			Month:     time.Month(e.Month),
			Day:       e.Day,
			GiftCost:  gift,
			PartyCost: party,
		})
	}

	for _, d := range doc.Debts {
		record, err := parseDebt(d)
		if err != nil {
			return nil, err
		}
		result.Debts = append(result.Debts, record)
	}

	return result, nil
}

func parseDebt(d DebtJSON) (budget.Debt, error) {
	balance, err := nonNegativeMoney("balance", d.Balance)
	if err != nil {
		return budget.Debt{}, fmt.Errorf("debt %q: %w", d.ID, err)
	}
	if d.APRPercent < 0 {
		return budget.Debt{}, fmt.Errorf("debt %q: %w", d.ID, &planning.InvalidInputError{
			Field: "apr_percent",
			Value: fmt.Sprintf("%g", d.APRPercent),
			Err:   planning.ErrNegativeAmount,
		})
	}

	record := budget.Debt{
		ID:         d.ID,
		Name:       d.Name,
		Balance:    balance,
		APRPercent: decimal.NewFromFloat(d.APRPercent),
	}
	if d.MinimumFixed != nil {
		fixed, err := nonNegativeMoney("minimum_fixed", *d.MinimumFixed)
		if err != nil {
			return budget.Debt{}, fmt.Errorf("debt %q: %w", d.ID, err)
		}
		record.MinimumFixed = &fixed
	}
	if d.MinimumPercent != nil {
		if *d.MinimumPercent < 0 {
			return budget.Debt{}, fmt.Errorf("debt %q: %w", d.ID, &planning.InvalidInputError{
				Field: "minimum_percent",
				Value: fmt.Sprintf("%g", *d.MinimumPercent),
				Err:   planning.ErrNegativeAmount,
			})
		}
		percent := decimal.NewFromFloat(*d.MinimumPercent)
		record.MinimumPercent = &percent
	}
	if d.MinimumFloor != nil {
		floor, err := nonNegativeMoney("minimum_floor", *d.MinimumFloor)
		if err != nil {
			return budget.Debt{}, fmt.Errorf("debt %q: %w", d.ID, err)
		}
		record.MinimumFloor = &floor
	}
	return record, nil
}

func nonNegativeMoney(field string, v float64) (planning.Money, error) {
	if v < 0 {
		return planning.Money{}, &planning.InvalidInputError{
			Field: field,
			Value: fmt.Sprintf("%g", v),
			Err:   planning.ErrNegativeAmount,
		}
	}
	return planning.NewMoney(v), nil
}
