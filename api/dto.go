/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Envelopes:
    EnvelopeDTO, SaveEnvelopeRequest, SetAllocationRequest

  Income sources:
    IncomeSourceDTO, SaveIncomeSourceRequest

  Events / readiness:
    EventDTO, SaveEventRequest, ReadinessDTO, UpcomingEventDTO, SnapshotDTO

  Debts:
    DebtDTO, SaveDebtRequest, DebtPlanDTO, DebtPaymentDTO, InterestRequest

  Plan:
    OverviewDTO, TierGroupDTO, RebalanceResultDTO

  Scenarios:
    ScenarioDTO, LoadScenarioRequest

MONEY:
  Amounts cross the wire as float64 for the frontend's benefit. They are
  converted to decimal at the boundary; all arithmetic happens in decimal.

VALIDATION:
  Validation is done in handlers and in the planning package, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/budget.go: Whole-budget JSON schema for scenarios
*/
package api

import (
	"time"

	"github.com/hearth/budget-engine/budget"
	"github.com/hearth/budget-engine/planning"
	"github.com/hearth/budget-engine/store/sqlite"
)

// =============================================================================
// ENVELOPE TYPES
// =============================================================================

// EnvelopeDTO represents an envelope in API responses, with the allocation
// rollup already computed.
type EnvelopeDTO struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	RequiredPerCycle float64            `json:"required_per_cycle"`
	Tier             string             `json:"tier"`
	Locked           bool               `json:"locked"`
	Allocations      map[string]float64 `json:"allocations"`
	TotalAllocated   float64            `json:"total_allocated"`
	Shortfall        float64            `json:"shortfall"`
	FullyFunded      bool               `json:"fully_funded"`
	CreatedAt        string             `json:"created_at,omitempty"`
}

// SaveEnvelopeRequest is the request to create or update an envelope.
type SaveEnvelopeRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	RequiredPerCycle float64 `json:"required_per_cycle"`
	Tier             string  `json:"tier"`
}

// SetAllocationRequest pins one income source's contribution to an envelope.
// A zero amount removes the contribution.
type SetAllocationRequest struct {
	SourceID string  `json:"source_id"`
	Amount   float64 `json:"amount"`
}

// AllocationDTO is one (envelope, source) contribution.
type AllocationDTO struct {
	EnvelopeID string  `json:"envelope_id"`
	SourceID   string  `json:"source_id"`
	Amount     float64 `json:"amount"`
}

// =============================================================================
// INCOME SOURCE TYPES
// =============================================================================

// IncomeSourceDTO represents a paycheck stream.
type IncomeSourceDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

// SaveIncomeSourceRequest is the request to create or update a source.
type SaveIncomeSourceRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

// =============================================================================
// EVENT AND READINESS TYPES
// =============================================================================

// EventDTO represents a celebration event. Month 0 means the event is the
// standing party fund with no calendar date.
type EventDTO struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Month     int     `json:"month,omitempty"`
	Day       int     `json:"day,omitempty"`
	GiftCost  float64 `json:"gift_cost"`
	PartyCost float64 `json:"party_cost"`
	TotalCost float64 `json:"total_cost"`
}

// SaveEventRequest is the request to create or update an event.
type SaveEventRequest struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Month     int     `json:"month,omitempty"`
	Day       int     `json:"day,omitempty"`
	GiftCost  float64 `json:"gift_cost"`
	PartyCost float64 `json:"party_cost"`
}

// UpcomingEventDTO is the nearest dated obligation.
type UpcomingEventDTO struct {
	Label        string  `json:"label"`
	Date         string  `json:"date"`
	AmountNeeded float64 `json:"amount_needed"`
	DaysUntil    int     `json:"days_until"`
	CyclesUntil  int     `json:"cycles_until"`
}

// ReadinessDTO is the full readiness forecast.
type ReadinessDTO struct {
	Status              string            `json:"status"`
	NextEvent           *UpcomingEventDTO `json:"next_event,omitempty"`
	CurrentBalance      float64           `json:"current_balance"`
	AmountNeeded        float64           `json:"amount_needed"`
	Shortfall           float64           `json:"shortfall"`
	PerCycleCatchUp     float64           `json:"per_cycle_catch_up"`
	AnnualTotal         float64           `json:"annual_total"`
	SteadyStatePerCycle float64           `json:"steady_state_per_cycle"`
	AsOf                string            `json:"as_of"`
}

// SnapshotDTO is one recorded readiness computation.
type SnapshotDTO struct {
	ID              int64   `json:"id"`
	TakenAt         string  `json:"taken_at"`
	Status          string  `json:"status"`
	NextEventLabel  string  `json:"next_event_label,omitempty"`
	AmountNeeded    float64 `json:"amount_needed"`
	Shortfall       float64 `json:"shortfall"`
	PerCycleCatchUp float64 `json:"per_cycle_catch_up"`
	AnnualTotal     float64 `json:"annual_total"`
	SteadyState     float64 `json:"steady_state"`
}

// =============================================================================
// DEBT TYPES
// =============================================================================

// DebtDTO represents a debt account with its resolved minimum payment.
type DebtDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Balance        float64  `json:"balance"`
	APRPercent     float64  `json:"apr_percent"`
	MinimumFixed   *float64 `json:"minimum_fixed,omitempty"`
	MinimumPercent *float64 `json:"minimum_percent,omitempty"`
	MinimumFloor   *float64 `json:"minimum_floor,omitempty"`
	MinimumPayment float64  `json:"minimum_payment"`
}

// SaveDebtRequest is the request to create or update a debt account.
type SaveDebtRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Balance        float64  `json:"balance"`
	APRPercent     float64  `json:"apr_percent"`
	MinimumFixed   *float64 `json:"minimum_fixed,omitempty"`
	MinimumPercent *float64 `json:"minimum_percent,omitempty"`
	MinimumFloor   *float64 `json:"minimum_floor,omitempty"`
}

// DebtPaymentDTO is one account's slice of the plan.
type DebtPaymentDTO struct {
	DebtID         string  `json:"debt_id"`
	Name           string  `json:"name,omitempty"`
	MinimumPayment float64 `json:"minimum_payment"`
	ExtraPayment   float64 `json:"extra_payment"`
	TotalPayment   float64 `json:"total_payment"`
}

// DebtPlanDTO is the ordered payment plan.
type DebtPlanDTO struct {
	Strategy       string           `json:"strategy"`
	Payments       []DebtPaymentDTO `json:"payments"`
	TotalMinimum   float64          `json:"total_minimum"`
	SurplusApplied float64          `json:"surplus_applied"`
	UnusedSurplus  float64          `json:"unused_surplus"`
}

// InterestRequest asks how much simple interest a debt accrues over a
// number of days.
type InterestRequest struct {
	Days int `json:"days"`
}

// =============================================================================
// PLAN TYPES
// =============================================================================

// TierGroupDTO is one priority tier's slice of the plan.
type TierGroupDTO struct {
	Tier              string        `json:"tier"`
	Envelopes         []EnvelopeDTO `json:"envelopes"`
	SubtotalRequired  float64       `json:"subtotal_required"`
	SubtotalAllocated float64       `json:"subtotal_allocated"`
	SubtotalShortfall float64       `json:"subtotal_shortfall"`
	FundedCount       int           `json:"funded_count"`
}

// OverviewDTO is the whole plan in one response.
type OverviewDTO struct {
	PayCycle       string         `json:"pay_cycle"`
	Tiers          []TierGroupDTO `json:"tiers"`
	TotalRequired  float64        `json:"total_required"`
	TotalAllocated float64        `json:"total_allocated"`
	TotalShortfall float64        `json:"total_shortfall"`
	Readiness      ReadinessDTO   `json:"readiness"`
	DebtPlan       *DebtPlanDTO   `json:"debt_plan,omitempty"`
}

// RebalanceResultDTO reports what the auto-balance pass proposed or applied.
type RebalanceResultDTO struct {
	Applied     bool                          `json:"applied"`
	Suggestions map[string]map[string]float64 `json:"suggestions"`
}

// RebalanceRequest controls whether suggestions are persisted.
type RebalanceRequest struct {
	Apply bool `json:"apply"`
}

// SettingsDTO is the single-row plan configuration.
type SettingsDTO struct {
	PayCycle           string  `json:"pay_cycle"`
	CelebrationBalance float64 `json:"celebration_balance"`
	DebtStrategy       string  `json:"debt_strategy,omitempty"`
	DebtSurplus        float64 `json:"debt_surplus"`
}

// =============================================================================
// SCENARIO AND ERROR TYPES
// =============================================================================

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario by ID.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEnvelopeDTO(e budget.Envelope, target planning.FundingTarget) EnvelopeDTO {
	allocations := make(map[string]float64, len(target.Allocations))
	for source, amount := range target.Allocations {
		allocations[string(source)] = amount.Float64()
	}
	return EnvelopeDTO{
		ID:               e.ID,
		Name:             e.Name,
		RequiredPerCycle: e.RequiredPerCycle.Float64(),
		Tier:             string(e.Tier),
		Locked:           e.Locked,
		Allocations:      allocations,
		TotalAllocated:   target.TotalAllocated().Float64(),
		Shortfall:        target.Shortfall().Float64(),
		FullyFunded:      target.IsFullyFunded(),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func toEventDTO(e budget.Event) EventDTO {
	return EventDTO{
		ID:        e.ID,
		Label:     e.Label,
		Month:     int(e.Month),
		Day:       e.Day,
		GiftCost:  e.GiftCost.Float64(),
		PartyCost: e.PartyCost.Float64(),
		TotalCost: e.GiftCost.Add(e.PartyCost).Float64(),
	}
}

func toDebtDTO(d budget.Debt) DebtDTO {
	account := planning.DebtAccount{
		ID:             planning.DebtID(d.ID),
		Name:           d.Name,
		Balance:        d.Balance,
		APRPercent:     d.APRPercent,
		MinimumFixed:   d.MinimumFixed,
		MinimumPercent: d.MinimumPercent,
		MinimumFloor:   d.MinimumFloor,
	}
	apr, _ := d.APRPercent.Float64()
	dto := DebtDTO{
		ID:             d.ID,
		Name:           d.Name,
		Balance:        d.Balance.Float64(),
		APRPercent:     apr,
		MinimumPayment: account.MinimumPayment().Float64(),
	}
	if d.MinimumFixed != nil {
		v := d.MinimumFixed.Float64()
		dto.MinimumFixed = &v
	}
	if d.MinimumPercent != nil {
		v, _ := d.MinimumPercent.Float64()
		dto.MinimumPercent = &v
	}
	if d.MinimumFloor != nil {
		v := d.MinimumFloor.Float64()
		dto.MinimumFloor = &v
	}
	return dto
}

func toReadinessDTO(result planning.ReadinessResult, asOf planning.Date) ReadinessDTO {
	dto := ReadinessDTO{
		Status:              string(result.Status),
		CurrentBalance:      result.CurrentBalance.Float64(),
		AmountNeeded:        result.AmountNeeded.Float64(),
		Shortfall:           result.Shortfall.Float64(),
		PerCycleCatchUp:     result.PerCycleCatchUp.Float64(),
		AnnualTotal:         result.AnnualTotal.Float64(),
		SteadyStatePerCycle: result.SteadyStatePerCycle.Float64(),
		AsOf:                asOf.String(),
	}
	if result.NextEvent != nil {
		dto.NextEvent = &UpcomingEventDTO{
			Label:        result.NextEvent.Label,
			Date:         result.NextEvent.ResolvedDate.String(),
			AmountNeeded: result.NextEvent.AmountNeeded.Float64(),
			DaysUntil:    result.NextEvent.DaysUntil,
			CyclesUntil:  result.NextEvent.CyclesUntil,
		}
	}
	return dto
}

func toDebtPlanDTO(plan planning.PaymentPlan, names map[string]string) *DebtPlanDTO {
	payments := make([]DebtPaymentDTO, len(plan.Payments))
	for i, p := range plan.Payments {
		payments[i] = DebtPaymentDTO{
			DebtID:         string(p.Account),
			Name:           names[string(p.Account)],
			MinimumPayment: p.MinimumPayment.Float64(),
			ExtraPayment:   p.ExtraPayment.Float64(),
			TotalPayment:   p.TotalPayment.Float64(),
		}
	}
	return &DebtPlanDTO{
		Strategy:       string(plan.Strategy),
		Payments:       payments,
		TotalMinimum:   plan.TotalMinimum.Float64(),
		SurplusApplied: plan.SurplusApplied.Float64(),
		UnusedSurplus:  plan.UnusedSurplus.Float64(),
	}
}

func toSnapshotDTO(s sqlite.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		ID:              s.ID,
		TakenAt:         s.TakenAt.Format(time.RFC3339),
		Status:          string(s.Status),
		NextEventLabel:  s.NextEventLabel,
		AmountNeeded:    s.AmountNeeded.Float64(),
		Shortfall:       s.Shortfall.Float64(),
		PerCycleCatchUp: s.PerCycleCatchUp.Float64(),
		AnnualTotal:     s.AnnualTotal.Float64(),
		SteadyState:     s.SteadyState.Float64(),
	}
}
