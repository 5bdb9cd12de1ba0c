/*
handlers.go - HTTP API handlers for the budget planning engine

PURPOSE:
  Exposes the planning engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Envelopes:
    GET    /api/envelopes                    List envelopes with rollups
    POST   /api/envelopes                    Create/update envelope
    GET    /api/envelopes/{id}               Get envelope details
    DELETE /api/envelopes/{id}               Delete envelope
    POST   /api/envelopes/{id}/lock          Pin current allocations
    POST   /api/envelopes/{id}/unlock        Release for auto-balance
    GET    /api/envelopes/{id}/allocations   Per-source contributions
    PUT    /api/envelopes/{id}/allocations   Set one contribution

  Income sources:
    GET    /api/sources                      List paycheck streams
    POST   /api/sources                      Create/update source
    DELETE /api/sources/{id}                 Delete source

  Events / readiness:
    GET    /api/events                       List celebration events
    POST   /api/events                       Create/update event
    DELETE /api/events/{id}                  Delete event
    GET    /api/readiness                    Readiness forecast
    GET    /api/readiness/snapshots          Scheduler history

  Debts:
    GET    /api/debts                        List debt accounts
    POST   /api/debts                        Create/update debt
    DELETE /api/debts/{id}                   Delete debt
    GET    /api/debts/plan                   Payment plan for settings
    POST   /api/debts/{id}/interest          Simple interest over N days

  Plan:
    GET    /api/plan/overview                Tiers + readiness + debt plan
    POST   /api/plan/rebalance               Auto-balance unlocked envelopes

  Settings / scenarios:
    GET    /api/settings                     Plan configuration
    PUT    /api/settings                     Update configuration
    GET    /api/scenarios                    List demo scenarios
    POST   /api/scenarios/load               Load a demo scenario

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (planning.IsClientError)
  - 404: Record not found
  - 500: Internal errors

AS-OF DATES:
  Readiness and overview accept ?as_of=YYYY-MM-DD so forecasts are
  reproducible. Default is today in UTC.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/hearth/budget-engine/budget"
	"github.com/hearth/budget-engine/factory"
	"github.com/hearth/budget-engine/planning"
	"github.com/hearth/budget-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Factory *factory.BudgetFactory
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewBudgetFactory(),
	}
}

// asOfDate resolves the ?as_of query parameter, defaulting to today UTC.
func asOfDate(r *http.Request) (planning.Date, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return planning.DateOf(time.Now().UTC()), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return planning.Date{}, fmt.Errorf("invalid as_of date (use YYYY-MM-DD): %w", err)
	}
	return planning.DateOf(t), nil
}

// =============================================================================
// ENVELOPE HANDLERS
// =============================================================================

// ListEnvelopes returns all envelopes with their allocation rollups.
func (h *Handler) ListEnvelopes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	envelopes, err := h.Store.ListEnvelopes(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list envelopes", err)
		return
	}
	allocations, err := h.Store.ListAllocations(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list allocations", err)
		return
	}

	targets := targetsByID(budget.BuildTargets(envelopes, allocations))
	dtos := make([]EnvelopeDTO, len(envelopes))
	for i, e := range envelopes {
		dtos[i] = toEnvelopeDTO(e, targets[planning.TargetID(e.ID)])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEnvelope returns a single envelope.
func (h *Handler) GetEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	envelope, err := h.Store.GetEnvelope(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get envelope", err)
		return
	}
	if envelope == nil {
		writeError(w, http.StatusNotFound, "Envelope not found", nil)
		return
	}

	allocations, err := h.Store.ListAllocationsForEnvelope(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list allocations", err)
		return
	}
	targets := budget.BuildTargets([]budget.Envelope{*envelope}, allocations)
	writeJSON(w, http.StatusOK, toEnvelopeDTO(*envelope, targets[0]))
}

// SaveEnvelope creates or updates an envelope. When an edit changes the
// per-cycle requirement of a locked envelope, the lock is released and its
// pinned contributions cleared so the next rebalance can redistribute.
func (h *Handler) SaveEnvelope(w http.ResponseWriter, r *http.Request) {
	var req SaveEnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "ID and name are required", nil)
		return
	}

	tier, err := planning.ParsePriorityTier(req.Tier)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tier", err)
		return
	}
	required := planning.NewMoney(req.RequiredPerCycle)
	if required.IsNegative() {
		writeError(w, http.StatusBadRequest, "required_per_cycle must not be negative", nil)
		return
	}

	ctx := r.Context()
	before, err := h.Store.GetEnvelope(ctx, req.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get envelope", err)
		return
	}

	after := budget.Envelope{
		ID:               req.ID,
		Name:             req.Name,
		RequiredPerCycle: required,
		Tier:             tier,
	}
	status := http.StatusCreated
	if before != nil {
		status = http.StatusOK
		after.Locked = before.Locked
		after.CreatedAt = before.CreatedAt
		if budget.ShouldUnlock(*before, after, false) {
			after.Locked = false
			if err := h.Store.ClearAllocations(ctx, req.ID); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to clear allocations", err)
				return
			}
		}
	}

	if err := h.Store.SaveEnvelope(ctx, after); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save envelope", err)
		return
	}

	allocations, _ := h.Store.ListAllocationsForEnvelope(ctx, after.ID)
	targets := budget.BuildTargets([]budget.Envelope{after}, allocations)
	writeJSON(w, status, toEnvelopeDTO(after, targets[0]))
}

// DeleteEnvelope removes an envelope; its allocations cascade.
func (h *Handler) DeleteEnvelope(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteEnvelope(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "Envelope not found", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// LockEnvelope pins the envelope's current contributions.
func (h *Handler) LockEnvelope(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, true)
}

// UnlockEnvelope releases the envelope for auto-balance.
func (h *Handler) UnlockEnvelope(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, false)
}

func (h *Handler) setLock(w http.ResponseWriter, r *http.Request, locked bool) {
	id := chi.URLParam(r, "id")
	if err := h.Store.SetEnvelopeLock(r.Context(), id, locked); err != nil {
		writeError(w, http.StatusNotFound, "Envelope not found", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "locked": locked})
}

// ListEnvelopeAllocations returns the per-source contributions for one envelope.
func (h *Handler) ListEnvelopeAllocations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	allocations, err := h.Store.ListAllocationsForEnvelope(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list allocations", err)
		return
	}
	dtos := make([]AllocationDTO, len(allocations))
	for i, a := range allocations {
		dtos[i] = AllocationDTO{EnvelopeID: a.EnvelopeID, SourceID: a.SourceID, Amount: a.Amount.Float64()}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SetAllocation pins one income source's contribution to an envelope.
func (h *Handler) SetAllocation(w http.ResponseWriter, r *http.Request) {
	envelopeID := chi.URLParam(r, "id")

	var req SetAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount := planning.NewMoney(req.Amount)
	if amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "amount must not be negative", nil)
		return
	}

	ctx := r.Context()
	envelope, err := h.Store.GetEnvelope(ctx, envelopeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get envelope", err)
		return
	}
	if envelope == nil {
		writeError(w, http.StatusNotFound, "Envelope not found", nil)
		return
	}

	alloc := budget.Allocation{EnvelopeID: envelopeID, SourceID: req.SourceID, Amount: amount}
	if err := h.Store.SetAllocation(ctx, alloc); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to set allocation", err)
		return
	}
	writeJSON(w, http.StatusOK, AllocationDTO{EnvelopeID: envelopeID, SourceID: req.SourceID, Amount: amount.Float64()})
}

// =============================================================================
// INCOME SOURCE HANDLERS
// =============================================================================

// ListIncomeSources returns all paycheck streams in ordinal order.
func (h *Handler) ListIncomeSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.Store.ListIncomeSources(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list income sources", err)
		return
	}
	dtos := make([]IncomeSourceDTO, len(sources))
	for i, s := range sources {
		dtos[i] = IncomeSourceDTO{ID: s.ID, Name: s.Name, Ordinal: s.Ordinal}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveIncomeSource creates or updates a source.
func (h *Handler) SaveIncomeSource(w http.ResponseWriter, r *http.Request) {
	var req SaveIncomeSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "ID and name are required", nil)
		return
	}

	src := budget.IncomeSource{ID: req.ID, Name: req.Name, Ordinal: req.Ordinal}
	if err := h.Store.SaveIncomeSource(r.Context(), src); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save income source", err)
		return
	}
	writeJSON(w, http.StatusCreated, IncomeSourceDTO{ID: src.ID, Name: src.Name, Ordinal: src.Ordinal})
}

// DeleteIncomeSource removes a source; its allocations cascade.
func (h *Handler) DeleteIncomeSource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteIncomeSource(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "Income source not found", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// EVENT HANDLERS
// =============================================================================

// ListEvents returns all celebration events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.ListEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events", err)
		return
	}
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = toEventDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveEvent creates or updates an event. Month 0 stores a dateless event;
// any other month must pair with a valid day.
func (h *Handler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	var req SaveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Label == "" {
		writeError(w, http.StatusBadRequest, "ID and label are required", nil)
		return
	}
	if req.Month != 0 {
		if _, err := planning.NewAnnualDate(time.Month(req.Month), req.Day); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event date", err)
			return
		}
	}
	gift := planning.NewMoney(req.GiftCost)
	party := planning.NewMoney(req.PartyCost)
	if gift.IsNegative() || party.IsNegative() {
		writeError(w, http.StatusBadRequest, "Costs must not be negative", nil)
		return
	}

	event := budget.Event{
		ID:        req.ID,
		Label:     req.Label,
		Month:     time.Month(req.Month),
		Day:       req.Day,
		GiftCost:  gift,
		PartyCost: party,
	}
	if err := h.Store.SaveEvent(r.Context(), event); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save event", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventDTO(event))
}

// DeleteEvent removes an event.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteEvent(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "Event not found", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// READINESS HANDLERS
// =============================================================================

// GetReadiness computes the readiness forecast as of an explicit date.
func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.computeReadiness(r, asOf)
	if err != nil {
		writeDomainError(w, "Failed to compute readiness", err)
		return
	}
	writeJSON(w, http.StatusOK, toReadinessDTO(result, asOf))
}

func (h *Handler) computeReadiness(r *http.Request, asOf planning.Date) (planning.ReadinessResult, error) {
	ctx := r.Context()
	settings, err := h.Store.GetSettings(ctx)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	records, err := h.Store.ListEvents(ctx)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	events, err := budget.BuildEvents(records)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	return planning.CalculateReadiness(settings.CelebrationBalance, events, settings.PayCycle, asOf)
}

// ListSnapshots returns the scheduler's readiness history, newest first.
func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.Store.ListSnapshots(r.Context(), 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list snapshots", err)
		return
	}
	dtos := make([]SnapshotDTO, len(snapshots))
	for i, s := range snapshots {
		dtos[i] = toSnapshotDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// DEBT HANDLERS
// =============================================================================

// ListDebts returns all debt accounts with resolved minimum payments.
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	debts, err := h.Store.ListDebts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list debts", err)
		return
	}
	dtos := make([]DebtDTO, len(debts))
	for i, d := range debts {
		dtos[i] = toDebtDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveDebt creates or updates a debt account.
func (h *Handler) SaveDebt(w http.ResponseWriter, r *http.Request) {
	var req SaveDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "ID and name are required", nil)
		return
	}
	if req.Balance < 0 || req.APRPercent < 0 {
		writeError(w, http.StatusBadRequest, "Balance and APR must not be negative", nil)
		return
	}

	debt := budget.Debt{
		ID:         req.ID,
		Name:       req.Name,
		Balance:    planning.NewMoney(req.Balance),
		APRPercent: decimal.NewFromFloat(req.APRPercent),
	}
	if req.MinimumFixed != nil {
		m := planning.NewMoney(*req.MinimumFixed)
		debt.MinimumFixed = &m
	}
	if req.MinimumPercent != nil {
		p := decimal.NewFromFloat(*req.MinimumPercent)
		debt.MinimumPercent = &p
	}
	if req.MinimumFloor != nil {
		m := planning.NewMoney(*req.MinimumFloor)
		debt.MinimumFloor = &m
	}

	if err := h.Store.SaveDebt(r.Context(), debt); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save debt", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDebtDTO(debt))
}

// DeleteDebt removes a debt account.
func (h *Handler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteDebt(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "Debt not found", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetDebtPlan builds the payment plan from the configured strategy and surplus.
func (h *Handler) GetDebtPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, err := h.Store.GetSettings(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get settings", err)
		return
	}
	debts, err := h.Store.ListDebts(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list debts", err)
		return
	}

	strategy := settings.DebtStrategy
	if strategy == "" {
		strategy = planning.StrategySnowball
	}
	if raw := r.URL.Query().Get("strategy"); raw != "" {
		strategy, err = planning.ParseStrategy(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid strategy", err)
			return
		}
	}

	plan, err := planning.CalculatePaymentStrategy(budget.BuildDebts(debts), strategy, settings.DebtSurplus)
	if err != nil {
		writeDomainError(w, "Failed to build payment plan", err)
		return
	}

	names := make(map[string]string, len(debts))
	for _, d := range debts {
		names[d.ID] = d.Name
	}
	writeJSON(w, http.StatusOK, toDebtPlanDTO(plan, names))
}

// AccrueInterest reports simple interest on one debt over a number of days.
func (h *Handler) AccrueInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req InterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	debts, err := h.Store.ListDebts(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list debts", err)
		return
	}
	var debt *budget.Debt
	for i := range debts {
		if debts[i].ID == id {
			debt = &debts[i]
			break
		}
	}
	if debt == nil {
		writeError(w, http.StatusNotFound, "Debt not found", nil)
		return
	}

	interest, err := planning.SimpleInterestAccrued(debt.Balance, debt.APRPercent, req.Days)
	if err != nil {
		writeDomainError(w, "Failed to compute interest", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"debt_id":  debt.ID,
		"days":     req.Days,
		"interest": interest.Float64(),
	})
}

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// GetOverview returns the whole plan: tier groups, readiness, debt plan.
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	input, err := h.loadOverviewInput(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load plan", err)
		return
	}
	input.Today = asOf

	overview, err := budget.BuildOverview(input)
	if err != nil {
		writeDomainError(w, "Failed to build overview", err)
		return
	}

	envelopesByID := make(map[string]budget.Envelope, len(input.Envelopes))
	for _, e := range input.Envelopes {
		envelopesByID[e.ID] = e
	}

	tiers := make([]TierGroupDTO, len(overview.Tiers))
	for i, group := range overview.Tiers {
		dto := TierGroupDTO{
			Tier:              string(group.Tier),
			Envelopes:         []EnvelopeDTO{},
			SubtotalRequired:  group.SubtotalRequired.Float64(),
			SubtotalAllocated: group.SubtotalAllocated.Float64(),
			SubtotalShortfall: group.SubtotalShortfall.Float64(),
			FundedCount:       group.FundedCount,
		}
		for _, target := range group.Targets {
			dto.Envelopes = append(dto.Envelopes, toEnvelopeDTO(envelopesByID[string(target.ID)], target))
		}
		tiers[i] = dto
	}

	result := OverviewDTO{
		PayCycle:       string(overview.Cycle),
		Tiers:          tiers,
		TotalRequired:  overview.TotalRequired.Float64(),
		TotalAllocated: overview.TotalAllocated.Float64(),
		TotalShortfall: overview.TotalShortfall.Float64(),
		Readiness:      toReadinessDTO(overview.Readiness, asOf),
	}
	if overview.DebtPlan != nil {
		names := make(map[string]string, len(input.Debts))
		for _, d := range input.Debts {
			names[d.ID] = d.Name
		}
		result.DebtPlan = toDebtPlanDTO(*overview.DebtPlan, names)
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) loadOverviewInput(r *http.Request) (budget.OverviewInput, error) {
	ctx := r.Context()
	var input budget.OverviewInput
	var err error

	if input.Envelopes, err = h.Store.ListEnvelopes(ctx); err != nil {
		return input, err
	}
	if input.Sources, err = h.Store.ListIncomeSources(ctx); err != nil {
		return input, err
	}
	if input.Allocations, err = h.Store.ListAllocations(ctx); err != nil {
		return input, err
	}
	if input.Events, err = h.Store.ListEvents(ctx); err != nil {
		return input, err
	}
	if input.Debts, err = h.Store.ListDebts(ctx); err != nil {
		return input, err
	}
	if input.Settings, err = h.Store.GetSettings(ctx); err != nil {
		return input, err
	}
	return input, nil
}

// Rebalance proposes even splits for every unlocked envelope, optionally
// persisting them. Locked envelopes keep their pinned contributions.
func (h *Handler) Rebalance(w http.ResponseWriter, r *http.Request) {
	var req RebalanceRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	ctx := r.Context()
	envelopes, err := h.Store.ListEnvelopes(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list envelopes", err)
		return
	}
	sources, err := h.Store.ListIncomeSources(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list income sources", err)
		return
	}
	allocations, err := h.Store.ListAllocations(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list allocations", err)
		return
	}

	suggestions, err := planning.SuggestSplits(
		budget.BuildTargets(envelopes, allocations),
		budget.BuildSources(sources),
	)
	if err != nil {
		writeDomainError(w, "Failed to suggest splits", err)
		return
	}

	result := RebalanceResultDTO{
		Applied:     req.Apply,
		Suggestions: make(map[string]map[string]float64, len(suggestions)),
	}
	for _, suggestion := range suggestions {
		splits := make(map[string]float64, len(suggestion.Splits))
		for source, amount := range suggestion.Splits {
			splits[string(source)] = amount.Float64()
		}
		result.Suggestions[string(suggestion.Target)] = splits

		if !req.Apply {
			continue
		}
		if err := h.Store.ClearAllocations(ctx, string(suggestion.Target)); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to clear allocations", err)
			return
		}
		for source, amount := range suggestion.Splits {
			alloc := budget.Allocation{
				EnvelopeID: string(suggestion.Target),
				SourceID:   string(source),
				Amount:     amount,
			}
			if err := h.Store.SetAllocation(ctx, alloc); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to set allocation", err)
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the plan configuration.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get settings", err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{
		PayCycle:           string(settings.PayCycle),
		CelebrationBalance: settings.CelebrationBalance.Float64(),
		DebtStrategy:       string(settings.DebtStrategy),
		DebtSurplus:        settings.DebtSurplus.Float64(),
	})
}

// UpdateSettings saves the plan configuration. Changing the pay cycle
// invalidates pinned splits: every locked envelope is unlocked so the next
// rebalance can redo them against the new cadence.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cycle, err := planning.ParsePayCycle(req.PayCycle)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pay cycle", err)
		return
	}
	var strategy planning.Strategy
	if req.DebtStrategy != "" {
		strategy, err = planning.ParseStrategy(req.DebtStrategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid strategy", err)
			return
		}
	}
	balance := planning.NewMoney(req.CelebrationBalance)
	surplus := planning.NewMoney(req.DebtSurplus)
	if balance.IsNegative() || surplus.IsNegative() {
		writeError(w, http.StatusBadRequest, "Amounts must not be negative", nil)
		return
	}

	ctx := r.Context()
	before, err := h.Store.GetSettings(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get settings", err)
		return
	}

	settings := budget.Settings{
		PayCycle:           cycle,
		CelebrationBalance: balance,
		DebtStrategy:       strategy,
		DebtSurplus:        surplus,
	}
	if err := h.Store.SaveSettings(ctx, settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	if before.PayCycle != cycle {
		envelopes, err := h.Store.ListEnvelopes(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list envelopes", err)
			return
		}
		for _, e := range envelopes {
			if budget.ShouldUnlock(e, e, true) {
				if err := h.Store.SetEnvelopeLock(ctx, e.ID, false); err != nil {
					writeError(w, http.StatusInternalServerError, "Failed to unlock envelope", err)
					return
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, req)
}

// ResetDatabase clears all data.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func targetsByID(targets []planning.FundingTarget) map[planning.TargetID]planning.FundingTarget {
	byID := make(map[planning.TargetID]planning.FundingTarget, len(targets))
	for _, t := range targets {
		byID[t.ID] = t
	}
	return byID
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine validation failures to 400 and everything
// else to 500.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	if planning.IsClientError(err) {
		status = http.StatusBadRequest
	}
	writeError(w, status, message, err)
}
