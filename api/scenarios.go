/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	data for testing and demos. Each scenario loads a whole-budget JSON
	document through the factory: income sources, envelopes, allocations,
	events, debts, and settings.

AVAILABLE SCENARIOS:

	starter-family: Two incomes, envelopes across all tiers, birthdays
	                plus a standing party fund, no debts
	debt-focus:     Monthly cycle, three debts with mixed minimum-payment
	                rules, highest-interest strategy with a surplus

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Parse the preset JSON via factory.BudgetFactory
 3. Save settings, sources, envelopes, allocations, events, debts
 4. Record the loaded scenario in meta

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "debt-focus"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Add a preset JSON function in budget/presets.go
 3. Add case to LoadScenario handler

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - budget/presets.go: Preset budget documents
  - factory/budget.go: Budget JSON parsing
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hearth/budget-engine/budget"
)

const currentScenarioKey = "current_scenario"

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "starter-family",
		Name:        "Starter Family",
		Description: "Two incomes, envelopes across all tiers, birthdays plus a party fund",
	},
	{
		ID:          "debt-focus",
		Name:        "Debt Focus",
		Description: "Three debts with mixed minimums, highest-interest strategy with surplus",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	current, err := h.Store.GetMeta(r.Context(), currentScenarioKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get current scenario", err)
		return
	}
	if current == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	for _, s := range scenarios {
		if s.ID == current {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeJSON(w, http.StatusOK, nil)
}

// LoadScenario resets the database and loads the selected scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var doc string
	switch req.ScenarioID {
	case "starter-family":
		doc = budget.StarterFamilyBudgetJSON()
	case "debt-focus":
		doc = budget.DebtFocusBudgetJSON()
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario: "+req.ScenarioID, nil)
		return
	}

	ctx := r.Context()
	if err := h.loadBudgetDocument(ctx, doc); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}
	if err := h.Store.SetMeta(ctx, currentScenarioKey, req.ScenarioID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record scenario", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "loaded",
		"scenario": req.ScenarioID,
	})
}

// loadBudgetDocument wipes the store and persists one parsed budget.
// Envelopes go in before allocations so the foreign keys hold.
func (h *Handler) loadBudgetDocument(ctx context.Context, doc string) error {
	parsed, err := h.Factory.ParseBudget(doc)
	if err != nil {
		return err
	}

	if err := h.Store.Reset(ctx); err != nil {
		return err
	}
	if err := h.Store.SaveSettings(ctx, parsed.Settings); err != nil {
		return err
	}
	for _, src := range parsed.Sources {
		if err := h.Store.SaveIncomeSource(ctx, src); err != nil {
			return err
		}
	}
	for _, envelope := range parsed.Envelopes {
		if err := h.Store.SaveEnvelope(ctx, envelope); err != nil {
			return err
		}
	}
	for _, alloc := range parsed.Allocations {
		if err := h.Store.SetAllocation(ctx, alloc); err != nil {
			return err
		}
	}
	for _, event := range parsed.Events {
		if err := h.Store.SaveEvent(ctx, event); err != nil {
			return err
		}
	}
	for _, debt := range parsed.Debts {
		if err := h.Store.SaveDebt(ctx, debt); err != nil {
			return err
		}
	}
	return nil
}
