/*
scheduler.go - Automated readiness snapshot scheduler

PURPOSE:
  Periodically recomputes the celebration readiness forecast and records
  it as an append-only snapshot, so the UI can show how the plan trended
  over time without recomputing history.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Recomputes readiness from current settings and events
  - Skips the write when nothing changed since the last snapshot
  - Forecasts drift with the calendar, so even an untouched budget
    eventually produces a new snapshot

CONFIGURATION:
  - CheckInterval: How often to check (default: 1 hour)
  - Enabled: Whether scheduler is active (default: true)

USAGE:
  scheduler := NewSnapshotScheduler(store)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: ListSnapshots endpoint
  - planning/readiness.go: CalculateReadiness
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hearth/budget-engine/budget"
	"github.com/hearth/budget-engine/planning"
	"github.com/hearth/budget-engine/store/sqlite"
)

// SnapshotScheduler records readiness history on a timer.
type SnapshotScheduler struct {
	Store         *sqlite.Store
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewSnapshotScheduler creates a new scheduler.
func NewSnapshotScheduler(store *sqlite.Store) *SnapshotScheduler {
	return &SnapshotScheduler{
		Store:         store,
		CheckInterval: 1 * time.Hour,
		Enabled:       true,
		stop:          make(chan bool),
	}
}

// Start begins the scheduler.
func (ss *SnapshotScheduler) Start() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if !ss.Enabled {
		log.Println("[Scheduler] Disabled, not starting")
		return
	}

	ss.ticker = time.NewTicker(ss.CheckInterval)
	ss.wg.Add(1)

	go ss.run()

	log.Printf("[Scheduler] Started with check interval: %v", ss.CheckInterval)
}

// Stop stops the scheduler.
func (ss *SnapshotScheduler) Stop() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.ticker != nil {
		ss.ticker.Stop()
		close(ss.stop)
		ss.wg.Wait()
		log.Println("[Scheduler] Stopped")
	}
}

func (ss *SnapshotScheduler) run() {
	defer ss.wg.Done()

	// Run immediately on start
	ss.checkAndRecord()

	for {
		select {
		case <-ss.ticker.C:
			ss.checkAndRecord()
		case <-ss.stop:
			return
		}
	}
}

func (ss *SnapshotScheduler) checkAndRecord() {
	ctx := context.Background()
	now := time.Now().UTC()

	result, err := ss.computeReadiness(ctx, planning.DateOf(now))
	if err != nil {
		log.Printf("[Scheduler] Error computing readiness: %v", err)
		return
	}

	last, err := ss.Store.ListSnapshots(ctx, 1)
	if err != nil {
		log.Printf("[Scheduler] Error reading last snapshot: %v", err)
		return
	}
	if len(last) > 0 && unchangedSince(last[0], result) {
		return
	}

	snap := sqlite.Snapshot{
		TakenAt:         now,
		Status:          result.Status,
		AmountNeeded:    result.AmountNeeded,
		Shortfall:       result.Shortfall,
		PerCycleCatchUp: result.PerCycleCatchUp,
		AnnualTotal:     result.AnnualTotal,
		SteadyState:     result.SteadyStatePerCycle,
	}
	if result.NextEvent != nil {
		snap.NextEventLabel = result.NextEvent.Label
	}

	if err := ss.Store.SaveSnapshot(ctx, snap); err != nil {
		log.Printf("[Scheduler] Error saving snapshot: %v", err)
		return
	}

	log.Printf("[Scheduler] Recorded readiness: status=%s shortfall=%s catch_up=%s",
		result.Status, result.Shortfall, result.PerCycleCatchUp)
}

func (ss *SnapshotScheduler) computeReadiness(ctx context.Context, asOf planning.Date) (planning.ReadinessResult, error) {
	settings, err := ss.Store.GetSettings(ctx)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	records, err := ss.Store.ListEvents(ctx)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	events, err := budget.BuildEvents(records)
	if err != nil {
		return planning.ReadinessResult{}, err
	}
	return planning.CalculateReadiness(settings.CelebrationBalance, events, settings.PayCycle, asOf)
}

// unchangedSince reports whether the forecast matches the latest snapshot.
// Status plus the two money figures the UI graphs is enough to dedupe.
func unchangedSince(last sqlite.Snapshot, result planning.ReadinessResult) bool {
	return last.Status == result.Status &&
		last.Shortfall.Equal(result.Shortfall) &&
		last.PerCycleCatchUp.Equal(result.PerCycleCatchUp) &&
		last.AmountNeeded.Equal(result.AmountNeeded)
}

// RunNow triggers an immediate check (for testing/admin).
func (ss *SnapshotScheduler) RunNow() {
	ss.checkAndRecord()
}

// GetNextRunTime returns when the next scheduled check will occur.
func (ss *SnapshotScheduler) GetNextRunTime() time.Time {
	return time.Now().Add(ss.CheckInterval)
}
