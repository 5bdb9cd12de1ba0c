/*
Package sqlite provides the SQLite-backed store for budget records.

PURPOSE:
  Persists everything the planning engine consumes - envelopes, income
  sources, per-source allocations, celebration events, debt accounts,
  plan settings - plus readiness snapshots the scheduler writes. The
  engine itself never touches this package; handlers load records here
  and hand plain values in.

KEY TABLES:
  envelopes:           Funding targets with tier and lock flag
  income_sources:      Paycheck streams
  allocations:         One row per (envelope, source) contribution
  events:              Celebration events (month 0 = dateless party fund)
  debts:               Revolving debts with minimum-payment rule columns
  settings:            Single-row plan configuration
  readiness_snapshots: Append-only history of computed readiness
  meta:                Key/value bookkeeping (current scenario)

CURRENCY STORAGE:
  Amounts are stored as decimal strings and parsed back through
  shopspring/decimal; no float round-trips.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency.

USAGE:
  store, err := sqlite.New("./data/hearth.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - budget: Record types persisted here
  - api: Handlers loading records from here
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/hearth/budget-engine/budget"
	"github.com/hearth/budget-engine/planning"
)

// Store implements persistence for all budget records using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS envelopes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		required_per_cycle TEXT NOT NULL,
		tier TEXT NOT NULL,
		locked INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS income_sources (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		ordinal INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS allocations (
		envelope_id TEXT NOT NULL,
		source_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		PRIMARY KEY (envelope_id, source_id),
		FOREIGN KEY (envelope_id) REFERENCES envelopes(id) ON DELETE CASCADE,
		FOREIGN KEY (source_id) REFERENCES income_sources(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		month INTEGER NOT NULL DEFAULT 0,
		day INTEGER NOT NULL DEFAULT 0,
		gift_cost TEXT NOT NULL,
		party_cost TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS debts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		balance TEXT NOT NULL,
		apr_percent TEXT NOT NULL,
		minimum_fixed TEXT,
		minimum_percent TEXT,
		minimum_floor TEXT
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		pay_cycle TEXT NOT NULL,
		celebration_balance TEXT NOT NULL,
		debt_strategy TEXT NOT NULL DEFAULT '',
		debt_surplus TEXT NOT NULL DEFAULT '0'
	);

	-- Append-only history of computed readiness, written by the scheduler.
	CREATE TABLE IF NOT EXISTS readiness_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		taken_at TEXT NOT NULL,
		status TEXT NOT NULL,
		next_event_label TEXT,
		amount_needed TEXT NOT NULL,
		shortfall TEXT NOT NULL,
		per_cycle_catch_up TEXT NOT NULL,
		annual_total TEXT NOT NULL,
		steady_state TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON readiness_snapshots(taken_at);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ENVELOPES
// =============================================================================

func (s *Store) SaveEnvelope(ctx context.Context, e budget.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO envelopes (id, name, required_per_cycle, tier, locked, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			required_per_cycle = excluded.required_per_cycle,
			tier = excluded.tier,
			locked = excluded.locked`,
		e.ID, e.Name, e.RequiredPerCycle.Value.String(), string(e.Tier), boolToInt(e.Locked),
		e.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetEnvelope(ctx context.Context, id string) (*budget.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, required_per_cycle, tier, locked, created_at
		FROM envelopes WHERE id = ?`, id)
	e, err := scanEnvelope(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) ListEnvelopes(ctx context.Context) ([]budget.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, required_per_cycle, tier, locked, created_at
		FROM envelopes ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var envelopes []budget.Envelope
	for rows.Next() {
		e, err := scanEnvelope(rows)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, *e)
	}
	return envelopes, rows.Err()
}

func (s *Store) DeleteEnvelope(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM envelopes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("envelope not found: %s", id)
	}
	return nil
}

// SetEnvelopeLock flips only the lock flag.
func (s *Store) SetEnvelopeLock(ctx context.Context, id string, locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `UPDATE envelopes SET locked = ? WHERE id = ?`, boolToInt(locked), id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("envelope not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnvelope(row rowScanner) (*budget.Envelope, error) {
	var (
		e         budget.Envelope
		required  string
		tier      string
		locked    int
		createdAt string
	)
	if err := row.Scan(&e.ID, &e.Name, &required, &tier, &locked, &createdAt); err != nil {
		return nil, err
	}
	amount, err := parseMoney(required)
	if err != nil {
		return nil, fmt.Errorf("envelope %s: %w", e.ID, err)
	}
	e.RequiredPerCycle = amount
	e.Tier = planning.PriorityTier(tier)
	e.Locked = locked != 0
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}

// =============================================================================
// INCOME SOURCES
// =============================================================================

func (s *Store) SaveIncomeSource(ctx context.Context, src budget.IncomeSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO income_sources (id, name, ordinal) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, ordinal = excluded.ordinal`,
		src.ID, src.Name, src.Ordinal)
	return err
}

func (s *Store) ListIncomeSources(ctx context.Context) ([]budget.IncomeSource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, ordinal FROM income_sources ORDER BY ordinal, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []budget.IncomeSource
	for rows.Next() {
		var src budget.IncomeSource
		if err := rows.Scan(&src.ID, &src.Name, &src.Ordinal); err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

func (s *Store) DeleteIncomeSource(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM income_sources WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("income source not found: %s", id)
	}
	return nil
}

// =============================================================================
// ALLOCATIONS
// =============================================================================

// SetAllocation upserts one (envelope, source) contribution. A zero amount
// removes the row.
func (s *Store) SetAllocation(ctx context.Context, a budget.Allocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Amount.IsZero() {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM allocations WHERE envelope_id = ? AND source_id = ?`,
			a.EnvelopeID, a.SourceID)
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO allocations (envelope_id, source_id, amount) VALUES (?, ?, ?)
		ON CONFLICT(envelope_id, source_id) DO UPDATE SET amount = excluded.amount`,
		a.EnvelopeID, a.SourceID, a.Amount.Value.String())
	return err
}

func (s *Store) ListAllocations(ctx context.Context) ([]budget.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryAllocations(ctx, `SELECT envelope_id, source_id, amount FROM allocations ORDER BY envelope_id, source_id`)
}

func (s *Store) ListAllocationsForEnvelope(ctx context.Context, envelopeID string) ([]budget.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryAllocations(ctx,
		`SELECT envelope_id, source_id, amount FROM allocations WHERE envelope_id = ? ORDER BY source_id`, envelopeID)
}

// ClearAllocations removes every contribution row for an envelope. Used
// when an envelope unlocks and gets rebalanced.
func (s *Store) ClearAllocations(ctx context.Context, envelopeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM allocations WHERE envelope_id = ?`, envelopeID)
	return err
}

func (s *Store) queryAllocations(ctx context.Context, query string, args ...any) ([]budget.Allocation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []budget.Allocation
	for rows.Next() {
		var (
			a      budget.Allocation
			amount string
		)
		if err := rows.Scan(&a.EnvelopeID, &a.SourceID, &amount); err != nil {
			return nil, err
		}
		a.Amount, err = parseMoney(amount)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

// =============================================================================
// EVENTS
// =============================================================================

func (s *Store) SaveEvent(ctx context.Context, e budget.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, label, month, day, gift_cost, party_cost)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			month = excluded.month,
			day = excluded.day,
			gift_cost = excluded.gift_cost,
			party_cost = excluded.party_cost`,
		e.ID, e.Label, int(e.Month), e.Day, e.GiftCost.Value.String(), e.PartyCost.Value.String())
	return err
}

func (s *Store) ListEvents(ctx context.Context) ([]budget.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, label, month, day, gift_cost, party_cost FROM events ORDER BY month, day, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []budget.Event
	for rows.Next() {
		var (
			e     budget.Event
			month int
			gift  string
			party string
		)
		if err := rows.Scan(&e.ID, &e.Label, &month, &e.Day, &gift, &party); err != nil {
			return nil, err
		}
		e.Month = time.Month(month)
		if e.GiftCost, err = parseMoney(gift); err != nil {
			return nil, err
		}
		if e.PartyCost, err = parseMoney(party); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// =============================================================================
// DEBTS
// =============================================================================

func (s *Store) SaveDebt(ctx context.Context, d budget.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO debts (id, name, balance, apr_percent, minimum_fixed, minimum_percent, minimum_floor)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			balance = excluded.balance,
			apr_percent = excluded.apr_percent,
			minimum_fixed = excluded.minimum_fixed,
			minimum_percent = excluded.minimum_percent,
			minimum_floor = excluded.minimum_floor`,
		d.ID, d.Name, d.Balance.Value.String(), d.APRPercent.String(),
		moneyPtrString(d.MinimumFixed), decimalPtrString(d.MinimumPercent), moneyPtrString(d.MinimumFloor))
	return err
}

func (s *Store) ListDebts(ctx context.Context) ([]budget.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, balance, apr_percent, minimum_fixed, minimum_percent, minimum_floor
		FROM debts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []budget.Debt
	for rows.Next() {
		var (
			d       budget.Debt
			balance string
			apr     string
			fixed   sql.NullString
			percent sql.NullString
			floor   sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Name, &balance, &apr, &fixed, &percent, &floor); err != nil {
			return nil, err
		}
		if d.Balance, err = parseMoney(balance); err != nil {
			return nil, err
		}
		if d.APRPercent, err = decimal.NewFromString(apr); err != nil {
			return nil, fmt.Errorf("debt %s: bad apr: %w", d.ID, err)
		}
		if d.MinimumFixed, err = parseMoneyPtr(fixed); err != nil {
			return nil, err
		}
		if d.MinimumFloor, err = parseMoneyPtr(floor); err != nil {
			return nil, err
		}
		if percent.Valid {
			p, err := decimal.NewFromString(percent.String)
			if err != nil {
				return nil, fmt.Errorf("debt %s: bad minimum percent: %w", d.ID, err)
			}
			d.MinimumPercent = &p
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("debt not found: %s", id)
	}
	return nil
}

// =============================================================================
// SETTINGS
// =============================================================================

// GetSettings returns the single settings row, defaulting to a monthly
// cycle when none has been saved yet.
func (s *Store) GetSettings(ctx context.Context) (budget.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT pay_cycle, celebration_balance, debt_strategy, debt_surplus FROM settings WHERE id = 1`)

	var (
		cycle    string
		balance  string
		strategy string
		surplus  string
	)
	err := row.Scan(&cycle, &balance, &strategy, &surplus)
	if err == sql.ErrNoRows {
		return budget.Settings{
			PayCycle:           planning.Monthly,
			CelebrationBalance: planning.ZeroMoney(),
			DebtSurplus:        planning.ZeroMoney(),
		}, nil
	}
	if err != nil {
		return budget.Settings{}, err
	}

	settings := budget.Settings{
		PayCycle:     planning.PayCycle(cycle),
		DebtStrategy: planning.Strategy(strategy),
	}
	if settings.CelebrationBalance, err = parseMoney(balance); err != nil {
		return budget.Settings{}, err
	}
	if settings.DebtSurplus, err = parseMoney(surplus); err != nil {
		return budget.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings budget.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (id, pay_cycle, celebration_balance, debt_strategy, debt_surplus)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pay_cycle = excluded.pay_cycle,
			celebration_balance = excluded.celebration_balance,
			debt_strategy = excluded.debt_strategy,
			debt_surplus = excluded.debt_surplus`,
		string(settings.PayCycle), settings.CelebrationBalance.Value.String(),
		string(settings.DebtStrategy), settings.DebtSurplus.Value.String())
	return err
}

// =============================================================================
// READINESS SNAPSHOTS
// =============================================================================

// Snapshot is one recorded readiness computation.
type Snapshot struct {
	ID              int64
	TakenAt         time.Time
	Status          planning.ReadinessStatus
	NextEventLabel  string
	AmountNeeded    planning.Money
	Shortfall       planning.Money
	PerCycleCatchUp planning.Money
	AnnualTotal     planning.Money
	SteadyState     planning.Money
}

// SaveSnapshot appends one readiness record. Snapshots are history; there
// is no update or delete.
func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO readiness_snapshots
			(taken_at, status, next_event_label, amount_needed, shortfall, per_cycle_catch_up, annual_total, steady_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.TakenAt.UTC().Format(time.RFC3339), string(snap.Status), snap.NextEventLabel,
		snap.AmountNeeded.Value.String(), snap.Shortfall.Value.String(),
		snap.PerCycleCatchUp.Value.String(), snap.AnnualTotal.Value.String(),
		snap.SteadyState.Value.String())
	return err
}

// ListSnapshots returns the most recent snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, taken_at, status, next_event_label, amount_needed, shortfall, per_cycle_catch_up, annual_total, steady_state
		FROM readiness_snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			takenAt string
			status  string
			amounts [5]string
		)
		if err := rows.Scan(&snap.ID, &takenAt, &status, &snap.NextEventLabel,
			&amounts[0], &amounts[1], &amounts[2], &amounts[3], &amounts[4]); err != nil {
			return nil, err
		}
		snap.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snap.Status = planning.ReadinessStatus(status)
		if snap.AmountNeeded, err = parseMoney(amounts[0]); err != nil {
			return nil, err
		}
		if snap.Shortfall, err = parseMoney(amounts[1]); err != nil {
			return nil, err
		}
		if snap.PerCycleCatchUp, err = parseMoney(amounts[2]); err != nil {
			return nil, err
		}
		if snap.AnnualTotal, err = parseMoney(amounts[3]); err != nil {
			return nil, err
		}
		if snap.SteadyState, err = parseMoney(amounts[4]); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// =============================================================================
// META AND RESET
// =============================================================================

func (s *Store) GetMeta(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Reset wipes every table. Scenario loading and tests only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"allocations", "envelopes", "income_sources", "events", "debts", "settings", "readiness_snapshots", "meta"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func parseMoney(s string) (planning.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return planning.Money{}, fmt.Errorf("bad stored amount %q: %w", s, err)
	}
	return planning.Money{Value: d}, nil
}

func parseMoneyPtr(ns sql.NullString) (*planning.Money, error) {
	if !ns.Valid {
		return nil, nil
	}
	m, err := parseMoney(ns.String)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func moneyPtrString(m *planning.Money) any {
	if m == nil {
		return nil
	}
	return m.Value.String()
}

func decimalPtrString(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
