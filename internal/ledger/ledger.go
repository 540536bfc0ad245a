// Package ledger persists completed teller business - tax filings,
// transfers, and loan notices - to SQLite. The conversation core never
// touches this store; the transport records outcomes after the core has
// committed its state transition, so a write failure here cannot corrupt
// a session.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"universalis/internal/teller"
)

// Store is the SQLite-backed record of finished business.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open initializes the database at path, creating directories and schema
// as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS filings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company TEXT NOT NULL,
		player TEXT NOT NULL,
		period TEXT,
		modifiers TEXT,
		gross_revenue TEXT NOT NULL,
		expenses TEXT NOT NULL,
		net_profit TEXT NOT NULL,
		business_tax TEXT NOT NULL,
		retained TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS transfers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		amount TEXT NOT NULL,
		reason TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS loans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		requested_by TEXT,
		amount TEXT NOT NULL,
		purpose TEXT,
		collateral TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("initialize ledger schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordFiling stores a finished tax assessment. Amounts are stored as
// decimal strings; SQLite floats would lose the exact figures.
func (s *Store) RecordFiling(f teller.Filing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO filings (company, player, period, modifiers, gross_revenue, expenses, net_profit, business_tax, retained)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Company, f.Player, f.Period, f.Modifiers,
		f.Report.GrossRevenue.String(), f.Report.Expenses.String(),
		f.Report.NetProfit.String(), f.Report.BusinessTax.String(),
		f.Report.FinalRetained.String(),
	)
	if err != nil {
		return fmt.Errorf("record filing: %w", err)
	}
	return nil
}

// RecordTransfer stores a completed transfer.
func (s *Store) RecordTransfer(r teller.TransferRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO transfers (source, destination, amount, reason) VALUES (?, ?, ?, ?)`,
		r.Source, r.Destination, r.Amount.String(), r.Reason,
	)
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

// RecordLoan stores a loan notice.
func (s *Store) RecordLoan(n teller.LoanNotice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO loans (player, requested_by, amount, purpose, collateral) VALUES (?, ?, ?, ?, ?)`,
		n.Player, n.RequestedBy, n.Amount.String(), n.Purpose, n.Collateral,
	)
	if err != nil {
		return fmt.Errorf("record loan: %w", err)
	}
	return nil
}

// Entry is one row of ledger history, newest first.
type Entry struct {
	ID        int64
	Kind      string // filing, transfer, loan
	Summary   string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Recent returns the latest entries across all three tables.
func (s *Store) Recent(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, kind, summary, amount, created_at FROM (
			SELECT id, 'filing' AS kind, company || ' (' || player || ')' AS summary, net_profit AS amount, created_at FROM filings
			UNION ALL
			SELECT id, 'transfer', source || ' -> ' || destination, amount, created_at FROM transfers
			UNION ALL
			SELECT id, 'loan', player, amount, created_at FROM loans
		) ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query ledger history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var amount, created string
		if err := rows.Scan(&e.ID, &e.Kind, &e.Summary, &amount, &created); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		if d, err := decimal.NewFromString(amount); err == nil {
			e.Amount = d
		}
		e.CreatedAt = parseTimestamp(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// parseTimestamp handles the formats SQLite emits for CURRENT_TIMESTAMP
// defaults. Declared-type conversion does not survive the UNION subquery,
// so the column arrives as text.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
