package config

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"universalis/internal/tax"
)

// Manager serializes access to the live settings and persists every
// successful administrative mutation back to the settings file. It is the
// teller's RatesProvider: computations always run against an immutable
// snapshot taken here.
type Manager struct {
	mu   sync.RWMutex
	path string
	s    Settings
	log  *zap.Logger
}

// NewManager loads (or defaults) the settings at path.
func NewManager(path string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return &Manager{path: path, s: s, log: log}, nil
}

// Rates returns the current schedule/policy snapshot.
func (m *Manager) Rates() tax.Rates {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Rates()
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// UpsertBracket adds or replaces-by-Min a bracket in the given stage's
// schedule and persists the result. Validation failures leave the
// schedule unchanged.
func (m *Manager) UpsertBracket(purpose tax.Purpose, b tax.Bracket) error {
	return m.mutateSchedule(purpose, func(s *tax.Schedule) error {
		return s.Upsert(b)
	})
}

// RemoveBracket deletes the bracket with the given Min. Removing the last
// bracket of a schedule is rejected.
func (m *Manager) RemoveBracket(purpose tax.Purpose, min decimal.Decimal) error {
	return m.mutateSchedule(purpose, func(s *tax.Schedule) error {
		return s.RemoveByMin(min)
	})
}

func (m *Manager) mutateSchedule(purpose tax.Purpose, fn func(*tax.Schedule) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var schedule tax.Schedule
	switch purpose {
	case tax.PurposeBusiness:
		schedule = toSchedule(purpose, m.s.BusinessBrackets)
	case tax.PurposeIndividual:
		schedule = toSchedule(purpose, m.s.CEOBrackets)
	default:
		return fmt.Errorf("unknown schedule purpose %q", purpose)
	}

	if err := fn(&schedule); err != nil {
		return err
	}

	specs := fromSchedule(schedule)
	switch purpose {
	case tax.PurposeBusiness:
		m.s.BusinessBrackets = specs
	case tax.PurposeIndividual:
		m.s.CEOBrackets = specs
	}

	if err := m.s.Save(m.path); err != nil {
		return err
	}
	m.log.Info("schedule updated", zap.String("purpose", string(purpose)))
	return nil
}

// SetSalaryPercent updates the CEO salary rate (0-100) and persists.
func (m *Manager) SetSalaryPercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return tax.ErrRateRange
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := pct.InexactFloat64()
	m.s.CEOSalaryPercent = &v
	if err := m.s.Save(m.path); err != nil {
		return err
	}
	m.log.Info("ceo salary percent updated", zap.Float64("percent", v))
	return nil
}

// Reload re-reads the settings file, keeping the current settings when the
// file fails to load or validate.
func (m *Manager) Reload() error {
	s, err := Load(m.path)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("settings %s: %w", m.path, err)
	}
	m.mu.Lock()
	m.s = s
	m.mu.Unlock()
	m.log.Info("settings reloaded", zap.String("path", m.path))
	return nil
}
