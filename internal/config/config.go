// Package config loads and persists the teller's rate settings: the
// business and CEO bracket schedules and the CEO salary percentage. The
// file is YAML; keys mirror the historical settings file so existing
// deployments carry over.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"universalis/internal/tax"
)

// BracketSpec is the file form of a tax bracket. A nil Max means the
// bracket is open-ended.
type BracketSpec struct {
	Min  float64  `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Rate float64  `yaml:"rate"`
}

// Settings holds everything the settings file configures. CEOSalaryPercent
// is a pointer so an explicit 0% survives reloads; only an absent key
// falls back to the default.
type Settings struct {
	BusinessBrackets []BracketSpec `yaml:"tax_brackets"`
	CEOBrackets      []BracketSpec `yaml:"ceo_tax_brackets"`
	CEOSalaryPercent *float64      `yaml:"ceo_salary_percent"`
	LedgerPath       string        `yaml:"ledger_path"`
}

// SalaryPercent returns the configured CEO salary rate.
func (s Settings) SalaryPercent() float64 {
	if s.CEOSalaryPercent == nil {
		return 0
	}
	return *s.CEOSalaryPercent
}

// Default returns the stock Universalis Bank rate structure.
func Default() Settings {
	f := func(v float64) *float64 { return &v }
	return Settings{
		BusinessBrackets: []BracketSpec{
			{Min: 0, Max: f(50_000), Rate: 10},
			{Min: 50_000, Max: f(100_000), Rate: 15},
			{Min: 100_000, Max: f(500_000), Rate: 20},
			{Min: 500_000, Max: nil, Rate: 25},
		},
		CEOBrackets: []BracketSpec{
			{Min: 0, Max: f(10_000), Rate: 5},
			{Min: 10_000, Max: f(50_000), Rate: 10},
			{Min: 50_000, Max: f(100_000), Rate: 15},
			{Min: 100_000, Max: nil, Rate: 20},
		},
		CEOSalaryPercent: f(10),
		LedgerPath:       "teller.db",
	}
}

// Load reads settings from path. A missing file yields the defaults;
// missing sections are filled in from the defaults, matching how older
// settings files are upgraded in place.
func Load(path string) (Settings, error) {
	def := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if len(s.BusinessBrackets) == 0 {
		s.BusinessBrackets = def.BusinessBrackets
	}
	if len(s.CEOBrackets) == 0 {
		s.CEOBrackets = def.CEOBrackets
	}
	if s.CEOSalaryPercent == nil {
		s.CEOSalaryPercent = def.CEOSalaryPercent
	}
	if s.LedgerPath == "" {
		s.LedgerPath = def.LedgerPath
	}
	return s, nil
}

// Save writes settings to path, creating the directory if needed.
func (s Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Validate checks every bracket and the salary rate. Settings that fail
// validation are never applied.
func (s Settings) Validate() error {
	for _, stage := range []struct {
		purpose tax.Purpose
		specs   []BracketSpec
	}{
		{tax.PurposeBusiness, s.BusinessBrackets},
		{tax.PurposeIndividual, s.CEOBrackets},
	} {
		if len(stage.specs) == 0 {
			return fmt.Errorf("%s schedule: %w", stage.purpose, tax.ErrLastBracket)
		}
		for _, spec := range stage.specs {
			if err := spec.Bracket().Validate(); err != nil {
				return fmt.Errorf("%s schedule bracket at %v: %w", stage.purpose, spec.Min, err)
			}
		}
	}
	if pct := s.SalaryPercent(); pct < 0 || pct > 100 {
		return fmt.Errorf("ceo salary percent %v: %w", pct, tax.ErrRateRange)
	}
	return nil
}

// Bracket converts the file form to an engine bracket.
func (b BracketSpec) Bracket() tax.Bracket {
	max := tax.Unbounded()
	if b.Max != nil {
		max = tax.Bounded(decimal.NewFromFloat(*b.Max))
	}
	return tax.Bracket{
		Min:  decimal.NewFromFloat(b.Min),
		Max:  max,
		Rate: decimal.NewFromFloat(b.Rate),
	}
}

func toSchedule(purpose tax.Purpose, specs []BracketSpec) tax.Schedule {
	s := tax.Schedule{Purpose: purpose}
	for _, spec := range specs {
		s.Brackets = append(s.Brackets, spec.Bracket())
	}
	s.Brackets = s.Sorted()
	return s
}

func fromSchedule(s tax.Schedule) []BracketSpec {
	var specs []BracketSpec
	for _, b := range s.Sorted() {
		spec := BracketSpec{
			Min:  b.Min.InexactFloat64(),
			Rate: b.Rate.InexactFloat64(),
		}
		if max, bounded := b.Max.Value(); bounded {
			v := max.InexactFloat64()
			spec.Max = &v
		}
		specs = append(specs, spec)
	}
	return specs
}

// Rates builds the engine snapshot for the current settings.
func (s Settings) Rates() tax.Rates {
	return tax.Rates{
		Business:      toSchedule(tax.PurposeBusiness, s.BusinessBrackets),
		Individual:    toSchedule(tax.PurposeIndividual, s.CEOBrackets),
		SalaryPercent: decimal.NewFromFloat(s.SalaryPercent()),
	}
}
