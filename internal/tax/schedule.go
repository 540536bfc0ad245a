// Package tax implements the progressive-bracket engine behind the
// Universalis teller: bracket schedules, slice-by-slice tax computation,
// and the two-stage business report. All arithmetic is decimal; nothing
// in this package formats, renders, or touches I/O.
package tax

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// Purpose identifies which taxation stage a schedule applies to.
type Purpose string

const (
	PurposeBusiness   Purpose = "business"
	PurposeIndividual Purpose = "individual"
)

// Ceiling is the upper bound of a bracket: a concrete amount, or unbounded
// for the open-ended top bracket. The zero value is unbounded.
type Ceiling struct {
	bounded bool
	value   decimal.Decimal
}

// Bounded returns a ceiling at the given amount.
func Bounded(v decimal.Decimal) Ceiling {
	return Ceiling{bounded: true, value: v}
}

// Unbounded returns the open-ended ceiling.
func Unbounded() Ceiling {
	return Ceiling{}
}

// Value returns the ceiling amount and whether the ceiling is bounded.
func (c Ceiling) Value() (decimal.Decimal, bool) {
	return c.value, c.bounded
}

// IsUnbounded reports whether the ceiling is open-ended.
func (c Ceiling) IsUnbounded() bool {
	return !c.bounded
}

// Bracket taxes the slice of an amount between Min and Max at Rate percent.
type Bracket struct {
	Min  decimal.Decimal
	Max  Ceiling
	Rate decimal.Decimal // percent, 0-100
}

// Mutation errors. These surface at the configuration boundary; the engine
// itself never rejects a schedule.
var (
	ErrNegativeMin    = errors.New("bracket min must not be negative")
	ErrCeilingOrder   = errors.New("bracket max must be greater than min")
	ErrRateRange      = errors.New("bracket rate must be between 0 and 100")
	ErrOverlap        = errors.New("bracket overlaps an existing bracket")
	ErrLastBracket    = errors.New("a schedule must keep at least one bracket")
	ErrUnknownBracket = errors.New("no bracket with that minimum")
)

var hundred = decimal.NewFromInt(100)

// Validate checks a single bracket's invariants.
func (b Bracket) Validate() error {
	if b.Min.IsNegative() {
		return ErrNegativeMin
	}
	if max, bounded := b.Max.Value(); bounded && max.Cmp(b.Min) <= 0 {
		return ErrCeilingOrder
	}
	if b.Rate.IsNegative() || b.Rate.GreaterThan(hundred) {
		return ErrRateRange
	}
	return nil
}

// overlaps reports whether the half-open ranges [a.Min, a.Max) and
// [b.Min, b.Max) intersect. Adjacent brackets (one's max equal to the
// other's min) do not overlap.
func overlaps(a, b Bracket) bool {
	aMax, aBounded := a.Max.Value()
	bMax, bBounded := b.Max.Value()
	if aBounded && aMax.Cmp(b.Min) <= 0 {
		return false
	}
	if bBounded && bMax.Cmp(a.Min) <= 0 {
		return false
	}
	return true
}

// Schedule is a sequence of brackets for one taxation stage, ordered by Min.
// The engine sorts defensively; callers may hand brackets in any order.
// Coverage gaps are the schedule owner's responsibility and are not
// validated here: amounts falling in a hole between two brackets simply go
// untaxed.
type Schedule struct {
	Purpose  Purpose
	Brackets []Bracket
}

// Sorted returns the brackets in ascending Min order without mutating the
// schedule.
func (s Schedule) Sorted() []Bracket {
	out := make([]Bracket, len(s.Brackets))
	copy(out, s.Brackets)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Min.Cmp(out[j].Min) < 0
	})
	return out
}

// Upsert adds a bracket, replacing any existing bracket with the same Min.
// The bracket is validated, including overlap against the rest of the
// schedule; on error the schedule is left unchanged.
func (s *Schedule) Upsert(b Bracket) error {
	if err := b.Validate(); err != nil {
		return err
	}
	replace := -1
	for i, existing := range s.Brackets {
		if existing.Min.Equal(b.Min) {
			replace = i
			continue
		}
		if overlaps(existing, b) {
			return ErrOverlap
		}
	}
	if replace >= 0 {
		s.Brackets[replace] = b
		return nil
	}
	s.Brackets = append(s.Brackets, b)
	s.Brackets = s.Sorted()
	return nil
}

// RemoveByMin deletes the bracket whose Min matches. A schedule always
// retains at least one bracket.
func (s *Schedule) RemoveByMin(min decimal.Decimal) error {
	idx := -1
	for i, b := range s.Brackets {
		if b.Min.Equal(min) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownBracket
	}
	if len(s.Brackets) == 1 {
		return ErrLastBracket
	}
	s.Brackets = append(s.Brackets[:idx], s.Brackets[idx+1:]...)
	return nil
}

// Rates bundles the schedules and derived-salary policy a computation runs
// against. Callers take a snapshot and pass it explicitly; there is no
// ambient rate state anywhere in the engine.
type Rates struct {
	Business      Schedule
	Individual    Schedule
	SalaryPercent decimal.Decimal // CEO salary as percent of post-tax profit
}
