package tax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// businessSchedule is the stock business schedule used across the engine
// tests: 10/15/20/25% with an open-ended top bracket.
func businessSchedule() Schedule {
	return Schedule{
		Purpose: PurposeBusiness,
		Brackets: []Bracket{
			{Min: dec("0"), Max: Bounded(dec("50000")), Rate: dec("10")},
			{Min: dec("50000"), Max: Bounded(dec("100000")), Rate: dec("15")},
			{Min: dec("100000"), Max: Bounded(dec("500000")), Rate: dec("20")},
			{Min: dec("500000"), Max: Unbounded(), Rate: dec("25")},
		},
	}
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

var ceilingComparer = cmp.Comparer(func(a, b Ceiling) bool {
	av, ab := a.Value()
	bv, bb := b.Value()
	if ab != bb {
		return false
	}
	return !ab || av.Equal(bv)
})

func TestComputeProgressiveTax_NonPositiveAmount(t *testing.T) {
	schedule := businessSchedule()
	for _, amount := range []string{"0", "-1", "-100000"} {
		total, breakdown := ComputeProgressiveTax(dec(amount), schedule)
		if !total.IsZero() {
			t.Errorf("amount %s: expected zero tax, got %s", amount, total)
		}
		if len(breakdown) != 0 {
			t.Errorf("amount %s: expected empty breakdown, got %d entries", amount, len(breakdown))
		}
	}
}

func TestComputeProgressiveTax_SpansTwoBrackets(t *testing.T) {
	total, breakdown := ComputeProgressiveTax(dec("75000"), businessSchedule())

	if !total.Equal(dec("8750")) {
		t.Fatalf("expected total 8750, got %s", total)
	}
	want := []BreakdownEntry{
		{Min: dec("0"), Max: Bounded(dec("50000")), Rate: dec("10"), Taxable: dec("50000"), Tax: dec("5000")},
		{Min: dec("50000"), Max: Bounded(dec("100000")), Rate: dec("15"), Taxable: dec("25000"), Tax: dec("3750")},
	}
	if diff := cmp.Diff(want, breakdown, decimalComparer, ceilingComparer); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeProgressiveTax_UnboundedTopBracket(t *testing.T) {
	total, breakdown := ComputeProgressiveTax(dec("1000000"), businessSchedule())

	// 50k@10% + 50k@15% + 400k@20% + 500k@25%
	if !total.Equal(dec("217500")) {
		t.Fatalf("expected total 217500, got %s", total)
	}
	if len(breakdown) != 4 {
		t.Fatalf("expected 4 breakdown entries, got %d", len(breakdown))
	}
	top := breakdown[3]
	if !top.Max.IsUnbounded() {
		t.Error("top entry should carry the unbounded ceiling")
	}
	if !top.Taxable.Equal(dec("500000")) || !top.Tax.Equal(dec("125000")) {
		t.Errorf("top entry: taxable=%s tax=%s", top.Taxable, top.Tax)
	}
}

func TestComputeProgressiveTax_SkipsUnreachedBrackets(t *testing.T) {
	total, breakdown := ComputeProgressiveTax(dec("40000"), businessSchedule())

	if !total.Equal(dec("4000")) {
		t.Fatalf("expected total 4000, got %s", total)
	}
	if len(breakdown) != 1 {
		t.Fatalf("expected a single breakdown entry, got %d", len(breakdown))
	}
}

func TestComputeProgressiveTax_GapLeftUntaxed(t *testing.T) {
	// A hole between 10k and 20k is the schedule owner's problem: the
	// engine taxes around it without complaint.
	schedule := Schedule{
		Purpose: PurposeBusiness,
		Brackets: []Bracket{
			{Min: dec("0"), Max: Bounded(dec("10000")), Rate: dec("10")},
			{Min: dec("20000"), Max: Unbounded(), Rate: dec("20")},
		},
	}
	total, breakdown := ComputeProgressiveTax(dec("25000"), schedule)

	if !total.Equal(dec("2000")) {
		t.Fatalf("expected total 2000 (10k@10%% + 5k@20%%), got %s", total)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(breakdown))
	}
}

func TestComputeProgressiveTax_Idempotent(t *testing.T) {
	schedule := businessSchedule()
	amount := dec("123456.78")

	t1, b1 := ComputeProgressiveTax(amount, schedule)
	t2, b2 := ComputeProgressiveTax(amount, schedule)

	if !t1.Equal(t2) {
		t.Errorf("totals differ: %s vs %s", t1, t2)
	}
	if diff := cmp.Diff(b1, b2, decimalComparer, ceilingComparer); diff != "" {
		t.Errorf("breakdowns differ:\n%s", diff)
	}
}

func TestComputeProgressiveTax_UnsortedScheduleInput(t *testing.T) {
	schedule := businessSchedule()
	// Reverse the brackets; the engine must still visit them by Min.
	for i, j := 0, len(schedule.Brackets)-1; i < j; i, j = i+1, j-1 {
		schedule.Brackets[i], schedule.Brackets[j] = schedule.Brackets[j], schedule.Brackets[i]
	}
	total, breakdown := ComputeProgressiveTax(dec("75000"), schedule)
	if !total.Equal(dec("8750")) {
		t.Fatalf("expected total 8750, got %s", total)
	}
	if !breakdown[0].Min.IsZero() {
		t.Errorf("breakdown not ordered by bracket min: first entry min=%s", breakdown[0].Min)
	}
}
