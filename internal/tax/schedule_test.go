package tax

import (
	"errors"
	"testing"
)

func TestBracketValidate(t *testing.T) {
	cases := []struct {
		name    string
		bracket Bracket
		wantErr error
	}{
		{"valid bounded", Bracket{Min: dec("0"), Max: Bounded(dec("100")), Rate: dec("10")}, nil},
		{"valid unbounded", Bracket{Min: dec("500000"), Max: Unbounded(), Rate: dec("25")}, nil},
		{"negative min", Bracket{Min: dec("-1"), Max: Unbounded(), Rate: dec("10")}, ErrNegativeMin},
		{"max equals min", Bracket{Min: dec("100"), Max: Bounded(dec("100")), Rate: dec("10")}, ErrCeilingOrder},
		{"max below min", Bracket{Min: dec("100"), Max: Bounded(dec("50")), Rate: dec("10")}, ErrCeilingOrder},
		{"rate above 100", Bracket{Min: dec("0"), Max: Unbounded(), Rate: dec("101")}, ErrRateRange},
		{"negative rate", Bracket{Min: dec("0"), Max: Unbounded(), Rate: dec("-5")}, ErrRateRange},
		{"zero rate ok", Bracket{Min: dec("0"), Max: Unbounded(), Rate: dec("0")}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.bracket.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestScheduleUpsert_ReplacesByMin(t *testing.T) {
	s := businessSchedule()
	if err := s.Upsert(Bracket{Min: dec("0"), Max: Bounded(dec("50000")), Rate: dec("12")}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if got := len(s.Brackets); got != 4 {
		t.Fatalf("bracket count = %d, want 4 after replace", got)
	}
	if !s.Sorted()[0].Rate.Equal(dec("12")) {
		t.Errorf("first bracket rate = %s, want 12", s.Sorted()[0].Rate)
	}
}

func TestScheduleUpsert_InsertsSorted(t *testing.T) {
	s := Schedule{Brackets: []Bracket{
		{Min: dec("100000"), Max: Unbounded(), Rate: dec("20")},
	}}
	if err := s.Upsert(Bracket{Min: dec("0"), Max: Bounded(dec("100000")), Rate: dec("10")}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !s.Brackets[0].Min.IsZero() {
		t.Errorf("brackets not sorted by min after insert: first min = %s", s.Brackets[0].Min)
	}
}

func TestScheduleUpsert_RejectsOverlap(t *testing.T) {
	s := businessSchedule()
	before := len(s.Brackets)
	err := s.Upsert(Bracket{Min: dec("40000"), Max: Bounded(dec("60000")), Rate: dec("12")})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("Upsert = %v, want ErrOverlap", err)
	}
	if len(s.Brackets) != before {
		t.Error("schedule mutated despite rejected upsert")
	}
}

func TestScheduleUpsert_AdjacentBracketsAllowed(t *testing.T) {
	s := Schedule{Brackets: []Bracket{
		{Min: dec("0"), Max: Bounded(dec("50000")), Rate: dec("10")},
	}}
	if err := s.Upsert(Bracket{Min: dec("50000"), Max: Unbounded(), Rate: dec("15")}); err != nil {
		t.Fatalf("adjacent bracket rejected: %v", err)
	}
}

func TestScheduleRemoveByMin(t *testing.T) {
	s := businessSchedule()
	if err := s.RemoveByMin(dec("50000")); err != nil {
		t.Fatalf("RemoveByMin failed: %v", err)
	}
	if len(s.Brackets) != 3 {
		t.Errorf("bracket count = %d, want 3", len(s.Brackets))
	}

	if err := s.RemoveByMin(dec("77")); !errors.Is(err, ErrUnknownBracket) {
		t.Errorf("RemoveByMin(unknown) = %v, want ErrUnknownBracket", err)
	}
}

func TestScheduleRemoveByMin_KeepsFloorOfOne(t *testing.T) {
	s := Schedule{Brackets: []Bracket{
		{Min: dec("0"), Max: Unbounded(), Rate: dec("10")},
	}}
	if err := s.RemoveByMin(dec("0")); !errors.Is(err, ErrLastBracket) {
		t.Fatalf("RemoveByMin(last) = %v, want ErrLastBracket", err)
	}
	if len(s.Brackets) != 1 {
		t.Error("last bracket must survive the rejected removal")
	}
}
