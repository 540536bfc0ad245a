package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12k", "12000", true},
		{"$3,200.50", "3200.50", true},
		{"abc", "", false},
		{"about 45 gold", "45", true},
		{"2,500", "2500", true},
		{"1.5m", "1500000", true},
		{"12 k", "12000", true},
		{"uc 500", "500", true},
		{"$0", "0", true},
		{"1200", "1200", true},
		{"", "", false},
		{"   ", "", false},
		{"k", "", false},
		{"pay me later", "", false},
		{"1,234,567.89", "1234567.89", true},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount_CommaIsNeverDecimalSeparator(t *testing.T) {
	got, ok := ParseAmount("1,50")
	if !ok {
		t.Fatal("expected a parse")
	}
	if !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("ParseAmount(\"1,50\") = %s, want 150 (comma stripped, not decimal)", got)
	}
}

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in   string
		want Choice
	}{
		{"A", ChoiceCompany},
		{"a)", ChoiceCompany},
		{"Company Services", ChoiceCompany},
		{"services", ChoiceCompany},
		{"B", ChoiceLoan},
		{"loan request", ChoiceLoan},
		{"loans", ChoiceLoan},
		{"tax", ChoiceTax},
		{"calculate my taxes", ChoiceTax},
		{"I want to pay tax", ChoiceTax},
		{"transfer", ChoiceTransfer},
		{"move funds", ChoiceTransfer},
		{"finish", ChoiceFinish},
		{"done", ChoiceFinish},
		{"calculate", ChoiceFinish},
		{"report", ChoiceFinish},
		{"end", ChoiceFinish},
		{"  FINISH  ", ChoiceFinish},
		{"hello there", ChoiceNone},
		{"", ChoiceNone},
	}
	for _, tc := range cases {
		if got := ParseChoice(tc.in); got != tc.want {
			t.Errorf("ParseChoice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDieFaces(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"d20", 20, true},
		{"D100", 100, true},
		{"d 12", 12, true},
		{"20", 20, true},
		{"roll a d25 please", 25, true},
		{"d7, use 20", 20, true},
		{"d7", 0, false},
		{"7", 0, false},
		{"no dice", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseDieFaces(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseDieFaces(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidDieFaces(t *testing.T) {
	for _, faces := range DieSizes {
		if !ValidDieFaces(faces) {
			t.Errorf("ValidDieFaces(%d) = false for an accepted size", faces)
		}
	}
	for _, faces := range []int{0, 1, 6, 13, 1000} {
		if ValidDieFaces(faces) {
			t.Errorf("ValidDieFaces(%d) = true for a rejected size", faces)
		}
	}
}
