// Package money parses the free-form text players type at the teller
// window: monetary amounts ("12k", "$3,200.50"), menu choices, and die
// sizes. Matching is fixed keyword/phrase matching only.
package money

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DieSizes lists the die faces the teller accepts for sale-quantity rolls.
var DieSizes = []int{10, 12, 20, 25, 50, 100}

var (
	// strictAmount matches an entire token like "2500", "3,200.50" or
	// "1.5 m": digits with optional comma/point separators, optionally
	// followed by a k/m multiplier suffix.
	strictAmount = regexp.MustCompile(`^([0-9,.]*[0-9])(\s*[km])?$`)

	// looseAmount scans for the first embedded numeric substring anywhere
	// in the text ("about 45 gold" -> "45").
	looseAmount = regexp.MustCompile(`[0-9][0-9,.]*[0-9]`)

	dieExplicit = regexp.MustCompile(`d\s*([0-9]{1,3})`)
	dieBare     = regexp.MustCompile(`\b(10|12|20|25|50|100)\b`)
)

// ParseAmount extracts a monetary amount from free-form text. Currency
// markers ("$" and the informal "uc") are stripped, commas are treated as
// thousands separators, and a trailing k/m multiplies by a thousand or a
// million. Returns false when no numeric substring converts.
func ParseAmount(text string) (decimal.Decimal, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return decimal.Zero, false
	}
	t = strings.ReplaceAll(t, "$", "")
	t = strings.ReplaceAll(t, "uc", "")
	t = strings.TrimSpace(t)

	if m := strictAmount.FindStringSubmatch(t); m != nil {
		val, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return decimal.Zero, false
		}
		switch strings.TrimSpace(m[2]) {
		case "k":
			val = val.Mul(decimal.NewFromInt(1_000))
		case "m":
			val = val.Mul(decimal.NewFromInt(1_000_000))
		}
		return val, true
	}

	if m := looseAmount.FindString(t); m != "" {
		val, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
		if err != nil {
			return decimal.Zero, false
		}
		return val, true
	}

	return decimal.Zero, false
}

// Choice is a normalized intent token parsed from a conversational turn.
// The empty value means the text matched nothing.
type Choice string

const (
	ChoiceNone     Choice = ""
	ChoiceCompany  Choice = "company"
	ChoiceLoan     Choice = "loan"
	ChoiceTax      Choice = "tax"
	ChoiceTransfer Choice = "transfer"
	ChoiceFinish   Choice = "finish"
)

var (
	companyPhrases = map[string]bool{
		"a": true, "a)": true,
		"company": true, "services": true,
		"company services": true, "company service": true,
		"company transaction": true, "company transactions": true,
	}
	loanPhrases = map[string]bool{
		"b": true, "b)": true,
		"loan": true, "loans": true,
		"loan request": true, "request loan": true,
	}
	finishPhrases = map[string]bool{
		"finish": true, "done": true, "calculate": true,
		"report": true, "end": true,
	}
)

// ParseChoice normalizes a turn into a Choice token. Exact phrases are
// checked first; tax and transfer intents additionally match on embedded
// keywords, mirroring how players actually answer ("calculate my taxes").
func ParseChoice(text string) Choice {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case finishPhrases[t]:
		return ChoiceFinish
	case companyPhrases[t]:
		return ChoiceCompany
	case loanPhrases[t]:
		return ChoiceLoan
	case strings.Contains(t, "tax") || strings.Contains(t, "calculate"):
		return ChoiceTax
	case strings.Contains(t, "transfer") || strings.Contains(t, "move"):
		return ChoiceTransfer
	}
	return ChoiceNone
}

// ParseDieFaces recognizes an explicit die ("d20") or a bare size ("20")
// in the text, accepting only the sizes in DieSizes. An explicit die of an
// unsupported size does not end the scan ("d7, use 20" still yields 20).
func ParseDieFaces(text string) (int, bool) {
	t := strings.ToLower(text)
	if m := dieExplicit.FindStringSubmatch(t); m != nil {
		val, err := strconv.Atoi(m[1])
		if err == nil && ValidDieFaces(val) {
			return val, true
		}
	}
	if m := dieBare.FindStringSubmatch(t); m != nil {
		val, _ := strconv.Atoi(m[1])
		return val, true
	}
	return 0, false
}

// ValidDieFaces reports whether faces is an accepted die size.
func ValidDieFaces(faces int) bool {
	for _, d := range DieSizes {
		if d == faces {
			return true
		}
	}
	return false
}
