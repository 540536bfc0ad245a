package tax

import "github.com/shopspring/decimal"

// BreakdownEntry records one bracket's contribution to a tax total.
type BreakdownEntry struct {
	Min     decimal.Decimal
	Max     Ceiling
	Rate    decimal.Decimal
	Taxable decimal.Decimal
	Tax     decimal.Decimal
}

// ComputeProgressiveTax applies a bracket schedule to an amount and returns
// the total tax with a per-bracket breakdown, ordered by bracket Min.
//
// Non-positive amounts yield (0, nil) with no bracket processing. A bracket
// whose Min the amount does not reach is skipped; a reached bracket taxes
// the slice between its Min and the lesser of the amount and its ceiling.
// Brackets that contribute nothing produce no breakdown entry.
func ComputeProgressiveTax(amount decimal.Decimal, schedule Schedule) (decimal.Decimal, []BreakdownEntry) {
	if amount.Sign() <= 0 {
		return decimal.Zero, nil
	}

	total := decimal.Zero
	var breakdown []BreakdownEntry

	for _, b := range schedule.Sorted() {
		if amount.Cmp(b.Min) <= 0 {
			continue
		}
		upper := amount
		if max, bounded := b.Max.Value(); bounded && max.LessThan(amount) {
			upper = max
		}
		slice := upper.Sub(b.Min)
		if slice.Sign() <= 0 {
			continue
		}
		tax := slice.Mul(b.Rate).Div(hundred)
		total = total.Add(tax)
		breakdown = append(breakdown, BreakdownEntry{
			Min:     b.Min,
			Max:     b.Max,
			Rate:    b.Rate,
			Taxable: slice,
			Tax:     tax,
		})
	}

	return total, breakdown
}
