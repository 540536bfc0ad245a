package tax

import "github.com/shopspring/decimal"

// BusinessReport carries every intermediate figure of a two-stage tax
// computation: business tax on net profit, then optionally a CEO salary
// drawn as a percentage of post-tax profit and taxed again through the
// individual schedule. Values are plain decimals; formatting belongs to
// the rendering layer.
type BusinessReport struct {
	GrossRevenue decimal.Decimal
	Expenses     decimal.Decimal
	NetProfit    decimal.Decimal

	// NoTax is set when net profit is zero or negative; no bracket
	// computation ran and every figure below is zero.
	NoTax bool

	BusinessTax           decimal.Decimal
	BusinessBreakdown     []BreakdownEntry
	ProfitAfterTax        decimal.Decimal
	EffectiveBusinessRate decimal.Decimal // percent of net profit

	IncludesSalary      bool
	SalaryPercent       decimal.Decimal
	GrossSalary         decimal.Decimal
	SalaryTax           decimal.Decimal
	SalaryBreakdown     []BreakdownEntry
	NetSalary           decimal.Decimal
	EffectiveSalaryRate decimal.Decimal // percent of gross salary

	// FinalRetained is what the company keeps: post-tax profit minus the
	// gross salary draw (or post-tax profit itself when no salary stage).
	FinalRetained decimal.Decimal
}

// effectiveRate is tax/base as a percentage, defined as zero for a zero
// base so reports never divide by zero.
func effectiveRate(tax, base decimal.Decimal) decimal.Decimal {
	if base.Sign() == 0 {
		return decimal.Zero
	}
	return tax.Div(base).Mul(hundred)
}

// ComputeBusinessReport produces a fully populated report from gross
// revenue and expenses against the given rate snapshot. When includeSalary
// is false the salary stage is skipped and the post-tax profit is retained
// in full.
func ComputeBusinessReport(grossRevenue, expenses decimal.Decimal, rates Rates, includeSalary bool) BusinessReport {
	rep := BusinessReport{
		GrossRevenue:   grossRevenue,
		Expenses:       expenses,
		NetProfit:      grossRevenue.Sub(expenses),
		IncludesSalary: includeSalary,
	}

	if rep.NetProfit.Sign() <= 0 {
		rep.NoTax = true
		return rep
	}

	rep.BusinessTax, rep.BusinessBreakdown = ComputeProgressiveTax(rep.NetProfit, rates.Business)
	rep.ProfitAfterTax = rep.NetProfit.Sub(rep.BusinessTax)
	rep.EffectiveBusinessRate = effectiveRate(rep.BusinessTax, rep.NetProfit)

	if !includeSalary {
		rep.FinalRetained = rep.ProfitAfterTax
		return rep
	}

	rep.SalaryPercent = rates.SalaryPercent
	rep.GrossSalary = rep.ProfitAfterTax.Mul(rates.SalaryPercent).Div(hundred)
	rep.SalaryTax, rep.SalaryBreakdown = ComputeProgressiveTax(rep.GrossSalary, rates.Individual)
	rep.NetSalary = rep.GrossSalary.Sub(rep.SalaryTax)
	rep.EffectiveSalaryRate = effectiveRate(rep.SalaryTax, rep.GrossSalary)
	rep.FinalRetained = rep.ProfitAfterTax.Sub(rep.GrossSalary)

	return rep
}
