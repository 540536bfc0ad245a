// Package render turns reports, records, and rate tables into presentable
// text. Everything numeric arrives as plain decimals from the core; the
// dollar signs, separators, and layout all live here.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"universalis/internal/calc"
	"universalis/internal/tax"
	"universalis/internal/teller"
)

// group inserts thousands separators into a digit string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func format(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	out := sign + "$" + group(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// Money renders an amount as "$1,234.56".
func Money(d decimal.Decimal) string {
	return format(d, 2)
}

// Range renders a bracket span as "$50,000 - $100,000" or "$500,000+" for
// an open-ended ceiling.
func Range(min decimal.Decimal, max tax.Ceiling) string {
	if v, bounded := max.Value(); bounded {
		return fmt.Sprintf("%s - %s", format(min, 0), format(v, 0))
	}
	return format(min, 0) + "+"
}

// Percent renders a rate as "15%".
func Percent(d decimal.Decimal) string {
	return strings.TrimSuffix(strings.TrimRight(d.StringFixed(2), "0"), ".") + "%"
}

func breakdownLines(b *strings.Builder, entries []tax.BreakdownEntry) {
	for _, e := range entries {
		fmt.Fprintf(b, "%s @ %s\n   Tax: %s\n", Range(e.Min, e.Max), Percent(e.Rate), Money(e.Tax))
	}
}

// FilingMarkdown renders a tax assessment report.
func FilingMarkdown(f teller.Filing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# UNIVERSALIS BANK — Tax Assessment Report\n\n")
	fmt.Fprintf(&b, "*%s prepares the assessment for %s (%s) — %s*\n\n",
		teller.TellerName, f.Company, f.Player, f.Period)
	fmt.Fprintf(&b, "**Company:** %s\n**Client:** %s\n**Period:** %s\n",
		f.Company, f.Player, f.Period)
	if f.Modifiers != "" {
		fmt.Fprintf(&b, "**Modifiers:** %s\n", f.Modifiers)
	}
	fmt.Fprintf(&b, "**Gross Income:** %s\n**Expenses:** %s\n\n",
		Money(f.Report.GrossRevenue), Money(f.Report.Expenses))

	if f.Report.NoTax {
		fmt.Fprintf(&b, "Net Profit: %s\n\n", Money(f.Report.NetProfit))
		b.WriteString("*No business income tax applies when there is no profit.*\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Tax Calculation\n\n```\nNet Profit: %s\n\n", Money(f.Report.NetProfit))
	breakdownLines(&b, f.Report.BusinessBreakdown)
	fmt.Fprintf(&b, "\nTotal Business Tax: %s\nEffective Rate: %s\n```\n\n",
		Money(f.Report.BusinessTax), Percent(f.Report.EffectiveBusinessRate))
	fmt.Fprintf(&b, "## After Tax\n\n```\nProfit After Tax: %s\n```\n", Money(f.Report.ProfitAfterTax))

	if f.Report.IncludesSalary {
		fmt.Fprintf(&b, "\n## CEO Salary (%s of post-tax profit)\n\n```\nGross Salary: %s\n\n",
			Percent(f.Report.SalaryPercent), Money(f.Report.GrossSalary))
		breakdownLines(&b, f.Report.SalaryBreakdown)
		fmt.Fprintf(&b, "\nSalary Tax: %s\nNet Salary: %s\nCompany Retains: %s\n```\n",
			Money(f.Report.SalaryTax), Money(f.Report.NetSalary), Money(f.Report.FinalRetained))
	}
	return b.String()
}

// TransferMarkdown renders a completed transfer.
func TransferMarkdown(r teller.TransferRecord) string {
	var b strings.Builder
	b.WriteString("# UNIVERSALIS BANK — Transfer Report\n\n")
	fmt.Fprintf(&b, "*%s processes the transfer...*\n\n", teller.TellerName)
	fmt.Fprintf(&b, "**From:** %s\n**To:** %s\n**Amount:** %s\n**Reason:** %s\n\n",
		r.Source, r.Destination, Money(r.Amount), orNone(r.Reason))
	b.WriteString("**Status:** Completed\n")
	return b.String()
}

// LoanMarkdown renders a loan notice for the bank managers.
func LoanMarkdown(n teller.LoanNotice) string {
	var b strings.Builder
	b.WriteString("# UNIVERSALIS BANK — Loan Request\n\n")
	b.WriteString("*A loan request has been submitted and requires manager attention.*\n\n")
	fmt.Fprintf(&b, "**Requester:** %s (%s)\n**Amount:** %s\n**Purpose:** %s\n**Collateral:** %s\n",
		n.Player, n.RequestedBy, Money(n.Amount), orNone(n.Purpose), orNone(n.Collateral))
	return b.String()
}

// RatesMarkdown renders the full rate schedule, including the worked
// progressive-tax example shown at the teller window.
func RatesMarkdown(rates tax.Rates) string {
	var b strings.Builder
	b.WriteString("# Universalis Bank — Tax Rate Schedule\n\n")
	b.WriteString("## Business Income Tax Brackets\n\n```\n")
	for _, br := range rates.Business.Sorted() {
		fmt.Fprintf(&b, "%s: %s\n", Range(br.Min, br.Max), Percent(br.Rate))
	}
	b.WriteString("```\n\n## CEO Income Tax Brackets\n\n```\n")
	for _, br := range rates.Individual.Sorted() {
		fmt.Fprintf(&b, "%s: %s\n", Range(br.Min, br.Max), Percent(br.Rate))
	}
	fmt.Fprintf(&b, "```\n\n## CEO Salary Rate\n\n%s of post-tax business profit\n\n",
		Percent(rates.SalaryPercent))
	b.WriteString(`## How Progressive Tax Works

Each bracket only applies to income within that range.

Example: $75,000 income with brackets $0-$50k @ 10% and $50k-$100k @ 15%:
- First $50,000 taxed at 10% = $5,000
- Remaining $25,000 taxed at 15% = $3,750
- Total tax: $8,750 (effective rate 11.67%)
`)
	return b.String()
}

// ItemsMarkdown renders the calculator working set with rolled quantities.
func ItemsMarkdown(items []calc.LineItem) string {
	var b strings.Builder
	b.WriteString("## Sales\n\n```\n")
	for _, li := range items {
		fmt.Fprintf(&b, "%-20s %s x%d (d%d) = %s\n",
			li.Name, Money(li.UnitPrice), li.Quantity, li.DieFaces, Money(li.Revenue()))
	}
	b.WriteString("```\n")
	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}
