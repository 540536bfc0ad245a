package tax

import "testing"

func ceoSchedule() Schedule {
	return Schedule{
		Purpose: PurposeIndividual,
		Brackets: []Bracket{
			{Min: dec("0"), Max: Bounded(dec("10000")), Rate: dec("5")},
			{Min: dec("10000"), Max: Bounded(dec("50000")), Rate: dec("10")},
			{Min: dec("50000"), Max: Bounded(dec("100000")), Rate: dec("15")},
			{Min: dec("100000"), Max: Unbounded(), Rate: dec("20")},
		},
	}
}

func stockRates() Rates {
	return Rates{
		Business:      businessSchedule(),
		Individual:    ceoSchedule(),
		SalaryPercent: dec("10"),
	}
}

func TestComputeBusinessReport_NoProfit(t *testing.T) {
	rep := ComputeBusinessReport(dec("10000"), dec("12000"), stockRates(), true)

	if !rep.NoTax {
		t.Fatal("expected NoTax for negative net profit")
	}
	if !rep.NetProfit.Equal(dec("-2000")) {
		t.Errorf("net profit = %s, want -2000", rep.NetProfit)
	}
	if !rep.BusinessTax.IsZero() || len(rep.BusinessBreakdown) != 0 {
		t.Error("no bracket computation should run without profit")
	}
	if !rep.GrossSalary.IsZero() || !rep.SalaryTax.IsZero() {
		t.Error("salary stage should not run without profit")
	}
}

func TestComputeBusinessReport_BusinessOnly(t *testing.T) {
	rep := ComputeBusinessReport(dec("100000"), dec("20000"), stockRates(), false)

	if rep.NoTax {
		t.Fatal("unexpected NoTax")
	}
	if !rep.NetProfit.Equal(dec("80000")) {
		t.Errorf("net profit = %s, want 80000", rep.NetProfit)
	}
	// 50k@10% = 5000, next 30k@15% = 4500
	if !rep.BusinessTax.Equal(dec("9500")) {
		t.Errorf("business tax = %s, want 9500", rep.BusinessTax)
	}
	if !rep.ProfitAfterTax.Equal(dec("70500")) {
		t.Errorf("profit after tax = %s, want 70500", rep.ProfitAfterTax)
	}
	if !rep.FinalRetained.Equal(dec("70500")) {
		t.Errorf("final retained = %s, want 70500 when no salary stage", rep.FinalRetained)
	}
	if !rep.GrossSalary.IsZero() && !rep.NetSalary.IsZero() {
		t.Error("salary figures must stay zero when the stage is skipped")
	}
	if !rep.EffectiveBusinessRate.Equal(dec("11.875")) {
		t.Errorf("effective business rate = %s, want 11.875", rep.EffectiveBusinessRate)
	}
}

func TestComputeBusinessReport_WithSalaryStage(t *testing.T) {
	rep := ComputeBusinessReport(dec("100000"), dec("20000"), stockRates(), true)

	if !rep.GrossSalary.Equal(dec("7050")) {
		t.Errorf("gross salary = %s, want 7050 (10%% of 70500)", rep.GrossSalary)
	}
	// 7050 all inside the 0-10k CEO bracket at 5%.
	if !rep.SalaryTax.Equal(dec("352.5")) {
		t.Errorf("salary tax = %s, want 352.5", rep.SalaryTax)
	}
	if !rep.NetSalary.Equal(dec("6697.5")) {
		t.Errorf("net salary = %s, want 6697.5", rep.NetSalary)
	}
	if !rep.FinalRetained.Equal(dec("63450")) {
		t.Errorf("final retained = %s, want 63450", rep.FinalRetained)
	}
	if !rep.EffectiveSalaryRate.Equal(dec("5")) {
		t.Errorf("effective salary rate = %s, want 5", rep.EffectiveSalaryRate)
	}
	if len(rep.SalaryBreakdown) != 1 {
		t.Errorf("salary breakdown entries = %d, want 1", len(rep.SalaryBreakdown))
	}
}

func TestComputeBusinessReport_ZeroSalaryPercent(t *testing.T) {
	rates := stockRates()
	rates.SalaryPercent = dec("0")
	rep := ComputeBusinessReport(dec("100000"), dec("20000"), rates, true)

	// A zero salary base must not divide by zero anywhere.
	if !rep.GrossSalary.IsZero() || !rep.SalaryTax.IsZero() {
		t.Errorf("salary figures should be zero, got gross=%s tax=%s", rep.GrossSalary, rep.SalaryTax)
	}
	if !rep.EffectiveSalaryRate.IsZero() {
		t.Errorf("effective salary rate = %s, want 0 for zero base", rep.EffectiveSalaryRate)
	}
	if !rep.FinalRetained.Equal(rep.ProfitAfterTax) {
		t.Errorf("retained = %s, want full post-tax profit %s", rep.FinalRetained, rep.ProfitAfterTax)
	}
}

func TestComputeBusinessReport_BreakEven(t *testing.T) {
	rep := ComputeBusinessReport(dec("5000"), dec("5000"), stockRates(), false)
	if !rep.NoTax {
		t.Error("zero net profit should carry the no-tax flag")
	}
}
