package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"universalis/internal/calc"
	"universalis/internal/dice"
	"universalis/internal/money"
	"universalis/internal/render"
	"universalis/internal/tax"
	"universalis/internal/teller"
)

var (
	calcItems    []string
	calcIncome   string
	calcExpenses string
	calcCompany  string
	calcPlayer   string
	calcPeriod   string
	calcSalary   bool
	calcSeed     int64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a one-shot tax report, from line items or a flat income",
	Long: `Computes a full business report outside the guided conversation.

Either give a flat income:
  teller calc --income 100k --expenses 20k

or build revenue from dice-rolled sale items (at most ten):
  teller calc --item "Ore shipment:1200:d20" --item "Charter fee:500:d10" --expenses 2k --salary`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringArrayVar(&calcItems, "item", nil, "sale item as name:unit-price:die (repeatable)")
	calcCmd.Flags().StringVar(&calcIncome, "income", "", "gross income (e.g. 100000 or 100k)")
	calcCmd.Flags().StringVar(&calcExpenses, "expenses", "0", "total expenses")
	calcCmd.Flags().StringVar(&calcCompany, "company", "Walk-in client", "company name on the report")
	calcCmd.Flags().StringVar(&calcPlayer, "player", "", "player name on the report")
	calcCmd.Flags().StringVar(&calcPeriod, "period", "", "fiscal period on the report")
	calcCmd.Flags().BoolVar(&calcSalary, "salary", false, "include the CEO salary stage")
	calcCmd.Flags().Int64Var(&calcSeed, "seed", 0, "seed the quantity dice (0 = random)")
}

func runCalc(cmd *cobra.Command, args []string) error {
	mgr, err := loadManager()
	if err != nil {
		return err
	}
	rates := mgr.Rates()

	expenses, ok := money.ParseAmount(calcExpenses)
	if !ok {
		return fmt.Errorf("could not parse expenses %q", calcExpenses)
	}

	var report tax.BusinessReport
	var itemsMD string

	switch {
	case len(calcItems) > 0:
		src := dice.Default()
		if calcSeed != 0 {
			src = dice.NewSource(calcSeed)
		}
		ctx := calc.NewContext(src)
		for _, raw := range calcItems {
			if err := addCalcItem(ctx, raw); err != nil {
				return err
			}
		}
		itemsMD = render.ItemsMarkdown(ctx.Items())
		report = ctx.Report(expenses, rates, calcSalary)

	case calcIncome != "":
		income, ok := money.ParseAmount(calcIncome)
		if !ok {
			return fmt.Errorf("could not parse income %q", calcIncome)
		}
		report = tax.ComputeBusinessReport(income, expenses, rates, calcSalary)

	default:
		return fmt.Errorf("give either --income or at least one --item")
	}

	filing := teller.Filing{
		Company: calcCompany,
		Player:  calcPlayer,
		Period:  calcPeriod,
		Report:  report,
	}
	return printMarkdown(itemsMD + render.FilingMarkdown(filing))
}

// addCalcItem parses "name:unit-price:die" and adds it to the context.
func addCalcItem(ctx *calc.Context, raw string) error {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return fmt.Errorf("item %q: want name:unit-price:die (e.g. \"Ore:1200:d20\")", raw)
	}
	price, ok := money.ParseAmount(parts[1])
	if !ok {
		return fmt.Errorf("item %q: could not parse unit price %q", raw, parts[1])
	}
	faces, ok := money.ParseDieFaces(parts[2])
	if !ok {
		return fmt.Errorf("item %q: unsupported die %q (sizes: %v)", raw, parts[2], money.DieSizes)
	}
	item, err := ctx.AddItem(strings.TrimSpace(parts[0]), price, faces)
	if err != nil {
		return err
	}
	logger.Debug("rolled sale quantity",
		zap.String("item", item.Name),
		zap.Int("quantity", item.Quantity))
	return nil
}
