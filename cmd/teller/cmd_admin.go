package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"universalis/internal/tax"
)

var (
	bracketSchedule string
	bracketMin      float64
	bracketMax      float64
	bracketRate     float64
	bracketOpen     bool
)

// parsePurpose maps the --schedule flag to a taxation stage.
func parsePurpose(name string) (tax.Purpose, error) {
	switch name {
	case "business":
		return tax.PurposeBusiness, nil
	case "ceo", "individual":
		return tax.PurposeIndividual, nil
	}
	return "", fmt.Errorf("unknown schedule %q (want business or ceo)", name)
}

var setBracketCmd = &cobra.Command{
	Use:   "set-bracket",
	Short: "Add or replace a tax bracket (matched by its minimum)",
	Long: `Adds a bracket, or replaces the one sharing the same minimum.

Examples:
  teller set-bracket --schedule business --min 0 --max 50000 --rate 10
  teller set-bracket --schedule ceo --min 100000 --open --rate 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		purpose, err := parsePurpose(bracketSchedule)
		if err != nil {
			return err
		}
		if !bracketOpen && !cmd.Flags().Changed("max") {
			return fmt.Errorf("give --max, or --open for the top bracket")
		}
		max := tax.Unbounded()
		if !bracketOpen {
			max = tax.Bounded(decimal.NewFromFloat(bracketMax))
		}
		mgr, err := loadManager()
		if err != nil {
			return err
		}
		b := tax.Bracket{
			Min:  decimal.NewFromFloat(bracketMin),
			Max:  max,
			Rate: decimal.NewFromFloat(bracketRate),
		}
		if err := mgr.UpsertBracket(purpose, b); err != nil {
			return err
		}
		fmt.Printf("Bracket set on the %s schedule; settings saved to %s\n", purpose, mgr.Path())
		return nil
	},
}

var removeBracketCmd = &cobra.Command{
	Use:   "remove-bracket",
	Short: "Remove the tax bracket with the given minimum",
	RunE: func(cmd *cobra.Command, args []string) error {
		purpose, err := parsePurpose(bracketSchedule)
		if err != nil {
			return err
		}
		mgr, err := loadManager()
		if err != nil {
			return err
		}
		if err := mgr.RemoveBracket(purpose, decimal.NewFromFloat(bracketMin)); err != nil {
			return err
		}
		fmt.Printf("Bracket removed from the %s schedule; settings saved to %s\n", purpose, mgr.Path())
		return nil
	},
}

var setSalaryCmd = &cobra.Command{
	Use:   "set-salary [percent]",
	Short: "Set the CEO salary rate (percent of post-tax profit, 0-100)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("could not parse percent %q", args[0])
		}
		mgr, err := loadManager()
		if err != nil {
			return err
		}
		if err := mgr.SetSalaryPercent(pct); err != nil {
			return err
		}
		fmt.Printf("CEO salary rate set to %s%%; settings saved to %s\n", pct, mgr.Path())
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{setBracketCmd, removeBracketCmd} {
		cmd.Flags().StringVar(&bracketSchedule, "schedule", "business", "which schedule: business or ceo")
		cmd.Flags().Float64Var(&bracketMin, "min", 0, "bracket minimum")
	}
	setBracketCmd.Flags().Float64Var(&bracketMax, "max", 0, "bracket maximum")
	setBracketCmd.Flags().BoolVar(&bracketOpen, "open", false, "open-ended top bracket (no maximum)")
	setBracketCmd.Flags().Float64Var(&bracketRate, "rate", 0, "bracket rate in percent")
}
