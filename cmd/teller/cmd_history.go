package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"universalis/internal/ledger"
	"universalis/internal/render"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent teller business from the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager()
		if err != nil {
			return err
		}
		path := ledgerPath
		if path == "" {
			path = mgr.Settings().LedgerPath
		}
		led, err := ledger.Open(path)
		if err != nil {
			return err
		}
		defer led.Close()

		entries, err := led.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("The ledger is empty.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-8s  %-40s  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Summary, render.Money(e.Amount))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show")
}
