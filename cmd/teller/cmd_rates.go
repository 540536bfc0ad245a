package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"universalis/internal/render"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "View the current tax brackets and CEO salary rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager()
		if err != nil {
			return err
		}
		return printMarkdown(render.RatesMarkdown(mgr.Rates()))
	},
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when no renderer can be built.
func printMarkdown(md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	fmt.Print(out)
	return nil
}
