package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"universalis/internal/config"
)

var (
	// Global flags
	verbose      bool
	settingsPath string
	ledgerPath   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "teller",
	Short: "Universalis Bank teller — guided tax, transfer, and loan conversations",
	Long: `The Universalis Bank teller walks players through tax assessments,
company transfers, and loan requests in a guided conversation, computing
progressive-bracket taxes from the configured rate schedules.

Run without arguments to open the interactive teller window.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// The interactive window owns the terminal; keep zap off stderr
		// there unless asked for.
		if cmd.CalledAs() == cmd.Root().Use && !verbose {
			cfg.OutputPaths = nil
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "settings.yaml", "path to the rate settings file")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "path to the ledger database (default from settings)")

	rootCmd.Flags().StringVar(&chatActor, "actor", "customer", "actor identity at the teller window")
	rootCmd.Flags().BoolVar(&chatAsManager, "manager", false, "interact with bank-manager override authority")

	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(setBracketCmd)
	rootCmd.AddCommand(removeBracketCmd)
	rootCmd.AddCommand(setSalaryCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadManager opens the settings file shared by every subcommand.
func loadManager() (*config.Manager, error) {
	return config.NewManager(settingsPath, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
