package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	cxPath     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prunplanner",
		Short: "PrUnPlanner CLI - evaluate Prosperous Universe base plans",
		Long: `PrUnPlanner evaluates base plans against current game data:
daily material flows, workforce satisfaction, cost of goods
manufactured, habitation layouts and return on investment.

Examples:
  prunplanner plan calculate --plan base.json --cx prefs.json
  prunplanner plan overview --plan base.json
  prunplanner habitation optimize --plan base.json --goal auto
  prunplanner roi scan --planet OT-580b
  prunplanner data import --kind buildings --file buildings.json`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&cxPath, "cx", "",
		"Path to exchange preference JSON (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewHabitationCommand())
	rootCmd.AddCommand(NewROICommand())
	rootCmd.AddCommand(NewDataCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
