package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bakery",
		Short: "Bakery CLI - Simulate doughnut production runs",
		Long: `Bakery CLI runs doughnut production plans.

A plan maps flavors to target quantities. Production advances in fixed-size
batches on a periodic tick until every target is met.

Examples:
  bakery produce --plan vanilla=120 --plan chocolate=80
  bakery produce --plan caramel=1 --batch-size 10 --interval 1s
  bakery flavors
  bakery config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/bakery/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewProduceCommand())
	rootCmd.AddCommand(NewFlavorsCommand())
	rootCmd.AddCommand(NewConfigCommand())

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
