package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/bakery-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
the .env file and BAKERY_* environment variables. If the configuration
cannot be loaded the error is reported and the defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loadErr := config.LoadConfigOrDefault(configPath)
			if loadErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nShowing defaults instead.\n\n", loadErr)
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			pidFile := cfg.Production.PIDFile
			if pidFile == "" {
				pidFile = "(none)"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "production.batch_size\t%d\n", cfg.Production.BatchSize)
			fmt.Fprintf(w, "production.interval\t%s\n", cfg.Production.Interval)
			fmt.Fprintf(w, "production.pid_file\t%s\n", pidFile)
			fmt.Fprintf(w, "logging.level\t%s\n", cfg.Logging.Level)
			fmt.Fprintf(w, "logging.format\t%s\n", cfg.Logging.Format)
			fmt.Fprintf(w, "logging.output\t%s\n", cfg.Logging.Output)
			fmt.Fprintf(w, "logging.include_caller\t%t\n", cfg.Logging.IncludeCaller)
			fmt.Fprintf(w, "metrics.enabled\t%t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(w, "metrics.addr\t%s\n", cfg.Metrics.Addr())
			fmt.Fprintf(w, "metrics.path\t%s\n", cfg.Metrics.Path)
			return w.Flush()
		},
	}
}
