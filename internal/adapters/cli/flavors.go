package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// NewFlavorsCommand creates the flavors command
func NewFlavorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flavors",
		Short: "List the flavors that can be planned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FLAVOR\tNAME\tPRICE")
			for _, flavor := range production.AllFlavors() {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					displayName(flavor),
					flavor.String(),
					production.PriceOf(flavor).StringFixed(2),
				)
			}
			return w.Flush()
		},
	}
}
