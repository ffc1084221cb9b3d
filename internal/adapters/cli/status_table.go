package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/andrescamacho/bakery-go/internal/application/production/services"
)

// StatusTableSink renders every status update as a table
type StatusTableSink struct {
	out      io.Writer
	interval time.Duration
}

// NewStatusTableSink creates a sink writing to out
func NewStatusTableSink(out io.Writer, interval time.Duration) *StatusTableSink {
	return &StatusTableSink{out: out, interval: interval}
}

// Publish implements services.StatusSink
func (s *StatusTableSink) Publish(ctx context.Context, update services.StatusUpdate) {
	if update.Tick == 0 {
		fmt.Fprintf(s.out, "Run %s started\n", update.RunID)
	} else {
		fmt.Fprintf(s.out, "\nRun %s, batch %d (value %s)\n", update.RunID, update.Tick, update.BatchValue.StringFixed(2))
	}

	if len(update.Statuses) == 0 {
		fmt.Fprintln(s.out, "  (no flavors planned)")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FLAVOR\tTARGET\tPRODUCED\tREMAINING\tTHIS BATCH")
	for _, status := range update.Statuses {
		fmt.Fprintf(w, "  %s\t%d\t%d\t%d\t%d\n",
			displayName(status.Flavor),
			status.TargetQuantity,
			status.ProducedQuantity,
			status.Remaining(),
			update.Produced[status.Flavor],
		)
	}
	w.Flush()

	if update.Running {
		fmt.Fprintf(s.out, "Production running. Next batch in %s.\n", s.interval)
	} else {
		fmt.Fprintln(s.out, "Production plan completed.")
	}
}
