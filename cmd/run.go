package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"feed-digest/internal/pipeline"

	"github.com/spf13/cobra"
)

// runCmd executes one full digest pass. It is the command the daily
// scheduler invokes; a non-nil error makes cobra exit non-zero so the
// scheduler's run history reflects the failure.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch feeds, summarize the window, and email the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		p, err := pipeline.New(&cfg)
		if err != nil {
			return err
		}
		// The scheduler's own job timeout is the outer bound; signals
		// just let an operator abort a manual run cleanly.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return p.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
