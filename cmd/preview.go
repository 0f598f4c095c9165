package cmd

import (
	"context"
	"fmt"
	"time"

	"feed-digest/internal/config"
	"feed-digest/internal/digest"
	"feed-digest/internal/feed"
	"feed-digest/internal/model"

	"github.com/spf13/cobra"
)

// previewCmd runs fetch+filter+build and prints the digest that would be
// sent to the summarizer. No LLM call, no email, no credentials needed.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the digest for the current window without summarizing or mailing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sources, err := feed.LoadSources(cfg.SourcesFile)
		if err != nil {
			return err
		}
		fetcher := feed.NewFetcher(feed.Config{
			Timeout:   config.Duration(cfg.Fetch.Timeout, 10*time.Second),
			Delay:     config.Duration(cfg.Fetch.Delay, time.Second),
			UserAgent: cfg.Fetch.UserAgent,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		now := time.Now()
		window := model.WindowEnding(now, cfg.WindowSpan())
		items := fetcher.FetchAll(ctx, sources)
		recent := digest.FilterRecent(items, window)
		b := digest.Builder{MaxPromptChars: cfg.Digest.MaxPromptChars, MaxItemsPerSource: cfg.Digest.MaxItemsPerSource}
		d := b.Build(recent)

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", d.Text)
		fmt.Fprintf(cmd.ErrOrStderr(), "(%d items from %d sources, %d fetched entries total)\n",
			d.ItemCount, d.SourceCount, len(items))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
