package cmd

import (
	"fmt"

	"feed-digest/internal/feed"

	"github.com/spf13/cobra"
)

// sourcesCmd prints the resolved feed list.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the configured feed sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sources, err := feed.LoadSources(cfg.SourcesFile)
		if err != nil {
			return err
		}
		for _, s := range sources {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-12s %s\n", s.Name, s.Kind, s.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
