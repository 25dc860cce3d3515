package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synapse",
	Short: "Trading-dashboard core: risk scoring and a local trade journal",
	Long: `Synapse is the headless core of a trading dashboard.

It provides tools for:
  - Scoring open-position risk against the account balance
  - Keeping a durable, append-only trade journal with sentiment and results
  - Aggregating journal statistics for charting and sharing
  - Fetching a news-sentiment read for a symbol
  - Running a live risk monitor over a simulated price feed`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
