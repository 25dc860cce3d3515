package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/synapse/news"
)

var newsCmd = &cobra.Command{
	Use:   "news <symbol>",
	Short: "Fetch a news-sentiment read for a symbol",
	Long: `Ask the news-sentiment service for the latest analyzed headline.

Example:
  synapse news EURUSD --url http://localhost:5000/api`,
	Args: cobra.ExactArgs(1),
	RunE: runNews,
}

var (
	newsBaseURL string
	newsCount   int
)

func init() {
	rootCmd.AddCommand(newsCmd)

	newsCmd.Flags().StringVarP(&newsBaseURL, "url", "u", "", "news-sentiment service base URL (required)")
	newsCmd.Flags().IntVar(&newsCount, "count", 1, "number of articles the service should consider")
	newsCmd.MarkFlagRequired("url")
}

func runNews(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	h, err := news.NewClient(newsBaseURL).Sentiment(ctx, args[0], newsCount)
	if err != nil {
		return err
	}

	fmt.Printf("%s  [%s]\n", h.Title, h.Sentiment)
	if h.Description != "" {
		fmt.Println(h.Description)
	}
	if h.URL != "" {
		fmt.Println(h.URL)
	}
	return nil
}
