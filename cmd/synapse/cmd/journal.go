package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/synapse/journal"
	"github.com/rustyeddy/synapse/market"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Record and inspect the trade journal",
	Long: `Record trades and inspect the local journal database.

Subcommands:
  add    - Record a trade with sentiment, result and optional notes
  list   - List all recorded trades, oldest first
  stats  - Show aggregate statistics and the share summary
  export - Export the journal to CSV (optionally xz-compressed)

Examples:
  synapse journal add --symbol eurusd --sentiment positive --result profit
  synapse journal list --symbol EURUSD
  synapse journal stats
  synapse journal export --out journal.csv.xz --compress`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded trades, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate journal statistics",
	Args:  cobra.NoArgs,
	RunE:  runJournalStats,
}

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to CSV",
	Args:  cobra.NoArgs,
	RunE:  runJournalExport,
}

var (
	journalDBPath string

	addSymbol    string
	addSentiment string
	addResult    string
	addNotes     string

	listSymbol string

	exportOut      string
	exportCompress bool
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalStatsCmd)
	journalCmd.AddCommand(journalExportCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./journal.db", "path to journal database")

	journalAddCmd.Flags().StringVarP(&addSymbol, "symbol", "s", "", "traded symbol (required)")
	journalAddCmd.Flags().StringVar(&addSentiment, "sentiment", "neutral", "positive, neutral or negative")
	journalAddCmd.Flags().StringVar(&addResult, "result", "breakeven", "profit, loss or breakeven")
	journalAddCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "free-form notes")
	journalAddCmd.MarkFlagRequired("symbol")

	journalListCmd.Flags().StringVarP(&listSymbol, "symbol", "s", "", "only trades for this symbol")

	journalExportCmd.Flags().StringVarP(&exportOut, "out", "o", "journal.csv", "output file path")
	journalExportCmd.Flags().BoolVar(&exportCompress, "compress", false, "xz-compress the output")
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.Add(context.Background(), journal.AddInput{
		Symbol:    addSymbol,
		Sentiment: market.Sentiment(addSentiment),
		Result:    journal.Result(addResult),
		Notes:     addNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s %s (%s, %s)\n", rec.ID, rec.Symbol, rec.Sentiment, rec.Result)
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	ctx := context.Background()

	var recs []journal.TradeRecord
	if listSymbol != "" {
		recs, err = j.ListBySymbol(ctx, listSymbol)
	} else {
		recs, err = j.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("No trades recorded yet.")
		return nil
	}

	for _, rec := range recs {
		line := fmt.Sprintf("%s  %s  %-7s %-10s %-9s",
			rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.ID, rec.Symbol, rec.Sentiment, rec.Result)
		if rec.Notes != "" {
			line += "  " + rec.Notes
		}
		fmt.Println(line)
	}
	return nil
}

func runJournalStats(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	ctx := context.Background()

	stats, err := j.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Trades: %d\n", stats.Total)
	fmt.Println("Sentiment:")
	for _, s := range market.Sentiments {
		fmt.Printf("  %-9s %d\n", s, stats.BySentiment[s])
	}
	fmt.Println("Results:")
	for _, r := range journal.Results {
		fmt.Printf("  %-9s %d\n", r, stats.ByResult[r])
	}

	recs, err := j.List(ctx)
	if err != nil {
		return err
	}
	sum := journal.Summarize(recs)
	if sum.TotalTrades > 0 {
		fmt.Printf("Win rate: %.1f%% (%d/%d), top symbol %s, dominant sentiment %s\n",
			sum.WinRate, sum.ProfitableTrades, sum.TotalTrades, sum.TopSymbol, sum.DominantSentiment)
	}
	return nil
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.List(context.Background())
	if err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	if exportCompress || strings.HasSuffix(exportOut, ".xz") {
		err = journal.ExportCSVXZ(f, recs)
	} else {
		err = journal.ExportCSV(f, recs)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported %d trades to %s\n", len(recs), exportOut)
	return nil
}
