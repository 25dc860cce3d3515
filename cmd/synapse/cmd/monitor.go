package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/synapse/config"
	"github.com/rustyeddy/synapse/dashboard"
	"github.com/rustyeddy/synapse/market"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the live risk monitor over a simulated price feed",
	Long: `Continuously rescore risk while a random-walk price source moves the
configured positions. Stop with Ctrl-C.

Example:
  synapse monitor --config synapse.yaml`,
	RunE: runMonitor,
}

var monitorConfigPath string

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().StringVarP(&monitorConfigPath, "config", "c", "", "config file (defaults used when omitted)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if monitorConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(monitorConfigPath)
		if err != nil {
			return err
		}
	}

	interval, err := cfg.Feed.ParseInterval()
	if err != nil {
		return err
	}

	walk := market.NewRandomWalk(cfg.Feed.Step, time.Now().UnixNano())
	m, err := dashboard.New(cfg.Account.Balance, cfg.Positions, walk, interval)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case a := <-m.Updates():
				fmt.Printf("risk %.4f%% (%s)\n", a.Percentage, a.Band)
			}
		}
	}()

	fmt.Printf("Monitoring %d positions on a %.2f balance every %s\n",
		len(cfg.Positions), cfg.Account.Balance, interval)
	return m.Run(ctx)
}
