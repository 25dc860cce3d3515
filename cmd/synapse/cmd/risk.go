package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/synapse/config"
	"github.com/rustyeddy/synapse/market"
	"github.com/rustyeddy/synapse/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Score open-position risk against the account balance",
	Long: `Compute the risk percentage and band for a set of open positions.

Positions come from the config file, or from repeated --position flags in the
form symbol,volume,open,current,side.

Examples:
  synapse risk --config synapse.yaml
  synapse risk --balance 10000 --position EURUSD,0.1,1.0850,1.0865,buy`,
	RunE: runRisk,
}

var (
	riskConfigPath string
	riskBalance    float64
	riskPositions  []string
)

func init() {
	rootCmd.AddCommand(riskCmd)

	riskCmd.Flags().StringVarP(&riskConfigPath, "config", "c", "", "config file with balance and positions")
	riskCmd.Flags().Float64VarP(&riskBalance, "balance", "b", 0, "account balance (overrides config)")
	riskCmd.Flags().StringArrayVarP(&riskPositions, "position", "p", nil,
		"position as symbol,volume,open,current,side (repeatable)")
}

func runRisk(cmd *cobra.Command, args []string) error {
	balance := riskBalance
	var positions []market.Position

	if riskConfigPath != "" {
		cfg, err := config.LoadFromFile(riskConfigPath)
		if err != nil {
			return err
		}
		if balance == 0 {
			balance = cfg.Account.Balance
		}
		positions = cfg.Positions
	}

	for _, spec := range riskPositions {
		p, err := parsePosition(spec)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	a, err := risk.Assess(balance, positions)
	if err != nil {
		return err
	}

	fmt.Printf("Risk: %.4f%% (%s)\n", a.Percentage, a.Band)
	fmt.Printf("Balance: %.2f, positions: %d\n", balance, len(positions))
	return nil
}

func parsePosition(spec string) (market.Position, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 5 {
		return market.Position{}, fmt.Errorf("position %q: want symbol,volume,open,current,side", spec)
	}

	volume, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return market.Position{}, fmt.Errorf("position %q: volume: %w", spec, err)
	}
	open, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return market.Position{}, fmt.Errorf("position %q: open price: %w", spec, err)
	}
	current, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return market.Position{}, fmt.Errorf("position %q: current price: %w", spec, err)
	}
	side, err := market.ParseSide(parts[4])
	if err != nil {
		return market.Position{}, fmt.Errorf("position %q: %w", spec, err)
	}

	return market.Position{
		Symbol:       market.NormalizeSymbol(parts[0]),
		Volume:       volume,
		OpenPrice:    open,
		CurrentPrice: current,
		Side:         side,
	}, nil
}
