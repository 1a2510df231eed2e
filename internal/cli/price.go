package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"option-surface/internal/app"
	"option-surface/internal/pricing"
)

var (
	priceAt     string
	priceExpiry string
	priceStrike float64
	priceCost   float64
	priceSpot   float64
	priceVol    float64
	priceRate   float64
	pricePut    bool

	priceMethod    string
	priceTreeSteps int
	priceMCPaths   int
	priceMCSteps   int
	priceMCSeed    uint64

	priceShockPrice string
	priceShockVol   string
	priceShockRate  string
	priceShockTime  time.Duration
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Value the configured option at a single market point",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.PriceOptions{Method: priceMethod}
		scenario, err := parseScenario()
		if err != nil {
			return err
		}
		opts.Scenario = scenario

		if opts.ObservedAt, err = parseInstant("at", priceAt); err != nil {
			return err
		}
		if opts.Expiry, err = parseInstant("expiry", priceExpiry); err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("strike") {
			opts.Strike = &priceStrike
		}
		if flags.Changed("cost") {
			opts.Cost = &priceCost
		}
		if flags.Changed("spot") {
			opts.UnderlyingPrice = &priceSpot
		}
		if flags.Changed("vol") {
			opts.Volatility = &priceVol
		}
		if flags.Changed("rate") {
			opts.RiskFreeRate = &priceRate
		}
		if flags.Changed("put") {
			opts.Put = &pricePut
		}
		if flags.Changed("tree-steps") {
			opts.TreeSteps = &priceTreeSteps
		}
		if flags.Changed("mc-paths") {
			opts.MCPaths = &priceMCPaths
		}
		if flags.Changed("mc-steps") {
			opts.MCSteps = &priceMCSteps
		}
		if flags.Changed("mc-seed") {
			opts.MCSeed = &priceMCSeed
		}

		_, err = getApp().Price(cmd.Context(), opts)
		return err
	},
}

func init() {
	priceCmd.Flags().StringVar(&priceAt, "at", "", "Observation time (RFC3339 or YYYY-MM-DD, defaults to now)")
	priceCmd.Flags().StringVar(&priceExpiry, "expiry", "", "Expiry (RFC3339 or YYYY-MM-DD, defaults to config)")
	priceCmd.Flags().Float64Var(&priceStrike, "strike", 0, "Strike price")
	priceCmd.Flags().Float64Var(&priceCost, "cost", 0, "Continuous cost of carry yield")
	priceCmd.Flags().Float64Var(&priceSpot, "spot", 0, "Underlying price")
	priceCmd.Flags().Float64Var(&priceVol, "vol", 0, "Annualised volatility")
	priceCmd.Flags().Float64Var(&priceRate, "rate", 0, "Risk-free rate")
	priceCmd.Flags().BoolVar(&pricePut, "put", false, "Value a put instead of a call")
	priceCmd.Flags().StringVar(&priceMethod, "method", "", "Valuation method: bs, tree or mc (defaults to config)")
	priceCmd.Flags().IntVar(&priceTreeSteps, "tree-steps", 0, "Binomial tree layers")
	priceCmd.Flags().IntVar(&priceMCPaths, "mc-paths", 0, "Monte Carlo antithetic path pairs")
	priceCmd.Flags().IntVar(&priceMCSteps, "mc-steps", 0, "Monte Carlo increments per path")
	priceCmd.Flags().Uint64Var(&priceMCSeed, "mc-seed", 0, "Monte Carlo random seed")
	priceCmd.Flags().StringVar(&priceShockPrice, "shock-price", "", "Underlying bump: absolute (+2.5) or relative (-10%, +25bp)")
	priceCmd.Flags().StringVar(&priceShockVol, "shock-vol", "", "Volatility bump: absolute (+0.05) or relative (-10%, +25bp)")
	priceCmd.Flags().StringVar(&priceShockRate, "shock-rate", "", "Risk-free rate bump: absolute (+0.01) or relative (-10%, +25bp)")
	priceCmd.Flags().DurationVar(&priceShockTime, "shock-time", 0, "Advance the observation time, e.g. 720h")
}

func parseScenario() (pricing.Scenario, error) {
	scenario := pricing.Scenario{Elapsed: priceShockTime}
	bumps := []struct {
		flag  string
		value string
		dst   *pricing.Bump
	}{
		{flag: "shock-price", value: priceShockPrice, dst: &scenario.Price},
		{flag: "shock-vol", value: priceShockVol, dst: &scenario.Volatility},
		{flag: "shock-rate", value: priceShockRate, dst: &scenario.Rate},
	}
	for _, b := range bumps {
		bump, err := pricing.ParseBump(b.value)
		if err != nil {
			return pricing.Scenario{}, fmt.Errorf("invalid --%s value: %w", b.flag, err)
		}
		*b.dst = bump
	}
	return scenario, nil
}
