package main

// Manual smoke tool: fetch candles for a symbol and print the latest value of
// every computed indicator. Useful for eyeballing indicator output against a
// charting site without going through an MCP client.
//
// Usage:
//   go run scripts/dump_indicators.go --symbol AAPL --period 6mo --interval 1d
//   go run scripts/dump_indicators.go --symbol RELIANCE.NS --indicators sma_50,rsi

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"hermes/internal/adapters/config"
	"hermes/internal/adapters/yahoo"
	"hermes/internal/indicators"
	"hermes/pkg/logger"
)

func main() {
	symbol := flag.String("symbol", "AAPL", "Ticker symbol")
	period := flag.String("period", "6mo", "Lookback period (1mo, 6mo, 1y, ytd, max, ...)")
	interval := flag.String("interval", "1d", "Bar interval (1d, 1wk, 1mo)")
	names := flag.String("indicators", "", "Comma-separated indicator names; empty means the default set")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init("warn", cfg.App.Env); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := yahoo.NewClient(cfg.Yahoo)
	resolved := client.Resolve(ctx, *symbol)

	series, err := client.GetHistory(ctx, resolved, *period, *interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		os.Exit(1)
	}

	var requested []string
	if *names != "" {
		requested = strings.Split(*names, ",")
	}
	results, failed := indicators.Compute(series, requested)

	fmt.Printf("%s  %s/%s  %d bars (%s .. %s)\n\n",
		resolved, *period, *interval, len(series),
		series[0].Timestamp.Format("2006-01-02"),
		series[len(series)-1].Timestamp.Format("2006-01-02"),
	)

	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if v, ok := results[k].Last(); ok {
			fmt.Printf("%-16s %12.4f\n", k, v)
		} else {
			fmt.Printf("%-16s %12s\n", k, "undefined")
		}
	}

	for name, reason := range failed {
		fmt.Printf("%-16s FAILED: %s\n", name, reason)
	}
}
