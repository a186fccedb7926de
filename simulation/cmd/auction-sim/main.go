package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/cloudx-io/sealedbid/bidder"
	"github.com/cloudx-io/sealedbid/core"
	"github.com/cloudx-io/sealedbid/simulation"
)

const (
	opponentAgent  = "agent"
	opponentFixed  = "fixed"
	opponentRandom = "random"
)

func main() {
	// Define CLI flags
	var (
		auctions = flag.Int("auctions", 100, "Number of auctions to run")
		quantity = flag.Int("quantity", 10, "Units per auction (must be even)")
		cash     = flag.Int("cash", 100, "Starting cash for each bidder")
		opponent = flag.String("opponent", opponentRandom, "Opponent: agent, fixed or random")
		workers  = flag.Int("workers", 0, "Concurrent auctions (default: AUCTION_SIM_WORKERS or 1)")
		seed     = flag.Uint64("seed", 0, "Seed for reproducible runs (0: crypto random)")
		format   = flag.String("format", simulation.FormatText, "Output format: text, json or cbor")
		records  = flag.Bool("records", false, "Include per-round transcripts in json/cbor output")
		logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
		help     = flag.Bool("help", false, "Show usage information")
	)

	flag.Parse()

	if *help {
		showUsage()
		os.Exit(0)
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	if *workers <= 0 {
		*workers, err = getEnvInt("AUCTION_SIM_WORKERS", 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	newOpponent, err := opponentFactory(*opponent, *seed, logger)
	if err != nil {
		showUsage()
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	cfg := simulation.BatchConfig{
		Auctions: *auctions,
		Quantity: *quantity,
		Cash:     *cash,
		Workers:  *workers,
		NewBidder: func(index int) bidder.Bidder {
			return bidder.NewAgent(randSource(*seed, index, 0), logger.WithField("bidder", "a"))
		},
		NewOpponent: newOpponent,
		KeepRecords: *records,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulation.RunBatch(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation error: %v\n", err)
		os.Exit(2)
	}

	if err := simulation.WriteReport(os.Stdout, report, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(2)
	}
}

func opponentFactory(kind string, seed uint64, logger logrus.FieldLogger) (simulation.BidderFactory, error) {
	switch kind {
	case opponentAgent:
		return func(index int) bidder.Bidder {
			return bidder.NewAgent(randSource(seed, index, 1), logger.WithField("bidder", "b"))
		}, nil
	case opponentFixed:
		return func(int) bidder.Bidder { return simulation.NewFixedBidder() }, nil
	case opponentRandom:
		return func(index int) bidder.Bidder {
			return simulation.NewRandomBidder(randSource(seed, index, 1))
		}, nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", kind)
	}
}

// randSource derives an independent source per auction and side so runs with
// the same seed replay exactly regardless of worker scheduling.
func randSource(seed uint64, index, side int) core.RandSource {
	if seed == 0 {
		return core.DefaultRandSource()
	}
	return core.NewSeededRandSource(seed + uint64(index)*2 + uint64(side))
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %s (must be a valid integer)", key, value)
	}
	return intValue, nil
}

func showUsage() {
	fmt.Println("Sealed-Bid Auction Simulator")
	fmt.Println()
	fmt.Println("Runs repeated two-party auctions between the adaptive agent and an opponent.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  auction-sim [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --auctions <n>                    Number of auctions (default: 100)")
	fmt.Println("  --quantity <n>                    Units per auction, even (default: 10)")
	fmt.Println("  --cash <n>                        Starting cash per bidder (default: 100)")
	fmt.Println("  --opponent <agent|fixed|random>   Opponent strategy (default: random)")
	fmt.Println("  --workers <n>                     Concurrent auctions (env: AUCTION_SIM_WORKERS)")
	fmt.Println("  --seed <n>                        Reproducible seed, 0 for crypto random")
	fmt.Println("  --format <text|json|cbor>         Output format (default: text)")
	fmt.Println("  --records                         Include per-round transcripts")
	fmt.Println("  --log-level <level>               Log level (default: warn)")
	fmt.Println("  --help                            Show this help message")
	fmt.Println()
	fmt.Println("Exit Codes:")
	fmt.Println("  0 - Simulation completed")
	fmt.Println("  1 - Invalid arguments")
	fmt.Println("  2 - Simulation or output error")
}
