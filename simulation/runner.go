package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cloudx-io/sealedbid/bidder"
	"github.com/cloudx-io/sealedbid/core"
)

var (
	// ErrOddQuantity is returned for a quantity that cannot be split into two-unit rounds.
	ErrOddQuantity = errors.New("quantity must be even")
	// ErrInvalidBatch is returned for a batch config that cannot run.
	ErrInvalidBatch = errors.New("invalid batch config")
)

// RunAuction plays a single auction between a and b. Each submitted bid is
// clamped to the bidder's remaining cash before the round is settled.
// ctx is checked between rounds.
func RunAuction(ctx context.Context, id string, a, b bidder.Bidder, quantity, cash int) (*AuctionRecord, error) {
	if quantity%core.UnitsPerRound != 0 {
		return nil, fmt.Errorf("auction %s: %w: got %d", id, ErrOddQuantity, quantity)
	}
	if err := a.Init(quantity, cash); err != nil {
		return nil, fmt.Errorf("auction %s: init bidder a: %w", id, err)
	}
	if err := b.Init(quantity, cash); err != nil {
		return nil, fmt.Errorf("auction %s: init bidder b: %w", id, err)
	}

	// The ledger is kept from bidder a's side.
	ledger := core.NewAuctionState(quantity, cash)
	record := &AuctionRecord{
		ID:       id,
		Quantity: quantity,
		Cash:     cash,
		Rounds:   make([]RoundRecord, 0, quantity/core.UnitsPerRound),
	}

	for round := 1; !ledger.IsAuctionOver(); round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("auction %s: round %d: %w", id, round, err)
		}

		bidA, err := a.PlaceBid()
		if err != nil {
			return nil, fmt.Errorf("auction %s: round %d: bidder a: %w", id, round, err)
		}
		bidB, err := b.PlaceBid()
		if err != nil {
			return nil, fmt.Errorf("auction %s: round %d: bidder b: %w", id, round, err)
		}
		bidA = min(max(bidA, 0), ledger.OwnCash())
		bidB = min(max(bidB, 0), ledger.OpponentCash())

		if err := a.ReportRound(bidA, bidB); err != nil {
			return nil, fmt.Errorf("auction %s: round %d: report to bidder a: %w", id, round, err)
		}
		if err := b.ReportRound(bidB, bidA); err != nil {
			return nil, fmt.Errorf("auction %s: round %d: report to bidder b: %w", id, round, err)
		}

		unitsA, unitsB := core.RoundWinnings(bidA, bidB)
		ledger.UpdateCash(bidA, bidB)
		ledger.RecordOpponentBid(bidB)
		ledger.UpdateQuantities(unitsA, unitsB)

		record.Rounds = append(record.Rounds, RoundRecord{
			Round:       round,
			BidA:        bidA,
			BidB:        bidB,
			UnitsA:      unitsA,
			UnitsB:      unitsB,
			CashLeftA:   ledger.OwnCash(),
			CashLeftB:   ledger.OpponentCash(),
			RemainingQU: ledger.RemainingQuantity(),
		})
	}

	record.Result = ledger.Result()
	record.Digest = ComputeTranscriptHash(quantity, cash, record.Rounds)
	return record, nil
}

// RunBatch plays cfg.Auctions independent auctions across at most cfg.Workers
// goroutines and aggregates the outcomes. Every auction gets fresh bidders
// from the factories, so no bidder is shared between goroutines.
func RunBatch(ctx context.Context, cfg BatchConfig, logger logrus.FieldLogger) (*BatchReport, error) {
	if cfg.Auctions <= 0 || cfg.NewBidder == nil || cfg.NewOpponent == nil {
		return nil, fmt.Errorf("%w: auctions=%d, factories set=%t", ErrInvalidBatch,
			cfg.Auctions, cfg.NewBidder != nil && cfg.NewOpponent != nil)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	workers := max(1, cfg.Workers)

	startTime := time.Now()
	batchID := uuid.NewString()
	log := logger.WithField("batch_id", batchID)
	log.WithFields(logrus.Fields{
		"auctions": cfg.Auctions,
		"workers":  workers,
	}).Info("starting batch")

	records := make([]*AuctionRecord, cfg.Auctions)
	errs := make([]error, cfg.Auctions)
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Auctions; i++ {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer func() { <-semaphore }() // Release worker slot
			defer func() {
				if r := recover(); r != nil {
					errs[index] = fmt.Errorf("auction %d: panic: %v", index, r)
				}
			}()

			records[index], errs[index] = RunAuction(ctx, uuid.NewString(),
				cfg.NewBidder(index), cfg.NewOpponent(index), cfg.Quantity, cfg.Cash)
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		log.WithError(err).Error("batch failed")
		return nil, err
	}

	report := summarize(batchID, cfg, records)
	report.ProcessingTime = time.Since(startTime).Milliseconds()

	log.WithFields(logrus.Fields{
		"wins":          report.Wins,
		"losses":        report.Losses,
		"ties":          report.Ties,
		"win_rate":      report.WinRate,
		"processing_ms": report.ProcessingTime,
	}).Info("batch complete")

	return report, nil
}

func summarize(batchID string, cfg BatchConfig, records []*AuctionRecord) *BatchReport {
	report := &BatchReport{
		ID:       batchID,
		Auctions: len(records),
		Quantity: cfg.Quantity,
		Cash:     cfg.Cash,
		Outcomes: make(map[string]int),
	}

	totalUnits := decimal.Zero
	totalCash := decimal.Zero
	for _, record := range records {
		outcome := record.Result.Outcome
		report.Outcomes[outcome.String()]++
		switch {
		case outcome.Won():
			report.Wins++
		case outcome.Lost():
			report.Losses++
		default:
			report.Ties++
		}
		totalUnits = totalUnits.Add(decimal.NewFromInt(int64(record.Result.OwnQuantity)))
		totalCash = totalCash.Add(decimal.NewFromInt(int64(record.Result.OwnCash)))

		if cfg.KeepRecords {
			report.Records = append(report.Records, *record)
		}
	}

	n := decimal.NewFromInt(int64(len(records)))
	report.WinRate = decimal.NewFromInt(int64(report.Wins)).Div(n).StringFixed(4)
	report.AvgUnits = totalUnits.Div(n).StringFixed(2)
	report.AvgCashLeft = totalCash.Div(n).StringFixed(2)
	return report
}
