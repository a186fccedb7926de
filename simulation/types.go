// Package simulation runs auctions between bidders in-process. It plays the
// part of the auction harness: it collects both sealed bids, enforces budgets
// and awards units, which makes it usable for batch evaluation and tests.
package simulation

import (
	"github.com/cloudx-io/sealedbid/bidder"
	"github.com/cloudx-io/sealedbid/core"
)

// BidderFactory builds a fresh bidder for the auction at the given index.
// Each call must return an independent instance.
type BidderFactory func(index int) bidder.Bidder

// RoundRecord captures one round as seen by the harness.
type RoundRecord struct {
	Round       int `json:"round" cbor:"round"`
	BidA        int `json:"bid_a" cbor:"bid_a"`
	BidB        int `json:"bid_b" cbor:"bid_b"`
	UnitsA      int `json:"units_a" cbor:"units_a"`
	UnitsB      int `json:"units_b" cbor:"units_b"`
	CashLeftA   int `json:"cash_left_a" cbor:"cash_left_a"`
	CashLeftB   int `json:"cash_left_b" cbor:"cash_left_b"`
	RemainingQU int `json:"remaining_quantity" cbor:"remaining_quantity"`
}

// AuctionRecord is the full transcript of one auction. Result is from bidder A's side.
type AuctionRecord struct {
	ID       string             `json:"id" cbor:"id"`
	Quantity int                `json:"quantity" cbor:"quantity"`
	Cash     int                `json:"cash" cbor:"cash"`
	Rounds   []RoundRecord      `json:"rounds" cbor:"rounds"`
	Result   core.AuctionResult `json:"result" cbor:"result"`
	Digest   string             `json:"digest" cbor:"digest"`
}

// BatchConfig configures RunBatch.
type BatchConfig struct {
	Auctions int
	Quantity int
	Cash     int
	// Workers bounds how many auctions run at once. Values below 1 mean 1.
	Workers     int
	NewBidder   BidderFactory
	NewOpponent BidderFactory
	// KeepRecords retains every transcript in the report.
	KeepRecords bool
}

// BatchReport aggregates the outcomes of a batch from bidder A's side.
type BatchReport struct {
	ID             string          `json:"id" cbor:"id"`
	Auctions       int             `json:"auctions" cbor:"auctions"`
	Quantity       int             `json:"quantity" cbor:"quantity"`
	Cash           int             `json:"cash" cbor:"cash"`
	Wins           int             `json:"wins" cbor:"wins"`
	Losses         int             `json:"losses" cbor:"losses"`
	Ties           int             `json:"ties" cbor:"ties"`
	WinRate        string          `json:"win_rate" cbor:"win_rate"`
	AvgUnits       string          `json:"avg_units" cbor:"avg_units"`
	AvgCashLeft    string          `json:"avg_cash_left" cbor:"avg_cash_left"`
	Outcomes       map[string]int  `json:"outcomes" cbor:"outcomes"`
	Records        []AuctionRecord `json:"records,omitempty" cbor:"records,omitempty"`
	ProcessingTime int64           `json:"processing_time_ms" cbor:"processing_time_ms"`
}
