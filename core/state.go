package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AuctionState tracks everything the strategies need to decide on a bid.
// It holds data and arithmetic only; no policy lives here.
type AuctionState struct {
	initialQuantity     int
	remainingQuantity   int
	initialCash         int
	ownCash             int
	opponentCash        int
	ownQuantityWon      int
	opponentQuantityWon int
	opponentBidHistory  []int
}

// NewAuctionState starts an auction over quantity units where both parties
// hold the same cash budget.
func NewAuctionState(quantity, cash int) *AuctionState {
	return &AuctionState{
		initialQuantity:    quantity,
		remainingQuantity:  quantity,
		initialCash:        cash,
		ownCash:            cash,
		opponentCash:       cash,
		opponentBidHistory: make([]int, 0),
	}
}

func (s *AuctionState) InitialQuantity() int     { return s.initialQuantity }
func (s *AuctionState) RemainingQuantity() int   { return s.remainingQuantity }
func (s *AuctionState) InitialCash() int         { return s.initialCash }
func (s *AuctionState) OwnCash() int             { return s.ownCash }
func (s *AuctionState) OpponentCash() int        { return s.opponentCash }
func (s *AuctionState) OwnQuantityWon() int      { return s.ownQuantityWon }
func (s *AuctionState) OpponentQuantityWon() int { return s.opponentQuantityWon }

// OpponentBidHistory returns a copy of every opponent bid seen so far, oldest first.
func (s *AuctionState) OpponentBidHistory() []int {
	history := make([]int, len(s.opponentBidHistory))
	copy(history, s.opponentBidHistory)
	return history
}

// RemainingRounds is ceil(remaining/2). An odd remainder is not special-cased.
func (s *AuctionState) RemainingRounds() int {
	return (s.remainingQuantity + 1) / UnitsPerRound
}

// TargetQuantity is the unit count that guarantees a majority.
func (s *AuctionState) TargetQuantity() int {
	return s.initialQuantity/2 + 1
}

// NeededQuantityToWin goes negative once the target has been passed.
func (s *AuctionState) NeededQuantityToWin() int {
	return s.TargetQuantity() - s.ownQuantityWon
}

// OpponentBidAverage returns the exact mean of the observed opponent bids.
// ok is false when no bid has been observed yet.
func (s *AuctionState) OpponentBidAverage() (avg decimal.Decimal, ok bool) {
	if len(s.opponentBidHistory) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, bid := range s.opponentBidHistory {
		sum = sum.Add(decimal.NewFromInt(int64(bid)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(s.opponentBidHistory)))), true
}

// RecordOpponentBid appends to the history without validation.
func (s *AuctionState) RecordOpponentBid(bid int) {
	s.opponentBidHistory = append(s.opponentBidHistory, bid)
}

// UpdateCash charges both parties their own bid. Cash never drops below zero.
func (s *AuctionState) UpdateCash(ownPaid, opponentPaid int) {
	s.ownCash = max(0, s.ownCash-ownPaid)
	s.opponentCash = max(0, s.opponentCash-opponentPaid)
}

// UpdateQuantities credits the units won this round and removes them from the pool.
func (s *AuctionState) UpdateQuantities(ownWon, opponentWon int) {
	s.ownQuantityWon += ownWon
	s.opponentQuantityWon += opponentWon
	s.remainingQuantity = max(0, s.remainingQuantity-(ownWon+opponentWon))
}

func (s *AuctionState) IsAuctionOver() bool {
	return s.remainingQuantity <= 0
}

// Result summarizes the auction so far. Outcome stays OutcomeUndecided until
// the auction is over.
func (s *AuctionState) Result() AuctionResult {
	outcome := OutcomeUndecided
	if s.IsAuctionOver() {
		outcome = ClassifyOutcome(s.ownQuantityWon, s.opponentQuantityWon, s.ownCash, s.opponentCash)
	}
	return AuctionResult{
		OwnQuantity:      s.ownQuantityWon,
		OpponentQuantity: s.opponentQuantityWon,
		OwnCash:          s.ownCash,
		OpponentCash:     s.opponentCash,
		Outcome:          outcome,
		OutcomeName:      outcome.String(),
	}
}

// Clone returns a deep copy that shares no history with s.
func (s *AuctionState) Clone() *AuctionState {
	c := *s
	c.opponentBidHistory = s.OpponentBidHistory()
	return &c
}

func (s *AuctionState) String() string {
	return fmt.Sprintf("AuctionState{remQU=%d, ownMU=%d, oppMU=%d, ownQuWon=%d, oppQuWon=%d, roundsLeft=%d}",
		s.remainingQuantity, s.ownCash, s.opponentCash, s.ownQuantityWon, s.opponentQuantityWon, s.RemainingRounds())
}
