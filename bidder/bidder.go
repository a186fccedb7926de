// Package bidder implements the agent that plays one two-party sealed-bid
// auction, choosing a strategy each round from the tracked auction state.
package bidder

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cloudx-io/sealedbid/core"
)

var (
	// ErrNotInitialized is returned when a bid is requested or reported before Init.
	ErrNotInitialized = errors.New("auction not initialized")
	// ErrInvalidQuantity is returned by Init for a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidCash is returned by Init for a negative budget.
	ErrInvalidCash = errors.New("cash must not be negative")
)

// Bidder is the contract the auction harness drives: one Init per auction,
// then a PlaceBid and a ReportRound per round.
type Bidder interface {
	Init(quantity, cash int) error
	PlaceBid() (int, error)
	ReportRound(ownBid, opponentBid int) error
}

// Agent is a Bidder that re-selects its strategy every round.
// An Agent serves a single caller; use one per concurrent auction.
type Agent struct {
	state      *core.AuctionState
	randSource core.RandSource
	logger     logrus.FieldLogger
}

// NewAgent creates an uninitialized agent. A nil randSource falls back to
// crypto/rand and a nil logger to the logrus standard logger.
func NewAgent(randSource core.RandSource, logger logrus.FieldLogger) *Agent {
	if randSource == nil {
		randSource = core.DefaultRandSource()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Agent{
		randSource: randSource,
		logger:     logger,
	}
}

// Init starts a fresh auction, discarding any previous state.
func (a *Agent) Init(quantity, cash int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if cash < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCash, cash)
	}
	a.state = core.NewAuctionState(quantity, cash)
	a.logger.WithFields(logrus.Fields{
		"quantity": quantity,
		"cash":     cash,
	}).Debug("auction initialized")
	return nil
}

// PlaceBid returns the bid for the current round, within [0, own cash].
// It does not change any state.
func (a *Agent) PlaceBid() (int, error) {
	if a.state == nil {
		return 0, ErrNotInitialized
	}
	if a.state.IsAuctionOver() {
		return 0, nil
	}

	strategy := core.SelectStrategy(a.state)
	raw := strategy.CalculateBid(a.state, a.randSource)
	bid := min(max(raw, 0), a.state.OwnCash())

	a.logger.WithFields(logrus.Fields{
		"state":    a.state.String(),
		"strategy": strategy.String(),
		"raw_bid":  raw,
		"bid":      bid,
	}).Debug("placing bid")

	return bid, nil
}

// ReportRound applies both submitted bids: each side pays its own bid, the
// higher bid takes the round's units and a tie splits them.
func (a *Agent) ReportRound(ownBid, opponentBid int) error {
	if a.state == nil {
		return ErrNotInitialized
	}

	a.state.UpdateCash(ownBid, opponentBid)
	a.state.RecordOpponentBid(opponentBid)

	ownWon, opponentWon := core.RoundWinnings(ownBid, opponentBid)
	a.state.UpdateQuantities(ownWon, opponentWon)

	a.logger.WithFields(logrus.Fields{
		"own_bid":      ownBid,
		"opponent_bid": opponentBid,
		"own_won":      ownWon,
		"opponent_won": opponentWon,
		"state":        a.state.String(),
	}).Debug("round reported")

	if a.state.IsAuctionOver() {
		result := a.state.Result()
		a.logger.WithFields(logrus.Fields{
			"outcome":           result.OutcomeName,
			"own_quantity":      result.OwnQuantity,
			"opponent_quantity": result.OpponentQuantity,
			"own_cash":          result.OwnCash,
			"opponent_cash":     result.OpponentCash,
		}).Info("auction finished")
	}
	return nil
}

// Result returns the final tallies. ok is false until the auction is over.
func (a *Agent) Result() (result core.AuctionResult, ok bool) {
	if a.state == nil || !a.state.IsAuctionOver() {
		return core.AuctionResult{}, false
	}
	return a.state.Result(), true
}

// State returns a snapshot of the tracked state, or nil before Init.
func (a *Agent) State() *core.AuctionState {
	if a.state == nil {
		return nil
	}
	return a.state.Clone()
}
