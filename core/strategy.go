package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy is one of the fixed set of bidding heuristics.
type Strategy int

const (
	// ZeroBid never spends. Used once the outcome is decided.
	ZeroBid Strategy = iota
	// Conservative places small bids to preserve the last of the cash.
	Conservative
	// Aggressive outbids the estimated opponent bid and spends hard near the end.
	Aggressive
	// Adaptive balances winning critical rounds against spreading cash over the rest.
	Adaptive
)

func (s Strategy) String() string {
	switch s {
	case ZeroBid:
		return "zero_bid"
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// CalculateBid returns the raw bid for the state. The result is not clamped
// to the available cash; callers do that.
func (s Strategy) CalculateBid(state *AuctionState, randSource RandSource) int {
	if randSource == nil {
		randSource = DefaultRandSource()
	}

	switch s {
	case ZeroBid:
		return 0
	case Conservative:
		return conservativeBid(state, randSource)
	case Aggressive:
		return aggressiveBid(state, randSource)
	case Adaptive:
		return adaptiveBid(state, randSource)
	default:
		panic(fmt.Sprintf("core: unknown strategy %d", int(s)))
	}
}

// conservativeBid bids at most a tenth of the cash and never more than 9.
func conservativeBid(state *AuctionState, randSource RandSource) int {
	if state.OwnCash() == 0 {
		return 0
	}
	return min(state.OwnCash()/10, 5+randSource.Intn(5))
}

func aggressiveBid(state *AuctionState, randSource RandSource) int {
	if state.OwnCash() == 0 {
		return 0
	}
	rounds := max(1, state.RemainingRounds())

	var estimate int
	if avg, ok := state.OpponentBidAverage(); ok {
		estimate = int(avg.Truncate(0).IntPart())
	} else {
		estimate = state.OpponentCash() / (2 * rounds)
	}
	estimate = min(estimate, state.OpponentCash())

	bid := estimate + 1 + randSource.Intn(3)

	// Nearly over and still short: spend to win.
	if state.RemainingRounds() <= 2 && state.NeededQuantityToWin() > 0 {
		bid = max(bid, state.OpponentCash()/rounds+1)
		bid = max(bid, state.OwnCash()/rounds)
	}
	return bid
}

func adaptiveBid(state *AuctionState, randSource RandSource) int {
	if state.OwnCash() == 0 || state.RemainingRounds() <= 0 {
		return 0
	}
	rounds := state.RemainingRounds()

	avg, ok := state.OpponentBidAverage()
	if !ok {
		avg = decimal.NewFromInt(int64(state.OpponentCash())).Div(decimal.NewFromInt(int64(rounds)))
	}
	estimate := min(int(avg.Ceil().IntPart()), state.OpponentCash())

	if rounds <= state.NeededQuantityToWin() {
		bid := estimate + 1 + randSource.Intn(state.OwnCash()/(2*rounds)+1)
		// Keep enough for the remaining critical rounds.
		bid = min(bid, state.OwnCash()/rounds)
		return max(1, bid)
	}

	affordable := state.OwnCash() / rounds
	return min(affordable/2, estimate+1+randSource.Intn(3))
}
