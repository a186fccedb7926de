package core

import (
	"github.com/shopspring/decimal"
)

// cashStarvedFraction of the initial budget marks the point below which the
// agent switches to small bids.
var cashStarvedFraction = decimal.New(1, -1)

// cashStarvedAbsolute is the absolute cash level that must also be undercut.
const cashStarvedAbsolute = 10

// SelectStrategy picks the heuristic for the current state. Rules are checked
// in order and the first match wins; nothing is remembered between rounds.
func SelectStrategy(state *AuctionState) Strategy {
	own := state.OwnQuantityWon()

	// Majority already secured.
	if own >= state.TargetQuantity() {
		return ZeroBid
	}

	// The opponent cannot catch up even by winning every remaining unit.
	maxOpponentTotal := state.OpponentQuantityWon() + state.RemainingQuantity()
	if maxOpponentTotal < own && own > 0 {
		return ZeroBid
	}

	rounds := state.RemainingRounds()
	if rounds > 0 && rounds <= state.NeededQuantityToWin() {
		if state.OwnCash() > state.OpponentCash()/2 || state.OwnCash() > state.InitialCash()/4 {
			return Aggressive
		}
		return Adaptive
	}

	if isCashStarved(state) {
		return Conservative
	}

	return Adaptive
}

func isCashStarved(state *AuctionState) bool {
	threshold := decimal.NewFromInt(int64(state.InitialCash())).Mul(cashStarvedFraction)
	return decimal.NewFromInt(int64(state.OwnCash())).LessThan(threshold) &&
		state.OwnCash() < cashStarvedAbsolute
}
