package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

// stateWith builds a consistent state: won and lost units are removed from the
// pool and cash is set directly.
func stateWith(quantity, initialCash, ownWon, oppWon, ownCash, oppCash int) *AuctionState {
	state := NewAuctionState(quantity, initialCash)
	state.UpdateQuantities(ownWon, oppWon)
	state.ownCash = ownCash
	state.opponentCash = oppCash
	return state
}

func TestStrategy_String(t *testing.T) {
	check.Equal(t, "zero_bid", ZeroBid.String())
	check.Equal(t, "conservative", Conservative.String())
	check.Equal(t, "aggressive", Aggressive.String())
	check.Equal(t, "adaptive", Adaptive.String())
	check.Equal(t, "strategy(9)", Strategy(9).String())
}

func TestStrategy_UnknownPanics(t *testing.T) {
	defer func() {
		check.NotNil(t, recover())
	}()
	Strategy(42).CalculateBid(NewAuctionState(10, 100), &mockRandSource{})
}

func TestZeroBid(t *testing.T) {
	mock := &mockRandSource{}
	check.Equal(t, 0, ZeroBid.CalculateBid(NewAuctionState(10, 100), mock))
	check.Equal(t, 0, len(mock.calls))
}

func TestConservative(t *testing.T) {
	tests := []struct {
		name     string
		ownCash  int
		sequence []int
		expected int
	}{
		{"no cash", 0, nil, 0},
		{"tenth of cash caps the bid", 50, []int{4}, 5},
		{"random part caps the bid", 100, []int{0}, 5},
		{"random part at its maximum", 1000, []int{4}, 9},
		{"below ten cash bids nothing", 9, []int{3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateWith(10, 100, 0, 0, tt.ownCash, 100)
			bid := Conservative.CalculateBid(state, &mockRandSource{sequence: tt.sequence})
			check.Equal(t, tt.expected, bid)
		})
	}
}

func TestConservative_RandomRange(t *testing.T) {
	state := stateWith(10, 1000, 0, 0, 1000, 1000)
	for i := 0; i < 100; i++ {
		bid := Conservative.CalculateBid(state, nil)
		check.True(t, bid >= 5 && bid <= 9)
	}
}

func TestAggressive_NoHistoryUsesOpponentCashShare(t *testing.T) {
	state := NewAuctionState(10, 100)

	// 100 / (2 * 5 rounds) = 10, plus 1, plus 2 from the random draw.
	bid := Aggressive.CalculateBid(state, &mockRandSource{sequence: []int{2}})
	check.Equal(t, 13, bid)
}

func TestAggressive_AverageIsTruncated(t *testing.T) {
	state := NewAuctionState(10, 100)
	state.RecordOpponentBid(20)
	state.RecordOpponentBid(25)

	bid := Aggressive.CalculateBid(state, &mockRandSource{sequence: []int{0}})
	check.Equal(t, 23, bid)
}

func TestAggressive_EstimateCappedAtOpponentCash(t *testing.T) {
	state := stateWith(10, 100, 0, 0, 100, 5)
	state.RecordOpponentBid(40)

	bid := Aggressive.CalculateBid(state, &mockRandSource{sequence: []int{1}})
	check.Equal(t, 7, bid)
}

func TestAggressive_SpendsToWinNearTheEnd(t *testing.T) {
	// 4 units left (2 rounds), agent has 2 of the 6 it needs.
	state := stateWith(10, 100, 2, 4, 60, 30)
	state.RecordOpponentBid(10)

	bid := Aggressive.CalculateBid(state, &mockRandSource{sequence: []int{0}})
	// max(11, 30/2+1, 60/2)
	check.Equal(t, 30, bid)
}

func TestAggressive_NoBoostWhenTargetMet(t *testing.T) {
	state := stateWith(10, 100, 6, 0, 60, 30)
	state.RecordOpponentBid(10)

	bid := Aggressive.CalculateBid(state, &mockRandSource{sequence: []int{0}})
	check.Equal(t, 11, bid)
}

func TestAggressive_NoCash(t *testing.T) {
	state := stateWith(10, 100, 0, 0, 0, 100)
	check.Equal(t, 0, Aggressive.CalculateBid(state, &mockRandSource{}))
}

func TestAggressive_RandomRange(t *testing.T) {
	state := NewAuctionState(10, 100)
	for i := 0; i < 100; i++ {
		bid := Aggressive.CalculateBid(state, nil)
		check.True(t, bid >= 11 && bid <= 13)
	}
}

func TestAdaptive_CriticalRoundFromStart(t *testing.T) {
	// 5 rounds left and 6 units needed: every round is critical.
	state := NewAuctionState(10, 100)
	mock := &mockRandSource{sequence: []int{0}}

	bid := Adaptive.CalculateBid(state, mock)

	// estimate ceil(100/5)=20, 21 capped at the per-round share 100/5.
	check.Equal(t, 20, bid)
	check.Equal(t, []int{11}, mock.calls)
}

func TestAdaptive_CriticalFloorsAtOne(t *testing.T) {
	state := stateWith(10, 100, 0, 0, 1, 100)

	bid := Adaptive.CalculateBid(state, &mockRandSource{})
	check.Equal(t, 1, bid)
}

func TestAdaptive_FallbackEstimateIsCeiled(t *testing.T) {
	// 4 units left (2 rounds), 4 needed: critical.
	state := stateWith(10, 100, 2, 4, 200, 99)
	mock := &mockRandSource{sequence: []int{0}}

	bid := Adaptive.CalculateBid(state, mock)
	// ceil(99/2)=50, plus 1, within the per-round share of 100.
	check.Equal(t, 51, bid)
	check.Equal(t, []int{51}, mock.calls)
}

func TestAdaptive_StandardRound(t *testing.T) {
	// 6 units left (3 rounds), 2 needed: not critical.
	state := stateWith(10, 100, 4, 0, 60, 90)
	state.RecordOpponentBid(5)
	state.RecordOpponentBid(6)

	bid := Adaptive.CalculateBid(state, &mockRandSource{sequence: []int{1}})
	// ceil(5.5)+1+1 = 8, below half of the 20 affordable per round.
	check.Equal(t, 8, bid)
}

func TestAdaptive_StandardRoundCappedAtHalfAffordable(t *testing.T) {
	state := stateWith(10, 100, 4, 0, 60, 90)
	state.RecordOpponentBid(30)

	bid := Adaptive.CalculateBid(state, &mockRandSource{sequence: []int{2}})
	check.Equal(t, 10, bid)
}

func TestAdaptive_NothingToSpendOrNoRounds(t *testing.T) {
	check.Equal(t, 0, Adaptive.CalculateBid(stateWith(10, 100, 0, 0, 0, 100), &mockRandSource{}))
	check.Equal(t, 0, Adaptive.CalculateBid(stateWith(10, 100, 6, 4, 50, 50), &mockRandSource{}))
}

func TestAdaptive_CriticalRandomRange(t *testing.T) {
	state := NewAuctionState(10, 100)
	for i := 0; i < 100; i++ {
		bid := Adaptive.CalculateBid(state, nil)
		check.True(t, bid >= 1 && bid <= 20)
	}
}
