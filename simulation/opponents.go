package simulation

import (
	"github.com/cloudx-io/sealedbid/bidder"
	"github.com/cloudx-io/sealedbid/core"
)

// FixedBidder spreads its cash evenly over the rounds still to play.
type FixedBidder struct {
	state *core.AuctionState
}

// NewFixedBidder returns an uninitialized FixedBidder.
func NewFixedBidder() *FixedBidder {
	return &FixedBidder{}
}

func (f *FixedBidder) Init(quantity, cash int) error {
	if quantity <= 0 {
		return bidder.ErrInvalidQuantity
	}
	if cash < 0 {
		return bidder.ErrInvalidCash
	}
	f.state = core.NewAuctionState(quantity, cash)
	return nil
}

func (f *FixedBidder) PlaceBid() (int, error) {
	if f.state == nil {
		return 0, bidder.ErrNotInitialized
	}
	if f.state.IsAuctionOver() {
		return 0, nil
	}
	return f.state.OwnCash() / max(1, f.state.RemainingRounds()), nil
}

func (f *FixedBidder) ReportRound(ownBid, opponentBid int) error {
	return applyRound(f.state, ownBid, opponentBid)
}

// RandomBidder bids uniformly between zero and its per-round cash share.
type RandomBidder struct {
	state      *core.AuctionState
	randSource core.RandSource
}

// NewRandomBidder returns an uninitialized RandomBidder. A nil randSource
// falls back to crypto/rand.
func NewRandomBidder(randSource core.RandSource) *RandomBidder {
	if randSource == nil {
		randSource = core.DefaultRandSource()
	}
	return &RandomBidder{randSource: randSource}
}

func (r *RandomBidder) Init(quantity, cash int) error {
	if quantity <= 0 {
		return bidder.ErrInvalidQuantity
	}
	if cash < 0 {
		return bidder.ErrInvalidCash
	}
	r.state = core.NewAuctionState(quantity, cash)
	return nil
}

func (r *RandomBidder) PlaceBid() (int, error) {
	if r.state == nil {
		return 0, bidder.ErrNotInitialized
	}
	if r.state.IsAuctionOver() {
		return 0, nil
	}
	share := r.state.OwnCash() / max(1, r.state.RemainingRounds())
	return r.randSource.Intn(share + 1), nil
}

func (r *RandomBidder) ReportRound(ownBid, opponentBid int) error {
	return applyRound(r.state, ownBid, opponentBid)
}

func applyRound(state *core.AuctionState, ownBid, opponentBid int) error {
	if state == nil {
		return bidder.ErrNotInitialized
	}
	state.UpdateCash(ownBid, opponentBid)
	state.RecordOpponentBid(opponentBid)
	state.UpdateQuantities(core.RoundWinnings(ownBid, opponentBid))
	return nil
}

var (
	_ bidder.Bidder = (*FixedBidder)(nil)
	_ bidder.Bidder = (*RandomBidder)(nil)
	_ bidder.Bidder = (*bidder.Agent)(nil)
)
