package simulation

import (
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/cloudx-io/sealedbid/bidder"
	"github.com/cloudx-io/sealedbid/core"
)

func TestFixedBidder(t *testing.T) {
	f := NewFixedBidder()
	_, err := f.PlaceBid()
	check.True(t, errors.Is(err, bidder.ErrNotInitialized))

	assert.NoError(t, f.Init(10, 100))
	bid, err := f.PlaceBid()
	assert.NoError(t, err)
	check.Equal(t, 20, bid)

	assert.NoError(t, f.ReportRound(20, 40))
	bid, err = f.PlaceBid()
	assert.NoError(t, err)
	check.Equal(t, 20, bid) // 80 cash over 4 rounds
}

func TestFixedBidder_InvalidInit(t *testing.T) {
	check.True(t, errors.Is(NewFixedBidder().Init(0, 10), bidder.ErrInvalidQuantity))
	check.True(t, errors.Is(NewFixedBidder().Init(2, -1), bidder.ErrInvalidCash))
}

func TestFixedBidder_ZeroAfterAuctionOver(t *testing.T) {
	f := NewFixedBidder()
	assert.NoError(t, f.Init(2, 100))
	assert.NoError(t, f.ReportRound(10, 5))

	bid, err := f.PlaceBid()
	assert.NoError(t, err)
	check.Equal(t, 0, bid)
}

func TestRandomBidder_WithinShare(t *testing.T) {
	r := NewRandomBidder(core.NewSeededRandSource(3))
	assert.NoError(t, r.Init(10, 100))

	for i := 0; i < 100; i++ {
		bid, err := r.PlaceBid()
		assert.NoError(t, err)
		check.True(t, bid >= 0 && bid <= 20)
	}
}

func TestRandomBidder_NotInitialized(t *testing.T) {
	r := NewRandomBidder(nil)
	_, err := r.PlaceBid()
	check.True(t, errors.Is(err, bidder.ErrNotInitialized))
	check.True(t, errors.Is(r.ReportRound(1, 1), bidder.ErrNotInitialized))
}
