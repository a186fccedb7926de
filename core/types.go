package core

// UnitsPerRound is the number of units disposed of by every round.
const UnitsPerRound = 2

// Outcome classifies a finished auction from the agent's point of view.
type Outcome int

const (
	// OutcomeUndecided is reported while units remain.
	OutcomeUndecided Outcome = iota
	// WonOnQuantity means the agent holds more units than the opponent.
	WonOnQuantity
	// LostOnQuantity means the opponent holds more units.
	LostOnQuantity
	// TiedWonOnCash means equal units with more cash left over.
	TiedWonOnCash
	// TiedLostOnCash means equal units with less cash left over.
	TiedLostOnCash
	// ExactTie means equal units and equal cash.
	ExactTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUndecided:
		return "undecided"
	case WonOnQuantity:
		return "won_on_quantity"
	case LostOnQuantity:
		return "lost_on_quantity"
	case TiedWonOnCash:
		return "tied_won_on_cash"
	case TiedLostOnCash:
		return "tied_lost_on_cash"
	case ExactTie:
		return "exact_tie"
	default:
		return "unknown"
	}
}

// Won reports whether the outcome counts as a win for the agent.
func (o Outcome) Won() bool {
	return o == WonOnQuantity || o == TiedWonOnCash
}

// Lost reports whether the outcome counts as a loss for the agent.
func (o Outcome) Lost() bool {
	return o == LostOnQuantity || o == TiedLostOnCash
}

// AuctionResult contains the final tallies of an auction.
type AuctionResult struct {
	OwnQuantity      int     `json:"own_quantity" cbor:"own_quantity"`
	OpponentQuantity int     `json:"opponent_quantity" cbor:"opponent_quantity"`
	OwnCash          int     `json:"own_cash" cbor:"own_cash"`
	OpponentCash     int     `json:"opponent_cash" cbor:"opponent_cash"`
	Outcome          Outcome `json:"-" cbor:"-"`
	OutcomeName      string  `json:"outcome" cbor:"outcome"`
}

// ClassifyOutcome compares quantities won first and falls back to the cash
// left over when both sides hold the same number of units.
func ClassifyOutcome(ownQuantity, opponentQuantity, ownCash, opponentCash int) Outcome {
	switch {
	case ownQuantity > opponentQuantity:
		return WonOnQuantity
	case opponentQuantity > ownQuantity:
		return LostOnQuantity
	case ownCash > opponentCash:
		return TiedWonOnCash
	case opponentCash > ownCash:
		return TiedLostOnCash
	default:
		return ExactTie
	}
}

// RoundWinnings splits the units of one round between the two bids.
// The higher bid takes both units, a tie splits them.
func RoundWinnings(ownBid, opponentBid int) (ownWon, opponentWon int) {
	switch {
	case ownBid > opponentBid:
		return UnitsPerRound, 0
	case opponentBid > ownBid:
		return 0, UnitsPerRound
	default:
		return UnitsPerRound / 2, UnitsPerRound / 2
	}
}
