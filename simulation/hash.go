package simulation

import (
	"crypto/sha256"
	"fmt"
)

// ComputeTranscriptHash fingerprints the bids of an auction so replays of a
// seeded run can be compared without diffing full transcripts.
//
// Formula: SHA256(quantity + "|" + cash + "|" + bidA:bidB for each round, "|"-joined)
//
// The auction ID is left out so identical play under different IDs hashes the same.
func ComputeTranscriptHash(quantity, cash int, rounds []RoundRecord) string {
	data := fmt.Sprintf("%d|%d", quantity, cash)
	for _, round := range rounds {
		data += fmt.Sprintf("|%d:%d", round.BidA, round.BidB)
	}
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
