package ledger

import "github.com/luca-patrignani/blackjack/domain/blackjack"

// Block is one settled round in the ledger.
type Block struct {
	Index     int                   `json:"index"`
	Timestamp int64                 `json:"timestamp"`
	PrevHash  string                `json:"prev_hash"`
	Hash      string                `json:"hash"`
	Round     blackjack.RoundRecord `json:"round"`
}
