package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// ErrIndexOutOfRange is returned by Get for an index outside the chain.
var ErrIndexOutOfRange = errors.New("index out of range")

// Ledger records settled rounds. It implements blackjack.Recorder.
type Ledger struct {
	blocks []Block
}

// New creates a ledger holding only the genesis block, with index 0 and
// previous hash "0".
func New() *Ledger {
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
	}
	genesis.Hash = calculateHash(genesis)
	return &Ledger{blocks: []Block{genesis}}
}

// Record appends a settled round after the latest block.
func (l *Ledger) Record(rec blackjack.RoundRecord) error {
	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Round:     rec,
	}
	b.Hash = calculateHash(b)
	if err := validateBlock(b, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return nil
}

// Len returns the number of blocks including genesis.
func (l *Ledger) Len() int {
	return len(l.blocks)
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	return l.blocks[len(l.blocks)-1]
}

// Get returns the block at index.
func (l *Ledger) Get(index int) (Block, error) {
	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return l.blocks[index], nil
}

// Rounds returns the recorded rounds in order, without genesis.
func (l *Ledger) Rounds() []blackjack.RoundRecord {
	out := make([]blackjack.RoundRecord, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		out = append(out, b.Round)
	}
	return out
}

// Verify checks the genesis block and every link of the chain.
func (l *Ledger) Verify() error {
	if len(l.blocks) == 0 || l.blocks[0].PrevHash != "0" {
		return errors.New("invalid genesis block")
	}
	if h := calculateHash(l.blocks[0]); h != l.blocks[0].Hash {
		return errors.New("invalid genesis hash")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash is the SHA256 of index, timestamp, previous hash and the
// JSON encoded round.
func calculateHash(b Block) string {
	roundBytes, _ := json.Marshal(b.Round)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, roundBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
