package blackjack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// decks hands out the given decks in order and counts the calls.
type decks struct {
	queue []*deck.CardSet
	calls int
}

func (d *decks) next() *deck.CardSet {
	d.calls++
	if len(d.queue) == 0 {
		return deck.NewCardSet()
	}
	c := d.queue[0]
	d.queue = d.queue[1:]
	return c
}

func blackjackDeck() *deck.CardSet {
	return stack(card(deck.Ace), card(deck.King), card(deck.Six))
}

func bustDeck() *deck.CardSet {
	return stack(card(deck.Ten), card(deck.Two), card(deck.Six), card(deck.King))
}

func TestSessionWinThenLoseEverything(t *testing.T) {
	ds := &decks{queue: []*deck.CardSet{blackjackDeck(), bustDeck()}}
	out := &recorder{}
	s := NewSession(script("100", "600", "hit"), out, ds.next, discardLogger())

	require.NoError(t, s.Run())
	assert.Equal(t, 0, s.Stake())
	assert.Equal(t, 2, s.Rounds())

	assert.Equal(t, MsgWelcome, out.events[0])
	assert.Equal(t, "Enter bet (You have 500 dollars).", out.events[1])
	assert.Contains(t, out.events, "Enter bet (You have 600 dollars).")
	assert.Equal(t, 1, out.count(MsgWon))
	assert.Equal(t, 1, out.count(MsgLost))
	assert.Equal(t, MsgGameOver, out.events[len(out.events)-1])
}

func TestSessionInvalidBetsSkipRound(t *testing.T) {
	ds := &decks{queue: []*deck.CardSet{bustDeck()}}
	out := &recorder{}
	s := NewSession(script("abc", "501", "500", "hit"), out, ds.next, discardLogger())

	require.NoError(t, s.Run())
	assert.Equal(t, 2, out.count(MsgInvalidBet))
	assert.Equal(t, 1, ds.calls, "invalid bets must not start a round")
	assert.Equal(t, 3, out.count(fmt.Sprintf(MsgEnterBet, 500)))
	assert.Equal(t, 0, s.Stake())
}

func TestSessionNegativeBet(t *testing.T) {
	ds := &decks{queue: []*deck.CardSet{bustDeck(), bustDeck()}}
	out := &recorder{}
	s := NewSession(script("-100", "hit", "600", "hit"), out, ds.next, discardLogger())

	require.NoError(t, s.Run())
	assert.Contains(t, out.events, "Enter bet (You have 600 dollars).")
	assert.Equal(t, 2, out.count(MsgLost))
	assert.Equal(t, 0, s.Stake())
}

func TestSessionInputClosed(t *testing.T) {
	ds := &decks{}
	s := NewSession(script("abc"), &recorder{}, ds.next, discardLogger())

	err := s.Run()
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, StartingStake, s.Stake())
	assert.Equal(t, 0, ds.calls)
}

func TestSessionDeckError(t *testing.T) {
	ds := &decks{}
	s := NewSession(script("10"), &recorder{}, ds.next, discardLogger())

	err := s.Run()
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, StartingStake, s.Stake())
}

func TestParseBet(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		stake    int
		expected int
		err      error
	}{
		{name: "Plain", line: "100", stake: 500, expected: 100},
		{name: "Whitespace", line: "  50 \n", stake: 500, expected: 50},
		{name: "Whole stake", line: "500", stake: 500, expected: 500},
		{name: "Zero", line: "0", stake: 500, expected: 0},
		{name: "Negative", line: "-20", stake: 500, expected: -20},
		{name: "Over stake", line: "501", stake: 500, err: ErrBetExceedsStake},
		{name: "Not a number", line: "abc", stake: 500, err: ErrInvalidBet},
		{name: "Empty", line: "", stake: 500, err: ErrInvalidBet},
		{name: "Decimal", line: "10.5", stake: 500, err: ErrInvalidBet},
		{name: "Overflow", line: "3000000000", stake: 500, err: ErrInvalidBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bet, err := ParseBet(tt.line, tt.stake)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bet)
		})
	}
}

func TestSettle(t *testing.T) {
	assert.Equal(t, 600, Settle(500, 100, Win))
	assert.Equal(t, 500, Settle(500, 100, Draw))
	assert.Equal(t, 400, Settle(500, 100, Lose))
	assert.Equal(t, 0, Settle(600, 600, Lose))
	assert.Equal(t, 600, Settle(500, -100, Lose))
}

type memoryRecorder struct {
	records []RoundRecord
	err     error
}

func (m *memoryRecorder) Record(rec RoundRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func TestSessionRecordsRounds(t *testing.T) {
	ds := &decks{queue: []*deck.CardSet{blackjackDeck(), bustDeck()}}
	rec := &memoryRecorder{}
	s := NewSession(script("100", "600", "hit"), &recorder{}, ds.next, discardLogger())
	s.SetRecorder(rec)

	require.NoError(t, s.Run())
	require.Len(t, rec.records, 2)

	first := rec.records[0]
	assert.Equal(t, 100, first.Bet)
	assert.Equal(t, Win, first.Result)
	assert.Equal(t, 500, first.StakeBefore)
	assert.Equal(t, 600, first.StakeAfter)
	assert.Equal(t, []string{"Ace of Clubs", "King of Clubs"}, first.Player)
	assert.Equal(t, []string{"Six of Clubs"}, first.Dealer)
	assert.NotEmpty(t, first.RoundID)

	second := rec.records[1]
	assert.Equal(t, Lose, second.Result)
	assert.Equal(t, 0, second.StakeAfter)
	assert.Len(t, second.Player, 3)
	assert.NotEqual(t, first.RoundID, second.RoundID)
}

func TestSessionRecorderError(t *testing.T) {
	ds := &decks{queue: []*deck.CardSet{blackjackDeck()}}
	boom := errors.New("boom")
	s := NewSession(script("100"), &recorder{}, ds.next, discardLogger())
	s.SetRecorder(&memoryRecorder{err: boom})

	assert.ErrorIs(t, s.Run(), boom)
}

func TestGameResultMarshalText(t *testing.T) {
	b, err := json.Marshal(RoundRecord{Result: Draw})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"result":"draw"`)
}
