package blackjack

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// scriptedInput returns its lines in order and io.EOF afterwards.
type scriptedInput struct {
	lines []string
	reads int
}

func script(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) ReadLine() (string, error) {
	if s.reads >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.reads]
	s.reads++
	return line, nil
}

// recorder keeps every display event as a line of text.
type recorder struct {
	events []string
	draws  []deck.Card
}

func (r *recorder) ShowHands(player, dealer *deck.CardSet) {
	r.events = append(r.events, fmt.Sprintf("hands %d/%d", player.Optimum(), dealer.Optimum()))
}

func (r *recorder) DealerDraws(c deck.Card) {
	r.draws = append(r.draws, c)
	r.events = append(r.events, "Dealer draws "+c.String())
}

func (r *recorder) Message(msg string) {
	r.events = append(r.events, msg)
}

func (r *recorder) count(msg string) int {
	n := 0
	for _, e := range r.events {
		if e == msg {
			n++
		}
	}
	return n
}

// stack builds a deck whose first argument is drawn first.
func stack(cards ...deck.Card) *deck.CardSet {
	d := deck.NewCardSet()
	for i := len(cards) - 1; i >= 0; i-- {
		d.Push(cards[i])
	}
	return d
}

func card(r deck.Rank) deck.Card {
	return deck.NewCard(deck.Clubs, r)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
