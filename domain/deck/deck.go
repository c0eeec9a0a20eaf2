package deck

import (
	"errors"
	"fmt"
)

// DeckSize is the number of cards in a full single deck.
const DeckSize = 52

// BlackjackValue is the best total a hand can reach.
const BlackjackValue = 21

// ErrEmptyDeck is returned when drawing from a CardSet with no cards.
var ErrEmptyDeck = errors.New("deck is empty")

// CardSet is an ordered sequence of cards. The same type is used for the
// shuffled draw pile and for the player and dealer hands; insertion order is
// deal order.
type CardSet struct {
	cards []Card
}

// NewCardSet returns a CardSet holding the given cards in order. With no
// arguments it returns an empty hand.
func NewCardSet(cards ...Card) *CardSet {
	cs := &CardSet{cards: make([]Card, 0, len(cards))}
	cs.cards = append(cs.cards, cards...)
	return cs
}

// NewFullDeck returns the 52 cards in a fixed order: suit by suit
// (Clubs, Diamonds, Hearts, Spades), Ace through King within each suit.
func NewFullDeck() *CardSet {
	cs := &CardSet{cards: make([]Card, 0, DeckSize)}
	for _, s := range Suits {
		for code := int(Ace); code <= int(King); code++ {
			cs.cards = append(cs.cards, FromRank(s, code))
		}
	}
	return cs
}

// NewShuffled returns a full deck in a uniformly random order drawn from src.
func NewShuffled(src Source) *CardSet {
	cs := NewFullDeck()
	cs.Shuffle(src)
	return cs
}

// Push appends a card to the end of the set.
func (cs *CardSet) Push(c Card) {
	cs.cards = append(cs.cards, c)
}

// Draw removes and returns the last card of the set.
func (cs *CardSet) Draw() (Card, error) {
	n := len(cs.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := cs.cards[n-1]
	cs.cards = cs.cards[:n-1]
	return c, nil
}

// Len returns the number of cards in the set.
func (cs *CardSet) Len() int {
	return len(cs.cards)
}

// Cards returns a copy of the cards in order.
func (cs *CardSet) Cards() []Card {
	out := make([]Card, len(cs.cards))
	copy(out, cs.cards)
	return out
}

// Last returns the most recently added card.
func (cs *CardSet) Last() (Card, bool) {
	if len(cs.cards) == 0 {
		return Card{}, false
	}
	return cs.cards[len(cs.cards)-1], true
}

// LowTotal sums the cards with every ace counted as 1.
func (cs *CardSet) LowTotal() int {
	total := 0
	for _, c := range cs.cards {
		total += c.LowValue()
	}
	return total
}

// HighTotal sums the cards with every ace counted as 11.
func (cs *CardSet) HighTotal() int {
	total := 0
	for _, c := range cs.cards {
		total += c.HighValue()
	}
	return total
}

// Optimum picks the aces-high total when it does not bust, the aces-low
// total otherwise.
func (cs *CardSet) Optimum() int {
	if high := cs.HighTotal(); high <= BlackjackValue {
		return high
	}
	return cs.LowTotal()
}

// IsBust reports whether the optimum value is over 21.
func (cs *CardSet) IsBust() bool {
	return cs.Optimum() > BlackjackValue
}

// HasBlackjack reports whether the set is exactly two cards worth 21 with
// aces high.
func (cs *CardSet) HasBlackjack() bool {
	return len(cs.cards) == 2 && cs.HighTotal() == BlackjackValue
}

// Render formats the set for display: one line per card followed by the
// optimum value.
func (cs *CardSet) Render() []string {
	lines := make([]string, 0, len(cs.cards)+1)
	for _, c := range cs.cards {
		lines = append(lines, c.String())
	}
	return append(lines, fmt.Sprintf("Value: %d", cs.Optimum()))
}
