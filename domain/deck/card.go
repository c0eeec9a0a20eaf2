package deck

// Suit is the label of a card. Suits carry no ordering.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the English name of the suit.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank is the face of a card, Ace (1) through King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

// String returns the English name of the rank.
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// Card represents a playing card with suit and rank. Cards are values and
// never change after they are built.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard builds a Card from an already valid suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

// FromRank creates a Card from a rank code.
//
// Codes 1-13 map to Ace through King (Jack=11, Queen=12, King=13). Any other
// code yields an Ace: the code is never validated.
func FromRank(suit Suit, code int) Card {
	rank := Ace
	if code >= int(Ace) && code <= int(King) {
		rank = Rank(code)
	}
	return Card{suit: suit, rank: rank}
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// LowValue is the value of the card with aces counted as 1.
// Jack, Queen and King are worth 10.
func (c Card) LowValue() int {
	switch {
	case c.rank >= Ten:
		return 10
	case c.rank < Ace:
		return 1
	default:
		return int(c.rank)
	}
}

// HighValue is the value of the card with aces counted as 11.
func (c Card) HighValue() int {
	if c.rank == Ace {
		return 11
	}
	return c.LowValue()
}

// String returns "<Rank> of <Suit>", e.g. "Queen of Hearts".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}
