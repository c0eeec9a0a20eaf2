package blackjack

import (
	"errors"
	"strings"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Action is the intent of the player at a decision point.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

// ErrInvalidAction is returned for a line that is neither hit nor stand.
var ErrInvalidAction = errors.New("invalid action")

// ParseAction matches a line against "hit" and "stand", ignoring ASCII case.
func ParseAction(line string) (Action, error) {
	switch a := Action(asciiLower(strings.TrimSpace(line))); a {
	case ActionHit, ActionStand:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

// asciiLower lowers A-Z only; other letters are kept as typed.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// GameResult is the outcome of a round from the player's side.
type GameResult int

const (
	Win GameResult = iota
	Draw
	Lose
)

func (r GameResult) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// MarshalText encodes the result as its name.
func (r GameResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// State is the phase a Round is in.
type State string

const (
	Dealing    State = "dealing"
	PlayerTurn State = "player turn"
	DealerTurn State = "dealer turn"
	Resolved   State = "resolved"
)

// Input supplies the lines typed by the player.
type Input interface {
	ReadLine() (string, error)
}

// Display shows the table to the player.
type Display interface {
	ShowHands(player, dealer *deck.CardSet)
	DealerDraws(c deck.Card)
	Message(msg string)
}

// Messages printed during play.
const (
	MsgWelcome         = "Welcome to blackjack"
	MsgEnterBet        = "Enter bet (You have %d dollars)."
	MsgInvalidBet      = "Invalid bet!"
	MsgChooseAction    = "Choose an action (Hit, Stand):"
	MsgInvalidAction   = "Invalid action. Try again."
	MsgPlayerBlackjack = "Player blackjack!"
	MsgDealerBlackjack = "Dealer blackjack!"
	MsgWon             = "You won!"
	MsgDrew            = "You drew!"
	MsgLost            = "You lost!"
	MsgGameOver        = "Game over!"
)
