package blackjack

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Errors that end a round.
var (
	ErrDeckExhausted = errors.New("deck exhausted")
	ErrRoundPlayed   = errors.New("round already played")
)

// Round is a single hand between the player and the dealer, played on its
// own deck. The deck and both hands are owned by the round.
type Round struct {
	ID string

	deck   *deck.CardSet
	player *deck.CardSet
	dealer *deck.CardSet
	state  State

	playerWins bool
	dealerWins bool

	in     Input
	out    Display
	logger *slog.Logger
}

// NewRound prepares a round that will draw from d. Cards are taken from the
// end of d.
func NewRound(d *deck.CardSet, in Input, out Display, logger *slog.Logger) *Round {
	if logger == nil {
		logger = slog.Default()
	}
	return &Round{
		ID:     uuid.NewString(),
		deck:   d,
		player: deck.NewCardSet(),
		dealer: deck.NewCardSet(),
		state:  Dealing,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// State returns the current phase of the round.
func (r *Round) State() State {
	return r.state
}

// Player returns the player's hand.
func (r *Round) Player() *deck.CardSet {
	return r.player
}

// Dealer returns the dealer's hand.
func (r *Round) Dealer() *deck.CardSet {
	return r.dealer
}

// Play runs the round to completion and returns the player's result.
//
// The only errors are a failed read from Input and running out of cards,
// reported as ErrDeckExhausted. Either one aborts the round.
func (r *Round) Play() (GameResult, error) {
	if r.state != Dealing {
		return Lose, ErrRoundPlayed
	}
	if err := r.deal(); err != nil {
		return Lose, err
	}
	r.state = PlayerTurn
	r.logger.Debug("round dealt", "round", r.ID,
		"player", r.player.Optimum(), "dealer", r.dealer.Optimum())

	for !r.playerWins && !r.dealerWins {
		r.out.ShowHands(r.player, r.dealer)

		var action Action
		if r.player.HasBlackjack() {
			r.out.Message(MsgPlayerBlackjack)
			r.playerWins = true
			action = ActionStand
		} else {
			a, err := r.chooseAction()
			if errors.Is(err, ErrInvalidAction) {
				r.out.Message(MsgInvalidAction)
				continue
			}
			if err != nil {
				return Lose, err
			}
			action = a
		}

		switch action {
		case ActionHit:
			if _, err := r.draw(r.player); err != nil {
				return Lose, err
			}
			if r.player.IsBust() {
				r.logger.Debug("player bust", "round", r.ID, "value", r.player.Optimum())
				r.dealerWins = true
			}
		case ActionStand:
			r.state = DealerTurn
			if err := r.dealerTurn(); err != nil {
				return Lose, err
			}
		}
	}

	r.state = Resolved
	result := resolve(r.playerWins, r.dealerWins)
	r.logger.Debug("round resolved", "round", r.ID, "result", result.String(),
		"player", r.player.Optimum(), "dealer", r.dealer.Optimum())
	return result, nil
}

func (r *Round) deal() error {
	for i := 0; i < 2; i++ {
		if _, err := r.draw(r.player); err != nil {
			return err
		}
	}
	_, err := r.draw(r.dealer)
	return err
}

func (r *Round) chooseAction() (Action, error) {
	r.out.Message(MsgChooseAction)
	line, err := r.in.ReadLine()
	if err != nil {
		return "", fmt.Errorf("read action: %w", err)
	}
	return ParseAction(line)
}

// dealerTurn draws for the dealer until one side is flagged as the winner.
// Nothing is drawn if a flag is already set.
func (r *Round) dealerTurn() error {
	for !r.dealerWins && !r.playerWins {
		c, err := r.draw(r.dealer)
		if err != nil {
			return err
		}
		r.out.DealerDraws(c)
		r.dealerWins, r.playerWins = dealerOutcome(r.dealer, r.player)
		if r.dealerWins && r.dealer.HasBlackjack() {
			r.out.Message(MsgDealerBlackjack)
		}
	}
	return nil
}

func (r *Round) draw(hand *deck.CardSet) (deck.Card, error) {
	c, err := r.deck.Draw()
	if err != nil {
		return deck.Card{}, fmt.Errorf("round %s: %w: %w", r.ID, ErrDeckExhausted, err)
	}
	hand.Push(c)
	return c, nil
}
