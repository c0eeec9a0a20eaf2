package blackjack

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// StartingStake is the number of dollars the player starts with.
const StartingStake = 500

// Errors returned by ParseBet.
var (
	ErrInvalidBet      = errors.New("bet is not a number")
	ErrBetExceedsStake = errors.New("bet exceeds stake")
)

// DeckFactory returns the deck a new round is played on.
type DeckFactory func() *deck.CardSet

// RoundRecord describes a settled round.
type RoundRecord struct {
	RoundID     string     `json:"round_id"`
	Bet         int        `json:"bet"`
	Result      GameResult `json:"result"`
	StakeBefore int        `json:"stake_before"`
	StakeAfter  int        `json:"stake_after"`
	Player      []string   `json:"player"`
	Dealer      []string   `json:"dealer"`
}

// Recorder receives every settled round.
type Recorder interface {
	Record(rec RoundRecord) error
}

// Session repeats rounds until the player has no stake left.
type Session struct {
	stake    int
	rounds   int
	in       Input
	out      Display
	newDeck  DeckFactory
	recorder Recorder
	logger   *slog.Logger
}

// NewSession creates a session with StartingStake. Every round gets a deck
// from newDeck.
func NewSession(in Input, out Display, newDeck DeckFactory, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		stake:   StartingStake,
		in:      in,
		out:     out,
		newDeck: newDeck,
		logger:  logger,
	}
}

// SetRecorder makes the session report each settled round to r.
func (s *Session) SetRecorder(r Recorder) {
	s.recorder = r
}

// Stake returns the dollars the player has left.
func (s *Session) Stake() int {
	return s.stake
}

// Rounds returns how many rounds were played.
func (s *Session) Rounds() int {
	return s.rounds
}

// Run plays until the stake reaches zero. It returns nil once the game is
// over, or the first input or deck error.
func (s *Session) Run() error {
	s.out.Message(MsgWelcome)
	for s.stake > 0 {
		s.out.Message(fmt.Sprintf(MsgEnterBet, s.stake))
		line, err := s.in.ReadLine()
		if err != nil {
			return fmt.Errorf("read bet: %w", err)
		}
		bet, err := ParseBet(line, s.stake)
		if err != nil {
			s.logger.Debug("bet rejected", "input", line, "error", err)
			s.out.Message(MsgInvalidBet)
			continue
		}

		round := NewRound(s.newDeck(), s.in, s.out, s.logger)
		result, err := round.Play()
		if err != nil {
			return err
		}
		s.rounds++

		switch result {
		case Win:
			s.out.Message(MsgWon)
		case Draw:
			s.out.Message(MsgDrew)
		case Lose:
			s.out.Message(MsgLost)
		}
		before := s.stake
		s.stake = Settle(s.stake, bet, result)
		s.logger.Debug("bet settled", "round", round.ID, "bet", bet,
			"result", result.String(), "stake_before", before, "stake", s.stake)
		if s.recorder != nil {
			rec := RoundRecord{
				RoundID:     round.ID,
				Bet:         bet,
				Result:      result,
				StakeBefore: before,
				StakeAfter:  s.stake,
				Player:      cardNames(round.Player()),
				Dealer:      cardNames(round.Dealer()),
			}
			if err := s.recorder.Record(rec); err != nil {
				return fmt.Errorf("record round %s: %w", round.ID, err)
			}
		}
	}
	s.out.Message(MsgGameOver)
	return nil
}

// ParseBet reads a bet from line. The bet must be a 32-bit integer no
// greater than stake; zero and negative bets are accepted.
func ParseBet(line string, stake int) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBet, strings.TrimSpace(line))
	}
	bet := int(v)
	if bet > stake {
		return 0, fmt.Errorf("%w: %d > %d", ErrBetExceedsStake, bet, stake)
	}
	return bet, nil
}

// Settle returns the stake after a round with the given result.
func Settle(stake, bet int, result GameResult) int {
	switch result {
	case Win:
		return stake + bet
	case Lose:
		return stake - bet
	default:
		return stake
	}
}

func cardNames(hand *deck.CardSet) []string {
	cards := hand.Cards()
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
