package application

import (
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// GameOrchestrator wires a Console to a blackjack session that plays every
// round on a deck freshly shuffled from src. Settled rounds go to a ledger.
type GameOrchestrator struct {
	console *Console
	session *blackjack.Session
	ledger  *ledger.Ledger
	logger  *slog.Logger
}

// NewGameOrchestrator builds the session and its ledger around console.
func NewGameOrchestrator(console *Console, src deck.Source, logger *slog.Logger) *GameOrchestrator {
	newDeck := func() *deck.CardSet {
		return deck.NewShuffled(src)
	}
	session := blackjack.NewSession(console, console, newDeck, logger)
	history := ledger.New()
	session.SetRecorder(history)
	return &GameOrchestrator{
		console: console,
		session: session,
		ledger:  history,
		logger:  logger,
	}
}

// Session exposes the running session.
func (g *GameOrchestrator) Session() *blackjack.Session {
	return g.session
}

// Ledger exposes the history of settled rounds.
func (g *GameOrchestrator) Ledger() *ledger.Ledger {
	return g.ledger
}

// Run plays the session until the game is over or an error stops it.
func (g *GameOrchestrator) Run() error {
	g.logger.Info("session started", "stake", g.session.Stake())
	err := g.session.Run()
	g.logger.Info("session finished", "rounds", g.session.Rounds(), "stake", g.session.Stake())
	if verr := g.ledger.Verify(); verr != nil {
		g.logger.Error("round history corrupted", "error", verr)
	}
	return err
}

// NewSource picks the shuffle randomness: a reproducible PCG stream for a
// non-zero seed, the kyber random stream otherwise.
func NewSource(seed uint64) deck.Source {
	if seed != 0 {
		return deck.NewSeededSource(seed)
	}
	return deck.NewCryptoSource()
}
