package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if cfg.NoColor || !isTerminal(stdout) {
		pterm.DisableStyling()
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	// Logs go to stderr so stdout only carries the game.
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(stderr).WithLevel(level))
	logger := slog.New(handler)

	console := application.NewConsole(stdin, stdout)
	game := application.NewGameOrchestrator(console, application.NewSource(cfg.Seed), logger)
	if err := game.Run(); err != nil {
		logger.Error("game aborted", "error", err)
		return 1
	}
	return 0
}

// isTerminal reports whether w is a file attached to a terminal. Pipes,
// regular files and buffers get the plain transcript.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
