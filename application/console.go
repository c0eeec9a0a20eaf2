package application

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Console reads player lines from r and prints the table to w. It is both
// the blackjack.Input and the blackjack.Display of a game.
type Console struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewConsole creates a Console reading from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{reader: bufio.NewReader(r), w: w}
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. A last line without a newline is still returned; io.EOF is
// reported only when nothing was read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ShowHands prints both hands with their values.
func (c *Console) ShowHands(player, dealer *deck.CardSet) {
	pterm.Fprintln(c.w, pterm.Bold.Sprint("Your hand:"))
	c.printHand(player)
	pterm.Fprintln(c.w, "")
	pterm.Fprintln(c.w, pterm.Bold.Sprint("Dealers hand:"))
	c.printHand(dealer)
}

// DealerDraws announces a card drawn by the dealer.
func (c *Console) DealerDraws(card deck.Card) {
	pterm.Fprintln(c.w, "Dealer draws "+styleCard(card))
}

// Message prints msg on its own line.
func (c *Console) Message(msg string) {
	pterm.Fprintln(c.w, msg)
}

func (c *Console) printHand(hand *deck.CardSet) {
	cards := hand.Cards()
	for i, line := range hand.Render() {
		if i < len(cards) {
			line = styleCard(cards[i])
		}
		pterm.Fprintln(c.w, line)
	}
}

func styleCard(card deck.Card) string {
	if card.Suit().IsRed() {
		return pterm.LightRed(card.String())
	}
	return card.String()
}
