package blackjack

import "github.com/luca-patrignani/blackjack/domain/deck"

// dealerOutcome checks the dealer hand after a draw. Both flags false means
// the dealer must draw again; this includes a tie with the player.
func dealerOutcome(dealer, player *deck.CardSet) (dealerWins, playerWins bool) {
	d := dealer.Optimum()
	switch {
	case dealer.HasBlackjack():
		return true, false
	case d <= deck.BlackjackValue && d > player.Optimum():
		return true, false
	case d > deck.BlackjackValue:
		return false, true
	default:
		return false, false
	}
}

// resolve maps the two win flags to a result.
func resolve(playerWins, dealerWins bool) GameResult {
	switch {
	case playerWins && dealerWins:
		return Draw
	case playerWins:
		return Win
	default:
		return Lose
	}
}
