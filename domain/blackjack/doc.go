// Package blackjack implements the rules of a simplified single-player
// blackjack game against a dealer.
//
// # Core Types
//
// Round: one hand of play. It deals two cards to the player and one to the
// dealer, then runs the player's hit/stand decisions and the dealer's draws
// until one side is flagged as the winner.
//
// Session: the betting loop. It owns the player's stake, asks for a bet,
// plays a Round on a freshly shuffled deck and settles the bet.
//
// Input and Display: the collaborators that read player lines and show the
// table. The package never touches a terminal directly.
//
// # Dealer Policy
//
// The dealer has no stand threshold: it keeps drawing until it has a
// blackjack, is strictly ahead of the player without busting, or busts.
// An equal total is not enough for the dealer to stop.
package blackjack
