// Package ledger keeps an in-memory, hash chained history of the rounds
// settled during a session.
//
// # Core Components
//
// Ledger: an append-only list of blocks starting from a genesis block. Each
// block stores the hash of the previous one, so editing any past round breaks
// the chain.
//
// Block: one settled round with its bet, result, stake movement and the
// final hands.
//
// Nothing is written to disk; the ledger lives as long as the process.
package ledger
