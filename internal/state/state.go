// Package state keeps the per-user conversation step of the bot.
package state

import "context"

type State string

const (
	Idle     State = "idle"
	Register State = "register"
	BuySpins State = "buy_spins"
)

// Store holds the current conversation state of each Telegram user.
// Get returns Idle for users without a stored state.
type Store interface {
	Get(ctx context.Context, userID int64) (State, error)
	Set(ctx context.Context, userID int64, s State) error
	Clear(ctx context.Context, userID int64) error
}
