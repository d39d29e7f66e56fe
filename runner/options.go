package runner

import (
	"github.com/domino14/antbot/game"
)

// Observer is told about every turn the runner completes and about the
// final result. Observer errors are logged; they never end the game.
type Observer interface {
	// ObserveTurn is called after the orders for a turn have been written.
	// info is a private copy.
	ObserveTurn(number int, info game.TurnInfo, orders []game.Order) error
	// ObserveEnd is called before the player's Finalize.
	ObserveEnd(end game.EndInfo) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver adds an observer. Observers are called in the order added.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		r.observers = append(r.observers, o)
	}
}
