package turnplayer

import (
	"github.com/domino14/antbot/game"
)

// Player encapsulates the decisions a bot makes over one game. The runner
// calls Configure once, Decide once per turn, and Finalize when the engine
// reports the result.
type Player interface {
	Configure(cfg game.GameConfig)
	// Decide must return promptly. It has no error channel; a player that
	// fails internally should return the orders it has, or none.
	Decide(info game.TurnInfo) []game.Order
	Finalize(end game.EndInfo)
}
