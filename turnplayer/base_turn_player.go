package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/antbot/game"
)

// BasePlayer remembers the config and the final result and issues no
// orders. Embed it to get the bookkeeping and override Decide.
type BasePlayer struct {
	cfg   game.GameConfig
	end   game.EndInfo
	turns int
	ended bool
}

func (p *BasePlayer) Configure(cfg game.GameConfig) {
	p.cfg = cfg
	log.Debug().Int32("rows", cfg.Rows).Int32("cols", cfg.Cols).Int32("turns", cfg.Turns).
		Msg("configured")
}

func (p *BasePlayer) Decide(info game.TurnInfo) []game.Order {
	p.turns++
	return nil
}

func (p *BasePlayer) Finalize(end game.EndInfo) {
	p.end = end
	p.ended = true
}

// Config is the game config given to Configure.
func (p *BasePlayer) Config() game.GameConfig { return p.cfg }

// Result returns the final result, and false if the game hasn't ended.
func (p *BasePlayer) Result() (game.EndInfo, bool) { return p.end, p.ended }

// Turns counts the calls to BasePlayer.Decide.
func (p *BasePlayer) Turns() int { return p.turns }
