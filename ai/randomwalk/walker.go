// Package randomwalk is the simplest useful player: every ant we own steps
// in a direction picked uniformly at random.
package randomwalk

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/antbot/game"
	"github.com/domino14/antbot/turnplayer"
)

// Self is the owner id the engine uses for this client's own units.
const Self = 0

const (
	rngBufSize = 1024
	rngRounds  = 12
)

type Walker struct {
	turnplayer.BasePlayer
	rng *frand.RNG
}

func NewWalker() *Walker {
	return &Walker{}
}

// seededRNG derives a deterministic generator from the engine's player
// seed, so a replayed game makes the same moves.
func seededRNG(seed int64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return frand.NewCustom(key[:], rngBufSize, rngRounds)
}

func (w *Walker) Configure(cfg game.GameConfig) {
	w.BasePlayer.Configure(cfg)
	w.rng = seededRNG(cfg.PlayerSeed)
}

func (w *Walker) Decide(info game.TurnInfo) []game.Order {
	w.BasePlayer.Decide(info)
	if w.rng == nil {
		w.rng = seededRNG(0)
	}
	return lo.FilterMap(info.Ants, func(a game.Entity, _ int) (game.Order, bool) {
		if a.Owner != Self {
			return game.Order{}, false
		}
		dir := game.Directions[w.rng.Intn(len(game.Directions))]
		return game.Order{Pos: a.Pos, Dir: dir}, true
	})
}

func (w *Walker) Finalize(end game.EndInfo) {
	w.BasePlayer.Finalize(end)
	log.Info().Ints("scores", end.Scores).Int("turns", w.Turns()).Msg("walker finished")
}
