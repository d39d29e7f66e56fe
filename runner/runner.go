// Package runner drives one game session: it reads records from the engine,
// hands them to a turnplayer.Player, and writes the player's orders back.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/antbot/game"
	"github.com/domino14/antbot/turnplayer"
)

var errAlreadyRun = errors.New("runner has already been run")

// TurnSource is the read side of the protocol, normally an *antio.Parser.
type TurnSource interface {
	ReadConfig() (game.GameConfig, error)
	NextTurn() (game.Turn, bool)
}

// OrderSink is the write side of the protocol, normally an *antio.Encoder.
type OrderSink interface {
	WriteGo() error
	WriteOrders(orders []game.Order) error
}

// Stats summarizes a session.
type Stats struct {
	State State
	// Turns is the number of turn records answered.
	Turns int
	// LastTurn is the number of the last turn record answered.
	LastTurn int
}

type Runner struct {
	src       TurnSource
	sink      OrderSink
	player    turnplayer.Player
	observers []Observer

	state    State
	turns    int
	lastTurn int
}

func NewRunner(src TurnSource, sink OrderSink, player turnplayer.Player, opts ...Option) *Runner {
	r := &Runner{src: src, sink: sink, player: player}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Stats() Stats {
	return Stats{State: r.state, Turns: r.turns, LastTurn: r.lastTurn}
}

func (r *Runner) fail(err error) error {
	r.state = Failed
	return err
}

// Run plays one session to completion. It returns nil when the engine sends
// its end record, or when the input runs out without one. A config, turn or
// end record that can't be parsed ends the session with that error; so does
// a failed write. ctx is checked between records only.
func (r *Runner) Run(ctx context.Context) error {
	if r.state != Uninitialized {
		return errAlreadyRun
	}
	cfg, err := r.src.ReadConfig()
	if err != nil {
		return r.fail(err)
	}
	r.player.Configure(cfg)
	r.state = Configured
	if err := r.sink.WriteGo(); err != nil {
		return r.fail(fmt.Errorf("writing ready: %w", err))
	}
	log.Info().Int32("rows", cfg.Rows).Int32("cols", cfg.Cols).Int32("turns", cfg.Turns).
		Msg("game configured")

	for {
		if err := ctx.Err(); err != nil {
			return r.fail(err)
		}
		r.state = AwaitingDecision
		turn, ok := r.src.NextTurn()
		if !ok {
			log.Info().Int("turns", r.turns).Msg("input ended without an end record")
			r.state = Finished
			return nil
		}
		if turn.Err != nil {
			return r.fail(fmt.Errorf("%v record: %w", turn.Kind, turn.Err))
		}
		if turn.Kind == game.EndTurn {
			r.finish(turn.End)
			return nil
		}
		if err := r.playTurn(turn.Number, turn.Info); err != nil {
			return r.fail(err)
		}
	}
}

func (r *Runner) playTurn(number int, info game.TurnInfo) error {
	var observed game.TurnInfo
	if len(r.observers) > 0 {
		observed = info.Clone()
	}
	orders := r.player.Decide(info)

	r.state = Emitting
	if err := r.sink.WriteOrders(orders); err != nil {
		return fmt.Errorf("writing orders for turn %d: %w", number, err)
	}
	r.turns++
	r.lastTurn = number
	log.Debug().Int("turn", number).Int("orders", len(orders)).Msg("turn done")

	for _, o := range r.observers {
		if err := o.ObserveTurn(number, observed, orders); err != nil {
			log.Warn().Err(err).Int("turn", number).Msg("observer failed")
		}
	}
	return nil
}

func (r *Runner) finish(end game.EndInfo) {
	for _, o := range r.observers {
		if err := o.ObserveEnd(end.Clone()); err != nil {
			log.Warn().Err(err).Msg("observer failed")
		}
	}
	r.player.Finalize(end)
	r.state = Finished
	log.Info().Ints("scores", end.Scores).Int("turns", r.turns).Msg("game over")
}
