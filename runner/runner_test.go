package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/antbot/antio"
	"github.com/domino14/antbot/game"
)

var configInput = []string{
	"turn 0",
	"loadtime 3000",
	"turntime 1000",
	"rows 20",
	"cols 30",
	"turns 500",
	"viewradius2 55",
	"attackradius2 5",
	"spawnradius2 1",
	"player_seed 42",
	"ready",
}

var turnInput = []string{"f 6 5", "w 7 6", "a 10 9 0", "h 7 12 0", "go"}

var endInput = []string{"end", "players 2", "score 11 12", "f 6 5", "d 7 8 1", "a 9 9 0", "go"}

func lines(blocks ...[]string) []string {
	var out []string
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// callLog collects player hooks and output lines in the order they happen.
type callLog struct {
	calls []string
}

func (c *callLog) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		c.calls = append(c.calls, "out:"+l)
	}
	return len(p), nil
}

type recordingPlayer struct {
	log    *callLog
	cfg    game.GameConfig
	infos  []game.TurnInfo
	end    *game.EndInfo
	orders []game.Order
}

func (p *recordingPlayer) Configure(cfg game.GameConfig) {
	p.cfg = cfg
	p.log.calls = append(p.log.calls, "configure")
}

func (p *recordingPlayer) Decide(info game.TurnInfo) []game.Order {
	p.infos = append(p.infos, info)
	p.log.calls = append(p.log.calls, "decide")
	return p.orders
}

func (p *recordingPlayer) Finalize(end game.EndInfo) {
	p.end = &end
	p.log.calls = append(p.log.calls, "finalize")
}

func newTestRunner(input []string, opts ...Option) (*Runner, *recordingPlayer, *callLog) {
	cl := &callLog{}
	p := &recordingPlayer{log: cl}
	r := NewRunner(antio.NewParser(antio.NewSliceSource(input)), antio.NewEncoder(cl), p, opts...)
	return r, p, cl
}

func TestRunWholeGame(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, []string{"turn 2"}, turnInput, endInput)
	r, p, cl := newTestRunner(input)

	is.NoErr(r.Run(context.Background()))
	is.Equal(cl.calls, []string{"configure", "out:go", "decide", "out:go", "decide", "out:go", "finalize"})
	is.Equal(p.cfg.PlayerSeed, int64(42))
	is.Equal(len(p.infos), 2)
	is.Equal(p.infos[0], p.infos[1])
	is.Equal(p.end.Scores, []int{11, 12})
	is.Equal(r.Stats(), Stats{State: Finished, Turns: 2, LastTurn: 2})
}

func TestRunWritesOrders(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, endInput)
	r, p, cl := newTestRunner(input)
	p.orders = []game.Order{
		{Pos: game.Position{Row: 12, Col: 34}, Dir: game.North},
		{Pos: game.Position{Row: 56, Col: 78}, Dir: game.West},
	}

	is.NoErr(r.Run(context.Background()))
	is.Equal(cl.calls, []string{"configure", "out:go", "decide",
		"out:o 12 34 N", "out:o 56 78 W", "out:go", "finalize"})
}

func TestRunStopsAtEnd(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, endInput,
		[]string{"turn 2"}, turnInput, []string{"turn 3"}, turnInput)
	src := antio.NewSliceSource(input)
	cl := &callLog{}
	p := &recordingPlayer{log: cl}
	r := NewRunner(antio.NewParser(src), antio.NewEncoder(cl), p)

	is.NoErr(r.Run(context.Background()))
	is.Equal(len(p.infos), 1)
	is.Equal(cl.calls[len(cl.calls)-1], "finalize")
	// Nothing after the end record is read.
	is.Equal(src.Remaining()[0], "turn 2")
}

func TestRunTruncatedInput(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput)
	r, p, cl := newTestRunner(input)

	is.NoErr(r.Run(context.Background()))
	is.Equal(cl.calls, []string{"configure", "out:go", "decide", "out:go"})
	is.True(p.end == nil)
	is.Equal(r.Stats().State, Finished)
}

func TestRunBadConfig(t *testing.T) {
	is := is.New(t)
	r, _, cl := newTestRunner(configInput[:5])

	err := r.Run(context.Background())
	is.True(errors.Is(err, antio.ErrCannotParseGameConfig))
	is.Equal(len(cl.calls), 0)
	is.Equal(r.Stats().State, Failed)
}

func TestRunBadTurn(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput[:2])
	r, _, cl := newTestRunner(input)

	err := r.Run(context.Background())
	is.True(errors.Is(err, antio.ErrCannotParseTurnInfo))
	is.Equal(cl.calls, []string{"configure", "out:go"})
}

func TestRunBadEnd(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, []string{"end", "players 3", "score 1 2", "go"})
	r, p, _ := newTestRunner(input)

	err := r.Run(context.Background())
	is.True(errors.Is(err, antio.ErrCannotParseEndInfo))
	is.True(p.end == nil)
	is.Equal(r.Stats().State, Failed)
}

func TestRunOnlyOnce(t *testing.T) {
	is := is.New(t)
	r, _, _ := newTestRunner(lines(configInput, endInput))
	is.NoErr(r.Run(context.Background()))
	is.Equal(r.Run(context.Background()), errAlreadyRun)
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, endInput)
	r, p, cl := newTestRunner(input)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(cl.calls, []string{"configure", "out:go"})
	is.Equal(len(p.infos), 0)
}

type brokenSink struct{}

func (brokenSink) WriteGo() error                   { return nil }
func (brokenSink) WriteOrders(o []game.Order) error { return errors.New("pipe closed") }

func TestRunWriteFailure(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, endInput)
	p := &recordingPlayer{log: &callLog{}}
	r := NewRunner(antio.NewParser(antio.NewSliceSource(input)), brokenSink{}, p)

	err := r.Run(context.Background())
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "pipe closed"))
	is.True(p.end == nil)
}

type recordingObserver struct {
	turns  []int
	infos  []game.TurnInfo
	ends   []game.EndInfo
	failOn int
}

func (o *recordingObserver) ObserveTurn(number int, info game.TurnInfo, orders []game.Order) error {
	o.turns = append(o.turns, number)
	o.infos = append(o.infos, info)
	if number == o.failOn {
		return fmt.Errorf("cannot record turn %d", number)
	}
	return nil
}

func (o *recordingObserver) ObserveEnd(end game.EndInfo) error {
	o.ends = append(o.ends, end)
	return nil
}

// mutatingPlayer scribbles over the snapshot it is given.
type mutatingPlayer struct {
	recordingPlayer
}

func (p *mutatingPlayer) Decide(info game.TurnInfo) []game.Order {
	for i := range info.Ants {
		info.Ants[i].Owner = 99
	}
	return nil
}

func TestRunObservers(t *testing.T) {
	is := is.New(t)
	input := lines(configInput, []string{"turn 1"}, turnInput, []string{"turn 2"}, turnInput, endInput)
	obs := &recordingObserver{failOn: 1}
	p := &mutatingPlayer{recordingPlayer{log: &callLog{}}}
	r := NewRunner(antio.NewParser(antio.NewSliceSource(input)), antio.NewEncoder(&callLog{}), p,
		WithObserver(obs))

	is.NoErr(r.Run(context.Background()))
	is.Equal(obs.turns, []int{1, 2})
	is.Equal(obs.infos[0].Ants[0].Owner, 0)
	is.Equal(len(obs.ends), 1)
	is.Equal(obs.ends[0].Scores, []int{11, 12})
}

func TestStateString(t *testing.T) {
	is := is.New(t)
	is.Equal(AwaitingDecision.String(), "awaiting-decision")
	is.Equal(State(42).String(), "unknown")
}
