// Package game holds the values exchanged between the protocol engine and a
// decision maker: the game configuration, per-turn snapshots, the final
// result, and the orders a player sends back.
package game

import "slices"

// Entity is something on the grid that belongs to a player: a live ant,
// an ant hill, or a dead ant.
type Entity struct {
	Owner int      `yaml:"owner"`
	Pos   Position `yaml:"pos"`
}

// TurnInfo is everything the client can see on one turn.
type TurnInfo struct {
	Water    []Position `yaml:"water,omitempty"`
	Food     []Position `yaml:"food,omitempty"`
	Hills    []Entity   `yaml:"hills,omitempty"`
	Ants     []Entity   `yaml:"ants,omitempty"`
	DeadAnts []Entity   `yaml:"dead_ants,omitempty"`
}

// Clone returns a copy of the snapshot that shares no memory with ti.
func (ti TurnInfo) Clone() TurnInfo {
	return TurnInfo{
		Water:    slices.Clone(ti.Water),
		Food:     slices.Clone(ti.Food),
		Hills:    slices.Clone(ti.Hills),
		Ants:     slices.Clone(ti.Ants),
		DeadAnts: slices.Clone(ti.DeadAnts),
	}
}

// EndInfo is the final result: one score per player, in player order, and
// the last snapshot of the grid.
type EndInfo struct {
	Scores []int    `yaml:"scores"`
	Final  TurnInfo `yaml:"final"`
}

// Clone returns a copy of the result that shares no memory with e.
func (e EndInfo) Clone() EndInfo {
	return EndInfo{Scores: slices.Clone(e.Scores), Final: e.Final.Clone()}
}

// Players is the number of players that took part.
func (e EndInfo) Players() int {
	return len(e.Scores)
}

// TurnKind tells a Turn's two variants apart.
type TurnKind uint8

const (
	// NormalTurn is opened by a "turn <k>" line.
	NormalTurn TurnKind = iota
	// EndTurn is opened by an "end" line.
	EndTurn
)

func (k TurnKind) String() string {
	if k == EndTurn {
		return "end"
	}
	return "turn"
}

// Turn is one record read from the engine. Info is set for a NormalTurn,
// End for an EndTurn; when Err is non-nil neither is meaningful.
type Turn struct {
	Kind TurnKind
	// Number is the k of "turn k". It is not validated, and is 0 when k is
	// not an integer or the record is an EndTurn.
	Number int
	Info   TurnInfo
	End    EndInfo
	Err    error
}
