package antio

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/antbot/game"
)

// parseInts converts the first n args. Extra args are ignored so that the
// engine can append fields older clients don't know about.
func parseInts(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %d fields, got %d", n, len(args))
	}
	vals := make([]int, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return vals, nil
}

func parsePosition(args []string) (game.Position, error) {
	v, err := parseInts(args, 2)
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{Row: v[0], Col: v[1]}, nil
}

func parseEntity(args []string) (game.Entity, error) {
	v, err := parseInts(args, 3)
	if err != nil {
		return game.Entity{}, err
	}
	return game.Entity{Owner: v[2], Pos: game.Position{Row: v[0], Col: v[1]}}, nil
}

// extractTurnInfo reads field lines up to and including "go". A field line
// that doesn't parse is dropped; the record carries on.
func extractTurnInfo(src LineSource) (game.TurnInfo, error) {
	var ti game.TurnInfo
	for {
		line, ok := src.Next()
		if !ok {
			return game.TurnInfo{}, fmt.Errorf("%w: input ended before go", ErrCannotParseTurnInfo)
		}
		tok, args := Classify(line)
		var err error
		switch tok {
		case GoToken:
			if len(args) == 0 {
				return ti, nil
			}
		case WaterToken, FoodToken:
			var pos game.Position
			if pos, err = parsePosition(args); err == nil {
				if tok == WaterToken {
					ti.Water = append(ti.Water, pos)
				} else {
					ti.Food = append(ti.Food, pos)
				}
			}
		case AntToken, HillToken, DeadAntToken:
			var e game.Entity
			if e, err = parseEntity(args); err == nil {
				switch tok {
				case AntToken:
					ti.Ants = append(ti.Ants, e)
				case HillToken:
					ti.Hills = append(ti.Hills, e)
				default:
					ti.DeadAnts = append(ti.DeadAnts, e)
				}
			}
		}
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("dropping malformed turn line")
		}
	}
}
