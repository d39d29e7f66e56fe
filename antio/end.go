package antio

import (
	"fmt"
	"strconv"

	"github.com/domino14/antbot/game"
)

func endInfoErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCannotParseEndInfo, fmt.Sprintf(format, a...))
}

// extractEndInfo reads the "players" and "score" header of an end record and
// then the final snapshot, up to and including "go".
func extractEndInfo(src LineSource) (game.EndInfo, error) {
	players := 0
	var scores []int
	havePlayers, haveScores := false, false

	for !havePlayers || !haveScores {
		line, ok := src.Next()
		if !ok {
			return game.EndInfo{}, endInfoErr("input ended before players and score")
		}
		tok, args := Classify(line)
		switch tok {
		case PlayersToken:
			if len(args) != 1 {
				return game.EndInfo{}, endInfoErr("malformed players line %q", line)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return game.EndInfo{}, endInfoErr("malformed players line %q", line)
			}
			players, havePlayers = n, true
		case ScoreToken:
			scores = make([]int, 0, len(args))
			for _, a := range args {
				s, err := strconv.Atoi(a)
				if err != nil {
					return game.EndInfo{}, endInfoErr("malformed score line %q", line)
				}
				scores = append(scores, s)
			}
			haveScores = true
		case GoToken, WaterToken, FoodToken, AntToken, HillToken, DeadAntToken:
			return game.EndInfo{}, endInfoErr("snapshot began before players and score")
		}
	}
	if players != len(scores) {
		return game.EndInfo{}, endInfoErr("%d players but %d scores", players, len(scores))
	}

	final, err := extractTurnInfo(src)
	if err != nil {
		return game.EndInfo{}, endInfoErr("final snapshot: %v", err)
	}
	return game.EndInfo{Scores: scores, Final: final}, nil
}
