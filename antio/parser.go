package antio

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/antbot/game"
)

// Parser assembles records from a LineSource. It never reads past the end
// of the record it was asked for.
type Parser struct {
	src LineSource
}

func NewParser(src LineSource) *Parser {
	return &Parser{src: src}
}

// ReadConfig skips to the "turn 0" line and reads the config block that
// follows it, through "ready".
func (p *Parser) ReadConfig() (game.GameConfig, error) {
	for {
		line, ok := p.src.Next()
		if !ok {
			return game.GameConfig{}, fmt.Errorf("%w: input ended before turn 0", ErrCannotParseGameConfig)
		}
		tok, args := Classify(line)
		if tok == TurnToken && len(args) == 1 && args[0] == "0" {
			break
		}
	}
	return extractGameConfig(p.src)
}

// NextTurn reads the next turn or end record. Lines before the record's
// opening line are skipped. ok is false only when the source ran out
// without opening another record.
func (p *Parser) NextTurn() (game.Turn, bool) {
	for {
		line, ok := p.src.Next()
		if !ok {
			return game.Turn{}, false
		}
		tok, args := Classify(line)
		switch {
		case tok == TurnToken && len(args) > 0:
			// The turn number is informational; a bad one doesn't spoil the record.
			num, _ := strconv.Atoi(args[0])
			info, err := extractTurnInfo(p.src)
			log.Debug().Int("turn", num).Err(err).Msg("read turn")
			return game.Turn{Kind: game.NormalTurn, Number: num, Info: info, Err: err}, true
		case isSentinel(tok, args, EndToken):
			end, err := extractEndInfo(p.src)
			log.Debug().Ints("scores", end.Scores).Err(err).Msg("read end")
			return game.Turn{Kind: game.EndTurn, End: end, Err: err}, true
		}
	}
}
