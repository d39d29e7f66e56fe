// Package antio reads the engine's line protocol into game values and
// writes a player's orders back out.
package antio

import "strings"

// A Token is the leading word of a protocol line.
type Token uint8

const (
	UnknownToken Token = iota
	TurnToken
	ReadyToken
	GoToken
	EndToken
	PlayersToken
	ScoreToken

	WaterToken
	FoodToken
	AntToken
	HillToken
	DeadAntToken

	LoadTimeToken
	TurnTimeToken
	RowsToken
	ColsToken
	TurnsToken
	ViewRadius2Token
	AttackRadius2Token
	SpawnRadius2Token
	PlayerSeedToken
)

var keywords = map[string]Token{
	"turn":          TurnToken,
	"ready":         ReadyToken,
	"go":            GoToken,
	"end":           EndToken,
	"players":       PlayersToken,
	"score":         ScoreToken,
	"w":             WaterToken,
	"f":             FoodToken,
	"a":             AntToken,
	"h":             HillToken,
	"d":             DeadAntToken,
	"loadtime":      LoadTimeToken,
	"turntime":      TurnTimeToken,
	"rows":          RowsToken,
	"cols":          ColsToken,
	"turns":         TurnsToken,
	"viewradius2":   ViewRadius2Token,
	"attackradius2": AttackRadius2Token,
	"spawnradius2":  SpawnRadius2Token,
	"player_seed":   PlayerSeedToken,
}

var tokenNames []string

// init builds the reverse of the keyword table.
func init() {
	tokenNames = make([]string, PlayerSeedToken+1)
	tokenNames[UnknownToken] = "unknown"
	for word, tok := range keywords {
		tokenNames[tok] = word
	}
}

func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown"
}

// Classify splits a line on whitespace and identifies it by its first word.
// The remaining words are returned as args. Blank lines and words the
// protocol does not define give UnknownToken.
func Classify(line string) (Token, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return UnknownToken, nil
	}
	tok, ok := keywords[fields[0]]
	if !ok {
		return UnknownToken, fields[1:]
	}
	return tok, fields[1:]
}

// isSentinel reports whether the line is exactly the bare keyword for tok.
func isSentinel(tok Token, args []string, want Token) bool {
	return tok == want && len(args) == 0
}
