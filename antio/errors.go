package antio

import "errors"

var (
	// ErrCannotParseGameConfig means a config field was absent or not an
	// integer when "ready" (or the end of input) was reached, or "turn 0"
	// never appeared.
	ErrCannotParseGameConfig = errors.New("cannot parse game config")
	// ErrCannotParseTurnInfo means the input ended before a turn's "go".
	ErrCannotParseTurnInfo = errors.New("cannot parse turn info")
	// ErrCannotParseEndInfo means the end record had a missing or malformed
	// players/score line, the two disagreed, or the final snapshot was
	// incomplete.
	ErrCannotParseEndInfo = errors.New("cannot parse end info")
)
