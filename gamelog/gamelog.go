// Package gamelog keeps a replayable record of a game: one YAML document
// per turn, with what we saw and what we ordered, and one for the result.
package gamelog

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/antbot/game"
)

const (
	KindTurn = "turn"
	KindEnd  = "end"
)

// Record is one document in the log.
type Record struct {
	Kind   string         `yaml:"kind"`
	Turn   int            `yaml:"turn,omitempty"`
	Info   *game.TurnInfo `yaml:"info,omitempty"`
	Orders []game.Order   `yaml:"orders,omitempty"`
	End    *game.EndInfo  `yaml:"end,omitempty"`
}

// Logger writes records to a stream. It satisfies runner.Observer.
type Logger struct {
	w      io.Writer
	closer io.Closer
}

func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Open creates (or truncates) the log file at path.
func Open(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("logging turns")
	return &Logger{w: f, closer: f}, nil
}

func (l *Logger) write(r Record) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = l.w.Write(append([]byte("---\n"), out...))
	return err
}

func (l *Logger) ObserveTurn(number int, info game.TurnInfo, orders []game.Order) error {
	return l.write(Record{Kind: KindTurn, Turn: number, Info: &info, Orders: orders})
}

func (l *Logger) ObserveEnd(end game.EndInfo) error {
	return l.write(Record{Kind: KindEnd, End: &end})
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ReadAll decodes every record in a log.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
