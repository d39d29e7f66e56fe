package antio

import (
	"fmt"
	"io"

	"github.com/domino14/antbot/game"
)

const goLine = "go"

type flusher interface {
	Flush() error
}

// Encoder writes orders in the engine's line format. Each line is a single
// Write; a buffered writer is flushed after every line so the engine never
// waits on us.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) writeLine(line string) error {
	if _, err := io.WriteString(e.w, line+"\n"); err != nil {
		return err
	}
	if f, ok := e.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// WriteGo ends the client's turn. It is also the ready acknowledgment after
// the config block.
func (e *Encoder) WriteGo() error {
	return e.writeLine(goLine)
}

// WriteOrders writes one "o <row> <col> <dir>" line per order, in the
// order given, followed by "go".
func (e *Encoder) WriteOrders(orders []game.Order) error {
	for _, o := range orders {
		if err := e.writeLine(FormatOrder(o)); err != nil {
			return err
		}
	}
	return e.WriteGo()
}

// FormatOrder renders one order line, without the terminator.
func FormatOrder(o game.Order) string {
	return fmt.Sprintf("o %d %d %s", o.Pos.Row, o.Pos.Col, o.Dir)
}
