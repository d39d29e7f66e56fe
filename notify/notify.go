// Package notify announces finished games on a NATS subject, so that a
// tournament harness or dashboard can collect results from many bots.
package notify

import (
	"encoding/json"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/antbot/game"
)

// Publisher is the part of *nats.Conn that Notifier needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Result is the message published when a game ends.
type Result struct {
	Bot     string `json:"bot"`
	Players int    `json:"players"`
	Scores  []int  `json:"scores"`
	// Winners holds the indexes of every player sharing the top score.
	Winners []int `json:"winners"`
	Turns   int   `json:"turns"`
}

// Notifier publishes a Result at the end of the game. It satisfies
// runner.Observer.
type Notifier struct {
	pub     Publisher
	conn    *nats.Conn
	subject string
	bot     string
	turns   int
}

func New(pub Publisher, subject, bot string) *Notifier {
	return &Notifier{pub: pub, subject: subject, bot: bot}
}

// Connect dials the NATS server at url, retrying up to attempts times.
func Connect(url, subject, bot string, attempts uint) (*Notifier, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(url, nats.Name(bot))
			return err
		},
		retry.Attempts(attempts),
		retry.Delay(250*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Str("url", url).Msg("nats connect failed")
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Str("subject", subject).Msg("publishing results")
	n := New(nc, subject, bot)
	n.conn = nc
	return n, nil
}

func (n *Notifier) ObserveTurn(number int, info game.TurnInfo, orders []game.Order) error {
	n.turns++
	return nil
}

func (n *Notifier) ObserveEnd(end game.EndInfo) error {
	data, err := json.Marshal(n.result(end))
	if err != nil {
		return err
	}
	return n.pub.Publish(n.subject, data)
}

func (n *Notifier) result(end game.EndInfo) Result {
	top := lo.Max(end.Scores)
	winners := lo.FilterMap(end.Scores, func(s int, i int) (int, bool) {
		return i, s == top
	})
	return Result{
		Bot:     n.bot,
		Players: end.Players(),
		Scores:  end.Scores,
		Winners: winners,
		Turns:   n.turns,
	}
}

// Close flushes anything pending and closes the connection, if Connect
// opened one.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Drain()
}
