package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/antbot/ai/randomwalk"
	"github.com/domino14/antbot/antio"
	"github.com/domino14/antbot/config"
	"github.com/domino14/antbot/gamelog"
	"github.com/domino14/antbot/notify"
	"github.com/domino14/antbot/runner"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Interface("config", cfg.AllSettings()).Msg("loaded config")

	opts, closers, err := observers(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("setting up observers")
	}
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Err(err).Msg("closing observer")
			}
		}
	}()

	src := antio.NewScannerSource(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	r := runner.NewRunner(antio.NewParser(src), antio.NewEncoder(out), randomwalk.NewWalker(), opts...)

	if err := run(r); err != nil {
		log.Error().Err(err).Interface("stats", r.Stats()).Msg("game aborted")
		exit(1, closers)
	}
	if err := src.Err(); err != nil {
		log.Error().Err(err).Msg("reading input")
		exit(1, closers)
	}
}

// setupLogging sends logs to stderr; stdout belongs to the engine.
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Debug().Msg("debug logging is on")
}

func observers(cfg *config.Config) ([]runner.Option, []func() error, error) {
	var opts []runner.Option
	var closers []func() error

	if path := cfg.GetString(config.ConfigTurnLogPath); path != "" {
		l, err := gamelog.Open(path)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, runner.WithObserver(l))
		closers = append(closers, l.Close)
	}
	if url := cfg.GetString(config.ConfigNatsURL); url != "" {
		n, err := notify.Connect(url, cfg.GetString(config.ConfigNatsSubject),
			cfg.GetString(config.ConfigBotName), cfg.GetUint(config.ConfigNatsConnectAttempts))
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, err
		}
		opts = append(opts, runner.WithObserver(n))
		closers = append(closers, n.Close)
	}
	return opts, closers, nil
}

// run plays the game until it ends or we get a quit signal. The runner only
// notices the signal between records, so a second signal, with the default
// handling restored, kills a bot stuck waiting on input.
func run(r *runner.Runner) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(sigCtx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return r.Run(ctx)
	})
	g.Go(func() error {
		select {
		case <-sigCtx.Done():
			log.Info().Msg("got quit signal...")
			stop()
		case <-done:
		}
		return nil
	})
	return g.Wait()
}

func exit(code int, closers []func() error) {
	for _, c := range closers {
		c()
	}
	os.Exit(code)
}
