package antio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/antbot/game"
)

type configSetter func(cfg *game.GameConfig, value string) error

func int32Setter(field func(cfg *game.GameConfig) *int32) configSetter {
	return func(cfg *game.GameConfig, value string) error {
		x, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return err
		}
		*field(cfg) = int32(x)
		return nil
	}
}

// configFields lists the nine config keys in the order the engine sends them.
var configFields = []struct {
	token Token
	set   configSetter
}{
	{LoadTimeToken, int32Setter(func(c *game.GameConfig) *int32 { return &c.LoadTime })},
	{TurnTimeToken, int32Setter(func(c *game.GameConfig) *int32 { return &c.TurnTime })},
	{RowsToken, int32Setter(func(c *game.GameConfig) *int32 { return &c.Rows })},
	{ColsToken, int32Setter(func(c *game.GameConfig) *int32 { return &c.Cols })},
	{TurnsToken, int32Setter(func(c *game.GameConfig) *int32 { return &c.Turns })},
	{ViewRadius2Token, int32Setter(func(c *game.GameConfig) *int32 { return &c.ViewRadius2 })},
	{AttackRadius2Token, int32Setter(func(c *game.GameConfig) *int32 { return &c.AttackRadius2 })},
	{SpawnRadius2Token, int32Setter(func(c *game.GameConfig) *int32 { return &c.SpawnRadius2 })},
	{PlayerSeedToken, func(cfg *game.GameConfig, value string) error {
		x, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.PlayerSeed = x
		return nil
	}},
}

// extractGameConfig reads "key value" lines up to and including "ready".
// Lines that are not a known key followed by one integer are skipped.
func extractGameConfig(src LineSource) (game.GameConfig, error) {
	var cfg game.GameConfig
	seen := make(map[Token]bool, len(configFields))

	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		tok, args := Classify(line)
		if isSentinel(tok, args, ReadyToken) {
			break
		}
		for _, f := range configFields {
			if f.token != tok {
				continue
			}
			if len(args) != 1 {
				log.Debug().Str("line", line).Msg("skipping malformed config line")
				break
			}
			if err := f.set(&cfg, args[0]); err != nil {
				log.Debug().Err(err).Str("line", line).Msg("skipping malformed config line")
				break
			}
			seen[tok] = true
			break
		}
	}

	var missing []string
	for _, f := range configFields {
		if !seen[f.token] {
			missing = append(missing, f.token.String())
		}
	}
	if len(missing) > 0 {
		return game.GameConfig{}, fmt.Errorf("%w: missing %s", ErrCannotParseGameConfig,
			strings.Join(missing, ", "))
	}
	return cfg, nil
}
