package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug               = "debug"
	ConfigBotName             = "bot-name"
	ConfigTurnLogPath         = "turn-log-path"
	ConfigNatsURL             = "nats-url"
	ConfigNatsSubject         = "nats-subject"
	ConfigNatsConnectAttempts = "nats-connect-attempts"
)

// Config is the bot's process configuration. Values come, in increasing
// precedence, from defaults, an optional antbot.yaml, ANTBOT_* environment
// variables, and command-line flags.
type Config struct {
	viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBotName, "antbot")
	v.SetDefault(ConfigTurnLogPath, "")
	v.SetDefault(ConfigNatsURL, "")
	v.SetDefault(ConfigNatsSubject, "antbot.results")
	v.SetDefault(ConfigNatsConnectAttempts, 3)
}

func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)

	fs := pflag.NewFlagSet("antbot", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "log at debug level")
	fs.String(ConfigBotName, "antbot", "name reported in results and to NATS")
	fs.String(ConfigTurnLogPath, "", "write a YAML record of every turn to this file")
	fs.String(ConfigNatsURL, "", "publish the final result to this NATS server")
	fs.String(ConfigNatsSubject, "antbot.results", "NATS subject for results")
	fs.Uint(ConfigNatsConnectAttempts, 3, "how many times to try connecting to NATS")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("antbot")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("antbot")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.antbot")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
