// Package config loads the example bot's configuration from the
// environment, with an optional .env file for local development.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type Config struct {
	// PublicKey verifies inbound webhook signatures. Nothing serves
	// without it.
	PublicKey string `envconfig:"DISCORD_PUBLIC_KEY" required:"true"`

	// BotToken and ApplicationID are only needed for outbound REST calls
	// and command registration.
	BotToken      string `envconfig:"DISCORD_BOT_TOKEN"`
	ApplicationID string `envconfig:"APPLICATION_ID"`

	// GuildID scopes command registration; empty registers globally.
	GuildID string `envconfig:"GUILD_ID"`

	Port        string `envconfig:"PORT" default:"8080"`
	BotEndpoint string `envconfig:"BOT_ENDPOINT" default:"/discord"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func NewLogger() *zap.Logger {
	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logger, _ := logCfg.Build()
	return logger
}
