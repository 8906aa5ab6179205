package main

import (
	"flag"

	"go.uber.org/zap"

	"slashkit/internal/config"
	"slashkit/internal/democmds"
	"slashkit/register"
)

func main() {
	clear := flag.Bool("clear", false, "remove all registered commands instead of registering")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()
	defer logger.Sync()

	client, err := register.Connect(logger, cfg.BotToken, cfg.ApplicationID, cfg.GuildID)
	if err != nil {
		logger.Fatal("could not connect to discord", zap.Error(err))
	}

	if *clear {
		if err := client.Clear(); err != nil {
			logger.Fatal("could not clear commands", zap.Error(err))
		}
		return
	}

	commands, groups := democmds.All()
	if err := client.Register(commands, groups); err != nil {
		logger.Fatal("could not register commands", zap.Error(err))
	}
}
