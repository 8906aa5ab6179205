package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"slashkit/handler"
	"slashkit/internal/config"
	"slashkit/internal/democmds"
	"slashkit/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()
	defer logger.Sync()

	builder := handler.NewBuilder().
		PublicKey(cfg.PublicKey).
		Token(cfg.BotToken).
		ApplicationID(cfg.ApplicationID).
		Logger(logger.Named("interaction-handler"))

	commands, groups := democmds.All()
	for _, cmd := range commands {
		builder.Command(cmd)
	}
	for _, group := range groups {
		builder.Group(group)
	}

	h, err := builder.Build()
	if err != nil {
		logger.Fatal("could not build interaction handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.BotEndpoint, metrics.Middleware(h))
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("listening for interactions",
		zap.String("port", cfg.Port),
		zap.String("endpoint", cfg.BotEndpoint),
	)
	err = http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), mux)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
