package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"slashkit/gateway"
	"slashkit/handler"
	"slashkit/internal/config"
	"slashkit/internal/democmds"
)

var g *gateway.Gateway

// The handler builds once per cold start.
func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

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
	g = gateway.New(h)
}

func main() {
	lambda.Start(HandleRequest)
}

func HandleRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return g.Handle(ctx, event), nil
}
