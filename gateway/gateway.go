// Package gateway adapts the interaction handler to AWS API Gateway
// events, for running the webhook endpoint as a Lambda function.
package gateway

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"slashkit/handler"
	"slashkit/pkg/discord"
)

type Gateway struct {
	handler *handler.Handler
}

func New(h *handler.Handler) *Gateway {
	return &Gateway{handler: h}
}

// Handle maps one API Gateway event through the interaction handler.
// API Gateway v2 lowercases header names, matching the header constants.
func (g *Gateway) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	timestamp := event.Headers[discord.TimestampHeader]
	signature := event.Headers[discord.SignatureHeader]

	status, body := g.handler.Process(ctx, []byte(event.Body), timestamp, signature)

	contentType := "text/plain"
	if status == http.StatusOK {
		contentType = "application/json"
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	}
}
