package handler

import (
	"context"
	crypto "crypto/ed25519"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"slashkit/command"
	"slashkit/pkg/discord"
	customError "slashkit/pkg/errors"
)

const (
	unauthorizedBody  = "invalid request signature"
	badRequestBody    = "invalid request"
	internalErrorBody = "internal server error"
)

// Handler routes verified interactions to the command tree. It is
// immutable after Build and safe for concurrent requests; the tree is
// read-only and each request owns its interaction.
type Handler struct {
	logger *zap.Logger
	tree   *command.Tree

	publicKey     crypto.PublicKey
	applicationID string

	session discord.SessionIFace
}

// Tree exposes the registered command tree, e.g. for upload utilities.
func (h *Handler) Tree() *command.Tree {
	return h.tree
}

// ServeHTTP implements the inbound webhook endpoint. Verification strictly
// precedes decoding, which strictly precedes dispatch.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("could not read request body", zap.Error(err))
		http.Error(w, badRequestBody, http.StatusBadRequest)
		return
	}

	timestamp := r.Header.Get(discord.TimestampHeader)
	signature := r.Header.Get(discord.SignatureHeader)

	status, rsp := h.Process(r.Context(), body, timestamp, signature)
	if status != http.StatusOK {
		http.Error(w, string(rsp), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(rsp); err != nil {
		h.logger.Error("could not write response", zap.Error(err))
	}
}

// Process runs one interaction through the full pass: verify, decode,
// classify, resolve, bind, invoke. The returned body is JSON when the
// status is 200 and plain text otherwise.
func (h *Handler) Process(ctx context.Context, body []byte, timestamp, signature string) (int, []byte) {
	// Authentication gate: nothing may touch the payload before this.
	if err := discord.Verify(body, timestamp, signature, h.publicKey); err != nil {
		h.logger.Warn("rejected unauthenticated request", zap.Error(err))
		return http.StatusUnauthorized, []byte(unauthorizedBody)
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		h.logger.Error("could not decode interaction", zap.Error(err))
		return http.StatusBadRequest, []byte(badRequestBody)
	}

	switch interaction.Type {
	case discordgo.InteractionPing:
		return http.StatusOK, discord.PingResponseJson

	case discordgo.InteractionApplicationCommand:
		return h.dispatch(ctx, &interaction)

	default:
		// Component, autocomplete and modal interactions are not routed.
		h.logger.Debug("ignoring unsupported interaction", zap.Int("type", int(interaction.Type)))
		return http.StatusOK, []byte("{}")
	}
}

func (h *Handler) dispatch(ctx context.Context, interaction *discordgo.Interaction) (int, []byte) {
	data := interaction.ApplicationCommandData()

	cmd, rawOpts, ok := h.tree.Resolve(data)
	if !ok {
		// The registered tree disagrees with what Discord delivered: a
		// deployment bug, surfaced as a server error rather than an abort.
		h.logger.Error("command resolution failed", zap.Error(customError.CommandNotFoundError{Name: data.Name}))
		return http.StatusInternalServerError, []byte(internalErrorBody)
	}

	opts, err := command.Bind(cmd.Options, rawOpts)
	if err != nil {
		h.logger.Error("option binding failed",
			zap.String("command", cmd.Name),
			zap.Error(err),
		)
		return http.StatusBadRequest, []byte(badRequestBody)
	}

	cmdCtx := command.NewContext(ctx, interaction, opts, h.session, h.logger)
	rsp, err := cmd.Handler(cmdCtx)
	if err != nil {
		h.logger.Error("command handler failed",
			zap.String("command", cmd.Name),
			zap.Error(err),
		)
		return http.StatusInternalServerError, []byte(internalErrorBody)
	}

	jsonRsp, err := json.Marshal(rsp)
	if err != nil {
		h.logger.Error("could not marshal response", zap.String("command", cmd.Name), zap.Error(err))
		return http.StatusInternalServerError, []byte(internalErrorBody)
	}
	return http.StatusOK, jsonRsp
}
