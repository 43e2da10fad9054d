// Package http serves the GitHub webhook endpoint
// responses are plain JSON bodies, not the read API envelope, GitHub only shows them in the delivery log
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	stdhttp "net/http"

	"workmonitor/internal/adapters/ingest/githook"
	"workmonitor/internal/core/signature"
	"workmonitor/internal/modkit/httpkit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/logger"
	"workmonitor/internal/services/webhook/domain"
)

// DefaultMaxBody is the largest body accepted, GitHub caps payloads at 25 MiB
const DefaultMaxBody int64 = 25 << 20

// Handler serves POST and GET on the webhook path
type Handler struct {
	Verifier signature.Verifier
	Svc      domain.DispatcherPort
	MaxBody  int64
}

// Register mounts the webhook endpoints on r
func Register(r httpkit.Router, h *Handler) {
	r.Post("/", h.receive)
	r.Get("/", h.capabilities)
}

type errorBody struct {
	Error string `json:"error" example:"Invalid signature"`
}

type messageBody struct {
	Message string `json:"message" example:"Pong! Webhook configured successfully."`
}

// SuccessBody is the response to a processed delivery
// Result is a list for push and one record or null otherwise
type SuccessBody struct {
	Success bool   `json:"success" example:"true"`
	Event   string `json:"event" example:"push"`
	Result  any    `json:"result"`
}

// Capabilities is the GET response
type Capabilities struct {
	Status            string   `json:"status" example:"ok"`
	Message           string   `json:"message" example:"GitHub webhook endpoint is ready"`
	SupportedEvents   []string `json:"supportedEvents"`
	SignatureRequired bool     `json:"signatureRequired" example:"true"`
}

// swagger:route POST /api/webhooks/github Webhooks githubWebhook
// @Summary Receive a GitHub webhook delivery
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "push, pull_request, pull_request_review, issues or ping"
// @Param X-GitHub-Delivery header string false "Delivery id, logged only"
// @Param X-Hub-Signature-256 header string false "sha256=<hex hmac>, required when a secret is configured"
// @Success 200 {object} SuccessBody "processed"
// @Failure 400 {object} errorBody "invalid JSON or payload"
// @Failure 401 {object} errorBody "invalid signature"
// @Failure 413 {object} errorBody "body too large"
// @Failure 500 {object} errorBody "processing failed"
// @Router /api/webhooks/github [post]
func (h *Handler) receive(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	event := r.Header.Get(githook.HeaderEvent)
	deliveryID := r.Header.Get(githook.HeaderDelivery)
	ctx := logger.WithDelivery(r.Context(), deliveryID, event)
	log := logger.C(ctx)

	maxBody := h.MaxBody
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	body, err := io.ReadAll(stdhttp.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		var tooLarge *stdhttp.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("webhook body too large")
			httpkit.WriteJSON(w, stdhttp.StatusRequestEntityTooLarge, errorBody{Error: "Payload too large"})
			return
		}
		log.Warn().Err(err).Msg("webhook body read failed")
		httpkit.WriteJSON(w, stdhttp.StatusBadRequest, errorBody{Error: "Invalid JSON payload"})
		return
	}

	if !h.Verifier.Verify(body, r.Header.Get(signature.Header)) {
		log.Warn().Msg("webhook signature rejected")
		httpkit.WriteJSON(w, stdhttp.StatusUnauthorized, errorBody{Error: "Invalid signature"})
		return
	}

	if !json.Valid(body) {
		httpkit.WriteJSON(w, stdhttp.StatusBadRequest, errorBody{Error: "Invalid JSON payload"})
		return
	}

	log.Info().Int("bytes", len(body)).Msg("webhook received")

	res, err := h.Svc.Dispatch(ctx, domain.Delivery{Event: event, ID: deliveryID, Body: body})
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeValidation) {
			log.Warn().Err(err).Msg("webhook payload rejected")
			httpkit.WriteJSON(w, stdhttp.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		log.Error().Err(err).Int("stored", len(res.Records)).Msg("webhook processing failed")
		httpkit.WriteJSON(w, stdhttp.StatusInternalServerError, errorBody{Error: "Internal server error"})
		return
	}

	switch res.Outcome {
	case domain.OutcomePong:
		httpkit.WriteJSON(w, stdhttp.StatusOK, messageBody{Message: "Pong! Webhook configured successfully."})
	case domain.OutcomeIgnored:
		httpkit.WriteJSON(w, stdhttp.StatusOK, messageBody{Message: fmt.Sprintf("Event %s is not handled", event)})
	default:
		log.Info().Int("stored", len(res.Records)).Int("dropped", res.Dropped).Msg("webhook processed")
		httpkit.WriteJSON(w, stdhttp.StatusOK, SuccessBody{Success: true, Event: event, Result: res.Payload()})
	}
}

// swagger:route GET /api/webhooks/github Webhooks githubWebhookStatus
// @Summary Webhook endpoint status
// @Tags Webhooks
// @Produce json
// @Success 200 {object} Capabilities "ok"
// @Router /api/webhooks/github [get]
func (h *Handler) capabilities(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	httpkit.WriteJSON(w, stdhttp.StatusOK, Capabilities{
		Status:            "ok",
		Message:           "GitHub webhook endpoint is ready",
		SupportedEvents:   githook.Supported,
		SignatureRequired: h.Verifier.Enabled(),
	})
}
