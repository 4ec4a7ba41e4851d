package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"onoe-chat/internal/models"
	"onoe-chat/internal/services"
)

type chatResponder interface {
	Respond(ctx context.Context, req models.ChatRequest) services.Answer
}

// chatPayload distinguishes a missing message from an empty one.
type chatPayload struct {
	Message *string `json:"message"`
	Blind   bool    `json:"blind"`
}

type ChatHandler struct {
	responder  chatResponder
	activities ActivityStore
	logger     *slog.Logger
}

func NewChatHandler(responder chatResponder, activities ActivityStore, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		responder:  responder,
		activities: activities,
		logger:     logger,
	}
}

// Chat answers a single question. Every well-formed request gets a 200 with
// a text reply; model failures are already folded into the reply text.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Only an absent or null message is rejected; blank text is a question
	// like any other and gets the off-topic reply.
	if payload.Message == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}
	req := models.ChatRequest{Message: *payload.Message, Blind: payload.Blind}

	answer := h.responder.Respond(r.Context(), req)

	h.logger.Info("chat_answered",
		"stage", string(answer.Stage),
		"blind", req.Blind,
		"request_id", r.Header.Get("X-Request-ID"),
	)

	recordActivity(r, h.activities, h.logger, models.Activity{
		Type:  models.ActivityChatbotUse,
		Title: "Used Chatbot",
		URL:   "/chatbot",
	})

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: answer.Reply})
}
