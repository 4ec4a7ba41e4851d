package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"onoe-chat/internal/models"
	"onoe-chat/internal/services"
)

type BlindHandler struct {
	activities ActivityStore
	logger     *slog.Logger
}

func NewBlindHandler(activities ActivityStore, logger *slog.Logger) *BlindHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlindHandler{activities: activities, logger: logger}
}

// Process rewrites an article with party, office and place names neutralised.
func (h *BlindHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req models.BlindProcessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No text provided", r))
		return
	}

	recordActivity(r, h.activities, h.logger, models.Activity{
		Type:  models.ActivityBlindRead,
		Title: "Used Blind Mode Reader",
		URL:   "/blind-mode",
	})

	writeJSON(w, http.StatusOK, models.BlindProcessResponse{BlindText: services.BlindRead(req.Text)})
}
