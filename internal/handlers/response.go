package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"onoe-chat/internal/middleware"
	"onoe-chat/internal/models"
)

const maxBodyBytes = 64 << 10

// ActivityStore persists usage records. A nil store disables recording.
type ActivityStore interface {
	Create(ctx context.Context, a *models.Activity) error
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// recordActivity stores a usage record for signed-in callers. Failures are
// logged and never affect the response.
func recordActivity(r *http.Request, store ActivityStore, logger *slog.Logger, activity models.Activity) {
	if store == nil {
		return
	}
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		return
	}
	activity.UserID = userID

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), 5*time.Second)
	defer cancel()

	if err := store.Create(ctx, &activity); err != nil {
		logger.Error("activity_record_failed",
			"error", err,
			"type", activity.Type,
			"request_id", r.Header.Get("X-Request-ID"),
		)
	}
}
