package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityChatbotUse = "CHATBOT_USE"
	ActivityBlindRead  = "BLIND_READ"
)

// Activity is a usage record attributed to a signed-in caller.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
