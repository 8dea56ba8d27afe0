package ws

import (
	"encoding/json"
	"time"
)

const EventRecommendationsUpdated = "recommendations_updated"

type RecommendationsUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

// NotifyRecommendationsUpdated tells the user's open sockets that their
// ranked list is stale and should be refetched.
func (h *Hub) NotifyRecommendationsUpdated(userID string) {
	if h == nil || userID == "" {
		return
	}

	evt := RecommendationsUpdatedEvent{
		Type:      EventRecommendationsUpdated,
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(userID, b)
}
