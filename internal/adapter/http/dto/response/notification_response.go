package response

import (
	"time"

	"grantcompass/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	IsRead      bool      `json:"is_read"`
	RelatedID   string    `json:"related_id,omitempty"`
	RelatedType string    `json:"related_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Message:     n.Message,
		Type:        string(n.Type),
		IsRead:      n.IsRead,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		CreatedAt:   n.CreatedAt,
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}
