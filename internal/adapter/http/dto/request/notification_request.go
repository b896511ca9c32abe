package request

// SendNotificationRequest is the staff-only direct-send payload. Recipient is
// a user id or "all" (every researcher at send time).
type SendNotificationRequest struct {
	Recipient   string `json:"recipient" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Type        string `json:"type"`
	RelatedID   string `json:"related_id"`
	RelatedType string `json:"related_type"`
}
