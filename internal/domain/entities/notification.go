package entities

import "time"

// NotificationType categorizes a notification for the recipient's inbox.
type NotificationType string

const (
	NotificationTypeStatusUpdate     NotificationType = "status_update"
	NotificationTypeDueDate          NotificationType = "due_date"
	NotificationTypeReportSubmission NotificationType = "report_submission"
	NotificationTypeOpportunity      NotificationType = "opportunity"
	NotificationTypeGrantResponse    NotificationType = "grant_response"
	NotificationTypeIPUpdate         NotificationType = "ip_update"
)

func IsValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeStatusUpdate, NotificationTypeDueDate,
		NotificationTypeReportSubmission, NotificationTypeOpportunity,
		NotificationTypeGrantResponse, NotificationTypeIPUpdate:
		return true
	}
	return false
}

// RecipientAll is the broadcast sentinel accepted by direct sends. It is
// resolved to every researcher at send time; the stored records always carry
// an individual user id.
const RecipientAll = "all"

// Notification is a per-recipient fan-out record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Mutated only by the recipient marking it read; never deleted.
type Notification struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	IsRead      bool             `json:"is_read"`
	RelatedID   string           `json:"related_id,omitempty"`
	RelatedType string           `json:"related_type,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
