package interfaces

import (
	"context"

	"grantcompass/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// MarkRead only flips the read flag when the notification belongs to userID;
// it returns a zero-value entity when no such notification exists.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
}
