package usecase

import (
	"context"
	"strings"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/infrastructure/metrics"
	"grantcompass/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// INotificationUseCase exposes the recipient-facing notification operations
// plus the staff-only direct send.

type INotificationUseCase interface {
	ListByUser(ctx context.Context, actor entities.Actor) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID string, actor entities.Actor) (entities.Notification, error)
	SendDirect(ctx context.Context, actor entities.Actor, send DirectNotification) ([]entities.Notification, error)
}

// DirectNotification is a staff-authored notification. Recipient is a user id
// or the "all" sentinel, which fans out to every researcher at send time.
type DirectNotification struct {
	Recipient   string
	Message     string
	Type        entities.NotificationType
	RelatedID   string
	RelatedType string
}

type NotificationUseCase struct {
	repo  interfaces.INotificationRepository
	users interfaces.IUserDirectory
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, users interfaces.IUserDirectory) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, users: users}
}

func (u *NotificationUseCase) ListByUser(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	return u.repo.ListByUserID(ctx, actor.ID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, notificationID string, actor entities.Actor) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, notificationID, actor.ID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) SendDirect(ctx context.Context, actor entities.Actor, send DirectNotification) ([]entities.Notification, error) {
	if !CanPerform(actor, entities.OperationSendNotification, entities.Grant{}) {
		return nil, &UnauthorizedError{ActorID: actor.ID, Operation: entities.OperationSendNotification}
	}

	send.Recipient = strings.TrimSpace(send.Recipient)
	send.Message = strings.TrimSpace(send.Message)
	if send.Recipient == "" {
		return nil, ErrInvalidRecipient
	}
	if send.Message == "" {
		return nil, ErrEmptyMessage
	}
	if send.Type == "" {
		send.Type = entities.NotificationTypeStatusUpdate
	}
	if !entities.IsValidNotificationType(send.Type) {
		return nil, ErrInvalidNotifType
	}

	recipients := []string{send.Recipient}
	if send.Recipient == entities.RecipientAll {
		ids, err := u.users.ListUserIDsByRole(ctx, entities.RoleResearcher)
		if err != nil {
			return nil, err
		}
		recipients = ids
	}

	created := make([]entities.Notification, 0, len(recipients))
	for _, userID := range recipients {
		n, err := u.repo.Create(ctx, entities.Notification{
			ID:          uuid.NewString(),
			UserID:      userID,
			Message:     send.Message,
			Type:        send.Type,
			IsRead:      false,
			RelatedID:   send.RelatedID,
			RelatedType: send.RelatedType,
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			return created, err
		}
		metrics.NotificationCreated(string(send.Type))
		created = append(created, n)
	}
	return created, nil
}
