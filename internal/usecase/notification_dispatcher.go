package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/infrastructure/metrics"
	"grantcompass/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// INotificationDispatcher turns a domain event into persisted per-recipient
// notification records.

type INotificationDispatcher interface {
	Dispatch(ctx context.Context, event entities.DomainEvent) ([]entities.Notification, error)
}

// NotificationDispatcher resolves recipients at dispatch time via the user
// directory (never cached) and creates one record per recipient.
//
// Delivery is not exactly-once: there is no dedup key on creation. Lifecycle
// dispatch only runs after a successful conditional save, so a retried
// transition fails before reaching it, which gives at-most-once in practice.
type NotificationDispatcher struct {
	users interfaces.IUserDirectory
	repo  interfaces.INotificationRepository
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(users interfaces.IUserDirectory, repo interfaces.INotificationRepository) *NotificationDispatcher {
	return &NotificationDispatcher{users: users, repo: repo}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, event entities.DomainEvent) ([]entities.Notification, error) {
	switch e := event.(type) {
	case entities.GrantSubmitted:
		msg := fmt.Sprintf("New grant application submitted: %s", e.Grant.Title)
		return d.fanOutToRole(ctx, entities.RoleGrantOffice, msg, entities.NotificationTypeStatusUpdate, e.Grant.ID, "grant")

	case entities.GrantReviewed:
		return d.createOne(ctx, e.ResearcherID, reviewMessage(e), entities.NotificationTypeGrantResponse, e.Grant.ID, "grant")

	case entities.GrantActivated:
		msg := fmt.Sprintf("Your grant %q is now active.", e.Grant.Title)
		return d.createOne(ctx, e.Grant.ResearcherID, msg, entities.NotificationTypeStatusUpdate, e.Grant.ID, "grant")

	case entities.GrantClosed:
		msg := fmt.Sprintf("Your grant %q has been completed.", e.Grant.Title)
		return d.createOne(ctx, e.Grant.ResearcherID, msg, entities.NotificationTypeStatusUpdate, e.Grant.ID, "grant")

	case entities.OpportunityPosted:
		msg := fmt.Sprintf("New grant opportunity: %s", e.Opportunity.Title)
		return d.fanOutToRole(ctx, entities.RoleResearcher, msg, entities.NotificationTypeOpportunity, e.Opportunity.ID, "opportunity")
	}

	log.Printf("[notification][dispatcher] unknown event %q; nothing dispatched", event.EventName())
	return nil, nil
}

func reviewMessage(e entities.GrantReviewed) string {
	switch e.Decision {
	case entities.ReviewDecisionApprove:
		return fmt.Sprintf("Your grant application %q has been approved!", e.Grant.Title)
	case entities.ReviewDecisionReject:
		return fmt.Sprintf("Your grant application %q has been rejected.", e.Grant.Title)
	default:
		return fmt.Sprintf("Your grant application %q requires modifications.", e.Grant.Title)
	}
}

func (d *NotificationDispatcher) fanOutToRole(
	ctx context.Context,
	role entities.UserRole,
	message string,
	ntype entities.NotificationType,
	relatedID, relatedType string,
) ([]entities.Notification, error) {
	recipients, err := d.users.ListUserIDsByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	created := make([]entities.Notification, 0, len(recipients))
	for _, userID := range recipients {
		n, err := d.create(ctx, userID, message, ntype, relatedID, relatedType)
		if err != nil {
			return created, err
		}
		created = append(created, n)
	}
	log.Printf("[notification][dispatcher] fan-out role=%s type=%s recipients=%d", role, ntype, len(created))
	return created, nil
}

func (d *NotificationDispatcher) createOne(
	ctx context.Context,
	userID, message string,
	ntype entities.NotificationType,
	relatedID, relatedType string,
) ([]entities.Notification, error) {
	if userID == "" {
		log.Printf("[notification][dispatcher] event without recipient; skipped type=%s related_id=%s", ntype, relatedID)
		return nil, nil
	}
	n, err := d.create(ctx, userID, message, ntype, relatedID, relatedType)
	if err != nil {
		return nil, err
	}
	return []entities.Notification{n}, nil
}

func (d *NotificationDispatcher) create(
	ctx context.Context,
	userID, message string,
	ntype entities.NotificationType,
	relatedID, relatedType string,
) (entities.Notification, error) {
	n := entities.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Message:     message,
		Type:        ntype,
		IsRead:      false,
		RelatedID:   relatedID,
		RelatedType: relatedType,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := d.repo.Create(ctx, n)
	if err != nil {
		return entities.Notification{}, err
	}
	metrics.NotificationCreated(string(ntype))
	return created, nil
}
