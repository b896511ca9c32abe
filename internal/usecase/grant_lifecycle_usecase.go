package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/infrastructure/metrics"
	"grantcompass/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IGrantLifecycleUseCase owns every Grant state transition. No other
// component mutates a grant's status.
//
// Mutating operations return the updated grant together with the domain
// events emitted for it; events are dispatched to the notification
// dispatcher only after the conditional save succeeded.

type IGrantLifecycleUseCase interface {
	CreateDraft(ctx context.Context, actor entities.Actor, draft DraftGrant) (entities.Grant, error)
	Submit(ctx context.Context, grantID string, actor entities.Actor, overrideBudgetMismatch bool) (entities.Grant, []entities.DomainEvent, error)
	BeginReview(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error)
	Review(ctx context.Context, grantID string, actor entities.Actor, decision entities.ReviewDecision, comments string) (entities.Grant, []entities.DomainEvent, error)
	Activate(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error)
	Close(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error)
	GetByID(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.Grant, error)
}

// DraftGrant is the payload for creating a grant in draft. Full validation
// happens at submission; drafts only need an owner.
type DraftGrant struct {
	Title                string
	Description          string
	Amount               float64
	StartDate            time.Time
	EndDate              time.Time
	Category             entities.GrantCategory
	FundingSource        entities.FundingSource
	Department           string
	BudgetLines          []entities.BudgetLine
	WorkPlan             string
	StudentParticipation bool
	Activities           []string
}

type GrantLifecycleUseCase struct {
	repo       interfaces.IGrantRepository
	dispatcher INotificationDispatcher
}

var _ IGrantLifecycleUseCase = (*GrantLifecycleUseCase)(nil)

func NewGrantLifecycleUseCase(repo interfaces.IGrantRepository, dispatcher INotificationDispatcher) *GrantLifecycleUseCase {
	return &GrantLifecycleUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *GrantLifecycleUseCase) CreateDraft(ctx context.Context, actor entities.Actor, draft DraftGrant) (entities.Grant, error) {
	if !CanPerform(actor, entities.OperationCreate, entities.Grant{}) {
		return entities.Grant{}, &UnauthorizedError{ActorID: actor.ID, Operation: entities.OperationCreate}
	}

	now := time.Now().UTC()
	g := entities.Grant{
		ID:      uuid.NewString(),
		Version: 1,

		Title:         strings.TrimSpace(draft.Title),
		Description:   strings.TrimSpace(draft.Description),
		Amount:        draft.Amount,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		Category:      draft.Category,
		FundingSource: draft.FundingSource,
		Department:    strings.TrimSpace(draft.Department),

		ResearcherID:   actor.ID,
		ResearcherName: actor.Name,

		Status: entities.GrantStatusDraft,

		BudgetLines:          draft.BudgetLines,
		WorkPlan:             draft.WorkPlan,
		StudentParticipation: draft.StudentParticipation,
		Activities:           draft.Activities,

		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, g)
}

func (u *GrantLifecycleUseCase) Submit(ctx context.Context, grantID string, actor entities.Actor, overrideBudgetMismatch bool) (entities.Grant, []entities.DomainEvent, error) {
	g, err := u.load(ctx, grantID)
	if err != nil {
		return entities.Grant{}, nil, err
	}

	op := entities.OperationSubmit
	if g.Status == entities.GrantStatusModificationsRequested {
		op = entities.OperationResubmit
	}

	if !CanPerform(actor, op, g) {
		return entities.Grant{}, nil, &UnauthorizedError{ActorID: actor.ID, Operation: op}
	}
	next, ok := entities.NextStatus(g.Status, op)
	if !ok {
		return entities.Grant{}, nil, &InvalidTransitionError{From: g.Status, Operation: op}
	}

	if err := validateForSubmission(g); err != nil {
		return entities.Grant{}, nil, err
	}

	if len(g.BudgetLines) > 0 {
		sum := g.BudgetTotal()
		if sum != g.Amount {
			if !overrideBudgetMismatch {
				return entities.Grant{}, nil, &BudgetMismatchError{Sum: sum, Amount: g.Amount}
			}
			g.BudgetOverridden = true
		}
	}

	now := time.Now().UTC()
	g.Status = next
	g.SubmittedDate = now
	g.UpdatedAt = now
	if op == entities.OperationResubmit {
		// A resubmission goes back into the queue; the previous reviewer
		// claim and decision stamp no longer apply. Comments are kept so the
		// researcher's fixes stay traceable.
		g.ReviewerID = ""
		g.ReviewedDate = time.Time{}
	}

	saved, err := u.save(ctx, g)
	if err != nil {
		return entities.Grant{}, nil, err
	}
	metrics.TransitionApplied(string(op))

	events := []entities.DomainEvent{entities.GrantSubmitted{Grant: saved}}
	u.dispatch(ctx, events)
	return saved, events, nil
}

func (u *GrantLifecycleUseCase) BeginReview(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
	g, err := u.load(ctx, grantID)
	if err != nil {
		return entities.Grant{}, nil, err
	}

	if !CanPerform(actor, entities.OperationBeginReview, g) {
		return entities.Grant{}, nil, &UnauthorizedError{ActorID: actor.ID, Operation: entities.OperationBeginReview}
	}

	// Idempotent for the actor already holding the review: a repeated call
	// is a no-op returning the current state, not an error.
	if g.Status == entities.GrantStatusUnderReview && g.ReviewerID == actor.ID {
		return g, nil, nil
	}

	next, ok := entities.NextStatus(g.Status, entities.OperationBeginReview)
	if !ok {
		return entities.Grant{}, nil, &InvalidTransitionError{From: g.Status, Operation: entities.OperationBeginReview}
	}

	g.Status = next
	g.ReviewerID = actor.ID
	g.UpdatedAt = time.Now().UTC()

	saved, err := u.save(ctx, g)
	if err != nil {
		return entities.Grant{}, nil, err
	}
	metrics.TransitionApplied(string(entities.OperationBeginReview))
	return saved, nil, nil
}

func (u *GrantLifecycleUseCase) Review(ctx context.Context, grantID string, actor entities.Actor, decision entities.ReviewDecision, comments string) (entities.Grant, []entities.DomainEvent, error) {
	op, ok := decision.Operation()
	if !ok {
		return entities.Grant{}, nil, ErrInvalidDecision
	}
	if strings.TrimSpace(comments) == "" {
		return entities.Grant{}, nil, ErrEmptyReviewComments
	}

	g, err := u.load(ctx, grantID)
	if err != nil {
		return entities.Grant{}, nil, err
	}

	if !CanPerform(actor, op, g) {
		return entities.Grant{}, nil, &UnauthorizedError{ActorID: actor.ID, Operation: op}
	}
	next, ok := entities.NextStatus(g.Status, op)
	if !ok {
		return entities.Grant{}, nil, &InvalidTransitionError{From: g.Status, Operation: op}
	}

	now := time.Now().UTC()
	g.Status = next
	g.ReviewComments = strings.TrimSpace(comments)
	g.ReviewerID = actor.ID
	g.ReviewedDate = now
	g.UpdatedAt = now

	saved, err := u.save(ctx, g)
	if err != nil {
		return entities.Grant{}, nil, err
	}
	metrics.TransitionApplied(string(op))
	log.Printf("[grant][usecase] review recorded grant_id=%s decision=%s reviewer=%s", saved.ID, decision, actor.ID)

	events := []entities.DomainEvent{entities.GrantReviewed{Grant: saved, Decision: decision, ResearcherID: saved.ResearcherID}}
	u.dispatch(ctx, events)
	return saved, events, nil
}

func (u *GrantLifecycleUseCase) Activate(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
	saved, err := u.guardedTransition(ctx, grantID, actor, entities.OperationActivate)
	if err != nil {
		return entities.Grant{}, nil, err
	}
	events := []entities.DomainEvent{entities.GrantActivated{Grant: saved}}
	u.dispatch(ctx, events)
	return saved, events, nil
}

func (u *GrantLifecycleUseCase) Close(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
	saved, err := u.guardedTransition(ctx, grantID, actor, entities.OperationClose)
	if err != nil {
		return entities.Grant{}, nil, err
	}
	events := []entities.DomainEvent{entities.GrantClosed{Grant: saved}}
	u.dispatch(ctx, events)
	return saved, events, nil
}

// guardedTransition covers the payload-free transitions (activate, close).
func (u *GrantLifecycleUseCase) guardedTransition(ctx context.Context, grantID string, actor entities.Actor, op entities.Operation) (entities.Grant, error) {
	g, err := u.load(ctx, grantID)
	if err != nil {
		return entities.Grant{}, err
	}

	if !CanPerform(actor, op, g) {
		return entities.Grant{}, &UnauthorizedError{ActorID: actor.ID, Operation: op}
	}
	next, ok := entities.NextStatus(g.Status, op)
	if !ok {
		return entities.Grant{}, &InvalidTransitionError{From: g.Status, Operation: op}
	}

	g.Status = next
	g.UpdatedAt = time.Now().UTC()

	saved, err := u.save(ctx, g)
	if err != nil {
		return entities.Grant{}, err
	}
	metrics.TransitionApplied(string(op))
	return saved, nil
}

func (u *GrantLifecycleUseCase) GetByID(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, error) {
	g, err := u.load(ctx, grantID)
	if err != nil {
		return entities.Grant{}, err
	}
	// Researchers only see their own grants.
	if !actor.IsStaff() && g.ResearcherID != actor.ID {
		return entities.Grant{}, ErrGrantNotFound
	}
	return g, nil
}

func (u *GrantLifecycleUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Grant, error) {
	if actor.IsStaff() {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListByResearcherID(ctx, actor.ID)
}

func (u *GrantLifecycleUseCase) load(ctx context.Context, grantID string) (entities.Grant, error) {
	grantID = strings.TrimSpace(grantID)
	if grantID == "" {
		return entities.Grant{}, ErrInvalidGrantID
	}
	g, err := u.repo.GetByID(ctx, grantID)
	if err != nil {
		return entities.Grant{}, err
	}
	if g.ID == "" {
		return entities.Grant{}, ErrGrantNotFound
	}
	return g, nil
}

func (u *GrantLifecycleUseCase) save(ctx context.Context, g entities.Grant) (entities.Grant, error) {
	saved, err := u.repo.Save(ctx, g, g.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Grant{}, &ConcurrentModificationError{GrantID: g.ID}
		}
		return entities.Grant{}, err
	}
	return saved, nil
}

// dispatch hands events to the notification sink. Notification delivery is
// fire-and-forget relative to the transition: the state change already
// persisted, so a sink failure is logged, not surfaced.
func (u *GrantLifecycleUseCase) dispatch(ctx context.Context, events []entities.DomainEvent) {
	if u.dispatcher == nil {
		return
	}
	for _, ev := range events {
		if _, err := u.dispatcher.Dispatch(ctx, ev); err != nil {
			log.Printf("[grant][usecase] notification dispatch failed event=%s err=%v", ev.EventName(), err)
		}
	}
}

func validateForSubmission(g entities.Grant) error {
	var fields []FieldViolation
	if len(strings.TrimSpace(g.Title)) < 5 {
		fields = append(fields, FieldViolation{Field: "title", Reason: "must be at least 5 characters"})
	}
	if len(strings.TrimSpace(g.Description)) < 20 {
		fields = append(fields, FieldViolation{Field: "description", Reason: "must be at least 20 characters"})
	}
	if g.Amount <= 0 {
		fields = append(fields, FieldViolation{Field: "amount", Reason: "must be positive"})
	}
	if !entities.IsValidGrantCategory(g.Category) {
		fields = append(fields, FieldViolation{Field: "category", Reason: "is not a valid category"})
	}
	if !entities.IsValidFundingSource(g.FundingSource) {
		fields = append(fields, FieldViolation{Field: "funding_source", Reason: "is not a valid funding source"})
	}
	if !g.EndDate.IsZero() && !g.StartDate.IsZero() && g.EndDate.Before(g.StartDate) {
		fields = append(fields, FieldViolation{Field: "end_date", Reason: "must not be before start date"})
	}
	for _, line := range g.BudgetLines {
		if line.Amount < 0 {
			fields = append(fields, FieldViolation{Field: "budget_lines", Reason: "line item amounts must be non-negative"})
			break
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
