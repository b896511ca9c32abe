package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOpportunityUseCase exposes funding-call operations: staff post a call,
// everyone lists them.

type IOpportunityUseCase interface {
	Post(ctx context.Context, actor entities.Actor, input OpportunityInput) (entities.GrantOpportunity, []entities.DomainEvent, error)
	List(ctx context.Context) ([]entities.GrantOpportunity, error)
}

type OpportunityInput struct {
	Title         string
	Description   string
	FundingAmount float64
	Deadline      time.Time
	Eligibility   string
	Category      entities.GrantCategory
	FundingSource entities.FundingSource
}

type OpportunityUseCase struct {
	repo       interfaces.IOpportunityRepository
	dispatcher INotificationDispatcher
}

var _ IOpportunityUseCase = (*OpportunityUseCase)(nil)

func NewOpportunityUseCase(repo interfaces.IOpportunityRepository, dispatcher INotificationDispatcher) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *OpportunityUseCase) Post(ctx context.Context, actor entities.Actor, input OpportunityInput) (entities.GrantOpportunity, []entities.DomainEvent, error) {
	if !CanPerform(actor, entities.OperationPostOpportunity, entities.Grant{}) {
		return entities.GrantOpportunity{}, nil, &UnauthorizedError{ActorID: actor.ID, Operation: entities.OperationPostOpportunity}
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.FundingAmount <= 0 || input.Deadline.IsZero() {
		return entities.GrantOpportunity{}, nil, ErrOpportunityInvalid
	}

	o := entities.GrantOpportunity{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   strings.TrimSpace(input.Description),
		FundingAmount: input.FundingAmount,
		Deadline:      input.Deadline,
		Eligibility:   strings.TrimSpace(input.Eligibility),
		Category:      input.Category,
		FundingSource: input.FundingSource,
		PostedBy:      actor.ID,
		PostedDate:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.GrantOpportunity{}, nil, err
	}

	events := []entities.DomainEvent{entities.OpportunityPosted{Opportunity: created}}
	if u.dispatcher != nil {
		if _, err := u.dispatcher.Dispatch(ctx, events[0]); err != nil {
			log.Printf("[opportunity][usecase] notification dispatch failed opportunity_id=%s err=%v", created.ID, err)
		}
	}
	return created, events, nil
}

func (u *OpportunityUseCase) List(ctx context.Context) ([]entities.GrantOpportunity, error) {
	opportunities, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	// Soonest deadline first, matching how researchers browse calls.
	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].Deadline.Before(opportunities[j].Deadline)
	})
	return opportunities, nil
}
