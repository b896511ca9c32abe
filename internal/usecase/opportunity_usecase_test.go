package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"grantcompass/internal/domain/entities"
	mock_interfaces "grantcompass/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOpportunityUseCase_Post(t *testing.T) {
	staff := entities.Actor{ID: "staff-1", Role: entities.RoleGrantOffice}
	deadline := time.Now().UTC().AddDate(0, 3, 0)

	t.Run("researcher cannot post", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, _, err := uc.Post(context.Background(), entities.Actor{ID: "res-1", Role: entities.RoleResearcher}, OpportunityInput{})
		var authErr *UnauthorizedError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected UnauthorizedError, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		cases := []OpportunityInput{
			{Title: "  ", FundingAmount: 1000, Deadline: deadline},
			{Title: "Call", FundingAmount: 0, Deadline: deadline},
			{Title: "Call", FundingAmount: 1000},
		}
		for _, input := range cases {
			if _, _, err := uc.Post(context.Background(), staff, input); !errors.Is(err, ErrOpportunityInvalid) {
				t.Fatalf("expected ErrOpportunityInvalid for %+v, got %v", input, err)
			}
		}
	})

	t.Run("success notifies researchers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewOpportunityUseCase(repo, NewNotificationDispatcher(users, notifRepo))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.GrantOpportunity{})).DoAndReturn(
			func(_ context.Context, o entities.GrantOpportunity) (entities.GrantOpportunity, error) {
				if o.ID == "" || o.PostedBy != staff.ID || o.PostedDate.IsZero() {
					t.Fatalf("unexpected opportunity %+v", o)
				}
				if o.Title != "Arctic research call" {
					t.Fatalf("expected trimmed title, got %q", o.Title)
				}
				return o, nil
			},
		)
		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleResearcher).Return([]string{"res-1"}, nil)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Message != "New grant opportunity: Arctic research call" {
					t.Fatalf("unexpected message %q", n.Message)
				}
				return n, nil
			},
		)

		created, events, err := uc.Post(context.Background(), staff, OpportunityInput{
			Title:         "  Arctic research call  ",
			FundingAmount: 250000,
			Deadline:      deadline,
			Category:      entities.GrantCategoryResearch,
			FundingSource: entities.FundingSourceGovernment,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if len(events) != 1 || events[0].EventName() != "opportunity_posted" {
			t.Fatalf("unexpected events: %v", events)
		}
	})

	t.Run("dispatch failure does not fail the post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewOpportunityUseCase(repo, NewNotificationDispatcher(users, notifRepo))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.GrantOpportunity) (entities.GrantOpportunity, error) { return o, nil },
		)
		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleResearcher).Return(nil, errors.New("directory down"))

		if _, _, err := uc.Post(context.Background(), staff, OpportunityInput{Title: "Call", FundingAmount: 1, Deadline: deadline}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOpportunityUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
	uc := NewOpportunityUseCase(repo, nil)

	now := time.Now().UTC()
	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.GrantOpportunity{
		{ID: "opp-late", Deadline: now.AddDate(0, 6, 0)},
		{ID: "opp-soon", Deadline: now.AddDate(0, 1, 0)},
		{ID: "opp-mid", Deadline: now.AddDate(0, 3, 0)},
	}, nil)

	opportunities, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opportunities) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(opportunities))
	}
	if opportunities[0].ID != "opp-soon" || opportunities[1].ID != "opp-mid" || opportunities[2].ID != "opp-late" {
		t.Fatalf("expected deadline ordering, got %v", opportunities)
	}
}
