package usecase

import (
	"context"
	"errors"
	"testing"

	"grantcompass/internal/domain/entities"
	mock_interfaces "grantcompass/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	grant := entities.Grant{ID: "g-1", Title: "Soil microbiome atlas", ResearcherID: "res-1"}

	t.Run("grant submitted fans out to the office", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleGrantOffice).Return([]string{"staff-1", "staff-2", "staff-3"}, nil)
		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				seen[n.UserID] = true
				if n.Message != "New grant application submitted: Soil microbiome atlas" {
					t.Fatalf("unexpected message %q", n.Message)
				}
				if n.RelatedID != "g-1" || n.RelatedType != "grant" || n.IsRead {
					t.Fatalf("unexpected notification %+v", n)
				}
				return n, nil
			},
		).Times(3)

		created, err := d.Dispatch(context.Background(), entities.GrantSubmitted{Grant: grant})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 || !seen["staff-1"] || !seen["staff-2"] || !seen["staff-3"] {
			t.Fatalf("expected one record per staff member, got %v", created)
		}
	})

	t.Run("reviewed targets the researcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != "res-1" || n.Type != entities.NotificationTypeGrantResponse {
					t.Fatalf("unexpected notification %+v", n)
				}
				if n.Message != `Your grant application "Soil microbiome atlas" has been rejected.` {
					t.Fatalf("unexpected message %q", n.Message)
				}
				return n, nil
			},
		)

		created, err := d.Dispatch(context.Background(), entities.GrantReviewed{
			Grant: grant, Decision: entities.ReviewDecisionReject, ResearcherID: "res-1",
		})
		if err != nil || len(created) != 1 {
			t.Fatalf("unexpected result: %v %v", created, err)
		}
	})

	t.Run("opportunity fans out to researchers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleResearcher).Return([]string{"res-1", "res-2"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Type != entities.NotificationTypeOpportunity || n.RelatedType != "opportunity" {
					t.Fatalf("unexpected notification %+v", n)
				}
				return n, nil
			},
		).Times(2)

		created, err := d.Dispatch(context.Background(), entities.OpportunityPosted{
			Opportunity: entities.GrantOpportunity{ID: "opp-1", Title: "Climate call"},
		})
		if err != nil || len(created) != 2 {
			t.Fatalf("unexpected result: %v %v", created, err)
		}
	})

	t.Run("directory failure aborts the fan-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleGrantOffice).Return(nil, errors.New("directory down"))

		if _, err := d.Dispatch(context.Background(), entities.GrantSubmitted{Grant: grant}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("partial fan-out returns created records with the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleGrantOffice).Return([]string{"staff-1", "staff-2"}, nil)
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
			),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("db")),
		)

		created, err := d.Dispatch(context.Background(), entities.GrantSubmitted{Grant: grant})
		if err == nil {
			t.Fatalf("expected error")
		}
		if len(created) != 1 {
			t.Fatalf("expected the first record back, got %v", created)
		}
	})

	t.Run("event without recipient is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		d := NewNotificationDispatcher(users, repo)

		created, err := d.Dispatch(context.Background(), entities.GrantReviewed{Grant: grant, Decision: entities.ReviewDecisionApprove})
		if err != nil || len(created) != 0 {
			t.Fatalf("unexpected result: %v %v", created, err)
		}
	})
}
