package usecase

import (
	"context"
	"errors"
	"testing"

	"grantcompass/internal/domain/entities"
	mock_interfaces "grantcompass/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_MarkRead(t *testing.T) {
	actor := entities.Actor{ID: "res-1", Role: entities.RoleResearcher}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.MarkRead(context.Background(), "  ", actor)
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1", actor.ID).Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "n-1", actor)
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1", actor.ID).Return(entities.Notification{ID: "n-1", UserID: actor.ID, IsRead: true}, nil)

		n, err := uc.MarkRead(context.Background(), " n-1 ", actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.IsRead {
			t.Fatalf("expected read flag set")
		}
	})
}

func TestNotificationUseCase_SendDirect(t *testing.T) {
	staff := entities.Actor{ID: "staff-1", Role: entities.RoleGrantOffice}

	t.Run("researcher cannot send", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.SendDirect(context.Background(), entities.Actor{ID: "res-1", Role: entities.RoleResearcher}, DirectNotification{Recipient: "res-2", Message: "hi"})
		var authErr *UnauthorizedError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected UnauthorizedError, got %v", err)
		}
	})

	t.Run("empty recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.SendDirect(context.Background(), staff, DirectNotification{Message: "hi"})
		if !errors.Is(err, ErrInvalidRecipient) {
			t.Fatalf("expected ErrInvalidRecipient, got %v", err)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.SendDirect(context.Background(), staff, DirectNotification{Recipient: "res-1", Message: "   "})
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil)
		_, err := uc.SendDirect(context.Background(), staff, DirectNotification{Recipient: "res-1", Message: "hi", Type: "carrier_pigeon"})
		if !errors.Is(err, ErrInvalidNotifType) {
			t.Fatalf("expected ErrInvalidNotifType, got %v", err)
		}
	})

	t.Run("defaults to status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Type != entities.NotificationTypeStatusUpdate {
					t.Fatalf("expected status_update default, got %s", n.Type)
				}
				if n.ID == "" || n.UserID != "res-1" || n.CreatedAt.IsZero() {
					t.Fatalf("unexpected notification %+v", n)
				}
				return n, nil
			},
		)

		created, err := uc.SendDirect(context.Background(), staff, DirectNotification{Recipient: "res-1", Message: "Report due next week"})
		if err != nil || len(created) != 1 {
			t.Fatalf("unexpected result: %v %v", created, err)
		}
	})

	t.Run("broadcast resolves every researcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewNotificationUseCase(repo, users)

		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleResearcher).Return([]string{"res-1", "res-2", "res-3"}, nil)
		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID == entities.RecipientAll {
					t.Fatalf("broadcast sentinel must not be stored")
				}
				seen[n.UserID] = true
				return n, nil
			},
		).Times(3)

		created, err := uc.SendDirect(context.Background(), staff, DirectNotification{Recipient: "all", Message: "Maintenance window tonight", Type: entities.NotificationTypeDueDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 || !seen["res-1"] || !seen["res-2"] || !seen["res-3"] {
			t.Fatalf("expected one record per researcher, got %v", created)
		}
	})

	t.Run("directory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewNotificationUseCase(nil, users)
		users.EXPECT().ListUserIDsByRole(gomock.Any(), entities.RoleResearcher).Return(nil, errors.New("directory down"))

		if _, err := uc.SendDirect(context.Background(), staff, DirectNotification{Recipient: "all", Message: "hi"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNotificationUseCase_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo, nil)

	actor := entities.Actor{ID: "res-1", Role: entities.RoleResearcher}
	repo.EXPECT().ListByUserID(gomock.Any(), "res-1").Return([]entities.Notification{{ID: "n-1", UserID: "res-1"}}, nil)

	notifications, err := uc.ListByUser(context.Background(), actor)
	if err != nil || len(notifications) != 1 {
		t.Fatalf("unexpected result: %v %v", notifications, err)
	}
}
