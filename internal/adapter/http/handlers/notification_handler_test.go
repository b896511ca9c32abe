package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grantcompass/internal/adapter/http/handlers/mocks"
	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().ListByUser(gomock.Any(), entities.Actor{ID: "res-1", Role: entities.RoleResearcher}).Return(
		[]entities.Notification{{ID: "n-1", UserID: "res-1", Message: "hello"}}, nil,
	)

	r := gin.New()
	r.GET("/v1/notifications", h.ListNotifications)

	req := withActor(httptest.NewRequest(http.MethodGet, "/v1/notifications", nil), "res-1", entities.RoleResearcher)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp) != 1 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestNotificationHandler_MarkNotificationRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1", gomock.Any()).Return(
			entities.Notification{ID: "n-1", UserID: "res-1", IsRead: true}, nil,
		)

		r := gin.New()
		r.PATCH("/v1/notifications/:notification_id/read", h.MarkNotificationRead)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil), "res-1", entities.RoleResearcher)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("someone else's notification is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), "n-1", gomock.Any()).Return(
			entities.Notification{}, usecase.ErrNotificationNotFound,
		)

		r := gin.New()
		r.PATCH("/v1/notifications/:notification_id/read", h.MarkNotificationRead)

		req := withActor(httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil), "res-2", entities.RoleResearcher)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_SendNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().SendDirect(gomock.Any(), gomock.Any(), usecase.DirectNotification{
			Recipient: "all", Message: "Office closed Friday", Type: entities.NotificationTypeStatusUpdate,
		}).Return([]entities.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)

		r := gin.New()
		r.POST("/v1/notifications", h.SendNotification)

		body := `{"recipient":"all","message":"Office closed Friday","type":"status_update"}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/notifications", bytes.NewBufferString(body)), "staff-1", entities.RoleGrantOffice)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("forbidden for researcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().SendDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			nil, &usecase.UnauthorizedError{ActorID: "res-1", Operation: entities.OperationSendNotification},
		)

		r := gin.New()
		r.POST("/v1/notifications", h.SendNotification)

		body := `{"recipient":"res-2","message":"hi"}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/notifications", bytes.NewBufferString(body)), "res-1", entities.RoleResearcher)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("empty message maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().SendDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrEmptyMessage)

		r := gin.New()
		r.POST("/v1/notifications", h.SendNotification)

		body := `{"recipient":"res-2","message":"  "}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/notifications", bytes.NewBufferString(body)), "staff-1", entities.RoleGrantOffice)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
