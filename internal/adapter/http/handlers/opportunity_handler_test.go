package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grantcompass/internal/adapter/http/handlers/mocks"
	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOpportunityHandler_CreateOpportunity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOpportunityUseCase(ctrl)
		h := NewOpportunityHandler(uc)

		uc.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.GrantOpportunity{ID: "opp-1", Title: "Marine biology call", FundingAmount: 80000},
			[]entities.DomainEvent{entities.OpportunityPosted{}}, nil,
		)

		r := gin.New()
		r.POST("/v1/opportunities", h.CreateOpportunity)

		body := `{"title":"Marine biology call","funding_amount":80000,"deadline":"2026-12-01T00:00:00Z"}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/opportunities", bytes.NewBufferString(body)), "staff-1", entities.RoleGrantOffice)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp["id"] != "opp-1" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("missing deadline rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOpportunityUseCase(ctrl)
		h := NewOpportunityHandler(uc)

		r := gin.New()
		r.POST("/v1/opportunities", h.CreateOpportunity)

		body := `{"title":"Marine biology call","funding_amount":80000}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/opportunities", bytes.NewBufferString(body)), "staff-1", entities.RoleGrantOffice)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden for researcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOpportunityUseCase(ctrl)
		h := NewOpportunityHandler(uc)

		uc.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.GrantOpportunity{}, nil,
			&usecase.UnauthorizedError{ActorID: "res-1", Operation: entities.OperationPostOpportunity},
		)

		r := gin.New()
		r.POST("/v1/opportunities", h.CreateOpportunity)

		body := `{"title":"Call","funding_amount":1000,"deadline":"2026-12-01T00:00:00Z"}`
		req := withActor(httptest.NewRequest(http.MethodPost, "/v1/opportunities", bytes.NewBufferString(body)), "res-1", entities.RoleResearcher)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestOpportunityHandler_ListOpportunities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOpportunityUseCase(ctrl)
	h := NewOpportunityHandler(uc)

	deadline := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().List(gomock.Any()).Return([]entities.GrantOpportunity{
		{ID: "opp-1", Deadline: deadline},
		{ID: "opp-2", Deadline: deadline.AddDate(0, 1, 0)},
	}, nil)

	r := gin.New()
	r.GET("/v1/opportunities", h.ListOpportunities)

	req := withActor(httptest.NewRequest(http.MethodGet, "/v1/opportunities", nil), "res-1", entities.RoleResearcher)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp) != 2 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}
