package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"grantcompass/internal/domain/entities"
)

func TestFromGrant(t *testing.T) {
	now := time.Now().UTC()

	t.Run("draft omits review timestamps", func(t *testing.T) {
		g := entities.Grant{ID: "g-1", Version: 1, Status: entities.GrantStatusDraft, CreatedAt: now, UpdatedAt: now}
		resp := FromGrant(g)
		if resp.SubmittedDate != nil || resp.ReviewedDate != nil {
			t.Fatalf("expected nil optional dates, got %+v", resp)
		}

		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), "submitted_date") || strings.Contains(string(raw), "reviewed_date") {
			t.Fatalf("expected omitted fields, got %s", raw)
		}
	})

	t.Run("reviewed grant carries stamps and lines", func(t *testing.T) {
		g := entities.Grant{
			ID: "g-1", Version: 3,
			Status:        entities.GrantStatusApproved,
			SubmittedDate: now, ReviewedDate: now, ReviewerID: "staff-1", ReviewComments: "good",
			BudgetLines:      []entities.BudgetLine{{Name: "travel", Amount: 500}},
			BudgetOverridden: true,
		}
		resp := FromGrant(g)
		if resp.SubmittedDate == nil || resp.ReviewedDate == nil {
			t.Fatalf("expected optional dates set")
		}
		if len(resp.BudgetLines) != 1 || resp.BudgetLines[0].Name != "travel" {
			t.Fatalf("unexpected budget lines %+v", resp.BudgetLines)
		}
		if !resp.BudgetOverridden || resp.Status != "approved" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestFromGrantMutation(t *testing.T) {
	g := entities.Grant{ID: "g-1", Status: entities.GrantStatusSubmitted}
	resp := FromGrantMutation(g, []entities.DomainEvent{entities.GrantSubmitted{Grant: g}})
	if len(resp.Events) != 1 || resp.Events[0] != "grant_submitted" {
		t.Fatalf("unexpected events %v", resp.Events)
	}
	if resp.Grant.ID != "g-1" {
		t.Fatalf("unexpected grant %+v", resp.Grant)
	}
}
