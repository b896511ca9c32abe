package response

import (
	"time"

	"grantcompass/internal/domain/entities"
)

type BudgetLineResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type GrantResponse struct {
	ID      string `json:"id"`
	Version int    `json:"version"`

	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Category      string    `json:"category"`
	FundingSource string    `json:"funding_source"`
	Department    string    `json:"department"`

	ResearcherID   string `json:"researcher_id"`
	ResearcherName string `json:"researcher_name"`

	Status         string     `json:"status"`
	SubmittedDate  *time.Time `json:"submitted_date,omitempty"`
	ReviewComments string     `json:"review_comments,omitempty"`
	ReviewerID     string     `json:"reviewer_id,omitempty"`
	ReviewedDate   *time.Time `json:"reviewed_date,omitempty"`

	BudgetLines      []BudgetLineResponse `json:"budget_lines,omitempty"`
	BudgetOverridden bool                 `json:"budget_overridden"`

	WorkPlan             string   `json:"work_plan,omitempty"`
	StudentParticipation bool     `json:"student_participation"`
	Activities           []string `json:"activities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GrantMutationResponse pairs the updated grant with the domain events the
// transition emitted, so callers can observe what was dispatched.
type GrantMutationResponse struct {
	Grant  GrantResponse `json:"grant"`
	Events []string      `json:"events"`
}

func FromGrant(g entities.Grant) GrantResponse {
	lines := make([]BudgetLineResponse, 0, len(g.BudgetLines))
	for _, line := range g.BudgetLines {
		lines = append(lines, BudgetLineResponse{Name: line.Name, Amount: line.Amount})
	}
	if len(lines) == 0 {
		lines = nil
	}

	return GrantResponse{
		ID:      g.ID,
		Version: g.Version,

		Title:         g.Title,
		Description:   g.Description,
		Amount:        g.Amount,
		StartDate:     g.StartDate,
		EndDate:       g.EndDate,
		Category:      string(g.Category),
		FundingSource: string(g.FundingSource),
		Department:    g.Department,

		ResearcherID:   g.ResearcherID,
		ResearcherName: g.ResearcherName,

		Status:         string(g.Status),
		SubmittedDate:  optionalTime(g.SubmittedDate),
		ReviewComments: g.ReviewComments,
		ReviewerID:     g.ReviewerID,
		ReviewedDate:   optionalTime(g.ReviewedDate),

		BudgetLines:      lines,
		BudgetOverridden: g.BudgetOverridden,

		WorkPlan:             g.WorkPlan,
		StudentParticipation: g.StudentParticipation,
		Activities:           g.Activities,

		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func FromGrantMutation(g entities.Grant, events []entities.DomainEvent) GrantMutationResponse {
	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.EventName())
	}
	return GrantMutationResponse{Grant: FromGrant(g), Events: names}
}

func FromGrants(grants []entities.Grant) []GrantResponse {
	out := make([]GrantResponse, 0, len(grants))
	for _, g := range grants {
		out = append(out, FromGrant(g))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
