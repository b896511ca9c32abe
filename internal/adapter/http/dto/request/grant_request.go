package request

import (
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"
)

type BudgetLineRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// CreateGrantRequest is the draft-creation payload. Only the owner matters at
// this point; field validation happens at submission.
type CreateGrantRequest struct {
	Title                string              `json:"title" binding:"required"`
	Description          string              `json:"description"`
	Amount               float64             `json:"amount"`
	StartDate            time.Time           `json:"start_date"`
	EndDate              time.Time           `json:"end_date"`
	Category             string              `json:"category"`
	FundingSource        string              `json:"funding_source"`
	Department           string              `json:"department"`
	BudgetLines          []BudgetLineRequest `json:"budget_lines"`
	WorkPlan             string              `json:"work_plan"`
	StudentParticipation bool                `json:"student_participation"`
	Activities           []string            `json:"activities"`
}

func (r CreateGrantRequest) ToDraft() usecase.DraftGrant {
	lines := make([]entities.BudgetLine, 0, len(r.BudgetLines))
	for _, line := range r.BudgetLines {
		lines = append(lines, entities.BudgetLine{Name: line.Name, Amount: line.Amount})
	}
	if len(lines) == 0 {
		lines = nil
	}

	return usecase.DraftGrant{
		Title:                r.Title,
		Description:          r.Description,
		Amount:               r.Amount,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		Category:             entities.GrantCategory(r.Category),
		FundingSource:        entities.FundingSource(r.FundingSource),
		Department:           r.Department,
		BudgetLines:          lines,
		WorkPlan:             r.WorkPlan,
		StudentParticipation: r.StudentParticipation,
		Activities:           r.Activities,
	}
}

// SubmitGrantRequest carries the explicit budget-mismatch override. The body
// is optional; an absent flag means no override.
type SubmitGrantRequest struct {
	OverrideBudgetMismatch bool `json:"override_budget_mismatch"`
}

type ReviewGrantRequest struct {
	Decision string `json:"decision" binding:"required"`
	Comments string `json:"comments"`
}
