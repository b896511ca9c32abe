package request

import (
	"time"

	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"
)

type CreateOpportunityRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	FundingAmount float64   `json:"funding_amount" binding:"required"`
	Deadline      time.Time `json:"deadline" binding:"required"`
	Eligibility   string    `json:"eligibility"`
	Category      string    `json:"category"`
	FundingSource string    `json:"funding_source"`
}

func (r CreateOpportunityRequest) ToInput() usecase.OpportunityInput {
	return usecase.OpportunityInput{
		Title:         r.Title,
		Description:   r.Description,
		FundingAmount: r.FundingAmount,
		Deadline:      r.Deadline,
		Eligibility:   r.Eligibility,
		Category:      entities.GrantCategory(r.Category),
		FundingSource: entities.FundingSource(r.FundingSource),
	}
}
