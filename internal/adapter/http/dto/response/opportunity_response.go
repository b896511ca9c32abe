package response

import (
	"time"

	"grantcompass/internal/domain/entities"
)

type OpportunityResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FundingAmount float64   `json:"funding_amount"`
	Deadline      time.Time `json:"deadline"`
	Eligibility   string    `json:"eligibility"`
	Category      string    `json:"category"`
	FundingSource string    `json:"funding_source"`
	PostedBy      string    `json:"posted_by"`
	PostedDate    time.Time `json:"posted_date"`
}

func FromOpportunity(o entities.GrantOpportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		FundingAmount: o.FundingAmount,
		Deadline:      o.Deadline,
		Eligibility:   o.Eligibility,
		Category:      string(o.Category),
		FundingSource: string(o.FundingSource),
		PostedBy:      o.PostedBy,
		PostedDate:    o.PostedDate,
	}
}

func FromOpportunities(opportunities []entities.GrantOpportunity) []OpportunityResponse {
	out := make([]OpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		out = append(out, FromOpportunity(o))
	}
	return out
}
