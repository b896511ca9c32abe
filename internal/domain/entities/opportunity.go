package entities

import "time"

// GrantOpportunity is a posted funding call. Researchers read it; grant-office
// staff create it. No state machine, only created/listed.
//
// Storage model (DynamoDB):
//   - PK: id
type GrantOpportunity struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	FundingAmount float64       `json:"funding_amount"`
	Deadline      time.Time     `json:"deadline"`
	Eligibility   string        `json:"eligibility"`
	Category      GrantCategory `json:"category"`
	FundingSource FundingSource `json:"funding_source"`
	PostedBy      string        `json:"posted_by"`
	PostedDate    time.Time     `json:"posted_date"`
}
