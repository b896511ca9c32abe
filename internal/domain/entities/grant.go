package entities

import "time"

// GrantStatus represents the lifecycle of a grant application.
//
// Domain notes:
//   - The grant-service is the source of truth for grant state.
//   - Status never changes except through the transition table below; callers
//     hold a version token and writes are conditional on it (see repository).

type GrantStatus string

const (
	GrantStatusDraft                  GrantStatus = "draft"
	GrantStatusSubmitted              GrantStatus = "submitted"
	GrantStatusUnderReview            GrantStatus = "under_review"
	GrantStatusApproved               GrantStatus = "approved"
	GrantStatusRejected               GrantStatus = "rejected"
	GrantStatusModificationsRequested GrantStatus = "modifications_requested"
	GrantStatusActive                 GrantStatus = "active"
	GrantStatusCompleted              GrantStatus = "completed"
)

type GrantCategory string

const (
	GrantCategoryResearch       GrantCategory = "research"
	GrantCategoryEducation      GrantCategory = "education"
	GrantCategoryCommunity      GrantCategory = "community"
	GrantCategoryInfrastructure GrantCategory = "infrastructure"
	GrantCategoryInnovation     GrantCategory = "innovation"
)

func IsValidGrantCategory(c GrantCategory) bool {
	switch c {
	case GrantCategoryResearch, GrantCategoryEducation, GrantCategoryCommunity,
		GrantCategoryInfrastructure, GrantCategoryInnovation:
		return true
	}
	return false
}

type FundingSource string

const (
	FundingSourceInternal   FundingSource = "internal"
	FundingSourceExternal   FundingSource = "external"
	FundingSourceGovernment FundingSource = "government"
	FundingSourcePrivate    FundingSource = "private"
	FundingSourceFoundation FundingSource = "foundation"
)

func IsValidFundingSource(s FundingSource) bool {
	switch s {
	case FundingSourceInternal, FundingSourceExternal, FundingSourceGovernment,
		FundingSourcePrivate, FundingSourceFoundation:
		return true
	}
	return false
}

// Operation is a lifecycle intent attempted against a grant.
type Operation string

const (
	OperationCreate               Operation = "create"
	OperationSubmit               Operation = "submit"
	OperationResubmit             Operation = "resubmit"
	OperationBeginReview          Operation = "begin_review"
	OperationApprove              Operation = "approve"
	OperationReject               Operation = "reject"
	OperationRequestModifications Operation = "request_modifications"
	OperationActivate             Operation = "activate"
	OperationClose                Operation = "close"
	OperationPostOpportunity      Operation = "post_opportunity"
	OperationSendNotification     Operation = "send_notification"
)

type transitionKey struct {
	From GrantStatus
	Op   Operation
}

// transitions is the only place a status change may come from. Any
// {status, operation} pair not present here is an invalid transition.
var transitions = map[transitionKey]GrantStatus{
	{GrantStatusDraft, OperationSubmit}:                        GrantStatusSubmitted,
	{GrantStatusSubmitted, OperationBeginReview}:               GrantStatusUnderReview,
	{GrantStatusUnderReview, OperationApprove}:                 GrantStatusApproved,
	{GrantStatusUnderReview, OperationReject}:                  GrantStatusRejected,
	{GrantStatusUnderReview, OperationRequestModifications}:    GrantStatusModificationsRequested,
	{GrantStatusModificationsRequested, OperationResubmit}:     GrantStatusSubmitted,
	{GrantStatusApproved, OperationActivate}:                   GrantStatusActive,
	{GrantStatusActive, OperationClose}:                        GrantStatusCompleted,
}

// NextStatus resolves the target status for an operation attempted from the
// given status. ok is false when the transition table has no such entry.
func NextStatus(from GrantStatus, op Operation) (GrantStatus, bool) {
	next, ok := transitions[transitionKey{From: from, Op: op}]
	return next, ok
}

// ReviewDecision is the outcome a reviewer records for an under-review grant.
type ReviewDecision string

const (
	ReviewDecisionApprove              ReviewDecision = "approve"
	ReviewDecisionReject               ReviewDecision = "reject"
	ReviewDecisionRequestModifications ReviewDecision = "request_modifications"
)

// Operation maps the decision onto its transition-table operation.
func (d ReviewDecision) Operation() (Operation, bool) {
	switch d {
	case ReviewDecisionApprove:
		return OperationApprove, true
	case ReviewDecisionReject:
		return OperationReject, true
	case ReviewDecisionRequestModifications:
		return OperationRequestModifications, true
	}
	return "", false
}

// BudgetLine is a named budget line item. Amounts are non-negative; the sum of
// all lines must match Grant.Amount at submission time unless the submitter
// records an explicit override.
type BudgetLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Grant is the funding application persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (researcher_id-index): researcher_id
//   - version: number attribute used as the compare-and-swap token; every
//     persisted write increments it and is conditional on the expected value.
type Grant struct {
	ID      string `json:"id"`
	Version int    `json:"version"`

	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Category      GrantCategory `json:"category"`
	FundingSource FundingSource `json:"funding_source"`
	Department    string        `json:"department"`

	ResearcherID   string `json:"researcher_id"`
	ResearcherName string `json:"researcher_name"`

	Status         GrantStatus `json:"status"`
	SubmittedDate  time.Time   `json:"submitted_date"`
	ReviewComments string      `json:"review_comments"`
	ReviewerID     string      `json:"reviewer_id"`
	ReviewedDate   time.Time   `json:"reviewed_date"`

	BudgetLines      []BudgetLine `json:"budget_lines,omitempty"`
	BudgetOverridden bool         `json:"budget_overridden"`

	WorkPlan             string   `json:"work_plan,omitempty"`
	StudentParticipation bool     `json:"student_participation"`
	Activities           []string `json:"activities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetTotal sums the budget line items.
func (g Grant) BudgetTotal() float64 {
	total := 0.0
	for _, line := range g.BudgetLines {
		total += line.Amount
	}
	return total
}
