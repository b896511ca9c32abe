package entities

// DomainEvent is emitted by the lifecycle engine after a successful
// transition and consumed by the notification dispatcher.
type DomainEvent interface {
	EventName() string
}

type GrantSubmitted struct {
	Grant Grant
}

func (GrantSubmitted) EventName() string { return "grant_submitted" }

type GrantReviewed struct {
	Grant    Grant
	Decision ReviewDecision
	// ResearcherID is the notification target: the owning researcher.
	ResearcherID string
}

func (GrantReviewed) EventName() string { return "grant_reviewed" }

type GrantActivated struct {
	Grant Grant
}

func (GrantActivated) EventName() string { return "grant_activated" }

type GrantClosed struct {
	Grant Grant
}

func (GrantClosed) EventName() string { return "grant_closed" }

type OpportunityPosted struct {
	Opportunity GrantOpportunity
}

func (OpportunityPosted) EventName() string { return "opportunity_posted" }
