package usecase

import "grantcompass/internal/domain/entities"

// CanPerform is the access policy guard consulted before every lifecycle
// operation. It is a pure predicate over the actor's role and id, the grant's
// owner and the attempted operation; the UI's button visibility is irrelevant
// here.
//
// Owner-gated operations require the acting researcher to own the grant.
// Staff-gated operations require the grant_office or admin role.
func CanPerform(actor entities.Actor, op entities.Operation, grant entities.Grant) bool {
	switch op {
	case entities.OperationCreate:
		return actor.Role == entities.RoleResearcher
	case entities.OperationSubmit, entities.OperationResubmit:
		return actor.Role == entities.RoleResearcher && actor.ID != "" && actor.ID == grant.ResearcherID
	case entities.OperationBeginReview,
		entities.OperationApprove,
		entities.OperationReject,
		entities.OperationRequestModifications,
		entities.OperationActivate,
		entities.OperationClose,
		entities.OperationPostOpportunity,
		entities.OperationSendNotification:
		return actor.IsStaff()
	}
	return false
}
