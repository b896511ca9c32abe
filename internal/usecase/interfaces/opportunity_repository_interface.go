package interfaces

import (
	"context"

	"grantcompass/internal/domain/entities"
)

// IOpportunityRepository abstracts DynamoDB persistence for GrantOpportunity.
type IOpportunityRepository interface {
	Create(ctx context.Context, o entities.GrantOpportunity) (entities.GrantOpportunity, error)
	ListAll(ctx context.Context) ([]entities.GrantOpportunity, error)
}
