package interfaces

import (
	"context"
	"errors"

	"grantcompass/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored version no longer
// matches the expected one (a concurrent writer got there first). It lives
// here rather than in the usecase package so repositories can signal it
// without importing their consumers.
var ErrVersionConflict = errors.New("grant version conflict")

// IGrantRepository abstracts DynamoDB persistence for Grant.
//
// Conventions (shared by all repositories here):
//   - GetByID returns a zero-value entity when the item does not exist.
//   - Save is a compare-and-swap: the write succeeds only if the stored
//     version equals expectedVersion, and the persisted version becomes
//     expectedVersion+1.
type IGrantRepository interface {
	Create(ctx context.Context, g entities.Grant) (entities.Grant, error)
	GetByID(ctx context.Context, id string) (entities.Grant, error)
	Save(ctx context.Context, g entities.Grant, expectedVersion int) (entities.Grant, error)
	ListByResearcherID(ctx context.Context, researcherID string) ([]entities.Grant, error)
	ListAll(ctx context.Context) ([]entities.Grant, error)
}
