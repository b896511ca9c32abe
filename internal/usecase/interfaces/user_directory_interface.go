package interfaces

import (
	"context"

	"grantcompass/internal/domain/entities"
)

// IUserDirectory resolves notification recipients from the profile store.
//
// The lookup is a point-in-time read at dispatch: a user added mid-dispatch
// may or may not receive that particular notification.
type IUserDirectory interface {
	ListUserIDsByRole(ctx context.Context, role entities.UserRole) ([]string, error)
}
