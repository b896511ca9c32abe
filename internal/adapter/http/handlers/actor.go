package handlers

import (
	"net/http"
	"strings"

	"grantcompass/internal/domain/entities"
	"grantcompass/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
	headerActorName = "X-Actor-Name"
)

var (
	errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Missing actor identity headers", http.StatusUnauthorized)
	errInvalidRole  = pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown actor role", http.StatusUnauthorized)
)

// actorFromRequest reads the identity claims an upstream auth layer attaches
// to each request. The service trusts these headers; verifying them is the
// gateway's job.
func actorFromRequest(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := strings.TrimSpace(c.GetHeader(headerActorID))
	role := entities.UserRole(strings.TrimSpace(c.GetHeader(headerActorRole)))
	if id == "" || role == "" {
		return entities.Actor{}, errMissingActor
	}
	if !entities.IsValidUserRole(role) {
		return entities.Actor{}, errInvalidRole
	}
	return entities.Actor{
		ID:   id,
		Name: strings.TrimSpace(c.GetHeader(headerActorName)),
		Role: role,
	}, nil
}
