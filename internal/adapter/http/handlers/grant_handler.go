package handlers

import (
	"context"
	"errors"
	"net/http"

	request "grantcompass/internal/adapter/http/dto/request"
	response "grantcompass/internal/adapter/http/dto/response"
	"grantcompass/internal/domain/entities"
	"grantcompass/internal/usecase"
	"grantcompass/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidGrantPayload = pkg.NewDomainErrorSimple("INVALID_GRANT_INPUT", "Invalid grant payload", http.StatusBadRequest)

// GrantHandler handles HTTP requests for the grant lifecycle. Every state
// change goes through the lifecycle usecase; the handler only translates
// payloads and errors.

type GrantHandler struct {
	usecase usecase.IGrantLifecycleUseCase
}

func NewGrantHandler(uc usecase.IGrantLifecycleUseCase) *GrantHandler {
	return &GrantHandler{usecase: uc}
}

func (h *GrantHandler) CreateGrant(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateGrantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGrantPayload.HTTPStatus, errInvalidGrantPayload.ToHTTPError())
		return
	}

	g, err := h.usecase.CreateDraft(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGrant(g))
}

func (h *GrantHandler) ListGrants(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	grants, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGrants(grants))
}

func (h *GrantHandler) GetGrant(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	g, err := h.usecase.GetByID(c.Request.Context(), c.Param("grant_id"), actor)
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGrant(g))
}

// SubmitGrant handles first submission and resubmission after a
// modifications request; the engine picks the operation from the state.
func (h *GrantHandler) SubmitGrant(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.SubmitGrantRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidGrantPayload.HTTPStatus, errInvalidGrantPayload.ToHTTPError())
			return
		}
	}

	g, events, err := h.usecase.Submit(c.Request.Context(), c.Param("grant_id"), actor, payload.OverrideBudgetMismatch)
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGrantMutation(g, events))
}

func (h *GrantHandler) BeginReview(c *gin.Context) {
	h.mutate(c, func(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
		return h.usecase.BeginReview(ctx, grantID, actor)
	})
}

func (h *GrantHandler) ReviewGrant(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ReviewGrantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGrantPayload.HTTPStatus, errInvalidGrantPayload.ToHTTPError())
		return
	}

	g, events, err := h.usecase.Review(c.Request.Context(), c.Param("grant_id"), actor, entities.ReviewDecision(payload.Decision), payload.Comments)
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGrantMutation(g, events))
}

func (h *GrantHandler) ActivateGrant(c *gin.Context) {
	h.mutate(c, func(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
		return h.usecase.Activate(ctx, grantID, actor)
	})
}

func (h *GrantHandler) CloseGrant(c *gin.Context) {
	h.mutate(c, func(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error) {
		return h.usecase.Close(ctx, grantID, actor)
	})
}

func (h *GrantHandler) mutate(
	c *gin.Context,
	op func(ctx context.Context, grantID string, actor entities.Actor) (entities.Grant, []entities.DomainEvent, error),
) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	g, events, err := op(c.Request.Context(), c.Param("grant_id"), actor)
	if err != nil {
		appErr := mapGrantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGrantMutation(g, events))
}

func mapGrantError(err error) *pkg.AppError {
	var (
		validationErr *usecase.ValidationError
		transitionErr *usecase.InvalidTransitionError
		authErr       *usecase.UnauthorizedError
		budgetErr     *usecase.BudgetMismatchError
		concurrentErr *usecase.ConcurrentModificationError
	)

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Grant failed validation", http.StatusBadRequest).
			WithDetails(validationErr.Fields)
	case errors.As(err, &budgetErr):
		return pkg.NewDomainErrorSimple("BUDGET_MISMATCH", "Budget line items do not sum to the declared amount", http.StatusBadRequest).
			WithDetails(gin.H{"sum": budgetErr.Sum, "amount": budgetErr.Amount})
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in the grant's current status", http.StatusConflict).
			WithDetails(gin.H{"from": transitionErr.From, "operation": transitionErr.Operation})
	case errors.As(err, &authErr):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.As(err, &concurrentErr):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Grant was modified concurrently; refetch and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrGrantNotFound):
		return pkg.NewDomainErrorSimple("GRANT_NOT_FOUND", "Grant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidGrantID),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrEmptyReviewComments):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
