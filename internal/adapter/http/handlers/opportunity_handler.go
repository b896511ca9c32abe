package handlers

import (
	"errors"
	"net/http"

	request "grantcompass/internal/adapter/http/dto/request"
	response "grantcompass/internal/adapter/http/dto/response"
	"grantcompass/internal/usecase"
	"grantcompass/pkg"

	"github.com/gin-gonic/gin"
)

// OpportunityHandler handles posted funding calls.

type OpportunityHandler struct {
	usecase usecase.IOpportunityUseCase
}

func NewOpportunityHandler(uc usecase.IOpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{usecase: uc}
}

func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_OPPORTUNITY_INPUT", "Invalid opportunity payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, _, err := h.usecase.Post(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOpportunity(created))
}

func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	if _, appErr := actorFromRequest(c); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	opportunities, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpportunities(opportunities))
}

func mapOpportunityError(err error) *pkg.AppError {
	var authErr *usecase.UnauthorizedError

	switch {
	case errors.As(err, &authErr):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOpportunityInvalid):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
