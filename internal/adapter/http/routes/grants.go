package routes

import (
	"grantcompass/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGrants        = "/grants"
	PathNotifications = "/notifications"
	PathOpportunities = "/opportunities"
)

func addGrantRoutes(rg *gin.RouterGroup, grantHandler *handlers.GrantHandler) {
	grants := rg.Group(PathGrants)
	{
		grants.POST("", grantHandler.CreateGrant)
		grants.GET("", grantHandler.ListGrants)
		grants.GET("/:grant_id", grantHandler.GetGrant)
		grants.POST("/:grant_id/submit", grantHandler.SubmitGrant)
		grants.POST("/:grant_id/review/begin", grantHandler.BeginReview)
		grants.POST("/:grant_id/review", grantHandler.ReviewGrant)
		grants.POST("/:grant_id/activate", grantHandler.ActivateGrant)
		grants.POST("/:grant_id/close", grantHandler.CloseGrant)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("", notificationHandler.SendNotification)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkNotificationRead)
	}
}

func addOpportunityRoutes(rg *gin.RouterGroup, opportunityHandler *handlers.OpportunityHandler) {
	opportunities := rg.Group(PathOpportunities)
	{
		opportunities.POST("", opportunityHandler.CreateOpportunity)
		opportunities.GET("", opportunityHandler.ListOpportunities)
	}
}
