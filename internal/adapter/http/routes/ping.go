package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary      Health check
// @Description  Returns pong when the service is up
// @Tags         ping
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
