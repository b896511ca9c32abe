package routes

import (
	"log"
	_ "grantcompass/docs" // This will be auto-generated
	"grantcompass/internal/adapter/http/handlers"
	repository2 "grantcompass/internal/adapter/persistence/repository"
	"grantcompass/internal/infrastructure/database"
	"grantcompass/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	grantRepo := repository2.NewGrantDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	opportunityRepo := repository2.NewOpportunityDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)

	dispatcher := usecase.NewNotificationDispatcher(profileRepo, notificationRepo)

	grantUseCase := usecase.NewGrantLifecycleUseCase(grantRepo, dispatcher)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, profileRepo)
	opportunityUseCase := usecase.NewOpportunityUseCase(opportunityRepo, dispatcher)

	grantHandler := handlers.NewGrantHandler(grantUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGrantRoutes(v1, grantHandler)
	addNotificationRoutes(v1, notificationHandler)
	addOpportunityRoutes(v1, opportunityHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
