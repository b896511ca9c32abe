package main

import (
	_ "grantcompass/docs"
	"grantcompass/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Grant Compass API
// @version         1.0
// @description     Grant lifecycle service (applications, reviews, notifications, opportunities) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Identity of the acting user, attached by the upstream gateway.

func main() {
	routes.Run()
}
