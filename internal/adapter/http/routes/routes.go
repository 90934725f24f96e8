package routes

import (
	"log"
	"os"
	"strings"

	_ "github.com/geovanereis/website-gsreistecnologia/docs" // This will be auto-generated
	"github.com/geovanereis/website-gsreistecnologia/internal/adapter/http/handlers"
	"github.com/geovanereis/website-gsreistecnologia/internal/adapter/persistence/memory"
	repository2 "github.com/geovanereis/website-gsreistecnologia/internal/adapter/persistence/repository"
	"github.com/geovanereis/website-gsreistecnologia/internal/infrastructure/database"
	"github.com/geovanereis/website-gsreistecnologia/internal/infrastructure/notifications"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	quoteRepo, smsRepo, _ := buildRepositories()

	var gateway interfaces.ISmsGateway
	twilioGateway, err := notifications.NewTwilioGateway()
	if err != nil {
		log.Printf("SMS gateway not configured: %v", err)
	} else {
		gateway = twilioGateway
	}

	smsUseCase := usecase.NewSmsMessageUseCase(smsRepo, gateway, os.Getenv("NOTIFY_PHONE"))

	var notifier usecase.IQuoteNotifier
	if os.Getenv("NOTIFY_PHONE") != "" {
		notifier = smsUseCase
	}

	quoteUseCase := usecase.NewQuoteRequestUseCase(quoteRepo, notifier)
	quoteHandler := handlers.NewQuoteRequestHandler(quoteUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addQuoteRoutes(api, quoteHandler)
}

// buildRepositories selects the storage implementation from STORAGE_DRIVER.
// The handler stack is indifferent to which one is active. The user
// repository is wired for the future admin area.
func buildRepositories() (interfaces.IQuoteRequestRepository, interfaces.ISmsMessageRepository, interfaces.IUserRepository) {
	driver := strings.ToLower(getenvDefault("STORAGE_DRIVER", "memory"))
	switch driver {
	case "dynamodb":
		log.Printf("[storage] using dynamodb")
		ddb := database.ConnectDynamoDB()
		return repository2.NewQuoteRequestDynamoRepository(ddb),
			repository2.NewSmsMessageDynamoRepository(ddb),
			repository2.NewUserDynamoRepository(ddb)
	case "memory":
		log.Printf("[storage] using in-memory maps")
	default:
		log.Printf("[storage] unknown driver %q, falling back to in-memory maps", driver)
	}
	return memory.NewQuoteRequestRepository(),
		memory.NewSmsMessageRepository(),
		memory.NewUserRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
