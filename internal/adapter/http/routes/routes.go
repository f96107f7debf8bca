package routes

import (
	"log"
	"os"
	"strconv"

	_ "roadinspect/docs" // This will be auto-generated
	"roadinspect/internal/adapter/http/handlers"
	repository2 "roadinspect/internal/adapter/persistence/repository"
	"roadinspect/internal/domain/workflow"
	"roadinspect/internal/infrastructure/database"
	"roadinspect/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "roadinspect").Logger()

	// The workflow catalog is static configuration; a broken catalog must
	// stop the process here, not surface at request time.
	registry := workflow.MustNewRegistry(workflow.Catalog(), workflow.DefaultPropagationRules())

	ddb := database.ConnectDynamoDB()

	phaseRepo := repository2.NewPhaseDynamoRepository(ddb)
	inspectionRepo := repository2.NewInspectionDynamoRepository(ddb)

	timelineUseCase := usecase.NewTimelineUseCase(registry, phaseRepo, inspectionRepo)
	selectionUseCase := usecase.NewSelectionUseCase(registry, phaseRepo, inspectionRepo)
	submissionUseCase := usecase.NewSubmissionUseCase(registry, phaseRepo, inspectionRepo, inspectionRepo, logger)

	timelineHandler := handlers.NewTimelineHandler(timelineUseCase)
	selectionHandler := handlers.NewSelectionHandler(selectionUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInspectionRoutes(v1, timelineHandler, selectionHandler, submissionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
