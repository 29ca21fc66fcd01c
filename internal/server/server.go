package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclient "github.com/sschier-sketch/folio-api/internal/client/aws"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/handlers"
	"github.com/sschier-sketch/folio-api/internal/helpers"
	"github.com/sschier-sketch/folio-api/internal/logger"
	"github.com/sschier-sketch/folio-api/internal/services"
)

var (
	dunningHandler  *handlers.DunningHandler
	templateHandler *handlers.TemplateHandler
	healthHandler   *handlers.HealthHandler

	dbPool    *pgxpool.Pool
	dbQueries *db.Queries

	commonServices *handlers.CommonServices
)

// InitializeHandlers wires the store, services and handlers from the
// environment. Must be called before InitializeRoutes.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_SECRET_ARN", "DATABASE_URL")
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	dbPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	if err := dbPool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	dbQueries = db.New(dbPool)

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_SECRET_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Fatal("Failed to resolve Resend API key", zap.Error(err))
	}
	fromEmail := os.Getenv("REMINDER_FROM_EMAIL")
	if fromEmail == "" {
		logger.Fatal("REMINDER_FROM_EMAIL environment variable not set")
	}
	fromName := os.Getenv("REMINDER_FROM_NAME")
	if fromName == "" {
		fromName = "Folio"
	}

	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName, services.DefaultSendTimeout, logger.Log)
	escalationService := services.NewEscalationService()
	templateService := services.NewTemplateService(dbQueries, logger.Log)
	settingsService := services.NewSettingsService(dbQueries, logger.Log)
	outboxService := services.NewOutboxService(dbQueries, logger.Log)
	reminderService := services.NewReminderService(
		dbQueries, logger.Log, escalationService, templateService, settingsService, emailService)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:              dbQueries,
		Logger:          logger.Log,
		ReminderService: reminderService,
		TemplateService: templateService,
		SettingsService: settingsService,
		OutboxService:   outboxService,
	})

	dunningHandler = handlers.NewDunningHandler(commonServices, reminderService, settingsService, outboxService)
	templateHandler = handlers.NewTemplateHandler(commonServices, templateService)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and the API surface on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(requireOwner())
	{
		dunning := v1.Group("/dunning")
		{
			dunning.GET("/payments", dunningHandler.ListOverduePayments)
			dunning.POST("/payments/:payment_id/reminders", dunningHandler.SendReminder)
			dunning.GET("/reminders", dunningHandler.ListReminderHistory)

			dunning.GET("/settings", dunningHandler.GetSettings)
			dunning.PUT("/settings", dunningHandler.UpdateSettings)

			dunning.GET("/email-templates", templateHandler.ListTemplates)
			dunning.PUT("/email-templates/:template_id", templateHandler.UpdateTemplate)
			dunning.POST("/email-templates/reset", templateHandler.ResetTemplates)

			dunning.POST("/outbox/recover", dunningHandler.RecoverOutbox)
		}
	}
}

// Shutdown releases server-held resources.
func Shutdown() {
	if dbPool != nil {
		dbPool.Close()
	}
	_ = logger.Sync()
}

// requireOwner rejects requests without an owner identity. Authentication
// itself happens upstream; this only enforces that the proxy forwarded the
// resolved owner.
func requireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := handlers.GetOwnerID(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.ErrorResponse{Error: "owner identity missing"})
			return
		}
		c.Next()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Owner-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
