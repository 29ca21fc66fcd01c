package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/sschier-sketch/folio-api/internal/client/aws"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/helpers"
	"github.com/sschier-sketch/folio-api/internal/logger"
	"github.com/sschier-sketch/folio-api/internal/processor"
	"github.com/sschier-sketch/folio-api/internal/services"
)

// Application holds all dependencies for the Lambda handler
type Application struct {
	outboxProcessor *processor.OutboxProcessor
	logger          *zap.Logger
}

// HandleRequest is the actual Lambda handler function
func (app *Application) HandleRequest(ctx context.Context) error {
	app.logger.Info("Starting outbox recovery execution")

	result, err := app.outboxProcessor.RunSweep(ctx)
	if err != nil {
		app.logger.Error("Error recovering outbox entries", zap.Error(err))
		return fmt.Errorf("error recovering outbox entries: %w", err)
	}

	app.logger.Info("Outbox recovery results",
		zap.Int("scanned", result.Scanned),
		zap.Int("finalized", result.Finalized),
		zap.Int("abandoned", result.Abandoned),
		zap.Int("failed", result.Failed),
	)

	return nil
}

// LocalHandleRequest is for local development testing
func (app *Application) LocalHandleRequest(ctx context.Context) error {
	return app.HandleRequest(ctx)
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
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
	logger.Info("Lambda Cold Start: Initializing outbox processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// Database Connection Setup
	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, constructing DSN from environment", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		dbUser, err := secretsClient.GetSecretString(ctx, "DB_USER_SECRET_ARN", "DB_USER")
		if err != nil {
			logger.Fatal("Failed to resolve database user", zap.Error(err))
		}
		dbPassword, err := secretsClient.GetSecretString(ctx, "DB_PASSWORD_SECRET_ARN", "DB_PASSWORD")
		if err != nil {
			logger.Fatal("Failed to resolve database password", zap.Error(err))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(dbUser), url.QueryEscape(dbPassword),
			dbEndpoint, dbName, dbSSLMode)
	} else { // Local
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_SECRET_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development and not found")
		}
	}

	// Database Pool Initialization
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(connPool)

	outboxService := services.NewOutboxService(dbQueries, logger.Log)
	outboxProcessor := processor.NewOutboxProcessor(
		outboxService, logger.Log,
		envInt32("OUTBOX_STALLED_AFTER_MINUTES"),
		envInt32("OUTBOX_BATCH_SIZE"))

	app := &Application{
		outboxProcessor: outboxProcessor,
		logger:          logger.Log,
	}

	if stage == helpers.StageLocal {
		// Local development - run once
		if err := app.LocalHandleRequest(ctx); err != nil {
			logger.Fatal("Error in LocalHandleRequest", zap.Error(err))
		}
	} else {
		// AWS Lambda environment
		lambda.Start(app.HandleRequest)
	}
}

func envInt32(name string) int32 {
	value, err := strconv.ParseInt(os.Getenv(name), 10, 32)
	if err != nil {
		return 0
	}
	return int32(value)
}
