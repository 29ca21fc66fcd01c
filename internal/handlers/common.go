package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/interfaces"
	"github.com/sschier-sketch/folio-api/internal/logger"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db     db.Querier
	logger *zap.Logger

	ReminderService interfaces.ReminderService
	TemplateService interfaces.TemplateService
	SettingsService interfaces.SettingsService
	OutboxService   interfaces.OutboxService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB              db.Querier
	Logger          *zap.Logger
	ReminderService interfaces.ReminderService
	TemplateService interfaces.TemplateService
	SettingsService interfaces.SettingsService
	OutboxService   interfaces.OutboxService
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		db:              config.DB,
		logger:          config.Logger,
		ReminderService: config.ReminderService,
		TemplateService: config.TemplateService,
		SettingsService: config.SettingsService,
		OutboxService:   config.OutboxService,
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// HandleError is a helper method to handle errors consistently
func (s *CommonServices) HandleError(c *gin.Context, err error, message string, statusCode int) {
	if err != nil {
		s.logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}
