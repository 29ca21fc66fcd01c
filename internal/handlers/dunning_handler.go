package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/interfaces"
	"github.com/sschier-sketch/folio-api/internal/services"
	"github.com/sschier-sketch/folio-api/internal/types/business"
	"github.com/sschier-sketch/folio-api/internal/types/params"
	"github.com/sschier-sketch/folio-api/internal/types/requests"
)

type DunningHandler struct {
	common          *CommonServices
	reminderService interfaces.ReminderService
	settingsService interfaces.SettingsService
	outboxService   interfaces.OutboxService
}

// NewDunningHandler creates a handler with interface dependencies
func NewDunningHandler(
	common *CommonServices,
	reminderService interfaces.ReminderService,
	settingsService interfaces.SettingsService,
	outboxService interfaces.OutboxService,
) *DunningHandler {
	return &DunningHandler{
		common:          common,
		reminderService: reminderService,
		settingsService: settingsService,
		outboxService:   outboxService,
	}
}

// ListOverduePayments lists overdue payments with suggested dunning levels
// @Summary List overdue payments
// @Description List the owner's overdue rent payments with the suggested dunning level for each
// @Tags dunning
// @Produce json
// @Success 200 {array} responses.OverduePaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/payments [get]
func (h *DunningHandler) ListOverduePayments(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	payments, err := h.reminderService.ListOverduePayments(c.Request.Context(), ownerID)
	if err != nil {
		h.common.HandleError(c, err, "Failed to list overdue payments", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// SendReminder dispatches a payment reminder email
// @Summary Send payment reminder
// @Description Send a reminder email for one overdue payment. Omitting dunning_level uses the suggested level. Not idempotent: every call sends an email.
// @Tags dunning
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param reminder body requests.SendReminderRequest false "Optional level override"
// @Success 201 {object} responses.SendReminderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dunning/payments/{payment_id}/reminders [post]
func (h *DunningHandler) SendReminder(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid payment ID"})
		return
	}

	var req requests.SendReminderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	var level int32
	if req.DunningLevel != nil {
		level = *req.DunningLevel
	}

	result, err := h.reminderService.SendReminder(c.Request.Context(), params.SendReminderParams{
		OwnerID:      ownerID,
		PaymentID:    paymentID,
		DunningLevel: level,
	})
	if err != nil {
		h.respondDispatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListReminderHistory lists reminder records for the given payments
// @Summary List reminder history
// @Description List the audit records of reminders sent for the given payment IDs
// @Tags dunning
// @Produce json
// @Param payment_ids query string true "Comma-separated payment IDs"
// @Success 200 {array} db.ReminderRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/reminders [get]
func (h *DunningHandler) ListReminderHistory(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	paymentIDs, err := parsePaymentIDs(c.QueryArray("payment_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(paymentIDs) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payment_ids is required"})
		return
	}

	records, err := h.reminderService.ListReminderHistory(c.Request.Context(), ownerID, paymentIDs)
	if err != nil {
		h.common.HandleError(c, err, "Failed to list reminder history", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetSettings returns the owner's escalation thresholds
// @Summary Get dunning settings
// @Description Get the owner's escalation day thresholds, falling back to the 7/14/28 defaults
// @Tags dunning
// @Produce json
// @Success 200 {object} business.DunningPolicy
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/settings [get]
func (h *DunningHandler) GetSettings(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	policy, err := h.settingsService.GetPolicy(c.Request.Context(), ownerID)
	if err != nil {
		h.common.HandleError(c, err, "Failed to get dunning settings", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, policy)
}

// UpdateSettings replaces the owner's escalation thresholds
// @Summary Update dunning settings
// @Description Replace the owner's escalation day thresholds. Thresholds must be strictly increasing.
// @Tags dunning
// @Accept json
// @Produce json
// @Param settings body requests.UpdateDunningSettingsRequest true "New thresholds"
// @Success 200 {object} business.DunningPolicy
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/settings [put]
func (h *DunningHandler) UpdateSettings(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var req requests.UpdateDunningSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	policy := business.DunningPolicy{
		Level1Days: req.Level1Days,
		Level2Days: req.Level2Days,
		Level3Days: req.Level3Days,
	}
	if err := policy.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.settingsService.UpdatePolicy(c.Request.Context(), ownerID, policy)
	if err != nil {
		h.common.HandleError(c, err, "Failed to update dunning settings", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RecoverOutbox triggers a recovery sweep over stalled dispatches
// @Summary Recover stalled reminder dispatches
// @Description Drive outbox entries left behind by interrupted dispatches to a terminal state
// @Tags dunning
// @Produce json
// @Success 200 {object} responses.OutboxRecoveryResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/outbox/recover [post]
func (h *DunningHandler) RecoverOutbox(c *gin.Context) {
	if _, err := GetOwnerID(c); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.outboxService.RecoverStalled(c.Request.Context(), params.RecoverOutboxParams{})
	if err != nil {
		h.common.HandleError(c, err, "Failed to recover outbox", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondDispatchError maps the dispatch error taxonomy to HTTP statuses.
func (h *DunningHandler) respondDispatchError(c *gin.Context, err error) {
	var deliveryErr *services.DeliveryError
	var persistenceErr *services.PersistenceError

	switch {
	case errors.Is(err, services.ErrInvalidDunningLevel):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrTemplateMissing):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Configure reminder email templates before sending"})
	case errors.Is(err, services.ErrRecipientMissing):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
	case errors.As(err, &deliveryErr):
		h.common.logger.Error("reminder delivery failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	case errors.As(err, &persistenceErr):
		h.common.logger.Error("reminder persistence failed",
			zap.String("stage", persistenceErr.Stage),
			zap.Bool("email_sent", persistenceErr.EmailSent),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		h.common.HandleError(c, err, "Failed to send reminder", http.StatusInternalServerError)
	}
}

// parsePaymentIDs accepts both repeated payment_ids params and a single
// comma-separated value.
func parsePaymentIDs(raw []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, errors.New("invalid payment ID: " + part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
