package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/constants"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/mocks"
	"github.com/sschier-sketch/folio-api/internal/services"
	"github.com/sschier-sketch/folio-api/internal/types/responses"
)

type handlerFixture struct {
	querier *mocks.MockQuerier
	sender  *mocks.MockEmailSender
	handler *DunningHandler
	ownerID uuid.UUID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	gin.SetMode(gin.TestMode)

	querier := mocks.NewMockQuerierForTest(t)
	sender := mocks.NewMockEmailSenderForTest(t)
	logger := zap.NewNop()

	templateService := services.NewTemplateService(querier, logger)
	settingsService := services.NewSettingsService(querier, logger)
	outboxService := services.NewOutboxService(querier, logger)
	reminderService := services.NewReminderService(
		querier, logger, services.NewEscalationService(), templateService, settingsService, sender)

	common := NewCommonServices(CommonServicesConfig{
		DB:              querier,
		Logger:          logger,
		ReminderService: reminderService,
		TemplateService: templateService,
		SettingsService: settingsService,
		OutboxService:   outboxService,
	})

	return &handlerFixture{
		querier: querier,
		sender:  sender,
		handler: NewDunningHandler(common, reminderService, settingsService, outboxService),
		ownerID: uuid.New(),
	}
}

func (f *handlerFixture) request(method, target string, body []byte) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
		c.Request = httptest.NewRequest(method, target, reader)
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	c.Request.Header.Set("X-Owner-ID", f.ownerID.String())
	return w, c
}

func TestDunningHandler_SendReminder_MissingTemplate(t *testing.T) {
	f := newHandlerFixture(t)
	paymentID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(db.GetRentPaymentForDunningRow{
			ID:          paymentID,
			OwnerID:     f.ownerID,
			DueDate:     pgtype.Date{Time: time.Now().AddDate(0, 0, -10), Valid: true},
			AmountCents: 85000,
			TenantEmail: pgtype.Text{String: "max@example.com", Valid: true},
			TenantName:  "Max Mustermann",
		}, nil)
	f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(db.DunningEmailTemplate{}, pgx.ErrNoRows)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/payments/"+paymentID.String()+"/reminders",
		[]byte(`{"dunning_level": 2}`))
	c.Params = gin.Params{{Key: "payment_id", Value: paymentID.String()}}

	f.handler.SendReminder(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "templates")
}

func TestDunningHandler_SendReminder_RecipientMissing(t *testing.T) {
	f := newHandlerFixture(t)
	paymentID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(db.GetRentPaymentForDunningRow{
			ID:          paymentID,
			OwnerID:     f.ownerID,
			DueDate:     pgtype.Date{Time: time.Now().AddDate(0, 0, -10), Valid: true},
			AmountCents: 85000,
			TenantName:  "Max Mustermann",
		}, nil)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/payments/"+paymentID.String()+"/reminders",
		[]byte(`{"dunning_level": 1}`))
	c.Params = gin.Params{{Key: "payment_id", Value: paymentID.String()}}

	f.handler.SendReminder(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDunningHandler_SendReminder_PaymentNotFound(t *testing.T) {
	f := newHandlerFixture(t)
	paymentID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(db.GetRentPaymentForDunningRow{}, pgx.ErrNoRows)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/payments/"+paymentID.String()+"/reminders",
		[]byte(`{"dunning_level": 1}`))
	c.Params = gin.Params{{Key: "payment_id", Value: paymentID.String()}}

	f.handler.SendReminder(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDunningHandler_SendReminder_InvalidPaymentID(t *testing.T) {
	f := newHandlerFixture(t)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/payments/not-a-uuid/reminders", nil)
	c.Params = gin.Params{{Key: "payment_id", Value: "not-a-uuid"}}

	f.handler.SendReminder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDunningHandler_SendReminder_DeliveryFailure(t *testing.T) {
	f := newHandlerFixture(t)
	paymentID := uuid.New()
	entryID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(db.GetRentPaymentForDunningRow{
			ID:          paymentID,
			OwnerID:     f.ownerID,
			DueDate:     pgtype.Date{Time: time.Now().AddDate(0, 0, -10), Valid: true},
			AmountCents: 85000,
			TenantEmail: pgtype.Text{String: "max@example.com", Valid: true},
			TenantName:  "Max Mustermann",
		}, nil)
	f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(db.DunningEmailTemplate{Subject: "Erinnerung", Message: "Hallo [TENANT_NAME]"}, nil)
	f.querier.EXPECT().
		CreateOutboxEntry(gomock.Any(), gomock.Any()).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStatePending}, nil)
	f.sender.EXPECT().
		SendReminderEmail(gomock.Any(), gomock.Any()).
		Return("", &services.DeliveryError{Timeout: true, Err: context.DeadlineExceeded})
	f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), gomock.Any()).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateFailed}, nil)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/payments/"+paymentID.String()+"/reminders",
		[]byte(`{"dunning_level": 1}`))
	c.Params = gin.Params{{Key: "payment_id", Value: paymentID.String()}}

	f.handler.SendReminder(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDunningHandler_GetSettings(t *testing.T) {
	f := newHandlerFixture(t)

	f.querier.EXPECT().
		GetDunningSettings(gomock.Any(), f.ownerID).
		Return(db.DunningSetting{}, pgx.ErrNoRows)

	w, c := f.request(http.MethodGet, "/api/v1/dunning/settings", nil)

	f.handler.GetSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level1_days":7`)
	assert.Contains(t, w.Body.String(), `"level3_days":28`)
}

func TestDunningHandler_UpdateSettings_RejectsNonMonotonic(t *testing.T) {
	f := newHandlerFixture(t)

	w, c := f.request(http.MethodPut, "/api/v1/dunning/settings",
		[]byte(`{"level1_days": 14, "level2_days": 7, "level3_days": 28}`))

	f.handler.UpdateSettings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDunningHandler_MissingOwnerHeader(t *testing.T) {
	f := newHandlerFixture(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/dunning/payments", nil)

	f.handler.ListOverduePayments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDunningHandler_RecoverOutbox(t *testing.T) {
	f := newHandlerFixture(t)

	f.querier.EXPECT().
		ListStalledOutboxEntries(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	w, c := f.request(http.MethodPost, "/api/v1/dunning/outbox/recover", nil)

	f.handler.RecoverOutbox(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var result responses.OutboxRecoveryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Scanned)
}
