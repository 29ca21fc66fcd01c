package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/constants"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/helpers"
	"github.com/sschier-sketch/folio-api/internal/mocks"
	"github.com/sschier-sketch/folio-api/internal/services"
	"github.com/sschier-sketch/folio-api/internal/types/params"
)

type reminderFixture struct {
	querier *mocks.MockQuerier
	sender  *mocks.MockEmailSender
	service *services.ReminderService
	ownerID uuid.UUID
}

func newReminderFixture(t *testing.T) *reminderFixture {
	querier := mocks.NewMockQuerierForTest(t)
	sender := mocks.NewMockEmailSenderForTest(t)
	logger := zap.NewNop()

	service := services.NewReminderService(
		querier,
		logger,
		services.NewEscalationService(),
		services.NewTemplateService(querier, logger),
		services.NewSettingsService(querier, logger),
		sender,
	)

	return &reminderFixture{
		querier: querier,
		sender:  sender,
		service: service,
		ownerID: uuid.New(),
	}
}

func overduePaymentRow(ownerID uuid.UUID, dueDate time.Time, amountCents int64) db.GetRentPaymentForDunningRow {
	return db.GetRentPaymentForDunningRow{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		LeaseID:         uuid.New(),
		DueDate:         pgtype.Date{Time: dueDate, Valid: true},
		AmountCents:     amountCents,
		PaidAmountCents: 0,
		IsPaid:          pgtype.Bool{Bool: false, Valid: true},
		PaymentStatus:   constants.PaymentStatusUnpaid,
		TenantName:      "Max Mustermann",
		TenantEmail:     pgtype.Text{String: "max@example.com", Valid: true},
		PropertyName:    "Hauptstraße 5",
		UnitLabel:       pgtype.Text{String: "WE 3", Valid: true},
	}
}

func levelOneTemplate(ownerID uuid.UUID) db.DunningEmailTemplate {
	return db.DunningEmailTemplate{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		DunningLevel: 1,
		Subject:      "Freundliche Erinnerung: Mietzahlung",
		Message:      "Guten Tag [TENANT_NAME], für [PROPERTY_NAME] sind [AMOUNT] zum [DUE_DATE] offen.",
	}
}

// expectDispatchSuccess wires the happy-path store and sender expectations in
// strict order: outbox before send, record only after send, payment update
// only after the record.
func expectDispatchSuccess(f *reminderFixture, payment db.GetRentPaymentForDunningRow, template db.DunningEmailTemplate) (uuid.UUID, *db.InsertReminderRecordParams) {
	entryID := uuid.New()
	recordID := uuid.New()
	var capturedRecord db.InsertReminderRecordParams

	getPayment := f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), db.GetRentPaymentForDunningParams{
			ID:      payment.ID,
			OwnerID: f.ownerID,
		}).
		Return(payment, nil)

	getTemplate := f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(template, nil)

	createOutbox := f.querier.EXPECT().
		CreateOutboxEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateOutboxEntryParams) (db.DunningOutboxEntry, error) {
			return db.DunningOutboxEntry{
				ID:           entryID,
				OwnerID:      arg.OwnerID,
				PaymentID:    arg.PaymentID,
				DunningLevel: arg.DunningLevel,
				State:        arg.State,
			}, nil
		})

	send := f.sender.EXPECT().
		SendReminderEmail(gomock.Any(), gomock.Any()).
		Return("resend-id", nil)

	markSent := f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), stateMatcher(entryID, constants.OutboxStateSent)).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateSent}, nil)

	insertRecord := f.querier.EXPECT().
		InsertReminderRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertReminderRecordParams) (db.ReminderRecord, error) {
			capturedRecord = arg
			return db.ReminderRecord{
				ID:             recordID,
				OwnerID:        arg.OwnerID,
				PaymentID:      arg.PaymentID,
				DunningLevel:   arg.DunningLevel,
				RecipientEmail: arg.RecipientEmail,
				Subject:        arg.Subject,
				DeliveryStatus: arg.DeliveryStatus,
				SentAt:         arg.SentAt,
			}, nil
		})

	markRecorded := f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), stateMatcher(entryID, constants.OutboxStateRecorded)).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateRecorded}, nil)

	updatePayment := f.querier.EXPECT().
		UpdateRentPaymentDunningState(gomock.Any(), gomock.Any()).
		Return(db.RentPayment{}, nil)

	finalize := f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), stateMatcher(entryID, constants.OutboxStateFinalized)).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateFinalized}, nil)

	gomock.InOrder(getPayment, getTemplate, createOutbox, send, markSent, insertRecord, markRecorded, updatePayment, finalize)

	return recordID, &capturedRecord
}

// stateMatcher matches an UpdateOutboxEntryStateParams by entry ID and target state.
func stateMatcher(entryID uuid.UUID, state string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		arg, ok := x.(db.UpdateOutboxEntryStateParams)
		return ok && arg.ID == entryID && arg.State == state
	})
}

func TestReminderService_SendReminder_Success(t *testing.T) {
	f := newReminderFixture(t)
	dueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	payment := overduePaymentRow(f.ownerID, dueDate, 85000)

	recordID, captured := expectDispatchSuccess(f, payment, levelOneTemplate(f.ownerID))

	start := time.Now()
	resp, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    payment.ID,
		DunningLevel: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, recordID, resp.ReminderID)
	assert.Equal(t, payment.ID, resp.PaymentID)
	assert.Equal(t, int32(1), resp.DunningLevel)
	assert.Equal(t, "max@example.com", resp.RecipientEmail)
	assert.Equal(t, "Freundliche Erinnerung: Mietzahlung", resp.Subject)
	assert.False(t, resp.SentAt.Before(start))

	// The audit record carries the rendered copy
	assert.Equal(t, constants.DeliveryStatusSent, captured.DeliveryStatus)
	assert.Contains(t, captured.Message, "850,00 €")
	assert.Contains(t, captured.Message, "01.03.2026")
	assert.Contains(t, captured.Message, "Hauptstraße 5 (WE 3)")
}

func TestReminderService_SendReminder_SuggestedLevel(t *testing.T) {
	f := newReminderFixture(t)

	// 10 days overdue under the default 7/14/28 policy resolves to level 1
	dueDate := time.Now().UTC().AddDate(0, 0, -10)
	payment := overduePaymentRow(f.ownerID, dueDate, 85000)

	f.querier.EXPECT().
		GetDunningSettings(gomock.Any(), f.ownerID).
		Return(db.DunningSetting{}, pgx.ErrNoRows)

	_, captured := expectDispatchSuccess(f, payment, levelOneTemplate(f.ownerID))

	resp, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:   f.ownerID,
		PaymentID: payment.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), resp.DunningLevel)
	assert.Equal(t, "Freundliche Erinnerung: Mietzahlung", resp.Subject)
	assert.Contains(t, captured.Message, "850,00 €")
	assert.Contains(t, captured.Message, helpers.FormatGermanDate(dueDate))
}

func TestReminderService_SendReminder_InvalidLevel(t *testing.T) {
	f := newReminderFixture(t)

	for _, level := range []int32{-1, 4, 99} {
		_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
			OwnerID:      f.ownerID,
			PaymentID:    uuid.New(),
			DunningLevel: level,
		})
		assert.ErrorIs(t, err, services.ErrInvalidDunningLevel)
	}
}

func TestReminderService_SendReminder_PaymentNotFound(t *testing.T) {
	f := newReminderFixture(t)

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(db.GetRentPaymentForDunningRow{}, pgx.ErrNoRows)

	_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    uuid.New(),
		DunningLevel: 1,
	})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestReminderService_SendReminder_RecipientMissing(t *testing.T) {
	f := newReminderFixture(t)
	payment := overduePaymentRow(f.ownerID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 85000)
	payment.TenantEmail = pgtype.Text{}

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(payment, nil)

	_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    payment.ID,
		DunningLevel: 1,
	})
	assert.ErrorIs(t, err, services.ErrRecipientMissing)
}

// A missing template aborts the dispatch before any send or record: the
// strict mocks would fail the test on an unexpected sender or store call.
func TestReminderService_SendReminder_TemplateMissing(t *testing.T) {
	f := newReminderFixture(t)
	payment := overduePaymentRow(f.ownerID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 85000)

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(payment, nil)
	f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(db.DunningEmailTemplate{}, pgx.ErrNoRows)

	_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    payment.ID,
		DunningLevel: 2,
	})
	assert.ErrorIs(t, err, services.ErrTemplateMissing)
}

func TestReminderService_SendReminder_DeliveryFailure(t *testing.T) {
	f := newReminderFixture(t)
	payment := overduePaymentRow(f.ownerID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 85000)
	entryID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(payment, nil)
	f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(levelOneTemplate(f.ownerID), nil)
	f.querier.EXPECT().
		CreateOutboxEntry(gomock.Any(), gomock.Any()).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStatePending}, nil)
	f.sender.EXPECT().
		SendReminderEmail(gomock.Any(), gomock.Any()).
		Return("", &services.DeliveryError{Timeout: false, Err: errors.New("mailbox unavailable")})
	f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), stateMatcher(entryID, constants.OutboxStateFailed)).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateFailed}, nil)

	_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    payment.ID,
		DunningLevel: 1,
	})

	var deliveryErr *services.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.False(t, deliveryErr.Timeout)
}

func TestReminderService_SendReminder_RecordFailureAfterSend(t *testing.T) {
	f := newReminderFixture(t)
	payment := overduePaymentRow(f.ownerID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 85000)
	entryID := uuid.New()

	f.querier.EXPECT().
		GetRentPaymentForDunning(gomock.Any(), gomock.Any()).
		Return(payment, nil)
	f.querier.EXPECT().
		GetActiveEmailTemplate(gomock.Any(), gomock.Any()).
		Return(levelOneTemplate(f.ownerID), nil)
	f.querier.EXPECT().
		CreateOutboxEntry(gomock.Any(), gomock.Any()).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStatePending}, nil)
	f.sender.EXPECT().
		SendReminderEmail(gomock.Any(), gomock.Any()).
		Return("resend-id", nil)
	f.querier.EXPECT().
		UpdateOutboxEntryState(gomock.Any(), stateMatcher(entryID, constants.OutboxStateSent)).
		Return(db.DunningOutboxEntry{ID: entryID, State: constants.OutboxStateSent}, nil)
	f.querier.EXPECT().
		InsertReminderRecord(gomock.Any(), gomock.Any()).
		Return(db.ReminderRecord{}, errors.New("connection reset"))

	_, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID:      f.ownerID,
		PaymentID:    payment.ID,
		DunningLevel: 1,
	})

	var persistenceErr *services.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "record", persistenceErr.Stage)
	assert.True(t, persistenceErr.EmailSent)
	assert.Contains(t, err.Error(), "sent but not recorded")
}

// Dispatch is not idempotent: two calls for the same payment and level send
// two emails and write two records.
func TestReminderService_SendReminder_DoubleDispatch(t *testing.T) {
	f := newReminderFixture(t)
	dueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	payment := overduePaymentRow(f.ownerID, dueDate, 85000)

	firstID, _ := expectDispatchSuccess(f, payment, levelOneTemplate(f.ownerID))

	first, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID: f.ownerID, PaymentID: payment.ID, DunningLevel: 1,
	})
	require.NoError(t, err)

	secondID, _ := expectDispatchSuccess(f, payment, levelOneTemplate(f.ownerID))

	second, err := f.service.SendReminder(context.Background(), params.SendReminderParams{
		OwnerID: f.ownerID, PaymentID: payment.ID, DunningLevel: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, firstID, first.ReminderID)
	assert.Equal(t, secondID, second.ReminderID)
	assert.NotEqual(t, first.ReminderID, second.ReminderID)
}

func TestReminderService_ListOverduePayments(t *testing.T) {
	f := newReminderFixture(t)

	rows := []db.ListOverdueRentPaymentsRow{
		overduePaymentRow(f.ownerID, time.Now().UTC().AddDate(0, 0, -10), 60000),
		overduePaymentRow(f.ownerID, time.Now().UTC().AddDate(0, 0, -20), 85000),
		overduePaymentRow(f.ownerID, time.Now().UTC().AddDate(0, 0, -30), 120000),
		overduePaymentRow(f.ownerID, time.Now().UTC().AddDate(0, 0, -2), 50000),
	}

	f.querier.EXPECT().
		GetDunningSettings(gomock.Any(), f.ownerID).
		Return(db.DunningSetting{}, pgx.ErrNoRows)
	f.querier.EXPECT().
		ListOverdueRentPayments(gomock.Any(), f.ownerID).
		Return(rows, nil)

	result, err := f.service.ListOverduePayments(context.Background(), f.ownerID)
	require.NoError(t, err)
	require.Len(t, result, 4)

	assert.Equal(t, int32(1), result[0].SuggestedLevel)
	assert.Equal(t, int32(2), result[1].SuggestedLevel)
	assert.Equal(t, int32(3), result[2].SuggestedLevel)
	assert.Equal(t, int32(0), result[3].SuggestedLevel)
	assert.Equal(t, int64(85000), result[1].OutstandingCents)
	assert.Equal(t, int32(20), result[1].DaysOverdue)
}

func TestReminderService_ListReminderHistory(t *testing.T) {
	f := newReminderFixture(t)
	paymentIDs := []uuid.UUID{uuid.New(), uuid.New()}

	records := []db.ReminderRecord{
		{ID: uuid.New(), PaymentID: paymentIDs[0], DunningLevel: 1},
		{ID: uuid.New(), PaymentID: paymentIDs[1], DunningLevel: 2},
	}

	f.querier.EXPECT().
		ListReminderRecordsByPaymentIDs(gomock.Any(), db.ListReminderRecordsByPaymentIDsParams{
			OwnerID:    f.ownerID,
			PaymentIds: paymentIDs,
		}).
		Return(records, nil)

	result, err := f.service.ListReminderHistory(context.Background(), f.ownerID, paymentIDs)
	require.NoError(t, err)
	assert.Equal(t, records, result)
}
