package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/metrics"
	"github.com/sschier-sketch/folio-api/internal/types/params"
)

// DefaultSendTimeout bounds the email provider call when no explicit timeout
// is configured.
const DefaultSendTimeout = 10 * time.Second

// EmailService sends reminder emails through Resend.
type EmailService struct {
	client      *resend.Client
	logger      *zap.Logger
	fromEmail   string
	fromName    string
	sendTimeout time.Duration
}

func NewEmailService(apiKey string, fromEmail string, fromName string, sendTimeout time.Duration, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}

	return &EmailService{
		client:      client,
		logger:      logger,
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendTimeout: sendTimeout,
	}
}

// SendReminderEmail delivers one rendered reminder and returns the provider's
// message id. Failures (including the bounded timeout) come back as a
// *DeliveryError; nothing is retried here.
func (s *EmailService) SendReminderEmail(ctx context.Context, p params.ReminderEmailParams) (string, error) {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	request := &resend.SendEmailRequest{
		From:    from,
		To:      []string{p.To},
		Subject: p.Subject,
		Html:    p.HTMLBody,
		Text:    p.TextBody,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "dunning"},
			{Name: "dunning_level", Value: fmt.Sprintf("%d", p.DunningLevel)},
		},
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	start := time.Now()
	sent, err := s.client.Emails.SendWithContext(sendCtx, request)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(sendCtx.Err(), context.DeadlineExceeded)
		metrics.RecordEmailSendDuration("error", time.Since(start))
		s.logger.Error("failed to send reminder email",
			zap.Error(err),
			zap.String("to", p.To),
			zap.Int32("dunning_level", p.DunningLevel),
			zap.Bool("timeout", timeout))
		return "", &DeliveryError{Timeout: timeout, Err: err}
	}
	metrics.RecordEmailSendDuration("ok", time.Since(start))

	s.logger.Info("reminder email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", p.To),
		zap.Int32("dunning_level", p.DunningLevel))

	return sent.Id, nil
}
