package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/constants"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/helpers"
	"github.com/sschier-sketch/folio-api/internal/types/business"
)

// TemplateService owns reminder template lookup, default seeding and
// placeholder rendering.
type TemplateService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewTemplateService(queries db.Querier, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		queries: queries,
		logger:  logger,
	}
}

// GetActiveTemplate returns the active template for (owner, level), or
// ErrTemplateMissing when none is configured.
func (s *TemplateService) GetActiveTemplate(ctx context.Context, ownerID uuid.UUID, level int32) (*db.DunningEmailTemplate, error) {
	template, err := s.queries.GetActiveEmailTemplate(ctx, db.GetActiveEmailTemplateParams{
		OwnerID:      ownerID,
		DunningLevel: level,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTemplateMissing
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	return &template, nil
}

// ListTemplates returns the owner's templates, seeding the German defaults on
// first access so a fresh account always has one template per level.
func (s *TemplateService) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]db.DunningEmailTemplate, error) {
	count, err := s.queries.CountEmailTemplates(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count email templates: %w", err)
	}
	if count == 0 {
		if _, err := s.createDefaults(ctx, ownerID); err != nil {
			return nil, err
		}
		s.logger.Info("seeded default reminder templates",
			zap.String("owner_id", ownerID.String()))
	}

	templates, err := s.queries.ListEmailTemplates(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplate edits one template's subject, body and active flag.
func (s *TemplateService) UpdateTemplate(ctx context.Context, arg db.UpdateEmailTemplateParams) (*db.DunningEmailTemplate, error) {
	template, err := s.queries.UpdateEmailTemplate(ctx, arg)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTemplateMissing
		}
		return nil, fmt.Errorf("failed to update email template: %w", err)
	}
	return &template, nil
}

// ResetDefaults deactivates the owner's templates and recreates the built-in
// German defaults for all three levels.
func (s *TemplateService) ResetDefaults(ctx context.Context, ownerID uuid.UUID) ([]db.DunningEmailTemplate, error) {
	if err := s.queries.DeactivateEmailTemplates(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to deactivate existing templates: %w", err)
	}
	return s.createDefaults(ctx, ownerID)
}

func (s *TemplateService) createDefaults(ctx context.Context, ownerID uuid.UUID) ([]db.DunningEmailTemplate, error) {
	created := make([]db.DunningEmailTemplate, 0, len(defaultReminderTemplates))
	for _, dt := range defaultReminderTemplates {
		template, err := s.queries.CreateEmailTemplate(ctx, db.CreateEmailTemplateParams{
			OwnerID:      ownerID,
			DunningLevel: dt.level,
			Subject:      dt.subject,
			Message:      dt.message,
			IsActive:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create default template for level %d: %w", dt.level, err)
		}
		created = append(created, template)
	}
	return created, nil
}

// Render substitutes the placeholder tokens into the template's subject and
// body and derives the branded HTML document. Every occurrence of a token is
// replaced; tokens outside the allow-list are left as written.
func (s *TemplateService) Render(template *db.DunningEmailTemplate, rc business.ReminderContext) *business.RenderedReminder {
	propertyName := rc.PropertyName
	if rc.UnitLabel != "" {
		propertyName = fmt.Sprintf("%s (%s)", rc.PropertyName, rc.UnitLabel)
	}

	outstanding := helpers.FormatEURCents(rc.OutstandingCents)
	total := helpers.FormatEURCents(rc.OutstandingCents + constants.LateFeeCents)

	replacer := strings.NewReplacer(
		"[TENANT_NAME]", rc.TenantName,
		"[PROPERTY_NAME]", propertyName,
		"[AMOUNT]", outstanding,
		"[DUE_DATE]", helpers.FormatGermanDate(rc.DueDate),
		"[TOTAL_AMOUNT]", total,
	)

	subject := replacer.Replace(template.Subject)
	message := replacer.Replace(template.Message)

	return &business.RenderedReminder{
		Subject:  subject,
		Message:  message,
		HTMLBody: wrapReminderHTML(message),
	}
}

// wrapReminderHTML converts the rendered plain-text message into the branded
// email document. The whole message is HTML-escaped before line breaks are
// restored, so tenant- and owner-supplied text cannot inject markup.
func wrapReminderHTML(message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>\n")
	return fmt.Sprintf(reminderHTMLLayout, escaped)
}

const reminderHTMLLayout = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <a href="https://www.folio.immo"><strong>Folio</strong></a>
        </div>
        <div class="content">
            <p>%s</p>
        </div>
        <div class="footer">
            <p>&copy; Folio &middot; Alle Rechte vorbehalten</p>
        </div>
    </div>
</body>
</html>`

type defaultTemplate struct {
	level   int32
	subject string
	message string
}

// The built-in German template copy, one per escalation level. Level 3
// mentions the fixed 5,00 € late fee via [TOTAL_AMOUNT].
var defaultReminderTemplates = []defaultTemplate{
	{
		level:   1,
		subject: "Freundliche Erinnerung: Mietzahlung",
		message: `Guten Tag [TENANT_NAME],

für Ihre Wohnung [PROPERTY_NAME] ist die Mietzahlung in Höhe von [AMOUNT] zum [DUE_DATE] noch offen.

Sicher handelt es sich nur um ein Versehen. Wir bitten Sie, den offenen Betrag in den nächsten Tagen zu überweisen. Sollten Sie die Zahlung bereits veranlasst haben, betrachten Sie diese Nachricht bitte als gegenstandslos.

Mit freundlichen Grüßen
Ihre Hausverwaltung`,
	},
	{
		level:   2,
		subject: "Zahlungsaufforderung: Offene Mietzahlung",
		message: `Sehr geehrte/r [TENANT_NAME],

trotz unserer Erinnerung ist die Mietzahlung für [PROPERTY_NAME] in Höhe von [AMOUNT], fällig am [DUE_DATE], weiterhin offen.

Wir fordern Sie auf, den offenen Betrag innerhalb von 7 Tagen zu begleichen. Bei Fragen zur Zahlung wenden Sie sich bitte umgehend an Ihre Hausverwaltung.

Mit freundlichen Grüßen
Ihre Hausverwaltung`,
	},
	{
		level:   3,
		subject: "Mahnung: Letzte Zahlungsaufforderung",
		message: `Sehr geehrte/r [TENANT_NAME],

die Mietzahlung für [PROPERTY_NAME] in Höhe von [AMOUNT], fällig am [DUE_DATE], ist trotz mehrfacher Aufforderung nicht eingegangen.

Wir mahnen Sie hiermit letztmalig. Zusätzlich zur offenen Miete berechnen wir eine Mahngebühr von 5,00 €. Bitte überweisen Sie den Gesamtbetrag von [TOTAL_AMOUNT] innerhalb von 7 Tagen.

Sollte der Betrag nicht fristgerecht eingehen, behalten wir uns weitere rechtliche Schritte vor.

Mit freundlichen Grüßen
Ihre Hausverwaltung`,
	},
}
