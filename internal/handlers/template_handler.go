package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/interfaces"
	"github.com/sschier-sketch/folio-api/internal/types/requests"
)

type TemplateHandler struct {
	common          *CommonServices
	templateService interfaces.TemplateService
}

// NewTemplateHandler creates a handler with interface dependencies
func NewTemplateHandler(common *CommonServices, templateService interfaces.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		common:          common,
		templateService: templateService,
	}
}

// ListTemplates lists the owner's dunning email templates
// @Summary List email templates
// @Description List the owner's reminder templates, seeding the German defaults on first access
// @Tags dunning
// @Produce json
// @Success 200 {array} db.DunningEmailTemplate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/email-templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), ownerID)
	if err != nil {
		h.common.HandleError(c, err, "Failed to list email templates", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// UpdateTemplate updates one dunning email template
// @Summary Update email template
// @Description Update the subject and message of one template
// @Tags dunning
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Param template body requests.UpdateEmailTemplateRequest true "Template copy"
// @Success 200 {object} db.DunningEmailTemplate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/email-templates/{template_id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	templateID, err := uuid.Parse(c.Param("template_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid template ID"})
		return
	}

	var req requests.UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	arg := db.UpdateEmailTemplateParams{
		ID:       templateID,
		OwnerID:  ownerID,
		Subject:  req.Subject,
		Message:  req.Message,
		IsActive: true,
	}
	if req.IsActive != nil {
		arg.IsActive = *req.IsActive
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Template not found"})
			return
		}
		h.common.HandleError(c, err, "Failed to update email template", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, template)
}

// ResetTemplates restores the default templates
// @Summary Reset email templates
// @Description Deactivate the owner's templates and restore the German defaults
// @Tags dunning
// @Produce json
// @Success 200 {array} db.DunningEmailTemplate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dunning/email-templates/reset [post]
func (h *TemplateHandler) ResetTemplates(c *gin.Context) {
	ownerID, err := GetOwnerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	templates, err := h.templateService.ResetDefaults(c.Request.Context(), ownerID)
	if err != nil {
		h.common.HandleError(c, err, "Failed to reset email templates", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, templates)
}
