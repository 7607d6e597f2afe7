package handler

import (
	"github.com/codigofacil/crm-api/internal/application/service"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/internal/presentation/http/dto/response"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List handles listing leads with their relations attached
func (h *LeadHandler) List(c *gin.Context) {
	filter := &repository.LeadFilter{
		Search:     c.Query("search"),
		StageID:    parseUUIDQuery(c, "stage"),
		ListParams: parseListParams(c),
	}
	if raw := c.Query("status"); raw != "" {
		if !enum.ValidLeadStatus(raw) {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status := enum.LeadStatus(raw)
		filter.Status = &status
	}

	leads, err := h.leadService.ListLeads(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, leads)
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	var input service.CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, lead)
}

// CreateBundle handles creating a lead together with an optional nested
// company and contact in one transaction.
func (h *LeadHandler) CreateBundle(c *gin.Context) {
	var input service.CreateLeadBundleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLeadBundle(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, lead)
}

// Get handles getting a single lead with its relations attached
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Lead"))
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, lead)
}

// Update handles partially updating a lead
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Lead"))
		return
	}

	var input service.UpdateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, lead)
}

// Delete handles deleting a lead, returning the removed snapshot
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Lead"))
		return
	}

	lead, err := h.leadService.DeleteLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true, "lead": lead})
}
