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

// FollowUpHandler handles follow-up related HTTP requests
type FollowUpHandler struct {
	followUpService *service.FollowUpService
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(followUpService *service.FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{followUpService: followUpService}
}

// List handles listing follow-ups. ?overdue=true narrows to pending
// follow-ups due today or earlier; ?status=overdue means the same thing,
// since overdue is derived rather than stored.
func (h *FollowUpHandler) List(c *gin.Context) {
	filter := &repository.FollowUpFilter{
		LeadID:     parseUUIDQuery(c, "leadId"),
		AssignedTo: parseUUIDQuery(c, "assignedTo"),
		Overdue:    c.Query("overdue") == "true",
		ListParams: parseListParams(c),
	}
	if raw := c.Query("status"); raw != "" {
		switch {
		case enum.FollowUpStatus(raw) == enum.FollowUpStatusOverdue:
			filter.Overdue = true
		case enum.ValidFollowUpStatus(raw):
			status := enum.FollowUpStatus(raw)
			filter.Status = &status
		default:
			response.BadRequest(c, "Invalid status filter")
			return
		}
	}

	followUps, err := h.followUpService.ListFollowUps(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, followUps)
}

// Create handles creating a follow-up
func (h *FollowUpHandler) Create(c *gin.Context) {
	var input service.CreateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	followUp, err := h.followUpService.CreateFollowUp(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, followUp)
}

// Get handles getting a single follow-up with its lead attached
func (h *FollowUpHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Follow-up"))
		return
	}

	followUp, err := h.followUpService.GetFollowUp(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, followUp)
}

// Update handles partially updating a follow-up
func (h *FollowUpHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Follow-up"))
		return
	}

	var input service.UpdateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	followUp, err := h.followUpService.UpdateFollowUp(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, followUp)
}

// Delete handles deleting a follow-up, returning the removed snapshot
func (h *FollowUpHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Follow-up"))
		return
	}

	followUp, err := h.followUpService.DeleteFollowUp(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true, "followUp": followUp})
}
