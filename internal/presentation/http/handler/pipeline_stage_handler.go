package handler

import (
	"github.com/codigofacil/crm-api/internal/application/service"
	"github.com/codigofacil/crm-api/internal/presentation/http/dto/response"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PipelineStageHandler handles pipeline stage HTTP requests
type PipelineStageHandler struct {
	stageService *service.PipelineStageService
}

// NewPipelineStageHandler creates a new pipeline stage handler
func NewPipelineStageHandler(stageService *service.PipelineStageService) *PipelineStageHandler {
	return &PipelineStageHandler{stageService: stageService}
}

// List handles listing pipeline stages in display order
func (h *PipelineStageHandler) List(c *gin.Context) {
	stages, err := h.stageService.ListPipelineStages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stages)
}

// Create handles creating a pipeline stage
func (h *PipelineStageHandler) Create(c *gin.Context) {
	var input service.CreatePipelineStageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stage, err := h.stageService.CreatePipelineStage(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, stage)
}

// Get handles getting a single pipeline stage
func (h *PipelineStageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Pipeline stage"))
		return
	}

	stage, err := h.stageService.GetPipelineStage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stage)
}

// Update handles partially updating a pipeline stage
func (h *PipelineStageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Pipeline stage"))
		return
	}

	var input service.UpdatePipelineStageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stage, err := h.stageService.UpdatePipelineStage(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stage)
}

// Delete handles deleting a pipeline stage, returning the removed snapshot
func (h *PipelineStageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Pipeline stage"))
		return
	}

	stage, err := h.stageService.DeletePipelineStage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true, "pipelineStage": stage})
}
