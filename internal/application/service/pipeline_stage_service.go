package service

import (
	"context"
	"strings"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
)

// PipelineStageService handles pipeline stage operations
type PipelineStageService struct {
	stageRepo repository.PipelineStageRepository
}

// NewPipelineStageService creates a new pipeline stage service
func NewPipelineStageService(stageRepo repository.PipelineStageRepository) *PipelineStageService {
	return &PipelineStageService{stageRepo: stageRepo}
}

// CreatePipelineStageInput represents the create pipeline stage input
type CreatePipelineStageInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       *Number `json:"order"`
	Color       *string `json:"color"`
	IsDefault   *bool   `json:"isDefault"`
}

func (in *CreatePipelineStageInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Stage name is required"})
	}
	if in.Order == nil {
		errs = append(errs, apperror.FieldError{Field: "order", Message: "Order is required"})
	}

	return errs
}

// CreatePipelineStage validates the input, applies defaults and persists a
// new stage.
func (s *PipelineStageService) CreatePipelineStage(ctx context.Context, input *CreatePipelineStageInput) (*entity.PipelineStage, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	stage := &entity.PipelineStage{
		Name:        input.Name,
		Description: input.Description,
		Order:       input.Order.Int(),
		Color:       entity.DefaultStageColor,
	}
	if input.Color != nil && *input.Color != "" {
		stage.Color = *input.Color
	}
	if input.IsDefault != nil {
		stage.IsDefault = *input.IsDefault
	}

	if err := s.stageRepo.Create(ctx, stage); err != nil {
		return nil, err
	}

	return stage, nil
}

// GetPipelineStage retrieves a pipeline stage by ID
func (s *PipelineStageService) GetPipelineStage(ctx context.Context, id uuid.UUID) (*entity.PipelineStage, error) {
	stage, err := s.stageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, apperror.NewNotFoundError("Pipeline stage")
	}
	return stage, nil
}

// ListPipelineStages lists all stages by their explicit order, ascending.
func (s *PipelineStageService) ListPipelineStages(ctx context.Context) ([]entity.PipelineStage, error) {
	return s.stageRepo.List(ctx)
}

// UpdatePipelineStageInput represents the update pipeline stage input
type UpdatePipelineStageInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *Number `json:"order"`
	Color       *string `json:"color"`
	IsDefault   *bool   `json:"isDefault"`
}

func (in *UpdatePipelineStageInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Stage name is required"})
	}

	return errs
}

// UpdatePipelineStage applies only the supplied fields
func (s *PipelineStageService) UpdatePipelineStage(ctx context.Context, id uuid.UUID, input *UpdatePipelineStageInput) (*entity.PipelineStage, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	stage, err := s.stageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, apperror.NewNotFoundError("Pipeline stage")
	}

	if input.Name != nil {
		stage.Name = *input.Name
	}
	if input.Description != nil {
		stage.Description = input.Description
	}
	if input.Order != nil {
		stage.Order = input.Order.Int()
	}
	if input.Color != nil && *input.Color != "" {
		stage.Color = *input.Color
	}
	if input.IsDefault != nil {
		stage.IsDefault = *input.IsDefault
	}

	if err := s.stageRepo.Update(ctx, stage); err != nil {
		return nil, err
	}

	return stage, nil
}

// DeletePipelineStage deletes a stage and returns the removed snapshot.
// Leads referencing the stage keep the dead id; there is no cascade.
func (s *PipelineStageService) DeletePipelineStage(ctx context.Context, id uuid.UUID) (*entity.PipelineStage, error) {
	stage, err := s.stageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, apperror.NewNotFoundError("Pipeline stage")
	}

	if err := s.stageRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return stage, nil
}
