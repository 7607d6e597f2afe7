package service

import (
	"context"
	"strings"
	"time"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
)

// FollowUpService handles follow-up related operations
type FollowUpService struct {
	followUpRepo repository.FollowUpRepository
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(followUpRepo repository.FollowUpRepository) *FollowUpService {
	return &FollowUpService{followUpRepo: followUpRepo}
}

// CreateFollowUpInput represents the create follow-up input
type CreateFollowUpInput struct {
	LeadID      *uuid.UUID `json:"leadId"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     string     `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Type        string     `json:"type"`
	Notes       *string    `json:"notes"`
}

func (in *CreateFollowUpInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(in.DueDate) == "" {
		errs = append(errs, apperror.FieldError{Field: "dueDate", Message: "Due date is required"})
	} else if !isValidDate(in.DueDate) {
		errs = append(errs, apperror.FieldError{Field: "dueDate", Message: "Due date must be a valid date (YYYY-MM-DD)"})
	}
	if in.Priority != nil && *in.Priority != "" && !enum.ValidPriority(*in.Priority) {
		errs = append(errs, apperror.FieldError{Field: "priority", Message: "Priority must be one of low, medium, high"})
	}
	if strings.TrimSpace(in.Type) == "" {
		errs = append(errs, apperror.FieldError{Field: "type", Message: "Type is required"})
	} else if !enum.ValidFollowUpType(in.Type) {
		errs = append(errs, apperror.FieldError{Field: "type", Message: "Type must be one of call, email, meeting, demo, proposal"})
	}

	return errs
}

// CreateFollowUp validates the input, applies defaults and persists a new
// follow-up. New follow-ups always start pending.
func (s *FollowUpService) CreateFollowUp(ctx context.Context, input *CreateFollowUpInput) (*entity.FollowUp, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	followUp := &entity.FollowUp{
		LeadID:      input.LeadID,
		AssignedTo:  input.AssignedTo,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    enum.PriorityMedium,
		Status:      enum.FollowUpStatusPending,
		Type:        enum.FollowUpType(input.Type),
		Notes:       input.Notes,
	}
	if input.Priority != nil && *input.Priority != "" {
		followUp.Priority = enum.Priority(*input.Priority)
	}

	if err := s.followUpRepo.Create(ctx, followUp); err != nil {
		return nil, err
	}

	return s.GetFollowUp(ctx, followUp.ID)
}

// GetFollowUp retrieves a follow-up by ID with its lead and assigned user
func (s *FollowUpService) GetFollowUp(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error) {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, apperror.NewNotFoundError("Follow-up")
	}
	return followUp, nil
}

// ListFollowUps lists follow-ups. When the overdue filter is set, only
// pending follow-ups due on or before today are returned.
func (s *FollowUpService) ListFollowUps(ctx context.Context, filter *repository.FollowUpFilter) ([]entity.FollowUp, error) {
	if filter.Overdue && filter.Today == "" {
		filter.Today = today()
	}
	return s.followUpRepo.List(ctx, filter)
}

// UpdateFollowUpInput represents the update follow-up input
type UpdateFollowUpInput struct {
	LeadID      *uuid.UUID `json:"leadId"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	Type        *string    `json:"type"`
	Notes       *string    `json:"notes"`
}

func (in *UpdateFollowUpInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if in.DueDate != nil && !isValidDate(*in.DueDate) {
		errs = append(errs, apperror.FieldError{Field: "dueDate", Message: "Due date must be a valid date (YYYY-MM-DD)"})
	}
	if in.Priority != nil && !enum.ValidPriority(*in.Priority) {
		errs = append(errs, apperror.FieldError{Field: "priority", Message: "Priority must be one of low, medium, high"})
	}
	// Overdue is derived, never assigned.
	if in.Status != nil && !enum.ValidFollowUpStatus(*in.Status) {
		errs = append(errs, apperror.FieldError{Field: "status", Message: "Status must be one of pending, completed, cancelled"})
	}
	if in.Type != nil && !enum.ValidFollowUpType(*in.Type) {
		errs = append(errs, apperror.FieldError{Field: "type", Message: "Type must be one of call, email, meeting, demo, proposal"})
	}

	return errs
}

// UpdateFollowUp applies only the supplied fields. Completing a follow-up
// stamps completedAt; reopening clears it.
func (s *FollowUpService) UpdateFollowUp(ctx context.Context, id uuid.UUID, input *UpdateFollowUpInput) (*entity.FollowUp, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, apperror.NewNotFoundError("Follow-up")
	}

	if input.LeadID != nil {
		followUp.LeadID = input.LeadID
	}
	if input.AssignedTo != nil {
		followUp.AssignedTo = input.AssignedTo
	}
	if input.Title != nil {
		followUp.Title = *input.Title
	}
	if input.Description != nil {
		followUp.Description = input.Description
	}
	if input.DueDate != nil {
		followUp.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		followUp.Priority = enum.Priority(*input.Priority)
	}
	if input.Status != nil {
		status := enum.FollowUpStatus(*input.Status)
		if status == enum.FollowUpStatusCompleted && followUp.Status != enum.FollowUpStatusCompleted {
			now := time.Now()
			followUp.CompletedAt = &now
		}
		if status != enum.FollowUpStatusCompleted {
			followUp.CompletedAt = nil
		}
		followUp.Status = status
	}
	if input.Type != nil {
		followUp.Type = enum.FollowUpType(*input.Type)
	}
	if input.Notes != nil {
		followUp.Notes = input.Notes
	}

	if err := s.followUpRepo.Update(ctx, followUp); err != nil {
		return nil, err
	}

	return s.GetFollowUp(ctx, id)
}

// DeleteFollowUp deletes a follow-up and returns the removed snapshot
func (s *FollowUpService) DeleteFollowUp(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error) {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, apperror.NewNotFoundError("Follow-up")
	}

	if err := s.followUpRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return followUp, nil
}
