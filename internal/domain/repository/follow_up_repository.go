package repository

import (
	"context"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/google/uuid"
)

// FollowUpFilter narrows a follow-up listing.
type FollowUpFilter struct {
	Status     *enum.FollowUpStatus
	LeadID     *uuid.UUID
	AssignedTo *uuid.UUID
	// Overdue selects pending follow-ups whose due date is on or before
	// Today. Dates are compared as ISO calendar-date strings.
	Overdue bool
	Today   string
	pagination.ListParams
}

// FollowUpRepository defines the interface for follow-up data operations.
// Reads attach the related lead and assigned user.
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *entity.FollowUp) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error)
	Update(ctx context.Context, followUp *entity.FollowUp) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns follow-ups ordered by due date, most recent first.
	List(ctx context.Context, filter *FollowUpFilter) ([]entity.FollowUp, error)
}
