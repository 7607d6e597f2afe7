package repository

import (
	"context"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/google/uuid"
)

// LeadFilter narrows a lead listing.
type LeadFilter struct {
	// Search is a case-insensitive substring match on the lead title.
	Search  string
	StageID *uuid.UUID
	Status  *enum.LeadStatus
	pagination.ListParams
}

// LeadRepository defines the interface for lead data operations. Reads are
// composite fetches: each lead is joined with its company, contact, pipeline
// stage and assigned user; absent relations yield nil fields.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns leads newest-created first.
	List(ctx context.Context, filter *LeadFilter) ([]entity.Lead, error)
	// CreateBundle persists an optional company, an optional contact and the
	// lead in a single transaction. The created ids are wired into the lead
	// before it is inserted; any failure rolls the whole bundle back.
	CreateBundle(ctx context.Context, company *entity.Company, contact *entity.Contact, lead *entity.Lead) error
}
