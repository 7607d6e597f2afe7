package repository

import (
	"context"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/google/uuid"
)

// ContactFilter narrows a contact listing.
type ContactFilter struct {
	// Search is a case-insensitive substring match on first name, last name
	// and email.
	Search    string
	CompanyID *uuid.UUID
	pagination.ListParams
}

// ContactRepository defines the interface for contact data operations.
// Reads attach the related company when one is referenced (left-outer-join
// semantics: a missing company yields a nil field, not an error).
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns contacts newest-created first, joined with their company.
	List(ctx context.Context, filter *ContactFilter) ([]entity.Contact, error)
}
