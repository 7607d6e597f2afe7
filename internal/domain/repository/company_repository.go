package repository

import (
	"context"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/google/uuid"
)

// CompanyFilter narrows a company listing.
type CompanyFilter struct {
	// Search is a case-insensitive substring match on name and industry.
	Search string
	pagination.ListParams
}

// CompanyRepository defines the interface for company data operations.
// GetByID returns (nil, nil) when no record matches; callers decide whether
// that is an error.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns companies newest-created first.
	List(ctx context.Context, filter *CompanyFilter) ([]entity.Company, error)
}
