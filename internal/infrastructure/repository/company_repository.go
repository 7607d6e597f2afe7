package repository

import (
	"context"
	"errors"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	domainRepo "github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// No cascade: dependent contacts and leads keep their companyId.
	return r.db.WithContext(ctx).Delete(&entity.Company{}, "id = ?", id).Error
}

func (r *companyRepository) List(ctx context.Context, filter *domainRepo.CompanyFilter) ([]entity.Company, error) {
	var companies []entity.Company

	query := r.db.WithContext(ctx).Model(&entity.Company{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(COALESCE(industry, '')) LIKE LOWER(?)",
			pattern, pattern)
	}

	filter.Validate()
	err := query.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&companies).Error

	return companies, err
}
