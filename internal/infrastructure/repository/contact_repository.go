package repository

import (
	"context"
	"errors"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	domainRepo "github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contact entity.Contact
	err := r.db.WithContext(ctx).
		Preload("Company").
		First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contact, err
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Omit("Company").Save(contact).Error
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Contact{}, "id = ?", id).Error
}

func (r *contactRepository) List(ctx context.Context, filter *domainRepo.ContactFilter) ([]entity.Contact, error) {
	var contacts []entity.Contact

	query := r.db.WithContext(ctx).Model(&entity.Contact{}).
		Preload("Company")

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern)
	}

	filter.Validate()
	err := query.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&contacts).Error

	return contacts, err
}
