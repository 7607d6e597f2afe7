package repository

import (
	"context"
	"errors"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	domainRepo "github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

// withRelations declares, once, which related entities a lead fetch eagerly
// attaches. Absent relations stay nil.
func withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Company").
		Preload("Contact").
		Preload("Stage").
		Preload("AssignedUser")
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := withRelations(r.db.WithContext(ctx)).
		First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).
		Omit("Company", "Contact", "Stage", "AssignedUser").
		Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, filter *domainRepo.LeadFilter) ([]entity.Lead, error) {
	var leads []entity.Lead

	query := withRelations(r.db.WithContext(ctx).Model(&entity.Lead{}))

	if filter.StageID != nil {
		query = query.Where("pipeline_stage_id = ?", *filter.StageID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	filter.Validate()
	err := query.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&leads).Error

	return leads, err
}

func (r *leadRepository) CreateBundle(ctx context.Context, company *entity.Company, contact *entity.Contact, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if company != nil {
			if err := tx.Create(company).Error; err != nil {
				return err
			}
			lead.CompanyID = &company.ID
			if contact != nil && contact.CompanyID == nil {
				contact.CompanyID = &company.ID
			}
		}
		if contact != nil {
			if err := tx.Create(contact).Error; err != nil {
				return err
			}
			lead.ContactID = &contact.ID
		}
		return tx.Create(lead).Error
	})
}
