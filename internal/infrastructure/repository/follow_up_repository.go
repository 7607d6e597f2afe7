package repository

import (
	"context"
	"errors"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	domainRepo "github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type followUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new follow-up repository
func NewFollowUpRepository(db *gorm.DB) domainRepo.FollowUpRepository {
	return &followUpRepository{db: db}
}

func (r *followUpRepository) Create(ctx context.Context, followUp *entity.FollowUp) error {
	return r.db.WithContext(ctx).Create(followUp).Error
}

func (r *followUpRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error) {
	var followUp entity.FollowUp
	err := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("AssignedUser").
		First(&followUp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &followUp, err
}

func (r *followUpRepository) Update(ctx context.Context, followUp *entity.FollowUp) error {
	return r.db.WithContext(ctx).
		Omit("Lead", "AssignedUser").
		Save(followUp).Error
}

func (r *followUpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.FollowUp{}, "id = ?", id).Error
}

func (r *followUpRepository) List(ctx context.Context, filter *domainRepo.FollowUpFilter) ([]entity.FollowUp, error) {
	var followUps []entity.FollowUp

	query := r.db.WithContext(ctx).Model(&entity.FollowUp{}).
		Preload("Lead").
		Preload("AssignedUser")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.LeadID != nil {
		query = query.Where("lead_id = ?", *filter.LeadID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Overdue {
		// Overdue is derived, never stored: pending with a due date on or
		// before today, compared as ISO calendar-date strings.
		query = query.Where("status = ? AND due_date <= ?", enum.FollowUpStatusPending, filter.Today)
	}

	filter.Validate()
	err := query.Offset(filter.Offset).Limit(filter.Limit).
		Order("due_date DESC").
		Find(&followUps).Error

	return followUps, err
}
