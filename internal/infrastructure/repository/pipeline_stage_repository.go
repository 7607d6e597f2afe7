package repository

import (
	"context"
	"errors"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	domainRepo "github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pipelineStageRepository struct {
	db *gorm.DB
}

// NewPipelineStageRepository creates a new pipeline stage repository
func NewPipelineStageRepository(db *gorm.DB) domainRepo.PipelineStageRepository {
	return &pipelineStageRepository{db: db}
}

func (r *pipelineStageRepository) Create(ctx context.Context, stage *entity.PipelineStage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *pipelineStageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineStage, error) {
	var stage entity.PipelineStage
	err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stage, err
}

func (r *pipelineStageRepository) Update(ctx context.Context, stage *entity.PipelineStage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

func (r *pipelineStageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PipelineStage{}, "id = ?", id).Error
}

func (r *pipelineStageRepository) List(ctx context.Context) ([]entity.PipelineStage, error) {
	var stages []entity.PipelineStage
	err := r.db.WithContext(ctx).
		Order(`"order" ASC`).
		Find(&stages).Error
	return stages, err
}
