package repository

import (
	"context"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/google/uuid"
)

// PipelineStageRepository defines the interface for pipeline stage data
// operations. Stages are a short ordered list; listing is not paginated.
type PipelineStageRepository interface {
	Create(ctx context.Context, stage *entity.PipelineStage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineStage, error)
	Update(ctx context.Context, stage *entity.PipelineStage) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all stages by their explicit order, ascending.
	List(ctx context.Context) ([]entity.PipelineStage, error)
}
