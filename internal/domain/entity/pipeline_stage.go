package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultStageColor is applied when a stage is created without a color.
const DefaultStageColor = "#3b82f6"

// PipelineStage is a named, ordered checkpoint in the sales funnel.
// Exactly one stage is expected to be marked default; the data layer does
// not enforce it.
type PipelineStage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Order       int       `gorm:"column:order;not null" json:"order"`
	// Color is carried through for the UI and never semantically validated.
	Color     string    `gorm:"size:20;default:'#3b82f6'" json:"color"`
	IsDefault bool      `gorm:"default:false" json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before inserting a new stage.
func (s *PipelineStage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PipelineStage model.
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}
