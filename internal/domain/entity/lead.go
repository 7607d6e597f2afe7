package entity

import (
	"time"

	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProbability is applied when a lead is created without a probability.
const DefaultProbability = 50

// Lead is a prospective sale tracked through pipeline stages. Its stage
// expresses funnel position; its status is independent of stage and is what
// conversion metrics reduce over.
type Lead struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID       *uuid.UUID `gorm:"type:uuid;index" json:"companyId,omitempty"`
	ContactID       *uuid.UUID `gorm:"type:uuid;index" json:"contactId,omitempty"`
	PipelineStageID *uuid.UUID `gorm:"type:uuid;index" json:"pipelineStageId,omitempty"`
	AssignedTo      *uuid.UUID `gorm:"type:uuid;index" json:"assignedTo,omitempty"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     *string    `gorm:"type:text" json:"description,omitempty"`
	Value           *float64   `json:"value,omitempty"`
	// Probability is conceptually 0-100 but only the default is enforced.
	Probability       int             `gorm:"default:50" json:"probability"`
	ExpectedCloseDate *string         `gorm:"size:10" json:"expectedCloseDate,omitempty"`
	Source            *string         `gorm:"size:100" json:"source,omitempty"`
	Status            enum.LeadStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	Priority          enum.Priority   `gorm:"size:20;default:'medium'" json:"priority"`
	// Tags is a serialized JSON array, CustomFields a serialized JSON
	// object; both are opaque to the data layer.
	Tags         *string   `gorm:"type:text" json:"tags,omitempty"`
	CustomFields *string   `gorm:"type:text" json:"customFields,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relationships
	Company      *Company       `gorm:"foreignKey:CompanyID" json:"company"`
	Contact      *Contact       `gorm:"foreignKey:ContactID" json:"contact"`
	Stage        *PipelineStage `gorm:"foreignKey:PipelineStageID" json:"stage"`
	AssignedUser *User          `gorm:"foreignKey:AssignedTo" json:"assignedUser"`
}

// BeforeCreate generates a UUID before inserting a new lead.
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model.
func (Lead) TableName() string {
	return "leads"
}
