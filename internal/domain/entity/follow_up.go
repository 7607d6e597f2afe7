package entity

import (
	"time"

	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUp is a scheduled task tied to a lead requiring future action.
type FollowUp struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LeadID      *uuid.UUID `gorm:"type:uuid;index" json:"leadId,omitempty"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index" json:"assignedTo,omitempty"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	// DueDate is an ISO calendar date (YYYY-MM-DD); overdue comparisons are
	// plain string comparisons against today's date.
	DueDate     string              `gorm:"size:10;not null" json:"dueDate"`
	Priority    enum.Priority       `gorm:"size:20;default:'medium'" json:"priority"`
	Status      enum.FollowUpStatus `gorm:"size:20;default:'pending'" json:"status"`
	Type        enum.FollowUpType   `gorm:"size:20;not null" json:"type"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	Notes       *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`

	// Relationships
	Lead         *Lead `gorm:"foreignKey:LeadID" json:"lead"`
	AssignedUser *User `gorm:"foreignKey:AssignedTo" json:"assignedUser"`
}

// IsOverdue reports whether the follow-up is pending with a due date on or
// before today. Overdue is always derived; it is never stored as a status.
func (f *FollowUp) IsOverdue(today string) bool {
	return f.Status == enum.FollowUpStatusPending && f.DueDate != "" && f.DueDate <= today
}

// BeforeCreate generates a UUID before inserting a new follow-up.
func (f *FollowUp) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FollowUp model.
func (FollowUp) TableName() string {
	return "follow_ups"
}
