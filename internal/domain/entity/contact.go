package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact represents a person at a company. The company reference is
// optional; a contact can exist before its company is known.
type Contact struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID  *uuid.UUID `gorm:"type:uuid;index" json:"companyId,omitempty"`
	FirstName  string     `gorm:"size:100;not null" json:"firstName"`
	LastName   string     `gorm:"size:100;not null" json:"lastName"`
	Email      string     `gorm:"size:255;not null" json:"email"`
	Phone      *string    `gorm:"size:50" json:"phone,omitempty"`
	Position   *string    `gorm:"size:100" json:"position,omitempty"`
	Department *string    `gorm:"size:100" json:"department,omitempty"`
	// At most one contact per company is conceptually primary; the data
	// layer does not enforce it.
	IsPrimary bool      `gorm:"default:false" json:"isPrimary"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Company *Company `gorm:"foreignKey:CompanyID" json:"company"`
}

// BeforeCreate generates a UUID before inserting a new contact.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contact model.
func (Contact) TableName() string {
	return "contacts"
}
