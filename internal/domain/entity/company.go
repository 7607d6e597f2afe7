package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCountry is applied when a company is created without a country.
const DefaultCountry = "Costa Rica"

// Company represents a business account in the CRM. Nothing owns a company;
// contacts and leads reference it optionally.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Industry  *string   `gorm:"size:100" json:"industry,omitempty"`
	Website   *string   `gorm:"size:255" json:"website,omitempty"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	City      *string   `gorm:"size:100" json:"city,omitempty"`
	Country   string    `gorm:"size:100;default:'Costa Rica'" json:"country"`
	Employees *int      `json:"employees,omitempty"`
	Revenue   *float64  `json:"revenue,omitempty"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before inserting a new company.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model.
func (Company) TableName() string {
	return "companies"
}
