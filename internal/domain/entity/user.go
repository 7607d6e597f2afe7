package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a CRM user that leads and follow-ups can be assigned to.
// Authentication is out of scope; the table exists as the referential
// target for assignedTo and is populated by seeding.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:50;default:'user'" json:"role"`
	Password  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before inserting a new user.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}
