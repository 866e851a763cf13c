package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact belongs to exactly one customer and is cascade-deleted with it.
// The unique_customer_email constraint carried over from the schema is a
// non-null CHECK only; (customer_id, email) pairs are NOT unique.
type Contact struct {
	ID         string  `gorm:"type:char(36);primaryKey" json:"id"`
	CustomerID string  `gorm:"type:char(36);not null;index;check:unique_customer_email,customer_id IS NOT NULL AND email IS NOT NULL" json:"customer_id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Role       string  `gorm:"size:128" json:"role"`
	Phone      string  `gorm:"size:64" json:"phone"`
	Email      *string `gorm:"size:255" json:"email"`
}

func (Contact) TableName() string { return "contact" }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
