package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is the root of the ownership chain: deleting a customer removes its
// contacts and meetings (and their artifacts) via database-level cascades.
type Customer struct {
	ID        string          `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null;index" json:"name"`
	LogoURL   string          `gorm:"size:512" json:"logo_url"`
	ARRUSD    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"arr_usd"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedBy *string         `gorm:"type:char(36);index" json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Creator  *User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	Contacts []Contact `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Meetings []Meeting `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string { return "customer" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
