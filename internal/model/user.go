package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	DisplayName  string    `gorm:"size:128" json:"display_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Locale       string    `gorm:"size:16;not null;default:en" json:"locale"`
	Timezone     string    `gorm:"size:64;not null;default:Asia/Jerusalem" json:"timezone"`
	Role         string    `gorm:"size:32;not null;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "app_user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
