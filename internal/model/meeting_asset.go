package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssetKindImage = "image"
	AssetKindFile  = "file"
)

type MeetingAsset struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	MeetingID  string    `gorm:"type:char(36);not null;index" json:"meeting_id"`
	Kind       string    `gorm:"size:16;not null;check:valid_asset_kind,kind IN ('image','file')" json:"kind"`
	FileURL    string    `gorm:"size:512;not null" json:"file_url"`
	FileName   string    `gorm:"size:255" json:"file_name"`
	OCRText    string    `gorm:"type:text" json:"ocr_text,omitempty"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (MeetingAsset) TableName() string { return "meeting_asset" }

func (a *MeetingAsset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// AssetUploadedEvent is the queue payload published after an asset upload.
// The OCR worker consumes it and fills OCRText for image assets.
type AssetUploadedEvent struct {
	AssetID   string `json:"asset_id"`
	MeetingID string `json:"meeting_id"`
	Kind      string `json:"kind"`
	FileURL   string `json:"file_url"`
}
