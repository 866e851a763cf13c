package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingSummary is append-only: a new row with version = max+1 is inserted
// per generation, never updated.
type MeetingSummary struct {
	ID                    string    `gorm:"type:char(36);primaryKey" json:"id"`
	MeetingID             string    `gorm:"type:char(36);not null;index" json:"meeting_id"`
	Version               int       `gorm:"not null" json:"version"`
	Language              string    `gorm:"size:8;not null;default:en" json:"language"`
	SummaryMD             string    `gorm:"type:text;not null" json:"summary_md"`
	Model                 string    `gorm:"size:64;not null" json:"model"`
	PromptTemplateVersion string    `gorm:"size:32" json:"prompt_template_version,omitempty"`
	CreatedByAI           bool      `gorm:"not null;default:true" json:"created_by_ai"`
	CreatedAt             time.Time `json:"created_at"`
}

func (MeetingSummary) TableName() string { return "meeting_summary" }

func (s *MeetingSummary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
