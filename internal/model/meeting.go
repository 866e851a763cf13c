package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meeting struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	CustomerID  string    `gorm:"type:char(36);not null;index" json:"customer_id"`
	MeetingDate time.Time `gorm:"type:date;not null" json:"-"`
	TitleHint   string    `gorm:"size:255" json:"title_hint"`
	RawNotes    string    `gorm:"type:text" json:"raw_notes"`
	CreatedBy   *string   `gorm:"type:char(36);index" json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Creator   *User            `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	Assets    []MeetingAsset   `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
	Summaries []MeetingSummary `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
	Drafts    []EmailDraft     `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Meeting) TableName() string { return "meeting" }

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// Title derives the display title from the meeting date and the optional
// hint; it is computed on read, never stored.
func (m *Meeting) Title() string {
	hint := strings.TrimSpace(m.TitleHint)
	if hint == "" {
		hint = "Meeting"
	}
	return m.MeetingDate.Format("2006-01-02") + " – " + hint
}
