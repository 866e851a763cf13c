package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailDraft follows the same append-only versioning pattern as
// MeetingSummary. Recipient lists are stored as JSON arrays of strings in
// TEXT columns for portability.
type EmailDraft struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	MeetingID   string    `gorm:"type:char(36);not null;index" json:"meeting_id"`
	Version     int       `gorm:"not null" json:"version"`
	Subject     string    `gorm:"size:512;not null" json:"subject"`
	BodyHTML    string    `gorm:"type:text;not null" json:"body_html"`
	ToEmails    string    `gorm:"type:text;not null" json:"-"`
	CcEmails    string    `gorm:"type:text" json:"-"`
	Language    string    `gorm:"size:8;not null;default:en" json:"language"`
	CreatedByAI bool      `gorm:"not null;default:true" json:"created_by_ai"`
	CreatedAt   time.Time `json:"created_at"`
}

func (EmailDraft) TableName() string { return "email_draft" }

func (d *EmailDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// ToList returns the parsed "to" recipients; empty on parse error.
func (d *EmailDraft) ToList() []string {
	return decodeEmails(d.ToEmails)
}

// CcList returns the parsed "cc" recipients; empty on parse error.
func (d *EmailDraft) CcList() []string {
	return decodeEmails(d.CcEmails)
}

// SetRecipients stores both recipient lists as JSON.
func (d *EmailDraft) SetRecipients(to, cc []string) {
	d.ToEmails = encodeEmails(to)
	d.CcEmails = encodeEmails(cc)
}

func encodeEmails(emails []string) string {
	if len(emails) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(emails)
	return string(b)
}

func decodeEmails(raw string) []string {
	if raw == "" {
		return nil
	}
	var emails []string
	_ = json.Unmarshal([]byte(raw), &emails)
	return emails
}
