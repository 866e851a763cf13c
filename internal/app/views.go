package app

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

// View structs are the wire shapes handlers serialize. They exist so derived
// fields (meeting title, recipient lists, customer stats) have a place to
// live without being stored.

type UserView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Locale      string `json:"locale"`
	Timezone    string `json:"timezone"`
	Role        string `json:"role"`
}

func NewUserView(user *model.User) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Locale:      user.Locale,
		Timezone:    user.Timezone,
		Role:        user.Role,
	}
}

type CustomerView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	LogoURL         string          `json:"logo_url"`
	ARRUSD          decimal.Decimal `json:"arr_usd"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	LastMeetingDate *string         `json:"last_meeting_date,omitempty"`
	ContactsCount   int64           `json:"contacts_count"`
	MeetingsCount   int64           `json:"meetings_count"`
}

func NewCustomerView(customer *model.Customer) CustomerView {
	return CustomerView{
		ID:        customer.ID,
		Name:      customer.Name,
		LogoURL:   customer.LogoURL,
		ARRUSD:    customer.ARRUSD,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

type AssetView struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	OCRText    string    `json:"ocr_text,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func NewAssetView(asset *model.MeetingAsset) AssetView {
	return AssetView{
		ID:         asset.ID,
		Kind:       asset.Kind,
		FileURL:    asset.FileURL,
		FileName:   asset.FileName,
		OCRText:    asset.OCRText,
		UploadedAt: asset.UploadedAt,
	}
}

type SummaryView struct {
	ID          string    `json:"id"`
	Version     int       `json:"version"`
	Language    string    `json:"language"`
	SummaryMD   string    `json:"summary_md"`
	Model       string    `json:"model"`
	CreatedByAI bool      `json:"created_by_ai"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSummaryView(summary *model.MeetingSummary) SummaryView {
	return SummaryView{
		ID:          summary.ID,
		Version:     summary.Version,
		Language:    summary.Language,
		SummaryMD:   summary.SummaryMD,
		Model:       summary.Model,
		CreatedByAI: summary.CreatedByAI,
		CreatedAt:   summary.CreatedAt,
	}
}

type DraftView struct {
	ID          string    `json:"id"`
	Version     int       `json:"version"`
	Subject     string    `json:"subject"`
	BodyHTML    string    `json:"body_html"`
	ToEmails    []string  `json:"to_emails"`
	CcEmails    []string  `json:"cc_emails"`
	Language    string    `json:"language"`
	CreatedByAI bool      `json:"created_by_ai"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewDraftView(draft *model.EmailDraft) DraftView {
	to := draft.ToList()
	if to == nil {
		to = []string{}
	}
	cc := draft.CcList()
	if cc == nil {
		cc = []string{}
	}
	return DraftView{
		ID:          draft.ID,
		Version:     draft.Version,
		Subject:     draft.Subject,
		BodyHTML:    draft.BodyHTML,
		ToEmails:    to,
		CcEmails:    cc,
		Language:    draft.Language,
		CreatedByAI: draft.CreatedByAI,
		CreatedAt:   draft.CreatedAt,
	}
}

type MeetingView struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	MeetingDate string        `json:"meeting_date"`
	TitleHint   string        `json:"title_hint"`
	RawNotes    string        `json:"raw_notes"`
	Title       string        `json:"title"`
	CreatedAt   time.Time     `json:"created_at"`
	Assets      []AssetView   `json:"assets"`
	Summaries   []SummaryView `json:"summaries"`
	EmailDrafts []DraftView   `json:"email_drafts"`
}

func NewMeetingView(meeting *model.Meeting) MeetingView {
	view := MeetingView{
		ID:          meeting.ID,
		CustomerID:  meeting.CustomerID,
		MeetingDate: meeting.MeetingDate.Format("2006-01-02"),
		TitleHint:   meeting.TitleHint,
		RawNotes:    meeting.RawNotes,
		Title:       meeting.Title(),
		CreatedAt:   meeting.CreatedAt,
		Assets:      []AssetView{},
		Summaries:   []SummaryView{},
		EmailDrafts: []DraftView{},
	}
	for i := range meeting.Assets {
		view.Assets = append(view.Assets, NewAssetView(&meeting.Assets[i]))
	}
	for i := range meeting.Summaries {
		view.Summaries = append(view.Summaries, NewSummaryView(&meeting.Summaries[i]))
	}
	for i := range meeting.Drafts {
		view.EmailDrafts = append(view.EmailDrafts, NewDraftView(&meeting.Drafts[i]))
	}
	return view
}
