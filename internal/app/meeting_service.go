package app

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/ZivNavon/customer-management-tool/internal/ai"
	"github.com/ZivNavon/customer-management-tool/internal/model"
	"github.com/ZivNavon/customer-management-tool/internal/repository"
	"github.com/ZivNavon/customer-management-tool/internal/storage"
)

var ErrMeetingNotFound = errors.New("meeting not found")

// AssetEventPublisher forwards asset-uploaded events to the OCR worker queue.
type AssetEventPublisher interface {
	Publish(ctx context.Context, event model.AssetUploadedEvent) error
}

// MeetingCache caches serialized meeting-detail views.
type MeetingCache interface {
	GetDetail(ctx context.Context, meetingID string) ([]byte, bool, error)
	SetDetail(ctx context.Context, meetingID string, payload []byte) error
	DeleteDetail(ctx context.Context, meetingID string) error
	MarkDirty(ctx context.Context, meetingID string) error
	IsDirty(ctx context.Context, meetingID string) (bool, error)
}

type MeetingService struct {
	meetingRepo  *repository.MeetingRepository
	customerRepo *repository.CustomerRepository
	contactRepo  *repository.ContactRepository
	assetRepo    *repository.AssetRepository
	summaryRepo  *repository.SummaryRepository
	draftRepo    *repository.DraftRepository

	store     *storage.AssetStore
	publisher AssetEventPublisher
	cache     MeetingCache

	modelLabel    string
	promptVersion string
}

type CreateMeetingInput struct {
	CustomerID  string
	MeetingDate time.Time
	TitleHint   string
	RawNotes    string
	CreatedBy   string
}

type UploadAssetInput struct {
	MeetingID   string
	FileName    string
	ContentType string
	Data        []byte
}

func NewMeetingService(
	meetingRepo *repository.MeetingRepository,
	customerRepo *repository.CustomerRepository,
	contactRepo *repository.ContactRepository,
	assetRepo *repository.AssetRepository,
	summaryRepo *repository.SummaryRepository,
	draftRepo *repository.DraftRepository,
	store *storage.AssetStore,
	publisher AssetEventPublisher,
	cache MeetingCache,
	modelLabel, promptVersion string,
) *MeetingService {
	if modelLabel == "" {
		modelLabel = "gpt-4"
	}
	if promptVersion == "" {
		promptVersion = "v1.0"
	}
	return &MeetingService{
		meetingRepo:   meetingRepo,
		customerRepo:  customerRepo,
		contactRepo:   contactRepo,
		assetRepo:     assetRepo,
		summaryRepo:   summaryRepo,
		draftRepo:     draftRepo,
		store:         store,
		publisher:     publisher,
		cache:         cache,
		modelLabel:    modelLabel,
		promptVersion: promptVersion,
	}
}

func (s *MeetingService) CreateMeeting(input CreateMeetingInput) (*MeetingView, error) {
	if input.CustomerID == "" || input.MeetingDate.IsZero() {
		return nil, ErrInvalidInput
	}

	customer, err := s.customerRepo.GetByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	meeting := &model.Meeting{
		CustomerID:  input.CustomerID,
		MeetingDate: input.MeetingDate,
		TitleHint:   input.TitleHint,
		RawNotes:    input.RawNotes,
	}
	if input.CreatedBy != "" {
		createdBy := input.CreatedBy
		meeting.CreatedBy = &createdBy
	}
	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, err
	}

	view := NewMeetingView(meeting)
	return &view, nil
}

func (s *MeetingService) ListMeetings(customerID string) ([]MeetingView, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	meetings, err := s.meetingRepo.ListByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	views := make([]MeetingView, 0, len(meetings))
	for i := range meetings {
		views = append(views, NewMeetingView(&meetings[i]))
	}
	return views, nil
}

// GetMeeting returns the meeting with nested assets, summaries, and drafts.
// Cache reads are skipped while a dirty marker is live; cache failures fall
// through to the database.
func (s *MeetingService) GetMeeting(ctx context.Context, id string) (*MeetingView, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, id)
		if err == nil && !dirty {
			if raw, hit, cacheErr := s.cache.GetDetail(ctx, id); cacheErr == nil && hit {
				var view MeetingView
				if unmarshalErr := json.Unmarshal(raw, &view); unmarshalErr == nil {
					return &view, nil
				}
			}
		}
	}

	meeting, err := s.meetingRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	view := NewMeetingView(meeting)
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, id); dirtyErr == nil && !dirty {
			if payload, marshalErr := json.Marshal(view); marshalErr == nil {
				_ = s.cache.SetDetail(ctx, id, payload)
			}
		}
	}
	return &view, nil
}

// UploadAsset writes the file first and the database row second; a failed
// insert leaves the file behind (no compensation).
func (s *MeetingService) UploadAsset(ctx context.Context, input UploadAssetInput) (*model.MeetingAsset, error) {
	if input.MeetingID == "" || input.FileName == "" {
		return nil, ErrInvalidInput
	}

	meeting, err := s.meetingRepo.GetByID(input.MeetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	path, err := s.store.Save(input.MeetingID, input.FileName, input.Data)
	if err != nil {
		return nil, err
	}

	asset := &model.MeetingAsset{
		MeetingID: input.MeetingID,
		Kind:      ClassifyAssetKind(input.ContentType),
		FileURL:   path,
		FileName:  input.FileName,
	}
	if err := s.assetRepo.Create(asset); err != nil {
		return nil, err
	}

	s.invalidateMeeting(ctx, input.MeetingID)

	if s.publisher != nil {
		event := model.AssetUploadedEvent{
			AssetID:   asset.ID,
			MeetingID: asset.MeetingID,
			Kind:      asset.Kind,
			FileURL:   asset.FileURL,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Upload already succeeded; OCR is best effort.
			log.Printf("publish asset event failed: %v", err)
		}
	}

	return asset, nil
}

// GenerateSummary renders the next-version markdown summary for the meeting
// and persists it.
func (s *MeetingService) GenerateSummary(ctx context.Context, meetingID, language string) (*model.MeetingSummary, error) {
	meeting, err := s.meetingRepo.GetByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	language = normalizeLanguage(language)
	summary := &model.MeetingSummary{
		MeetingID:             meetingID,
		Language:              language,
		SummaryMD:             ai.MeetingSummaryMarkdown(meeting.Title(), meeting.RawNotes, language),
		Model:                 s.modelLabel,
		PromptTemplateVersion: s.promptVersion,
		CreatedByAI:           true,
	}
	if err := s.summaryRepo.CreateNextVersion(summary); err != nil {
		return nil, err
	}

	s.invalidateMeeting(ctx, meetingID)
	return summary, nil
}

// GenerateEmailDraft renders the next-version follow-up email. Recipients
// come from the customer's contacts that have an email address: the first
// two go TO, the rest CC.
func (s *MeetingService) GenerateEmailDraft(ctx context.Context, meetingID, language string) (*model.EmailDraft, error) {
	meeting, err := s.meetingRepo.GetByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	customer, err := s.customerRepo.GetByID(meeting.CustomerID)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer != nil {
		customerName = customer.Name
	}

	language = normalizeLanguage(language)
	content := ai.EmailDraft(customerName, meeting.MeetingDate.Format("2006-01-02"), meeting.RawNotes, language)

	emails, err := s.contactRepo.ListEmailsByCustomerID(meeting.CustomerID)
	if err != nil {
		return nil, err
	}
	to, cc := SplitRecipients(emails)

	draft := &model.EmailDraft{
		MeetingID:   meetingID,
		Subject:     content.Subject,
		BodyHTML:    content.Body,
		Language:    language,
		CreatedByAI: true,
	}
	draft.SetRecipients(to, cc)
	if err := s.draftRepo.CreateNextVersion(draft); err != nil {
		return nil, err
	}

	s.invalidateMeeting(ctx, meetingID)
	return draft, nil
}

func (s *MeetingService) invalidateMeeting(ctx context.Context, meetingID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.MarkDirty(ctx, meetingID)
	_ = s.cache.DeleteDetail(ctx, meetingID)
}

// ClassifyAssetKind maps an upload's content type to an asset kind: image/*
// is an image, everything else a file.
func ClassifyAssetKind(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return model.AssetKindImage
	}
	return model.AssetKindFile
}

// SplitRecipients puts the first two addresses on the TO line and the rest
// on CC.
func SplitRecipients(emails []string) (to, cc []string) {
	if len(emails) <= 2 {
		return emails, nil
	}
	return emails[:2], emails[2:]
}

func normalizeLanguage(language string) string {
	language = strings.TrimSpace(strings.ToLower(language))
	if language == "" {
		return "en"
	}
	return language
}
