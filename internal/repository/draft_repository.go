package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// CreateNextVersion mirrors SummaryRepository.CreateNextVersion: lock the
// meeting row, compute max(version)+1, insert, all in one transaction.
func (r *DraftRepository) CreateNextVersion(draft *model.EmailDraft) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var meeting model.Meeting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", draft.MeetingID).
			First(&meeting).Error; err != nil {
			return err
		}

		var maxVersion int
		if err := tx.Model(&model.EmailDraft{}).
			Where("meeting_id = ?", draft.MeetingID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error; err != nil {
			return err
		}

		draft.Version = maxVersion + 1
		return tx.Create(draft).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("create email draft failed: %w", err)
	}
	return nil
}

func (r *DraftRepository) GetByID(id string) (*model.EmailDraft, error) {
	var draft model.EmailDraft
	if err := r.db.Where("id = ?", id).First(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query email draft by id failed: %w", err)
	}
	return &draft, nil
}

func (r *DraftRepository) ListByMeetingID(meetingID string) ([]model.EmailDraft, error) {
	var drafts []model.EmailDraft
	if err := r.db.Where("meeting_id = ?", meetingID).Order("version ASC").Find(&drafts).Error; err != nil {
		return nil, fmt.Errorf("list email drafts failed: %w", err)
	}
	return drafts, nil
}
