package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// CreateNextVersion assigns version = max(version)+1 for the meeting and
// inserts the summary. The parent meeting row is locked FOR UPDATE first so
// concurrent generations on the same meeting serialize instead of racing to
// the same version number.
func (r *SummaryRepository) CreateNextVersion(summary *model.MeetingSummary) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var meeting model.Meeting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", summary.MeetingID).
			First(&meeting).Error; err != nil {
			return err
		}

		var maxVersion int
		if err := tx.Model(&model.MeetingSummary{}).
			Where("meeting_id = ?", summary.MeetingID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error; err != nil {
			return err
		}

		summary.Version = maxVersion + 1
		return tx.Create(summary).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("create summary failed: %w", err)
	}
	return nil
}

func (r *SummaryRepository) GetByID(id string) (*model.MeetingSummary, error) {
	var summary model.MeetingSummary
	if err := r.db.Where("id = ?", id).First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query summary by id failed: %w", err)
	}
	return &summary, nil
}

func (r *SummaryRepository) ListByMeetingID(meetingID string) ([]model.MeetingSummary, error) {
	var summaries []model.MeetingSummary
	if err := r.db.Where("meeting_id = ?", meetingID).Order("version ASC").Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("list summaries failed: %w", err)
	}
	return summaries, nil
}
