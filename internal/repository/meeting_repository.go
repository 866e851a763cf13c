package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(meeting *model.Meeting) error {
	if err := r.db.Create(meeting).Error; err != nil {
		return fmt.Errorf("create meeting failed: %w", err)
	}
	return nil
}

func (r *MeetingRepository) GetByID(id string) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := r.db.Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query meeting by id failed: %w", err)
	}
	return &meeting, nil
}

// GetDetail loads a meeting with its assets, summaries, and drafts. Artifact
// lists come back in version order so the latest generation is last.
func (r *MeetingRepository) GetDetail(id string) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.db.
		Preload("Assets", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Preload("Summaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("version ASC")
		}).
		Preload("Drafts", func(db *gorm.DB) *gorm.DB {
			return db.Order("version ASC")
		}).
		Where("id = ?", id).
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query meeting detail failed: %w", err)
	}
	return &meeting, nil
}

func (r *MeetingRepository) ListByCustomerID(customerID string) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.db.
		Preload("Assets").
		Preload("Summaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("version ASC")
		}).
		Preload("Drafts", func(db *gorm.DB) *gorm.DB {
			return db.Order("version ASC")
		}).
		Where("customer_id = ?", customerID).
		Order("meeting_date DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("list meetings failed: %w", err)
	}
	return meetings, nil
}
