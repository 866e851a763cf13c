package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(asset *model.MeetingAsset) error {
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("create asset failed: %w", err)
	}
	return nil
}

func (r *AssetRepository) GetByID(id string) (*model.MeetingAsset, error) {
	var asset model.MeetingAsset
	if err := r.db.Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query asset by id failed: %w", err)
	}
	return &asset, nil
}

func (r *AssetRepository) ListByMeetingID(meetingID string) ([]model.MeetingAsset, error) {
	var assets []model.MeetingAsset
	if err := r.db.Where("meeting_id = ?", meetingID).Order("uploaded_at ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("list assets failed: %w", err)
	}
	return assets, nil
}

// SetOCRText records the text extracted by the OCR worker.
func (r *AssetRepository) SetOCRText(id, text string) error {
	if err := r.db.Model(&model.MeetingAsset{}).Where("id = ?", id).Update("ocr_text", text).Error; err != nil {
		return fmt.Errorf("update asset ocr text failed: %w", err)
	}
	return nil
}
