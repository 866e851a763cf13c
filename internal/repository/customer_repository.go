package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(customer *model.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("create customer failed: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(id string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query customer by id failed: %w", err)
	}
	return &customer, nil
}

// List returns customers filtered by a case-insensitive substring match on
// name when search is non-empty.
func (r *CustomerRepository) List(search string, limit, offset int) ([]model.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := r.db.Model(&model.Customer{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var customers []model.Customer
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers failed: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Save(customer *model.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("save customer failed: %w", err)
	}
	return nil
}

// Delete removes the customer row; contacts, meetings, and meeting artifacts
// go with it through the ON DELETE CASCADE foreign keys.
func (r *CustomerRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Customer{}).Error; err != nil {
		return fmt.Errorf("delete customer failed: %w", err)
	}
	return nil
}

func (r *CustomerRepository) CountContacts(customerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Contact{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count contacts failed: %w", err)
	}
	return count, nil
}

func (r *CustomerRepository) CountMeetings(customerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Meeting{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count meetings failed: %w", err)
	}
	return count, nil
}

// LastMeetingDate returns the most recent meeting date, or nil when the
// customer has no meetings.
func (r *CustomerRepository) LastMeetingDate(customerID string) (*time.Time, error) {
	var meeting model.Meeting
	err := r.db.Where("customer_id = ?", customerID).Order("meeting_date DESC").First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last meeting date failed: %w", err)
	}
	return &meeting.MeetingDate, nil
}
