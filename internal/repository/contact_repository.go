package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ZivNavon/customer-management-tool/internal/model"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("create contact failed: %w", err)
	}
	return nil
}

func (r *ContactRepository) GetByID(id string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query contact by id failed: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) ListByCustomerID(customerID string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("customer_id = ?", customerID).Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts failed: %w", err)
	}
	return contacts, nil
}

// ListEmailsByCustomerID returns the addresses of contacts that have one, in
// insertion-stable order. Used to pick TO/CC recipients for email drafts.
func (r *ContactRepository) ListEmailsByCustomerID(customerID string) ([]string, error) {
	var contacts []model.Contact
	if err := r.db.Where("customer_id = ? AND email IS NOT NULL", customerID).Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contact emails failed: %w", err)
	}
	emails := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.Email != nil && *contact.Email != "" {
			emails = append(emails, *contact.Email)
		}
	}
	return emails, nil
}

func (r *ContactRepository) Save(contact *model.Contact) error {
	if err := r.db.Save(contact).Error; err != nil {
		return fmt.Errorf("save contact failed: %w", err)
	}
	return nil
}

func (r *ContactRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Contact{}).Error; err != nil {
		return fmt.Errorf("delete contact failed: %w", err)
	}
	return nil
}
