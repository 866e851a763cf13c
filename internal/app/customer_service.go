package app

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ZivNavon/customer-management-tool/internal/model"
	"github.com/ZivNavon/customer-management-tool/internal/repository"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrContactNotFound  = errors.New("contact not found")
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	contactRepo  *repository.ContactRepository
}

type CreateCustomerInput struct {
	Name      string
	LogoURL   string
	ARRUSD    decimal.Decimal
	Notes     string
	CreatedBy string
}

// UpdateCustomerInput uses pointers so omitted fields stay untouched.
type UpdateCustomerInput struct {
	Name    *string
	LogoURL *string
	ARRUSD  *decimal.Decimal
	Notes   *string
}

type ContactInput struct {
	Name  string
	Role  string
	Phone string
	Email *string
}

type UpdateContactInput struct {
	Name  *string
	Role  *string
	Phone *string
	Email *string
}

func NewCustomerService(customerRepo *repository.CustomerRepository, contactRepo *repository.ContactRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
	}
}

func (s *CustomerService) CreateCustomer(input CreateCustomerInput) (*CustomerView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	customer := &model.Customer{
		Name:    name,
		LogoURL: input.LogoURL,
		ARRUSD:  input.ARRUSD,
		Notes:   input.Notes,
	}
	if input.CreatedBy != "" {
		createdBy := input.CreatedBy
		customer.CreatedBy = &createdBy
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	view := NewCustomerView(customer)
	return &view, nil
}

func (s *CustomerService) GetCustomer(id string) (*CustomerView, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	view := NewCustomerView(customer)
	s.attachStats(&view)
	return &view, nil
}

func (s *CustomerService) ListCustomers(search string, limit, offset int) ([]CustomerView, error) {
	customers, err := s.customerRepo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for i := range customers {
		view := NewCustomerView(&customers[i])
		s.attachStats(&view)
		views = append(views, view)
	}
	return views, nil
}

func (s *CustomerService) UpdateCustomer(id string, input UpdateCustomerInput) (*CustomerView, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		customer.Name = name
	}
	if input.LogoURL != nil {
		customer.LogoURL = *input.LogoURL
	}
	if input.ARRUSD != nil {
		customer.ARRUSD = *input.ARRUSD
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.customerRepo.Save(customer); err != nil {
		return nil, err
	}

	view := NewCustomerView(customer)
	s.attachStats(&view)
	return &view, nil
}

func (s *CustomerService) DeleteCustomer(id string) error {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return s.customerRepo.Delete(id)
}

func (s *CustomerService) AddContact(customerID string, input ContactInput) (*model.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	contact := &model.Contact{
		CustomerID: customerID,
		Name:       name,
		Role:       input.Role,
		Phone:      input.Phone,
		Email:      input.Email,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *CustomerService) ListContacts(customerID string) ([]model.Contact, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.contactRepo.ListByCustomerID(customerID)
}

func (s *CustomerService) UpdateContact(id string, input UpdateContactInput) (*model.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		contact.Name = name
	}
	if input.Role != nil {
		contact.Role = *input.Role
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Email != nil {
		contact.Email = input.Email
	}

	if err := s.contactRepo.Save(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *CustomerService) DeleteContact(id string) error {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}
	return s.contactRepo.Delete(id)
}

// attachStats fills the derived customer fields; stat failures leave zero
// values rather than failing the read.
func (s *CustomerService) attachStats(view *CustomerView) {
	if count, err := s.customerRepo.CountContacts(view.ID); err == nil {
		view.ContactsCount = count
	}
	if count, err := s.customerRepo.CountMeetings(view.ID); err == nil {
		view.MeetingsCount = count
	}
	if last, err := s.customerRepo.LastMeetingDate(view.ID); err == nil && last != nil {
		formatted := last.Format("2006-01-02")
		view.LastMeetingDate = &formatted
	}
}
