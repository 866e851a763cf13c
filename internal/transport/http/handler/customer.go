package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ZivNavon/customer-management-tool/internal/app"
	"github.com/ZivNavon/customer-management-tool/internal/transport/http/response"
)

type CustomerHandler struct {
	customerService *app.CustomerService
}

type CreateCustomerRequest struct {
	Name    string           `json:"name" binding:"required,max=255"`
	LogoURL string           `json:"logo_url" binding:"max=512"`
	ARRUSD  *decimal.Decimal `json:"arr_usd"`
	Notes   string           `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name    *string          `json:"name"`
	LogoURL *string          `json:"logo_url"`
	ARRUSD  *decimal.Decimal `json:"arr_usd"`
	Notes   *string          `json:"notes"`
}

type CreateContactRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Role  string  `json:"role" binding:"max=128"`
	Phone string  `json:"phone" binding:"max=64"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

func NewCustomerHandler(customerService *app.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}

	customers, err := h.customerService.ListCustomers(c.Query("search"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list customers failed")
		return
	}
	response.OK(c, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	arr := decimal.Zero
	if req.ARRUSD != nil {
		arr = *req.ARRUSD
	}

	userID, _ := getUserIDFromContext(c)
	customer, err := h.customerService.CreateCustomer(app.CreateCustomerInput{
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		ARRUSD:    arr,
		Notes:     req.Notes,
		CreatedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create customer failed")
		}
		return
	}
	response.OK(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch customer failed")
		}
		return
	}
	response.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Param("id"), app.UpdateCustomerInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		ARRUSD:  req.ARRUSD,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update customer failed")
		}
		return
	}
	response.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete customer failed")
		}
		return
	}
	response.OK(c, gin.H{"message": "Customer deleted successfully"})
}

func (h *CustomerHandler) ListContacts(c *gin.Context) {
	contacts, err := h.customerService.ListContacts(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list contacts failed")
		}
		return
	}
	response.OK(c, contacts)
}

func (h *CustomerHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	contact, err := h.customerService.AddContact(c.Param("id"), app.ContactInput{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create contact failed")
		}
		return
	}
	response.OK(c, contact)
}

func (h *CustomerHandler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	contact, err := h.customerService.UpdateContact(c.Param("id"), app.UpdateContactInput{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrContactNotFound):
			response.Error(c, http.StatusNotFound, response.CodeContactNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update contact failed")
		}
		return
	}
	response.OK(c, contact)
}

func (h *CustomerHandler) DeleteContact(c *gin.Context) {
	if err := h.customerService.DeleteContact(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, app.ErrContactNotFound):
			response.Error(c, http.StatusNotFound, response.CodeContactNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete contact failed")
		}
		return
	}
	response.OK(c, gin.H{"message": "Contact deleted successfully"})
}
