package handler

import (
	"github.com/codigofacil/crm-api/internal/application/service"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/internal/presentation/http/dto/response"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// List handles listing companies
func (h *CompanyHandler) List(c *gin.Context) {
	filter := &repository.CompanyFilter{
		Search:     c.Query("search"),
		ListParams: parseListParams(c),
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, companies)
}

// Create handles creating a company
func (h *CompanyHandler) Create(c *gin.Context) {
	var input service.CreateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, company)
}

// Get handles getting a single company
func (h *CompanyHandler) Get(c *gin.Context) {
	// An id that is not a valid UUID cannot match any record.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Company"))
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, company)
}

// Update handles partially updating a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Company"))
		return
	}

	var input service.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, company)
}

// Delete handles deleting a company, returning the removed snapshot
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Company"))
		return
	}

	company, err := h.companyService.DeleteCompany(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true, "company": company})
}
