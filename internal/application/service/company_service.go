package service

import (
	"context"
	"strings"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
)

// CompanyService handles company-related operations
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CreateCompanyInput represents the create company input
type CreateCompanyInput struct {
	Name      string  `json:"name"`
	Industry  *string `json:"industry"`
	Website   *string `json:"website"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Employees *Number `json:"employees"`
	Revenue   *Number `json:"revenue"`
	Notes     *string `json:"notes"`
}

// validate runs constraints in field-declaration order and collects every
// failure so the caller can render all problems at once.
func (in *CreateCompanyInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Company name is required"})
	} else if len(in.Name) > 200 {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Company name must not exceed 200 characters"})
	}
	// An empty website is treated as absent, never as an invalid URL.
	if in.Website != nil && *in.Website != "" && !isValidURL(*in.Website) {
		errs = append(errs, apperror.FieldError{Field: "website", Message: "Invalid URL"})
	}
	if in.Employees != nil && in.Employees.Int() <= 0 {
		errs = append(errs, apperror.FieldError{Field: "employees", Message: "Employees must be a positive integer"})
	}
	if in.Revenue != nil && in.Revenue.Float64() <= 0 {
		errs = append(errs, apperror.FieldError{Field: "revenue", Message: "Revenue must be a positive number"})
	}

	return errs
}

// CreateCompany validates the input, applies defaults and persists a new
// company. Nothing is persisted when validation fails.
func (s *CompanyService) CreateCompany(ctx context.Context, input *CreateCompanyInput) (*entity.Company, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	country := entity.DefaultCountry
	if input.Country != nil && *input.Country != "" {
		country = *input.Country
	}

	company := &entity.Company{
		Name:     input.Name,
		Industry: input.Industry,
		Phone:    input.Phone,
		Address:  input.Address,
		City:     input.City,
		Country:  country,
		Notes:    input.Notes,
	}
	if input.Website != nil && *input.Website != "" {
		company.Website = input.Website
	}
	if input.Employees != nil {
		employees := input.Employees.Int()
		company.Employees = &employees
	}
	if input.Revenue != nil {
		revenue := input.Revenue.Float64()
		company.Revenue = &revenue
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// ListCompanies lists companies newest-created first.
func (s *CompanyService) ListCompanies(ctx context.Context, filter *repository.CompanyFilter) ([]entity.Company, error) {
	return s.companyRepo.List(ctx, filter)
}

// UpdateCompanyInput represents the update company input
type UpdateCompanyInput struct {
	Name      *string `json:"name"`
	Industry  *string `json:"industry"`
	Website   *string `json:"website"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Employees *Number `json:"employees"`
	Revenue   *Number `json:"revenue"`
	Notes     *string `json:"notes"`
}

func (in *UpdateCompanyInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Company name is required"})
	}
	if in.Website != nil && *in.Website != "" && !isValidURL(*in.Website) {
		errs = append(errs, apperror.FieldError{Field: "website", Message: "Invalid URL"})
	}
	if in.Employees != nil && in.Employees.Int() <= 0 {
		errs = append(errs, apperror.FieldError{Field: "employees", Message: "Employees must be a positive integer"})
	}
	if in.Revenue != nil && in.Revenue.Float64() <= 0 {
		errs = append(errs, apperror.FieldError{Field: "revenue", Message: "Revenue must be a positive number"})
	}

	return errs
}

// UpdateCompany applies only the supplied fields; the updated timestamp
// always refreshes.
func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, input *UpdateCompanyInput) (*entity.Company, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Industry != nil {
		company.Industry = input.Industry
	}
	if input.Website != nil {
		if *input.Website == "" {
			company.Website = nil
		} else {
			company.Website = input.Website
		}
	}
	if input.Phone != nil {
		company.Phone = input.Phone
	}
	if input.Address != nil {
		company.Address = input.Address
	}
	if input.City != nil {
		company.City = input.City
	}
	if input.Country != nil {
		company.Country = *input.Country
	}
	if input.Employees != nil {
		employees := input.Employees.Int()
		company.Employees = &employees
	}
	if input.Revenue != nil {
		revenue := input.Revenue.Float64()
		company.Revenue = &revenue
	}
	if input.Notes != nil {
		company.Notes = input.Notes
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany deletes a company and returns the removed snapshot.
// Dependent contacts and leads are not cascaded; they keep the dead id.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return company, nil
}
