package service

import (
	"context"
	"strings"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
)

// LeadService handles lead-related operations
type LeadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	CompanyID         *uuid.UUID `json:"companyId"`
	ContactID         *uuid.UUID `json:"contactId"`
	PipelineStageID   *uuid.UUID `json:"pipelineStageId"`
	AssignedTo        *uuid.UUID `json:"assignedTo"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Value             *Number    `json:"value"`
	Probability       *Number    `json:"probability"`
	ExpectedCloseDate *string    `json:"expectedCloseDate"`
	Source            *string    `json:"source"`
	Status            *string    `json:"status"`
	Priority          *string    `json:"priority"`
	Tags              *string    `json:"tags"`
	CustomFields      *string    `json:"customFields"`
}

// validate runs constraints in field-declaration order, collecting every
// failure. Probability only receives a default; its upper bound is
// deliberately not enforced.
func (in *CreateLeadInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, apperror.FieldError{Field: "title", Message: "Title is required"})
	} else if len(in.Title) > 255 {
		errs = append(errs, apperror.FieldError{Field: "title", Message: "Title must not exceed 255 characters"})
	}
	if in.ExpectedCloseDate != nil && *in.ExpectedCloseDate != "" && !isValidDate(*in.ExpectedCloseDate) {
		errs = append(errs, apperror.FieldError{Field: "expectedCloseDate", Message: "Expected close date must be a valid date (YYYY-MM-DD)"})
	}
	if in.Status != nil && *in.Status != "" && !enum.ValidLeadStatus(*in.Status) {
		errs = append(errs, apperror.FieldError{Field: "status", Message: "Status must be one of active, won, lost, archived"})
	}
	if in.Priority != nil && *in.Priority != "" && !enum.ValidPriority(*in.Priority) {
		errs = append(errs, apperror.FieldError{Field: "priority", Message: "Priority must be one of low, medium, high"})
	}

	return errs
}

func (in *CreateLeadInput) toEntity() *entity.Lead {
	lead := &entity.Lead{
		CompanyID:       in.CompanyID,
		ContactID:       in.ContactID,
		PipelineStageID: in.PipelineStageID,
		AssignedTo:      in.AssignedTo,
		Title:           in.Title,
		Description:     in.Description,
		Probability:     entity.DefaultProbability,
		Source:          in.Source,
		Status:          enum.LeadStatusActive,
		Priority:        enum.PriorityMedium,
		Tags:            in.Tags,
		CustomFields:    in.CustomFields,
	}
	if in.Value != nil {
		value := in.Value.Float64()
		lead.Value = &value
	}
	if in.Probability != nil {
		lead.Probability = in.Probability.Int()
	}
	if in.ExpectedCloseDate != nil && *in.ExpectedCloseDate != "" {
		lead.ExpectedCloseDate = in.ExpectedCloseDate
	}
	if in.Status != nil && *in.Status != "" {
		lead.Status = enum.LeadStatus(*in.Status)
	}
	if in.Priority != nil && *in.Priority != "" {
		lead.Priority = enum.Priority(*in.Priority)
	}
	return lead
}

// CreateLead validates the input, applies defaults and persists a new lead.
// The created record is re-fetched with its relations attached.
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	lead := input.toEntity()
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return s.GetLead(ctx, lead.ID)
}

// CreateLeadBundleInput represents a lead with optional nested company and
// contact payloads, committed together.
type CreateLeadBundleInput struct {
	Company *CreateCompanyInput `json:"company"`
	Contact *CreateContactInput `json:"contact"`
	Lead    CreateLeadInput     `json:"lead"`
}

// CreateLeadBundle creates the optional company, the optional contact and
// the lead in a single transaction, replacing the non-atomic three-request
// flow the dashboard's new-lead form used to perform. A failure anywhere
// rolls back the whole bundle; no orphaned company survives.
func (s *LeadService) CreateLeadBundle(ctx context.Context, input *CreateLeadBundleInput) (*entity.Lead, error) {
	var errs []apperror.FieldError
	if input.Company != nil {
		for _, fe := range input.Company.validate() {
			errs = append(errs, apperror.FieldError{Field: "company." + fe.Field, Message: fe.Message})
		}
	}
	if input.Contact != nil {
		for _, fe := range input.Contact.validate() {
			errs = append(errs, apperror.FieldError{Field: "contact." + fe.Field, Message: fe.Message})
		}
	}
	for _, fe := range input.Lead.validate() {
		errs = append(errs, apperror.FieldError{Field: "lead." + fe.Field, Message: fe.Message})
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	var company *entity.Company
	if input.Company != nil {
		country := entity.DefaultCountry
		if input.Company.Country != nil && *input.Company.Country != "" {
			country = *input.Company.Country
		}
		company = &entity.Company{
			Name:     input.Company.Name,
			Industry: input.Company.Industry,
			Phone:    input.Company.Phone,
			Address:  input.Company.Address,
			City:     input.Company.City,
			Country:  country,
			Notes:    input.Company.Notes,
		}
		if input.Company.Website != nil && *input.Company.Website != "" {
			company.Website = input.Company.Website
		}
		if input.Company.Employees != nil {
			employees := input.Company.Employees.Int()
			company.Employees = &employees
		}
		if input.Company.Revenue != nil {
			revenue := input.Company.Revenue.Float64()
			company.Revenue = &revenue
		}
	}

	var contact *entity.Contact
	if input.Contact != nil {
		contact = &entity.Contact{
			CompanyID:  input.Contact.CompanyID,
			FirstName:  input.Contact.FirstName,
			LastName:   input.Contact.LastName,
			Email:      input.Contact.Email,
			Phone:      input.Contact.Phone,
			Position:   input.Contact.Position,
			Department: input.Contact.Department,
			Notes:      input.Contact.Notes,
		}
		if input.Contact.IsPrimary != nil {
			contact.IsPrimary = *input.Contact.IsPrimary
		}
	}

	lead := input.Lead.toEntity()
	if err := s.leadRepo.CreateBundle(ctx, company, contact, lead); err != nil {
		return nil, err
	}

	return s.GetLead(ctx, lead.ID)
}

// GetLead retrieves a lead by ID with its relations attached
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads newest-created first with relations attached.
func (s *LeadService) ListLeads(ctx context.Context, filter *repository.LeadFilter) ([]entity.Lead, error) {
	return s.leadRepo.List(ctx, filter)
}

// UpdateLeadInput represents the update lead input
type UpdateLeadInput struct {
	CompanyID         *uuid.UUID `json:"companyId"`
	ContactID         *uuid.UUID `json:"contactId"`
	PipelineStageID   *uuid.UUID `json:"pipelineStageId"`
	AssignedTo        *uuid.UUID `json:"assignedTo"`
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Value             *Number    `json:"value"`
	Probability       *Number    `json:"probability"`
	ExpectedCloseDate *string    `json:"expectedCloseDate"`
	Source            *string    `json:"source"`
	Status            *string    `json:"status"`
	Priority          *string    `json:"priority"`
	Tags              *string    `json:"tags"`
	CustomFields      *string    `json:"customFields"`
}

func (in *UpdateLeadInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if in.ExpectedCloseDate != nil && *in.ExpectedCloseDate != "" && !isValidDate(*in.ExpectedCloseDate) {
		errs = append(errs, apperror.FieldError{Field: "expectedCloseDate", Message: "Expected close date must be a valid date (YYYY-MM-DD)"})
	}
	if in.Status != nil && !enum.ValidLeadStatus(*in.Status) {
		errs = append(errs, apperror.FieldError{Field: "status", Message: "Status must be one of active, won, lost, archived"})
	}
	if in.Priority != nil && !enum.ValidPriority(*in.Priority) {
		errs = append(errs, apperror.FieldError{Field: "priority", Message: "Priority must be one of low, medium, high"})
	}

	return errs
}

// UpdateLead applies only the supplied fields
func (s *LeadService) UpdateLead(ctx context.Context, id uuid.UUID, input *UpdateLeadInput) (*entity.Lead, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.CompanyID != nil {
		lead.CompanyID = input.CompanyID
	}
	if input.ContactID != nil {
		lead.ContactID = input.ContactID
	}
	if input.PipelineStageID != nil {
		lead.PipelineStageID = input.PipelineStageID
	}
	if input.AssignedTo != nil {
		lead.AssignedTo = input.AssignedTo
	}
	if input.Title != nil {
		lead.Title = *input.Title
	}
	if input.Description != nil {
		lead.Description = input.Description
	}
	if input.Value != nil {
		value := input.Value.Float64()
		lead.Value = &value
	}
	if input.Probability != nil {
		lead.Probability = input.Probability.Int()
	}
	if input.ExpectedCloseDate != nil {
		lead.ExpectedCloseDate = input.ExpectedCloseDate
	}
	if input.Source != nil {
		lead.Source = input.Source
	}
	if input.Status != nil {
		lead.Status = enum.LeadStatus(*input.Status)
	}
	if input.Priority != nil {
		lead.Priority = enum.Priority(*input.Priority)
	}
	if input.Tags != nil {
		lead.Tags = input.Tags
	}
	if input.CustomFields != nil {
		lead.CustomFields = input.CustomFields
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return s.GetLead(ctx, id)
}

// DeleteLead deletes a lead and returns the removed snapshot
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return lead, nil
}
