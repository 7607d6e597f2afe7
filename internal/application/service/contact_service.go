package service

import (
	"context"
	"strings"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
)

// ContactService handles contact-related operations
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// CreateContactInput represents the create contact input
type CreateContactInput struct {
	CompanyID  *uuid.UUID `json:"companyId"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	IsPrimary  *bool      `json:"isPrimary"`
	Notes      *string    `json:"notes"`
}

func (in *CreateContactInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, apperror.FieldError{Field: "firstName", Message: "First name is required"})
	} else if len(in.FirstName) > 100 {
		errs = append(errs, apperror.FieldError{Field: "firstName", Message: "First name must not exceed 100 characters"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, apperror.FieldError{Field: "lastName", Message: "Last name is required"})
	} else if len(in.LastName) > 100 {
		errs = append(errs, apperror.FieldError{Field: "lastName", Message: "Last name must not exceed 100 characters"})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, apperror.FieldError{Field: "email", Message: "Email is required"})
	} else if !isValidEmail(in.Email) {
		errs = append(errs, apperror.FieldError{Field: "email", Message: "Invalid email address"})
	}

	return errs
}

// CreateContact validates the input, applies defaults and persists a new
// contact. The created record is re-fetched so the caller sees the joined
// company immediately.
func (s *ContactService) CreateContact(ctx context.Context, input *CreateContactInput) (*entity.Contact, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	contact := &entity.Contact{
		CompanyID:  input.CompanyID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Position:   input.Position,
		Department: input.Department,
		Notes:      input.Notes,
	}
	if input.IsPrimary != nil {
		contact.IsPrimary = *input.IsPrimary
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return s.GetContact(ctx, contact.ID)
}

// GetContact retrieves a contact by ID, joined with its company
func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}
	return contact, nil
}

// ListContacts lists contacts newest-created first, joined with companies.
func (s *ContactService) ListContacts(ctx context.Context, filter *repository.ContactFilter) ([]entity.Contact, error) {
	return s.contactRepo.List(ctx, filter)
}

// UpdateContactInput represents the update contact input
type UpdateContactInput struct {
	CompanyID  *uuid.UUID `json:"companyId"`
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	IsPrimary  *bool      `json:"isPrimary"`
	Notes      *string    `json:"notes"`
}

func (in *UpdateContactInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError

	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		errs = append(errs, apperror.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		errs = append(errs, apperror.FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if in.Email != nil && !isValidEmail(*in.Email) {
		errs = append(errs, apperror.FieldError{Field: "email", Message: "Invalid email address"})
	}

	return errs
}

// UpdateContact applies only the supplied fields
func (s *ContactService) UpdateContact(ctx context.Context, id uuid.UUID, input *UpdateContactInput) (*entity.Contact, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}

	if input.CompanyID != nil {
		contact.CompanyID = input.CompanyID
	}
	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = input.Phone
	}
	if input.Position != nil {
		contact.Position = input.Position
	}
	if input.Department != nil {
		contact.Department = input.Department
	}
	if input.IsPrimary != nil {
		contact.IsPrimary = *input.IsPrimary
	}
	if input.Notes != nil {
		contact.Notes = input.Notes
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return s.GetContact(ctx, id)
}

// DeleteContact deletes a contact and returns the removed snapshot
func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return contact, nil
}
