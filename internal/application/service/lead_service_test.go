package service

import (
	"context"
	"testing"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateLeadAppliesDefaults(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		lead := args.Get(1).(*entity.Lead)
		lead.ID = uuid.New()
	}).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&entity.Lead{Title: "New deal"}, nil)
	svc := NewLeadService(repo)

	_, err := svc.CreateLead(context.Background(), &CreateLeadInput{Title: "New deal"})

	assert.NoError(t, err)
	created := repo.Calls[0].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, 50, created.Probability)
	assert.Equal(t, enum.LeadStatusActive, created.Status)
	assert.Equal(t, enum.PriorityMedium, created.Priority)
}

func TestCreateLeadRejectsUnknownEnumValues(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewLeadService(repo)

	_, err := svc.CreateLead(context.Background(), &CreateLeadInput{
		Title:    "New deal",
		Status:   strPtr("frozen"),
		Priority: strPtr("urgent"),
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	if assert.Len(t, appErr.Fields, 2) {
		assert.Equal(t, "status", appErr.Fields[0].Field)
		assert.Equal(t, "priority", appErr.Fields[1].Field)
	}
	repo.AssertNotCalled(t, "Create")
}

func TestCreateLeadRejectsMalformedCloseDate(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewLeadService(repo)

	_, err := svc.CreateLead(context.Background(), &CreateLeadInput{
		Title:             "New deal",
		ExpectedCloseDate: strPtr("next friday"),
	})

	appErr := apperror.GetAppError(err)
	if assert.Len(t, appErr.Fields, 1) {
		assert.Equal(t, "expectedCloseDate", appErr.Fields[0].Field)
	}
}

func TestCreateLeadBundlePrefixesFieldErrors(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewLeadService(repo)

	_, err := svc.CreateLeadBundle(context.Background(), &CreateLeadBundleInput{
		Company: &CreateCompanyInput{Name: ""},
		Contact: &CreateContactInput{FirstName: "Maria", LastName: "Lopez", Email: "bad"},
		Lead:    CreateLeadInput{Title: ""},
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	if assert.Len(t, appErr.Fields, 3) {
		assert.Equal(t, "company.name", appErr.Fields[0].Field)
		assert.Equal(t, "contact.email", appErr.Fields[1].Field)
		assert.Equal(t, "lead.title", appErr.Fields[2].Field)
	}
	repo.AssertNotCalled(t, "CreateBundle")
}

func TestCreateLeadBundlePassesEntitiesToRepository(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CreateBundle", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			lead := args.Get(3).(*entity.Lead)
			lead.ID = uuid.New()
		}).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&entity.Lead{Title: "Acme deal"}, nil)
	svc := NewLeadService(repo)

	_, err := svc.CreateLeadBundle(context.Background(), &CreateLeadBundleInput{
		Company: &CreateCompanyInput{Name: "Acme Corp"},
		Contact: &CreateContactInput{FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com"},
		Lead:    CreateLeadInput{Title: "Acme deal"},
	})

	assert.NoError(t, err)
	company := repo.Calls[0].Arguments.Get(1).(*entity.Company)
	contact := repo.Calls[0].Arguments.Get(2).(*entity.Contact)
	assert.Equal(t, "Acme Corp", company.Name)
	assert.Equal(t, "Costa Rica", company.Country)
	assert.Equal(t, "maria@example.com", contact.Email)
	repo.AssertExpectations(t)
}

func TestCreateLeadBundleWithoutNestedEntities(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("CreateBundle", mock.Anything, (*entity.Company)(nil), (*entity.Contact)(nil), mock.Anything).
		Run(func(args mock.Arguments) {
			lead := args.Get(3).(*entity.Lead)
			lead.ID = uuid.New()
		}).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&entity.Lead{Title: "Solo deal"}, nil)
	svc := NewLeadService(repo)

	_, err := svc.CreateLeadBundle(context.Background(), &CreateLeadBundleInput{
		Lead: CreateLeadInput{Title: "Solo deal"},
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateLeadPatchesStatus(t *testing.T) {
	id := uuid.New()
	existing := &entity.Lead{
		ID:          id,
		Title:       "Acme deal",
		Status:      enum.LeadStatusActive,
		Priority:    enum.PriorityMedium,
		Probability: 50,
	}

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewLeadService(repo)

	lead, err := svc.UpdateLead(context.Background(), id, &UpdateLeadInput{
		Status: strPtr("won"),
	})

	assert.NoError(t, err)
	assert.Equal(t, enum.LeadStatusWon, lead.Status)
	assert.Equal(t, "Acme deal", lead.Title)
	assert.Equal(t, 50, lead.Probability)
}

func TestDeleteLeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewLeadService(repo)

	_, err := svc.DeleteLead(context.Background(), uuid.New())

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Lead not found", err.Error())
	repo.AssertNotCalled(t, "Delete")
}
