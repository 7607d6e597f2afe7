package service

import (
	"context"
	"testing"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateContactCollectsAllFieldErrors(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo)

	_, err := svc.CreateContact(context.Background(), &CreateContactInput{
		FirstName: "",
		LastName:  "  ",
		Email:     "not-an-email",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	if assert.Len(t, appErr.Fields, 3) {
		assert.Equal(t, "firstName", appErr.Fields[0].Field)
		assert.Equal(t, "lastName", appErr.Fields[1].Field)
		assert.Equal(t, "email", appErr.Fields[2].Field)
	}
	repo.AssertNotCalled(t, "Create")
}

func TestCreateContactRefetchesWithCompany(t *testing.T) {
	companyID := uuid.New()
	repo := new(MockContactRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		contact := args.Get(1).(*entity.Contact)
		contact.ID = uuid.New()
	}).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&entity.Contact{
		CompanyID: &companyID,
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@example.com",
		Company:   &entity.Company{ID: companyID, Name: "Acme Corp"},
	}, nil)
	svc := NewContactService(repo)

	contact, err := svc.CreateContact(context.Background(), &CreateContactInput{
		CompanyID: &companyID,
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@example.com",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, contact.Company) {
		assert.Equal(t, "Acme Corp", contact.Company.Name)
	}
	repo.AssertExpectations(t)
}

func TestUpdateContactNotFound(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewContactService(repo)

	_, err := svc.UpdateContact(context.Background(), uuid.New(), &UpdateContactInput{
		FirstName: strPtr("Ana"),
	})

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Contact not found", err.Error())
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateContactTogglesIsPrimary(t *testing.T) {
	id := uuid.New()
	existing := &entity.Contact{ID: id, FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com"}
	isPrimary := true

	repo := new(MockContactRepository)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewContactService(repo)

	contact, err := svc.UpdateContact(context.Background(), id, &UpdateContactInput{
		IsPrimary: &isPrimary,
	})

	assert.NoError(t, err)
	assert.True(t, contact.IsPrimary)
	assert.Equal(t, "Maria", contact.FirstName)
}
