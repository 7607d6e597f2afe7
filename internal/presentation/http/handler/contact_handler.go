package handler

import (
	"github.com/codigofacil/crm-api/internal/application/service"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/internal/presentation/http/dto/response"
	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles listing contacts
func (h *ContactHandler) List(c *gin.Context) {
	filter := &repository.ContactFilter{
		Search:     c.Query("search"),
		CompanyID:  parseUUIDQuery(c, "companyId"),
		ListParams: parseListParams(c),
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contacts)
}

// Create handles creating a contact
func (h *ContactHandler) Create(c *gin.Context) {
	var input service.CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, contact)
}

// Get handles getting a single contact with its company attached
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Contact"))
		return
	}

	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contact)
}

// Update handles partially updating a contact
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Contact"))
		return
	}

	var input service.UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contact)
}

// Delete handles deleting a contact, returning the removed snapshot
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError("Contact"))
		return
	}

	contact, err := h.contactService.DeleteContact(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true, "contact": contact})
}
