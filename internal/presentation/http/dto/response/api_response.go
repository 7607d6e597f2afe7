package response

import (
	"net/http"

	"github.com/codigofacil/crm-api/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform response envelope. Error is either a plain
// string (validation and bad-request failures) or an ErrorBody.
type APIResponse struct {
	Success bool                  `json:"success"`
	Data    interface{}           `json:"data,omitempty"`
	Error   interface{}           `json:"error,omitempty"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// ErrorBody is the coded error object used for non-validation failures.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK sends a 200 success response
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 success response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// BadRequest sends a 400 error response with a plain string error
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   message,
	})
}

// Error translates an application error into the envelope. Validation
// failures carry the complete field-error list; unclassified failures are
// reported generically and recorded on the context for the request logger.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)

	if appErr.Code == apperror.CodeValidation {
		c.JSON(appErr.Status, APIResponse{
			Success: false,
			Error:   appErr.Message,
			Details: appErr.Fields,
		})
		return
	}

	if appErr.Status >= http.StatusInternalServerError {
		// Full detail stays server-side; the caller only sees the generic
		// message.
		_ = c.Error(err)
	}

	c.JSON(appErr.Status, APIResponse{
		Success: false,
		Error:   ErrorBody{Code: appErr.Code, Message: appErr.Message},
	})
}
