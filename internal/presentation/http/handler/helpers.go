package handler

import (
	"strconv"

	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseListParams reads limit/offset query parameters, falling back to
// defaults for absent or malformed values.
func parseListParams(c *gin.Context) pagination.ListParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(pagination.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	params := pagination.ListParams{
		Limit:  limit,
		Offset: offset,
	}
	params.Validate()
	return params
}

// parseUUIDQuery parses an optional UUID query parameter, returning nil when
// absent or malformed.
func parseUUIDQuery(c *gin.Context, name string) *uuid.UUID {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
