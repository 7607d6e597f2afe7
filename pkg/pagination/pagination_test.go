package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	p := ListParams{Limit: -1, Offset: -10}
	p.Validate()
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = ListParams{Limit: 100000, Offset: 20}
	p.Validate()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 20, p.Offset)

	p = ListParams{Limit: 25, Offset: 5}
	p.Validate()
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 5, p.Offset)
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
