package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLeadStatus(t *testing.T) {
	assert.True(t, ValidLeadStatus("active"))
	assert.True(t, ValidLeadStatus("won"))
	assert.True(t, ValidLeadStatus("lost"))
	assert.True(t, ValidLeadStatus("archived"))
	assert.False(t, ValidLeadStatus("frozen"))
	assert.False(t, ValidLeadStatus(""))
}

func TestValidFollowUpStatusExcludesOverdue(t *testing.T) {
	assert.True(t, ValidFollowUpStatus("pending"))
	assert.True(t, ValidFollowUpStatus("completed"))
	assert.True(t, ValidFollowUpStatus("cancelled"))
	// Overdue only exists as a derived read-side value.
	assert.False(t, ValidFollowUpStatus("overdue"))
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority("low"))
	assert.True(t, ValidPriority("medium"))
	assert.True(t, ValidPriority("high"))
	assert.False(t, ValidPriority("urgent"))
}

func TestValidFollowUpType(t *testing.T) {
	for _, typ := range []string{"call", "email", "meeting", "demo", "proposal"} {
		assert.True(t, ValidFollowUpType(typ), typ)
	}
	assert.False(t, ValidFollowUpType("fax"))
}

func TestLeadStatusJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(LeadStatusWon)
	assert.NoError(t, err)
	assert.Equal(t, `"won"`, string(raw))

	var status LeadStatus
	assert.NoError(t, json.Unmarshal([]byte(`"archived"`), &status))
	assert.Equal(t, LeadStatusArchived, status)
}
