package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStatus represents the lifecycle status of a lead. It is independent of
// the lead's pipeline stage and drives conversion metrics.
type LeadStatus string

const (
	LeadStatusActive   LeadStatus = "active"
	LeadStatusWon      LeadStatus = "won"
	LeadStatusLost     LeadStatus = "lost"
	LeadStatusArchived LeadStatus = "archived"
)

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadStatusActive, LeadStatusWon, LeadStatusLost, LeadStatusArchived:
		return true
	}
	return false
}

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = LeadStatus(str)
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = LeadStatus(v)
	case []byte:
		*s = LeadStatus(string(v))
	}
	return nil
}
