package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FollowUpStatus represents the stored status of a follow-up task.
//
// The original data model also stored "overdue" as a literal status value
// while computing it implicitly elsewhere; here overdue is purely a derived
// predicate (status pending and due date in the past) and is never written
// to the column. The constant remains so historical rows still scan.
type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "pending"
	FollowUpStatusCompleted FollowUpStatus = "completed"
	FollowUpStatusOverdue   FollowUpStatus = "overdue"
	FollowUpStatusCancelled FollowUpStatus = "cancelled"
)

// ValidFollowUpStatus reports whether s is a status a client may set.
// "overdue" is excluded: it is derived, never assigned.
func ValidFollowUpStatus(s string) bool {
	switch FollowUpStatus(s) {
	case FollowUpStatusPending, FollowUpStatusCompleted, FollowUpStatusCancelled:
		return true
	}
	return false
}

func (s FollowUpStatus) String() string {
	return string(s)
}

func (s FollowUpStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *FollowUpStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = FollowUpStatus(str)
	return nil
}

func (s FollowUpStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *FollowUpStatus) Scan(value interface{}) error {
	if value == nil {
		*s = FollowUpStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = FollowUpStatus(v)
	case []byte:
		*s = FollowUpStatus(string(v))
	}
	return nil
}
