package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FollowUpType represents the kind of activity a follow-up schedules.
type FollowUpType string

const (
	FollowUpTypeCall     FollowUpType = "call"
	FollowUpTypeEmail    FollowUpType = "email"
	FollowUpTypeMeeting  FollowUpType = "meeting"
	FollowUpTypeDemo     FollowUpType = "demo"
	FollowUpTypeProposal FollowUpType = "proposal"
)

// ValidFollowUpType reports whether t is a known follow-up type.
func ValidFollowUpType(t string) bool {
	switch FollowUpType(t) {
	case FollowUpTypeCall, FollowUpTypeEmail, FollowUpTypeMeeting, FollowUpTypeDemo, FollowUpTypeProposal:
		return true
	}
	return false
}

func (t FollowUpType) String() string {
	return string(t)
}

func (t FollowUpType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *FollowUpType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = FollowUpType(str)
	return nil
}

func (t FollowUpType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *FollowUpType) Scan(value interface{}) error {
	if value == nil {
		*t = FollowUpTypeCall
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = FollowUpType(v)
	case []byte:
		*t = FollowUpType(string(v))
	}
	return nil
}
