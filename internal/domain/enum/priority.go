package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Priority represents the priority of a lead or follow-up.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = Priority(str)
	return nil
}

func (p Priority) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *Priority) Scan(value interface{}) error {
	if value == nil {
		*p = PriorityMedium
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = Priority(v)
	case []byte:
		*p = Priority(string(v))
	}
	return nil
}
