package service

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Number is a JSON number that also accepts numeric strings, so a field
// supplied as "42" is coerced before any range check runs.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("not a number: %s", string(data))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(n)
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// isValidURL requires a scheme and a host, so bare domains are rejected.
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// today returns the current date as an ISO calendar-date string, the format
// due-date comparisons use.
func today() string {
	return time.Now().Format("2006-01-02")
}
