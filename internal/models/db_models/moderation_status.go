package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ModerationStatus gates public visibility of buildings and reviews.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusDenied   ModerationStatus = "denied"
)

// ParseModerationStatus returns an error for anything outside the closed set.
func ParseModerationStatus(s string) (ModerationStatus, error) {
	switch ModerationStatus(s) {
	case StatusPending, StatusApproved, StatusDenied:
		return ModerationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown moderation status %q", s)
	}
}

func (s ModerationStatus) Valid() bool {
	_, err := ParseModerationStatus(string(s))
	return err == nil
}

// CanTransitionTo reports whether moving from s to next is allowed.
// pending moves to approved or denied; moderated rows only accept their current status again.
func (s ModerationStatus) CanTransitionTo(next ModerationStatus) bool {
	if next != StatusApproved && next != StatusDenied {
		return false
	}
	return s == StatusPending || s == next
}

func (s ModerationStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("refusing to store moderation status %q", string(s))
	}
	return string(s), nil
}

func (s *ModerationStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into ModerationStatus", value)
	}
	parsed, err := ParseModerationStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *ModerationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseModerationStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
