// Package domain contains the core data types for the ELD Logbook application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (hos, repo, remote, service, handler).
package domain

import (
	"fmt"
	"strings"
)

// DutyStatus is one of the four HOS duty categories.
// The ordinal value is stable: it indexes summary buckets and grid rows and is
// the number written to DailyLog segments.
type DutyStatus int

const (
	OffDuty DutyStatus = iota
	SleeperBerth
	Driving
	OnDuty
)

// DutyStatuses lists every status in ordinal order.
var DutyStatuses = [...]DutyStatus{OffDuty, SleeperBerth, Driving, OnDuty}

var statusCodes = [...]string{"off", "sleeper", "driving", "on"}

var statusNames = [...]string{"Off Duty", "Sleeper Berth", "Driving", "On Duty"}

var statusDescriptions = [...]string{
	"Off duty activities",
	"In sleeper berth",
	"Driving vehicle",
	"On duty not driving",
}

// Valid reports whether s is one of the four known statuses.
func (s DutyStatus) Valid() bool {
	return s >= OffDuty && s <= OnDuty
}

// Code returns the short wire code ("off", "sleeper", "driving", "on").
func (s DutyStatus) Code() string {
	if !s.Valid() {
		return "unknown"
	}
	return statusCodes[s]
}

// String returns the display name, e.g. "Sleeper Berth".
func (s DutyStatus) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return statusNames[s]
}

// Description is the generic location text used when a status change is
// recorded without any location.
func (s DutyStatus) Description() string {
	if !s.Valid() {
		return "Status change"
	}
	return statusDescriptions[s]
}

// MarshalText encodes the status as its wire code.
func (s DutyStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("domain.DutyStatus: invalid status %d", int(s))
	}
	return []byte(s.Code()), nil
}

// UnmarshalText decodes a wire code.
func (s *DutyStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseDutyStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseDutyStatus converts a wire code into a DutyStatus.
// Matching is case-insensitive and ignores surrounding whitespace.
// Returns ErrValidation for anything else.
func ParseDutyStatus(code string) (DutyStatus, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for i, known := range statusCodes {
		if c == known {
			return DutyStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown duty status %q", ErrValidation, code)
}
