package domain

import (
	"errors"
	"strings"
)

const (
	// DefaultStatus is used when profile setup leaves the status blank.
	DefaultStatus = "Hey there! I am using DAMRU"
	// DefaultAvatar is the glyph given to every new profile.
	DefaultAvatar = "👤"
)

// ErrDisplayNameRequired is returned when profile setup has no display name.
var ErrDisplayNameRequired = errors.New("please enter your display name")

// UserProfile is the local user's own identity.
type UserProfile struct {
	DisplayName string
	Status      string
	Phone       string
	Avatar      string
	Security    bool
}

// ProfileInput is what the profile setup form collects.
type ProfileInput struct {
	DisplayName string
	Status      string
	Phone       string // verified digits, no country code
	CountryCode string
	Security    bool
}

// NewProfile builds the profile created at the end of setup.
func NewProfile(in ProfileInput) (UserProfile, error) {
	if strings.TrimSpace(in.DisplayName) == "" {
		return UserProfile{}, ErrDisplayNameRequired
	}
	status := in.Status
	if status == "" {
		status = DefaultStatus
	}
	return UserProfile{
		DisplayName: in.DisplayName,
		Status:      status,
		Phone:       strings.TrimSpace(in.CountryCode + " " + in.Phone),
		Avatar:      DefaultAvatar,
		Security:    in.Security,
	}, nil
}

// WithEdits returns a copy of p with a new display name and status.
// A blank display name keeps the current one.
func (p UserProfile) WithEdits(displayName, status string) UserProfile {
	if strings.TrimSpace(displayName) != "" {
		p.DisplayName = displayName
	}
	p.Status = status
	return p
}
