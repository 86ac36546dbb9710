package domain

import (
	"strconv"
	"strings"
	"time"
)

// Permission is the access level the current user has on a project
type Permission string

const (
	PermissionAdmin        Permission = "ADMIN"
	PermissionReadAndWrite Permission = "READ_AND_WRITE"
	PermissionReadOnly     Permission = "READ_ONLY"
)

// CanWrite reports whether the permission allows locking and uploading
func (p Permission) CanWrite() bool {
	return p == PermissionAdmin || p == PermissionReadAndWrite
}

// Mutex describes the server-side advisory lock on a project
type Mutex struct {
	CreationDate time.Time
	ModifiedDate time.Time
	User         string
}

// Project is a repository project. Values are fetched from the server and
// treated as immutable by the client.
type Project struct {
	ActiveMutex  *Mutex
	Country      string
	CreationDate time.Time
	Description  string
	ID           string
	Latitude     *float64
	Longitude    *float64
	ModifiedDate time.Time
	Name         string
	Permission   Permission
}

// IsReadOnly reports whether the project must never be locked or uploaded
func (p *Project) IsReadOnly() bool {
	return !p.Permission.CanWrite()
}

// IsLockedBy reports whether the active mutex belongs to user
func (p *Project) IsLockedBy(user string) bool {
	return p.ActiveMutex != nil && user != "" && strings.EqualFold(p.ActiveMutex.User, user)
}

// LocalFileName returns the deterministic file name for a project's survey
func LocalFileName(projectID string) string {
	return projectID + ".tml"
}

// NewProject holds the fields needed to create a project.
// Coordinates are optional and independent of each other.
type NewProject struct {
	CountryCode string
	Description string
	Latitude    string
	Longitude   string
	Name        string
}

// ValidationError reports an invalid field before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks required fields and coordinate syntax
func (n NewProject) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", n.Name},
		{"description", n.Description},
		{"country", n.CountryCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}

	if _, err := n.ParsedLatitude(); err != nil {
		return err
	}
	if _, err := n.ParsedLongitude(); err != nil {
		return err
	}
	return nil
}

// ParsedLatitude returns the latitude, or nil when omitted
func (n NewProject) ParsedLatitude() (*float64, error) {
	return parseCoordinate("latitude", n.Latitude, 90)
}

// ParsedLongitude returns the longitude, or nil when omitted
func (n NewProject) ParsedLongitude() (*float64, error) {
	return parseCoordinate("longitude", n.Longitude, 180)
}

func parseCoordinate(field, raw string, limit float64) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: "must be a number"}
	}
	if v < -limit || v > limit {
		return nil, &ValidationError{Field: field, Message: "is out of range"}
	}
	return &v, nil
}
