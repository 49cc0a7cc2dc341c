package entity

import (
	"time"
)

// Roles a user account can hold. New accounts default to RolePatient.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User is the aggregate root for the identity domain.
// PasswordHash is the only persisted form of the credential; it is written
// exclusively by the credential hasher, never with a plaintext value.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Phone          string
	Role           string
	Address        *Address
	ProfilePicture string
	MedicalHistory []MedicalRecord
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Address is an optional profile field, opaque to the auth flows.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// MedicalRecord is an optional profile field, passed through unchanged.
type MedicalRecord struct {
	Condition     string     `json:"condition,omitempty"`
	Diagnosis     string     `json:"diagnosis,omitempty"`
	Treatment     string     `json:"treatment,omitempty"`
	DiagnosedDate *time.Time `json:"diagnosed_date,omitempty"`
}

// PublicProfile is the response-facing projection of a user record.
// The password hash never leaves the service layer.
type PublicProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Role           string          `json:"role"`
	Address        *Address        `json:"address,omitempty"`
	ProfilePicture string          `json:"profile_picture,omitempty"`
	MedicalHistory []MedicalRecord `json:"medical_history,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Public returns the projection of u safe to serialize in responses.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		Address:        u.Address,
		ProfilePicture: u.ProfilePicture,
		MedicalHistory: u.MedicalHistory,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
