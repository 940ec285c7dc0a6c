package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Role is the principal's role. It is fixed for the lifetime of a session.
type Role string

const (
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleFaculty || r == RoleAdmin
}

// ParseRole maps user input to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// ID is an opaque identifier. The backend issues UUID strings, but older
// payloads carry plain numbers, so both decode into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Identity is the authenticated principal as returned in user_info.
type Identity struct {
	ID               ID              `json:"id"`
	Email            string          `json:"email"`
	FullName         string          `json:"full_name"`
	Role             Role            `json:"user_type"`
	GoogleScholarURL string          `json:"google_scholar_url,omitempty"`
	ScholarData      *ScholarProfile `json:"scholar_data,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
}

// DisplayName falls back to the e-mail when no full name was recorded.
func (i *Identity) DisplayName() string {
	if i.FullName != "" {
		return i.FullName
	}
	return i.Email
}

// ParseIdentity decodes a stored identity blob. A blob that is valid JSON
// but lacks a known role is rejected too: such an identity could never be
// routed anywhere.
func ParseIdentity(b []byte) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, err
	}
	if !id.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, id.Role)
	}
	return &id, nil
}

// AuthResponse is the body of /auth/login and /auth/register.
// user_type is only guaranteed on login; UserInfo.Role is always set.
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type,omitempty"`
	Role        Role     `json:"user_type,omitempty"`
	UserInfo    Identity `json:"user_info"`
}

// EffectiveRole prefers the top-level user_type and falls back to the
// role embedded in user_info.
func (r *AuthResponse) EffectiveRole() Role {
	if r.Role != "" {
		return r.Role
	}
	return r.UserInfo.Role
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"user_type"`
}
