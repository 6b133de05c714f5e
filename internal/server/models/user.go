package models

import "slices"

// Role is a member's standing in the organization.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleLeadership Role = "leadership"
	RoleBrother    Role = "brother"
	RolePublic     Role = "public"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return slices.Contains([]Role{RoleAdmin, RoleLeadership, RoleBrother, RolePublic}, r)
}

// User is a member linked to an identity-provider subject (WorkOSID).
//
// UpdatedAt is the provider's fixed-width ISO-8601 timestamp of the profile
// and orders concurrent upserts.
type User struct {
	ID                string   `json:"id"`
	WorkOSID          string   `json:"workosId"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	EmailVerified     bool     `json:"emailVerified"`
	ProfilePictureURL *string  `json:"profilePictureUrl,omitempty"`
	UpdatedAt         string   `json:"updatedAt"`
	Role              Role     `json:"memberType"`
	School            string   `json:"school"`
	OrganizationIDs   []string `json:"organizationIds"`
	EntityIDs         []string `json:"entityIds"`
	ApprovedBy        *string  `json:"approvedBy,omitempty"`
}

// IsAdmin reports whether u holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProviderProfile is the identity provider's view of a user, as received on
// sign-in or session refresh.
type ProviderProfile struct {
	ID                string  `json:"id" validate:"required"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email" validate:"required,email"`
	EmailVerified     bool    `json:"emailVerified"`
	UpdatedAt         string  `json:"updatedAt" validate:"required,isots"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// ToUser maps the profile onto a new public member.
func (p ProviderProfile) ToUser() *User {
	return &User{
		WorkOSID:          p.ID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Email:             p.Email,
		EmailVerified:     p.EmailVerified,
		ProfilePictureURL: p.ProfilePictureURL,
		UpdatedAt:         p.UpdatedAt,
		Role:              RolePublic,
		OrganizationIDs:   []string{},
		EntityIDs:         []string{},
	}
}
