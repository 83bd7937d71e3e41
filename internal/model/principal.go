package model

import "github.com/google/uuid"

// Principal is the authenticated caller resolved by the HTTP middleware.
type Principal struct {
	ProfileID uuid.UUID
	Role      ProfileRole
	Admin     bool
}

func (p Principal) IsClient() bool     { return p.Role == RoleClient }
func (p Principal) IsContractor() bool { return p.Role == RoleContractor }
func (p Principal) IsAdmin() bool      { return p.Admin }
