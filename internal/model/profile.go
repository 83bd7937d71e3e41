package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProfileRole string

const (
	RoleClient     ProfileRole = "client"
	RoleContractor ProfileRole = "contractor"
)

// Profile is a party in the marketplace: a client pays for jobs, a
// contractor performs them. Balance is a point-in-time amount mutated
// only by the ledger transactions.
type Profile struct {
	ID         uuid.UUID
	Role       ProfileRole
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	CreatedAt  time.Time
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
