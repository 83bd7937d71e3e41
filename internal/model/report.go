package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfessionEarnings is one row of the best-profession aggregation:
// total price of paid jobs in the window, grouped by the contractor's
// profession.
type ProfessionEarnings struct {
	Profession  string
	TotalEarned decimal.Decimal
}

// ClientSpend is one row of the best-clients aggregation.
type ClientSpend struct {
	ClientID  uuid.UUID
	FullName  string
	TotalPaid decimal.Decimal
}

// EarningsReport is the material handed to the exporters.
type EarningsReport struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Professions []ProfessionEarnings
	Clients     []ClientSpend
}
