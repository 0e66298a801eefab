package services

import (
	"context"

	"github.com/SscSPs/iso4217/internal/units"
	"github.com/shopspring/decimal"
)

// UnitsSvc converts amounts between currency units
type UnitsSvc interface {
	// Enabled reports whether a unit registry is attached.
	Enabled() bool

	// Convert expresses amount of unit from in unit to, e.g. 500 USDs in USD.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*units.Quantity, error)
}
