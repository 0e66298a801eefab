// Package units provides a small decimal unit registry and the bridge that
// defines one unit per currency in it.
package units

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	// ErrUndefinedUnit is returned when a name resolves to no unit.
	ErrUndefinedUnit = errors.New("undefined unit")
	// ErrRedefinition is returned when a name is already bound to a different unit.
	ErrRedefinition = errors.New("unit already defined differently")
)

// Dimension names a base dimension, e.g. "[currency_USD]".
type Dimension string

// Unit is Factor times the base unit of its dimension.
type Unit struct {
	Name      string
	Dimension Dimension
	Factor    decimal.Decimal
}

func (u Unit) String() string {
	return u.Name
}

func (u Unit) sameAs(other Unit) bool {
	return u.Name == other.Name && u.Dimension == other.Dimension && u.Factor.Equal(other.Factor)
}

// Registry is the capability needed to hold currency units.
type Registry interface {
	// DefineBase binds name and aliases to a new base unit of dim.
	DefineBase(name string, dim Dimension, aliases ...string) error
	// DefineScaled binds name to base divided by divisor.
	DefineScaled(name, base string, divisor decimal.Decimal) error
	// Unit resolves a unit name, alias or plural form.
	Unit(name string) (Unit, error)
	// Parse reads "<magnitude> <unit>" or a bare unit name.
	Parse(expr string) (Quantity, error)
}

// DecimalRegistry is a Registry keeping exact decimal scale factors.
// It is safe for concurrent use.
type DecimalRegistry struct {
	mu    sync.RWMutex
	units map[string]Unit
}

// NewDecimalRegistry creates an empty registry.
func NewDecimalRegistry() *DecimalRegistry {
	return &DecimalRegistry{units: make(map[string]Unit)}
}

func (r *DecimalRegistry) DefineBase(name string, dim Dimension, aliases ...string) error {
	unit := Unit{Name: name, Dimension: dim, Factor: decimal.NewFromInt(1)}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bind(unit, append([]string{name}, aliases...))
}

func (r *DecimalRegistry) DefineScaled(name, base string, divisor decimal.Decimal) error {
	if divisor.IsZero() {
		return fmt.Errorf("unit %s: divisor must not be zero", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	baseUnit, ok := r.units[base]
	if !ok {
		return fmt.Errorf("unit %s: %w: %s", name, ErrUndefinedUnit, base)
	}
	unit := Unit{Name: name, Dimension: baseUnit.Dimension, Factor: baseUnit.Factor.Div(divisor)}
	return r.bind(unit, []string{name})
}

// bind requires r.mu held for writing. Rebinding a name to an identical
// unit is a no-op.
func (r *DecimalRegistry) bind(unit Unit, names []string) error {
	for _, n := range names {
		if existing, ok := r.units[n]; ok && !existing.sameAs(unit) {
			return fmt.Errorf("%w: %s", ErrRedefinition, n)
		}
	}
	for _, n := range names {
		r.units[n] = unit
	}
	return nil
}

func (r *DecimalRegistry) Unit(name string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.units[name]; ok {
		return u, nil
	}
	if singular, ok := strings.CutSuffix(name, "s"); ok && singular != "" {
		if u, ok := r.units[singular]; ok {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %s", ErrUndefinedUnit, name)
}

func (r *DecimalRegistry) Parse(expr string) (Quantity, error) {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 1:
		u, err := r.Unit(fields[0])
		if err != nil {
			return Quantity{}, err
		}
		return NewQuantity(decimal.NewFromInt(1), u), nil
	case 2:
		magnitude, err := decimal.NewFromString(fields[0])
		if err != nil {
			return Quantity{}, fmt.Errorf("invalid magnitude %q: %w", fields[0], apperrors.ErrValidation)
		}
		u, err := r.Unit(fields[1])
		if err != nil {
			return Quantity{}, err
		}
		return NewQuantity(magnitude, u), nil
	}
	return Quantity{}, fmt.Errorf("invalid quantity %q: %w", expr, apperrors.ErrValidation)
}

// Len returns the number of bound names, aliases included.
func (r *DecimalRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
