package units

import (
	"fmt"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Quantity is a magnitude expressed in a unit.
type Quantity struct {
	Magnitude decimal.Decimal
	Unit      Unit
}

// NewQuantity pairs a magnitude with a unit.
func NewQuantity(magnitude decimal.Decimal, unit Unit) Quantity {
	return Quantity{Magnitude: magnitude, Unit: unit}
}

func (q Quantity) String() string {
	return q.Magnitude.String() + " " + q.Unit.Name
}

// base returns the magnitude in the base unit of the quantity's dimension.
func (q Quantity) base() decimal.Decimal {
	return q.Magnitude.Mul(q.Unit.Factor)
}

// Equal reports whether both quantities denote the same amount of the same dimension.
func (q Quantity) Equal(other Quantity) bool {
	return q.Unit.Dimension == other.Unit.Dimension && q.base().Equal(other.base())
}

// To converts q into target. Quantities of another dimension are first
// carried over by the transformations of the given contexts.
func (q Quantity) To(target Unit, contexts ...*Context) (Quantity, error) {
	if q.Unit.Dimension == target.Dimension {
		return NewQuantity(q.base().Div(target.Factor), target), nil
	}

	for _, c := range contexts {
		if c == nil {
			continue
		}
		transform, ok := c.lookup(q.Unit.Dimension, target.Dimension)
		if !ok {
			continue
		}
		moved, err := transform(q)
		if err != nil {
			return Quantity{}, err
		}
		if moved.Unit.Dimension != target.Dimension {
			return Quantity{}, fmt.Errorf("transformation %s -> %s produced %s: %w",
				q.Unit.Dimension, target.Dimension, moved.Unit.Dimension, apperrors.ErrDimensionality)
		}
		return NewQuantity(moved.base().Div(target.Factor), target), nil
	}

	return Quantity{}, fmt.Errorf("%s (%s) to %s (%s): %w",
		q.Unit.Name, q.Unit.Dimension, target.Name, target.Dimension, apperrors.ErrDimensionality)
}

// Transformation maps a quantity of one dimension onto another.
type Transformation func(q Quantity) (Quantity, error)

type dimensionPair struct {
	from, to Dimension
}

// Context holds cross-dimension transformations, such as exchange rates.
type Context struct {
	transformations map[dimensionPair]Transformation
}

// NewContext creates an empty conversion context.
func NewContext() *Context {
	return &Context{transformations: make(map[dimensionPair]Transformation)}
}

// AddTransformation registers fn for conversions from one dimension to another.
func (c *Context) AddTransformation(from, to Dimension, fn Transformation) {
	c.transformations[dimensionPair{from: from, to: to}] = fn
}

// AddRate registers a fixed rate: one base unit of from equals rate base units of to.
func (c *Context) AddRate(from, to Dimension, rate decimal.Decimal, toBase Unit) {
	c.AddTransformation(from, to, func(q Quantity) (Quantity, error) {
		return NewQuantity(q.base().Mul(rate).Div(toBase.Factor), toBase), nil
	})
}

func (c *Context) lookup(from, to Dimension) (Transformation, bool) {
	fn, ok := c.transformations[dimensionPair{from: from, to: to}]
	return fn, ok
}
