package units

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DatasetProvider hands out the built currency table.
type DatasetProvider interface {
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

// Bridge defines currency units in a Registry. A Bridge without a registry
// is valid; every operation then fails with apperrors.ErrUnitsUnavailable.
type Bridge struct {
	registry Registry
	catalog  DatasetProvider
}

// NewBridge creates a bridge. registry may be nil when units support is disabled.
func NewBridge(registry Registry, catalog DatasetProvider) *Bridge {
	return &Bridge{registry: registry, catalog: catalog}
}

// Enabled reports whether a registry is attached.
func (b *Bridge) Enabled() bool {
	return b != nil && b.registry != nil
}

// CurrencyDimension is the dimension holding all units of a currency.
func CurrencyDimension(code string) Dimension {
	return Dimension("[currency_" + code + "]")
}

// SubunitName is the name of the minor unit of a currency, e.g. "USDs".
func SubunitName(code string) string {
	return code + "s"
}

// DefineCurrencyUnits defines every currency of the dataset in the registry.
// A currency without a minor unit becomes one indivisible unit named after
// its code. Otherwise the code is the major unit, aliased by its display
// name with spaces replaced by underscores (and the lower-case form of it),
// and CODEs is the minor unit worth 10^-exponent of it.
func (b *Bridge) DefineCurrencyUnits(ctx context.Context) error {
	if !b.Enabled() {
		return apperrors.ErrUnitsUnavailable
	}
	ds, err := b.catalog.Dataset(ctx)
	if err != nil {
		return fmt.Errorf("failed to load currency dataset: %w", err)
	}

	for _, rec := range ds.Records() {
		if err := defineCurrency(b.registry, rec); err != nil {
			return err
		}
	}
	return nil
}

func defineCurrency(reg Registry, rec domain.CurrencyRecord) error {
	dim := CurrencyDimension(rec.Code)
	if rec.SubunitExponent == nil {
		if err := reg.DefineBase(rec.Code, dim); err != nil {
			return fmt.Errorf("failed to define unit %s: %w", rec.Code, err)
		}
		return nil
	}

	alias := strings.ReplaceAll(rec.DisplayName, " ", "_")
	aliases := []string{alias}
	if lower := strings.ToLower(alias); lower != alias {
		aliases = append(aliases, lower)
	}
	if err := reg.DefineBase(rec.Code, dim, aliases...); err != nil {
		return fmt.Errorf("failed to define unit %s: %w", rec.Code, err)
	}

	divisor := decimal.New(1, int32(*rec.SubunitExponent))
	if err := reg.DefineScaled(SubunitName(rec.Code), rec.Code, divisor); err != nil {
		return fmt.Errorf("failed to define unit %s: %w", SubunitName(rec.Code), err)
	}
	return nil
}

// CurrencyUnit returns the major unit of a currency, defining all currency
// units on first use.
func (b *Bridge) CurrencyUnit(ctx context.Context, code string) (Unit, error) {
	return b.lookup(ctx, strings.ToUpper(code))
}

// SubunitUnit returns the minor unit of a currency.
func (b *Bridge) SubunitUnit(ctx context.Context, code string) (Unit, error) {
	name := SubunitName(strings.ToUpper(code))
	u, err := b.lookup(ctx, name)
	if err != nil {
		return Unit{}, err
	}
	// plural lookup resolves "XAUs" to XAU, which has no minor unit
	if u.Name != name {
		return Unit{}, fmt.Errorf("%w: currency %s has no minor unit", apperrors.ErrNotFound, strings.ToUpper(code))
	}
	return u, nil
}

// Parse reads a quantity such as "5 Hryvnias" or "12.50 USD".
func (b *Bridge) Parse(ctx context.Context, expr string) (Quantity, error) {
	if !b.Enabled() {
		return Quantity{}, apperrors.ErrUnitsUnavailable
	}
	q, err := b.registry.Parse(expr)
	if errors.Is(err, ErrUndefinedUnit) {
		if err := b.DefineCurrencyUnits(ctx); err != nil {
			return Quantity{}, err
		}
		q, err = b.registry.Parse(expr)
	}
	return q, err
}

// Convert expresses amount of unit from in unit to.
func (b *Bridge) Convert(ctx context.Context, amount decimal.Decimal, from, to string, contexts ...*Context) (Quantity, error) {
	fromUnit, err := b.lookup(ctx, from)
	if err != nil {
		return Quantity{}, err
	}
	toUnit, err := b.lookup(ctx, to)
	if err != nil {
		return Quantity{}, err
	}
	return NewQuantity(amount, fromUnit).To(toUnit, contexts...)
}

func (b *Bridge) lookup(ctx context.Context, name string) (Unit, error) {
	if !b.Enabled() {
		return Unit{}, apperrors.ErrUnitsUnavailable
	}
	u, err := b.registry.Unit(name)
	if errors.Is(err, ErrUndefinedUnit) {
		if err := b.DefineCurrencyUnits(ctx); err != nil {
			return Unit{}, err
		}
		u, err = b.registry.Unit(name)
	}
	if errors.Is(err, ErrUndefinedUnit) {
		return Unit{}, fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	}
	return u, err
}
