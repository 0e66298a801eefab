// Package iso4217 exposes the ISO 4217 currency table: every active code of
// list one and every withdrawn code of list three, merged into one record
// per code.
//
// The table is built from the embedded lists on first use and shared by the
// whole process. The accessors panic if the embedded lists cannot be parsed;
// call Dataset to observe that failure as an error instead.
package iso4217

//go:generate go run ../../cmd/gencodes -out codes.go

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/core/services"
)

// Withdrawal is one entity that stopped using a currency.
type Withdrawal = domain.Historic

// TimeSpan is the approximate period of a withdrawal.
type TimeSpan = domain.ApproxTimeSpan

// Table is the built currency table.
type Table = domain.Dataset

var catalog = services.NewCatalogService(isoxml.DefaultSources())

// Dataset returns the process-wide currency table, building it on first use.
func Dataset() (*Table, error) {
	return catalog.Dataset(context.Background())
}

func mustDataset() *Table {
	ds, err := Dataset()
	if err != nil {
		panic(err)
	}
	return ds
}

// Currency is a three-letter ISO 4217 alphabetic code.
type Currency string

// Lookup finds a currency by code, ignoring case.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := mustDataset().Get(code); !ok {
		return "", false
	}
	return Currency(code), true
}

// All returns every currency, active and withdrawn, ordered by code.
func All() []Currency {
	codes := mustDataset().Codes()
	out := make([]Currency, len(codes))
	for i, code := range codes {
		out[i] = Currency(code)
	}
	return out
}

// ByNumber returns every currency carrying the numeric code. Withdrawn
// currencies often share numbers.
func ByNumber(number int) []Currency {
	var out []Currency
	for _, rec := range mustDataset().ByNumber(number) {
		out = append(out, Currency(rec.Code))
	}
	return out
}

// PublishedDate is the later publication date of the two source lists.
func PublishedDate() time.Time {
	return mustDataset().Published()
}

// Version identifies the dataset, e.g. "0.6.240625".
func Version() string {
	return domain.Version(PublishedDate())
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) record() (domain.CurrencyRecord, bool) {
	return mustDataset().Get(string(c))
}

// Valid reports whether c is a code of the table.
func (c Currency) Valid() bool {
	_, ok := c.record()
	return ok
}

// Name is the unique display name, e.g. "Hryvnia" or "Afghani (2003)".
func (c Currency) Name() string {
	rec, _ := c.record()
	return rec.DisplayName
}

// Number returns the numeric code. Some withdrawn funds have none.
func (c Currency) Number() (int, bool) {
	rec, ok := c.record()
	if !ok || rec.NumericCode == nil {
		return 0, false
	}
	return *rec.NumericCode, true
}

// SubunitExponent returns the number of decimal digits of the minor unit.
// Withdrawn currencies and units such as gold have none.
func (c Currency) SubunitExponent() (int, bool) {
	rec, ok := c.record()
	if !ok || rec.SubunitExponent == nil {
		return 0, false
	}
	return *rec.SubunitExponent, true
}

// IsFund reports whether the code denotes a fund rather than a currency.
func (c Currency) IsFund() bool {
	rec, _ := c.record()
	return rec.IsFund
}

// IsActive reports whether any entity currently uses the currency.
func (c Currency) IsActive() bool {
	rec, _ := c.record()
	return rec.IsActive()
}

// Entities lists the entities currently using the currency, sorted.
func (c Currency) Entities() []string {
	rec, _ := c.record()
	return rec.Entities
}

// WithdrawalHistory lists the entities that stopped using the currency,
// oldest first.
func (c Currency) WithdrawalHistory() []Withdrawal {
	rec, _ := c.record()
	return rec.WithdrawalHistory
}
