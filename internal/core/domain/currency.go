package domain

import (
	"slices"
	"strings"
	"time"
)

// SourceList identifies which ISO 4217 table a row was read from.
type SourceList string

const (
	ActiveList   SourceList = "list-one"   // current currency & funds
	HistoricList SourceList = "list-three" // historic denominations
)

// RawRow is a single normalized entry of one source list.
type RawRow struct {
	Code             string
	NumericCode      *int
	DisplayName      string
	IsFund           bool
	SubunitExponent  *int
	EntityName       string
	WithdrawalPeriod *ApproxTimeSpan

	// Provenance, used when reporting disagreements.
	List  SourceList
	Entry int
}

// IsWithdrawal reports whether the row describes a past use of the currency.
func (r RawRow) IsWithdrawal() bool {
	return r.WithdrawalPeriod != nil
}

// Historic is one withdrawal event of a currency.
type Historic struct {
	Entity      string         `json:"entity"`
	DisplayName string         `json:"displayName"`
	Period      ApproxTimeSpan `json:"period"`
}

// CurrencyRecord is the consolidated view of one currency code across both lists.
type CurrencyRecord struct {
	Code              string     `json:"code"`
	DisplayName       string     `json:"displayName"`
	NumericCode       *int       `json:"numericCode,omitempty"`
	SubunitExponent   *int       `json:"subunitExponent,omitempty"`
	IsFund            bool       `json:"isFund"`
	Entities          []string   `json:"entities"`          // sorted, unique
	WithdrawalHistory []Historic `json:"withdrawalHistory"` // ascending by period
}

// IsActive reports whether any entity currently uses the currency.
func (c CurrencyRecord) IsActive() bool {
	return len(c.Entities) > 0
}

// HasEntity reports whether entity currently uses the currency.
func (c CurrencyRecord) HasEntity(entity string) bool {
	_, found := slices.BinarySearch(c.Entities, entity)
	return found
}

// LastWithdrawal returns the most recent withdrawal event, if any.
func (c CurrencyRecord) LastWithdrawal() (Historic, bool) {
	if len(c.WithdrawalHistory) == 0 {
		return Historic{}, false
	}
	return c.WithdrawalHistory[len(c.WithdrawalHistory)-1], true
}

// Clone returns a deep copy so callers cannot alter the shared table.
func (c CurrencyRecord) Clone() CurrencyRecord {
	out := c
	if c.NumericCode != nil {
		n := *c.NumericCode
		out.NumericCode = &n
	}
	if c.SubunitExponent != nil {
		e := *c.SubunitExponent
		out.SubunitExponent = &e
	}
	out.Entities = slices.Clone(c.Entities)
	out.WithdrawalHistory = slices.Clone(c.WithdrawalHistory)
	for i, h := range out.WithdrawalHistory {
		if h.Period.Begin != nil {
			begin := *h.Period.Begin
			h.Period.Begin = &begin
		}
		out.WithdrawalHistory[i] = h
	}
	return out
}

// Dataset is the built currency table together with its publication date.
// It is never modified after construction.
type Dataset struct {
	published time.Time
	records   map[string]CurrencyRecord
	codes     []string
}

// NewDataset takes ownership of records and indexes them by code.
func NewDataset(published time.Time, records []CurrencyRecord) *Dataset {
	ds := &Dataset{
		published: published,
		records:   make(map[string]CurrencyRecord, len(records)),
		codes:     make([]string, 0, len(records)),
	}
	for _, rec := range records {
		if _, exists := ds.records[rec.Code]; !exists {
			ds.codes = append(ds.codes, rec.Code)
		}
		ds.records[rec.Code] = rec
	}
	slices.Sort(ds.codes)
	return ds
}

// Published is the latest publication date of the two source lists.
func (d *Dataset) Published() time.Time {
	return d.published
}

// Len returns the number of distinct currency codes.
func (d *Dataset) Len() int {
	return len(d.records)
}

// ActiveCount returns the number of records with at least one current entity.
func (d *Dataset) ActiveCount() int {
	n := 0
	for _, rec := range d.records {
		if rec.IsActive() {
			n++
		}
	}
	return n
}

// Get returns a copy of the record for code. Lookup is case-insensitive.
func (d *Dataset) Get(code string) (CurrencyRecord, bool) {
	rec, ok := d.records[strings.ToUpper(code)]
	if !ok {
		return CurrencyRecord{}, false
	}
	return rec.Clone(), true
}

// Codes returns all currency codes in ascending order.
func (d *Dataset) Codes() []string {
	return slices.Clone(d.codes)
}

// Records returns copies of all records ordered by code.
func (d *Dataset) Records() []CurrencyRecord {
	out := make([]CurrencyRecord, 0, len(d.codes))
	for _, code := range d.codes {
		out = append(out, d.records[code].Clone())
	}
	return out
}

// ByNumber returns every record carrying the numeric code, ordered by code.
// Historic currencies frequently share numbers, so more than one record may match.
func (d *Dataset) ByNumber(number int) []CurrencyRecord {
	var out []CurrencyRecord
	for _, code := range d.codes {
		rec := d.records[code]
		if rec.NumericCode != nil && *rec.NumericCode == number {
			out = append(out, rec.Clone())
		}
	}
	return out
}
