package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func sampleRecords() []domain.CurrencyRecord {
	return []domain.CurrencyRecord{
		{
			Code:            "UAH",
			DisplayName:     "Hryvnia",
			NumericCode:     intPtr(980),
			SubunitExponent: intPtr(2),
			Entities:        []string{"UKRAINE"},
		},
		{
			Code:        "ATS",
			DisplayName: "Schilling",
			NumericCode: intPtr(40),
			Entities:    []string{},
			WithdrawalHistory: []domain.Historic{
				{Entity: "AUSTRIA", DisplayName: "Schilling", Period: domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2002, Month: 3}}},
			},
		},
		{
			Code:        "BGJ",
			DisplayName: "Lev A/52",
			NumericCode: intPtr(100),
			Entities:    []string{},
			WithdrawalHistory: []domain.Historic{
				{
					Entity:      "BULGARIA",
					DisplayName: "Lev A/52",
					Period: domain.ApproxTimeSpan{
						End:   domain.ApproxDate{Year: 1990},
						Begin: datePtr(domain.ApproxDate{Year: 1989}),
					},
				},
			},
		},
		{
			Code:        "BGK",
			DisplayName: "Lev A/62",
			NumericCode: intPtr(100),
			Entities:    []string{},
		},
	}
}

func TestDataset_Lookup(t *testing.T) {
	published := time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC)
	ds := domain.NewDataset(published, sampleRecords())

	assert.Equal(t, published, ds.Published())
	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, 1, ds.ActiveCount())
	assert.Equal(t, []string{"ATS", "BGJ", "BGK", "UAH"}, ds.Codes())

	rec, ok := ds.Get("uah")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "Hryvnia", rec.DisplayName)
	assert.True(t, rec.IsActive())
	assert.True(t, rec.HasEntity("UKRAINE"))
	assert.False(t, rec.HasEntity("POLAND"))

	_, ok = ds.Get("XXY")
	assert.False(t, ok)

	shared := ds.ByNumber(100)
	require.Len(t, shared, 2)
	assert.Equal(t, "BGJ", shared[0].Code)
	assert.Equal(t, "BGK", shared[1].Code)
	assert.Empty(t, ds.ByNumber(999))
}

func TestDataset_ReturnsCopies(t *testing.T) {
	ds := domain.NewDataset(time.Time{}, sampleRecords())

	rec, ok := ds.Get("BGJ")
	require.True(t, ok)
	*rec.NumericCode = 1
	rec.WithdrawalHistory[0].Entity = "MUTATED"
	rec.WithdrawalHistory[0].Period.Begin.Year = 1

	again, _ := ds.Get("BGJ")
	assert.Equal(t, 100, *again.NumericCode)
	assert.Equal(t, "BULGARIA", again.WithdrawalHistory[0].Entity)
	assert.Equal(t, 1989, again.WithdrawalHistory[0].Period.Begin.Year)

	codes := ds.Codes()
	codes[0] = "ZZZ"
	assert.Equal(t, "ATS", ds.Codes()[0])
}

func TestCurrencyRecord_Clone(t *testing.T) {
	for _, rec := range sampleRecords() {
		assert.Equal(t, rec, rec.Clone(), rec.Code)
	}
}

func TestCurrencyRecord_LastWithdrawal(t *testing.T) {
	rec := domain.CurrencyRecord{
		Code: "HRK",
		WithdrawalHistory: []domain.Historic{
			{Entity: "CROATIA", Period: domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2015, Month: 6}}},
			{Entity: "CROATIA", Period: domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2023, Month: 1}}},
		},
	}

	last, ok := rec.LastWithdrawal()
	require.True(t, ok)
	assert.Equal(t, "2023-01", last.Period.String())

	_, ok = domain.CurrencyRecord{Code: "UAH"}.LastWithdrawal()
	assert.False(t, ok)
}

func TestRawRow_IsWithdrawal(t *testing.T) {
	assert.False(t, domain.RawRow{Code: "UAH"}.IsWithdrawal())
	assert.True(t, domain.RawRow{
		Code:             "ATS",
		WithdrawalPeriod: &domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2002}},
	}.IsWithdrawal())
}
