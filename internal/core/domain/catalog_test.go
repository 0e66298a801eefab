package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "0.6.240625", domain.Version(time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0.6.180829", domain.Version(time.Date(2018, 8, 29, 0, 0, 0, 0, time.UTC)))
}

func TestCurrencyFilter_Matches(t *testing.T) {
	yes, no := true, false
	uah := sampleRecords()[0]
	ats := sampleRecords()[1]
	fund := domain.CurrencyRecord{Code: "USN", IsFund: true, Entities: []string{"UNITED STATES OF AMERICA (THE)"}}

	tests := []struct {
		name   string
		filter domain.CurrencyFilter
		rec    domain.CurrencyRecord
		want   bool
	}{
		{name: "zero filter", rec: ats, want: true},
		{name: "active keeps active", filter: domain.CurrencyFilter{Status: domain.StatusActive}, rec: uah, want: true},
		{name: "active drops historic", filter: domain.CurrencyFilter{Status: domain.StatusActive}, rec: ats, want: false},
		{name: "historic keeps historic", filter: domain.CurrencyFilter{Status: domain.StatusHistoric}, rec: ats, want: true},
		{name: "historic drops active", filter: domain.CurrencyFilter{Status: domain.StatusHistoric}, rec: uah, want: false},
		{name: "fund only", filter: domain.CurrencyFilter{Fund: &yes}, rec: fund, want: true},
		{name: "fund excluded", filter: domain.CurrencyFilter{Fund: &no}, rec: fund, want: false},
		{name: "current entity", filter: domain.CurrencyFilter{Entity: "ukr"}, rec: uah, want: true},
		{name: "former entity", filter: domain.CurrencyFilter{Entity: "austria"}, rec: ats, want: true},
		{name: "entity mismatch", filter: domain.CurrencyFilter{Entity: "peru"}, rec: uah, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.rec))
		})
	}
}

func TestDataset_Info(t *testing.T) {
	ds := domain.NewDataset(time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC), sampleRecords())

	info := ds.Info()
	assert.Equal(t, "0.6.240625", info.Version)
	assert.Equal(t, 4, info.Total)
	assert.Equal(t, 1, info.Active)
	assert.Equal(t, 3, info.Historic)
}
