package domain

import (
	"strings"
	"time"
)

// VersionPrefix is combined with the publication date to form the dataset version.
const VersionPrefix = "0.6."

// Version derives the dataset version from its publication date, e.g. "0.6.240625".
func Version(published time.Time) string {
	return VersionPrefix + published.Format("060102")
}

// CurrencyStatus selects active or historic records.
type CurrencyStatus string

const (
	StatusAny      CurrencyStatus = ""
	StatusActive   CurrencyStatus = "active"
	StatusHistoric CurrencyStatus = "historic"
)

// CurrencyFilter narrows a currency listing. Zero value matches everything.
type CurrencyFilter struct {
	Status CurrencyStatus
	Fund   *bool
	Entity string // case-insensitive substring of a current or former entity
}

// Matches reports whether rec passes every set criterion.
func (f CurrencyFilter) Matches(rec CurrencyRecord) bool {
	switch f.Status {
	case StatusActive:
		if !rec.IsActive() {
			return false
		}
	case StatusHistoric:
		if rec.IsActive() {
			return false
		}
	}

	if f.Fund != nil && rec.IsFund != *f.Fund {
		return false
	}

	if f.Entity != "" {
		needle := strings.ToUpper(f.Entity)
		for _, e := range rec.Entities {
			if strings.Contains(strings.ToUpper(e), needle) {
				return true
			}
		}
		for _, h := range rec.WithdrawalHistory {
			if strings.Contains(strings.ToUpper(h.Entity), needle) {
				return true
			}
		}
		return false
	}
	return true
}

// DatasetInfo summarises a built dataset.
type DatasetInfo struct {
	Published time.Time `json:"published"`
	Version   string    `json:"version"`
	Total     int       `json:"total"`
	Active    int       `json:"active"`
	Historic  int       `json:"historic"`
}

// Info summarises the dataset.
func (d *Dataset) Info() DatasetInfo {
	active := d.ActiveCount()
	return DatasetInfo{
		Published: d.published,
		Version:   Version(d.published),
		Total:     d.Len(),
		Active:    active,
		Historic:  d.Len() - active,
	}
}
