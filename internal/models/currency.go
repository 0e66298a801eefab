package models

import "time"

// DatasetSnapshot is a row of dataset_snapshots.
type DatasetSnapshot struct {
	SnapshotID string    `db:"snapshot_id"`
	Published  time.Time `db:"published"`
	Version    string    `db:"version"`
	Total      int       `db:"total"`
	Active     int       `db:"active"`
	SyncedAt   time.Time `db:"synced_at"`
}

// Currency is a row of currencies.
type Currency struct {
	Code            string `db:"code"` // Primary Key (e.g., "USD")
	DisplayName     string `db:"display_name"`
	NumericCode     *int   `db:"numeric_code"`     // Nullable, not unique
	SubunitExponent *int   `db:"subunit_exponent"` // Nullable
	IsFund          bool   `db:"is_fund"`
	SnapshotID      string `db:"snapshot_id"`
}

// CurrencyEntity is a row of currency_entities: an entity currently using a currency.
type CurrencyEntity struct {
	Code   string `db:"code"`
	Entity string `db:"entity"`
}

// CurrencyWithdrawal is a row of currency_withdrawals.
type CurrencyWithdrawal struct {
	Code        string `db:"code"`
	Position    int    `db:"position"` // order within the withdrawal history
	Entity      string `db:"entity"`
	DisplayName string `db:"display_name"`
	Period      string `db:"period"` // "YYYY[-MM]" or "BEGIN to END"
	EndYear     int    `db:"end_year"`
	EndMonth    *int   `db:"end_month"`
	BeginYear   *int   `db:"begin_year"`
	BeginMonth  *int   `db:"begin_month"`
}
