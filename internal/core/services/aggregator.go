package services

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/SscSPs/iso4217/internal/core/domain"
)

// ScalarDisagreement records a row whose scalar fields differ from the
// representative row chosen for its currency code.
type ScalarDisagreement struct {
	Code   string
	Field  string // "numericCode", "isFund" or "subunitExponent"
	Kept   string
	Other  string
	Entity string
	List   domain.SourceList
	Entry  int
}

func (d ScalarDisagreement) String() string {
	return fmt.Sprintf("%s: %s %s (kept) vs %s at %s entry %d (%s)",
		d.Code, d.Field, d.Kept, d.Other, d.List, d.Entry, d.Entity)
}

// GroupRows merges all rows of both lists into one record per currency code.
//
// Rows are ordered by (code, entity) with current usage before withdrawals
// on ties. Scalar fields come from the first current-usage row of a code,
// or from its first row when the code is only historic.
func GroupRows(rows []domain.RawRow) ([]domain.CurrencyRecord, []ScalarDisagreement) {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, compareRows)

	var (
		records       []domain.CurrencyRecord
		disagreements []ScalarDisagreement
	)
	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[end].Code == sorted[start].Code {
			end++
		}
		rec, diffs := groupCode(sorted[start:end])
		records = append(records, rec)
		disagreements = append(disagreements, diffs...)
		start = end
	}
	return records, disagreements
}

func compareRows(a, b domain.RawRow) int {
	if c := cmp.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	if c := cmp.Compare(a.EntityName, b.EntityName); c != 0 {
		return c
	}
	switch {
	case !a.IsWithdrawal() && b.IsWithdrawal():
		return -1
	case a.IsWithdrawal() && !b.IsWithdrawal():
		return 1
	}
	return 0
}

// groupCode consolidates the rows of a single code.
func groupCode(rows []domain.RawRow) (domain.CurrencyRecord, []ScalarDisagreement) {
	rep := rows[0]
	if i := slices.IndexFunc(rows, func(r domain.RawRow) bool { return !r.IsWithdrawal() }); i >= 0 {
		rep = rows[i]
	}

	rec := domain.CurrencyRecord{
		Code:              rep.Code,
		DisplayName:       rep.DisplayName,
		NumericCode:       copyInt(rep.NumericCode),
		SubunitExponent:   copyInt(rep.SubunitExponent),
		IsFund:            rep.IsFund,
		Entities:          []string{},
		WithdrawalHistory: []domain.Historic{},
	}

	var diffs []ScalarDisagreement
	for _, row := range rows {
		diffs = append(diffs, compareScalars(rep, row)...)

		if !row.IsWithdrawal() {
			rec.Entities = append(rec.Entities, row.EntityName)
			continue
		}
		period := *row.WithdrawalPeriod
		if period.Begin != nil {
			begin := *period.Begin
			period.Begin = &begin
		}
		rec.WithdrawalHistory = append(rec.WithdrawalHistory, domain.Historic{
			Entity:      row.EntityName,
			DisplayName: row.DisplayName,
			Period:      period,
		})
	}

	slices.Sort(rec.Entities)
	rec.Entities = slices.Compact(rec.Entities)
	slices.SortStableFunc(rec.WithdrawalHistory, func(a, b domain.Historic) int {
		return a.Period.Compare(b.Period)
	})
	return rec, diffs
}

func compareScalars(rep, row domain.RawRow) []ScalarDisagreement {
	var diffs []ScalarDisagreement
	report := func(field, kept, other string) {
		diffs = append(diffs, ScalarDisagreement{
			Code:   row.Code,
			Field:  field,
			Kept:   kept,
			Other:  other,
			Entity: row.EntityName,
			List:   row.List,
			Entry:  row.Entry,
		})
	}

	if rep.NumericCode != nil && row.NumericCode != nil && *rep.NumericCode != *row.NumericCode {
		report("numericCode", formatInt(rep.NumericCode), formatInt(row.NumericCode))
	}
	if rep.IsFund != row.IsFund {
		report("isFund", strconv.FormatBool(rep.IsFund), strconv.FormatBool(row.IsFund))
	}
	if !rep.IsWithdrawal() && !row.IsWithdrawal() && !equalInt(rep.SubunitExponent, row.SubunitExponent) {
		report("subunitExponent", formatInt(rep.SubunitExponent), formatInt(row.SubunitExponent))
	}
	return diffs
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatInt(v *int) string {
	if v == nil {
		return "N.A."
	}
	return strconv.Itoa(*v)
}
