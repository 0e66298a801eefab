package services

import (
	"fmt"

	"github.com/SscSPs/iso4217/internal/core/domain"
)

// DisambiguateNames returns a copy of records in which no two records share
// a display name. The input slice is left untouched.
//
//   - Active records sharing a name among active records get " (CODE)".
//   - Historic-only records whose name is used by another record get
//     " (YEAR)", YEAR being that of their last withdrawal.
//   - Names still shared after that get " (YEAR, CODE)" or " (CODE)".
func DisambiguateNames(records []domain.CurrencyRecord) []domain.CurrencyRecord {
	out := make([]domain.CurrencyRecord, len(records))
	activeNames := make(map[string]int)
	allNames := make(map[string]int)
	for i, rec := range records {
		out[i] = rec.Clone()
		allNames[rec.DisplayName]++
		if rec.IsActive() {
			activeNames[rec.DisplayName]++
		}
	}

	for i := range out {
		rec := &out[i]
		base := records[i].DisplayName
		switch {
		case rec.IsActive() && activeNames[base] > 1:
			rec.DisplayName = withCode(base, rec.Code)
		case !rec.IsActive() && allNames[base] > 1:
			if year, ok := lastWithdrawalYear(*rec); ok {
				rec.DisplayName = fmt.Sprintf("%s (%d)", base, year)
			}
		}
	}

	finalNames := make(map[string]int, len(out))
	for _, rec := range out {
		finalNames[rec.DisplayName]++
	}
	for i := range out {
		rec := &out[i]
		if finalNames[rec.DisplayName] < 2 {
			continue
		}
		base := records[i].DisplayName
		if year, ok := lastWithdrawalYear(*rec); ok && !rec.IsActive() {
			rec.DisplayName = fmt.Sprintf("%s (%d, %s)", base, year, rec.Code)
		} else {
			rec.DisplayName = withCode(base, rec.Code)
		}
	}
	return out
}

func withCode(name, code string) string {
	return fmt.Sprintf("%s (%s)", name, code)
}

func lastWithdrawalYear(rec domain.CurrencyRecord) (int, bool) {
	last, ok := rec.LastWithdrawal()
	if !ok {
		return 0, false
	}
	return last.Period.End.Year, true
}
