package mapping

import (
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/models"
)

// ToModelCurrency converts a domain CurrencyRecord into its table rows
func ToModelCurrency(snapshotID string, d domain.CurrencyRecord) (models.Currency, []models.CurrencyEntity, []models.CurrencyWithdrawal) {
	currency := models.Currency{
		Code:            d.Code,
		DisplayName:     d.DisplayName,
		NumericCode:     d.NumericCode,
		SubunitExponent: d.SubunitExponent,
		IsFund:          d.IsFund,
		SnapshotID:      snapshotID,
	}

	entities := make([]models.CurrencyEntity, len(d.Entities))
	for i, e := range d.Entities {
		entities[i] = models.CurrencyEntity{Code: d.Code, Entity: e}
	}

	withdrawals := make([]models.CurrencyWithdrawal, len(d.WithdrawalHistory))
	for i, h := range d.WithdrawalHistory {
		w := models.CurrencyWithdrawal{
			Code:        d.Code,
			Position:    i,
			Entity:      h.Entity,
			DisplayName: h.DisplayName,
			Period:      h.Period.String(),
			EndYear:     h.Period.End.Year,
			EndMonth:    monthPtr(h.Period.End),
		}
		if h.Period.Begin != nil {
			year := h.Period.Begin.Year
			w.BeginYear = &year
			w.BeginMonth = monthPtr(*h.Period.Begin)
		}
		withdrawals[i] = w
	}
	return currency, entities, withdrawals
}

// ToDomainHistoric converts a withdrawal row back into a domain Historic
func ToDomainHistoric(m models.CurrencyWithdrawal) domain.Historic {
	period := domain.ApproxTimeSpan{End: domain.ApproxDate{Year: m.EndYear, Month: deref(m.EndMonth)}}
	if m.BeginYear != nil {
		period.Begin = &domain.ApproxDate{Year: *m.BeginYear, Month: deref(m.BeginMonth)}
	}
	return domain.Historic{Entity: m.Entity, DisplayName: m.DisplayName, Period: period}
}

// ToModelSnapshot converts a domain Snapshot to a model DatasetSnapshot
func ToModelSnapshot(d domain.Snapshot) models.DatasetSnapshot {
	return models.DatasetSnapshot{
		SnapshotID: d.SnapshotID,
		Published:  d.Published,
		Version:    d.Version,
		Total:      d.Total,
		Active:     d.Active,
		SyncedAt:   d.SyncedAt,
	}
}

// ToDomainSnapshot converts a model DatasetSnapshot to a domain Snapshot
func ToDomainSnapshot(m models.DatasetSnapshot) domain.Snapshot {
	return domain.Snapshot{
		SnapshotID: m.SnapshotID,
		Published:  m.Published,
		Version:    m.Version,
		Total:      m.Total,
		Active:     m.Active,
		SyncedAt:   m.SyncedAt,
	}
}

func monthPtr(d domain.ApproxDate) *int {
	if !d.HasMonth() {
		return nil
	}
	month := d.Month
	return &month
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
