package services_test

import (
	"testing"

	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRows_MergesBothLists(t *testing.T) {
	rows := []domain.RawRow{
		activeRow("RON", "ROMANIA", "Romanian Leu", 946, 2),
		activeRow("EUR", "GERMANY", "Euro", 978, 2),
		activeRow("EUR", "AUSTRIA", "Euro", 978, 2),
		historicRow("RON", "ROMANIA", "New Romanian Leu", intPtr(946), "2015-06"),
		historicRow("EUR", "SERBIA AND MONTENEGRO", "Euro", intPtr(978), "2006-10"),
		activeRow("EUR", "AUSTRIA", "Euro", 978, 2),
	}

	records, disagreements := services.GroupRows(rows)
	assert.Empty(t, disagreements)
	require.Len(t, records, 2)

	eur := records[0]
	assert.Equal(t, "EUR", eur.Code)
	assert.Equal(t, []string{"AUSTRIA", "GERMANY"}, eur.Entities, "entities form a sorted set")
	require.Len(t, eur.WithdrawalHistory, 1)
	assert.Equal(t, "SERBIA AND MONTENEGRO", eur.WithdrawalHistory[0].Entity)

	ron := records[1]
	assert.Equal(t, "Romanian Leu", ron.DisplayName, "current name wins over the withdrawn one")
	assert.Equal(t, []domain.Historic{
		{Entity: "ROMANIA", DisplayName: "New Romanian Leu", Period: *span("2015-06")},
	}, ron.WithdrawalHistory)
	require.NotNil(t, ron.SubunitExponent)
	assert.Equal(t, 2, *ron.SubunitExponent)
}

func TestGroupRows_ActiveRowIsRepresentative(t *testing.T) {
	// "TURKEY" sorts before "TÜRKİYE", yet the current row must supply the scalars
	rows := []domain.RawRow{
		historicRow("TRY", "TURKEY", "New Turkish Lira", intPtr(949), "2009-01"),
		activeRow("TRY", "TÜRKİYE", "Turkish Lira", 949, 2),
	}

	records, diffs := services.GroupRows(rows)
	require.Len(t, records, 1)
	assert.Empty(t, diffs, "names differ across withdrawal rows and are not reported")
	assert.Equal(t, "Turkish Lira", records[0].DisplayName)
	require.NotNil(t, records[0].SubunitExponent)
	assert.Equal(t, 2, *records[0].SubunitExponent)
}

func TestGroupRows_HistoricOnly(t *testing.T) {
	rows := []domain.RawRow{
		historicRow("XFO", "ZZ01_Gold-Franc", "Gold-Franc", nil, "2006-10"),
		historicRow("XRE", "ZZ02_RINET Funds Code", "RINET Funds Code", nil, "1999-11"),
		historicRow("HRK", "CROATIA", "Kuna", intPtr(191), "2023-01"),
		historicRow("HRK", "CROATIA", "Croatian Kuna", intPtr(191), "2015-06"),
	}

	records, _ := services.GroupRows(rows)
	require.Len(t, records, 3, "codes without a number stay apart")

	hrk := records[0]
	assert.Equal(t, "HRK", hrk.Code)
	assert.False(t, hrk.IsActive())
	assert.NotNil(t, hrk.Entities)
	assert.Empty(t, hrk.Entities)
	assert.Nil(t, hrk.SubunitExponent)
	require.Len(t, hrk.WithdrawalHistory, 2)
	assert.Equal(t, "2015-06", hrk.WithdrawalHistory[0].Period.String())
	assert.Equal(t, "2023-01", hrk.WithdrawalHistory[1].Period.String())
	assert.Equal(t, "Kuna", hrk.DisplayName, "first row after sorting supplies the name")

	assert.Nil(t, records[1].NumericCode)
	assert.Nil(t, records[2].NumericCode)
}

func TestGroupRows_HistoryOrdering(t *testing.T) {
	rows := []domain.RawRow{
		historicRow("VEF", "VENEZUELA", "Bolivar", intPtr(937), "2018-08"),
		historicRow("VEF", "VENEZUELA (BOLIVARIAN REPUBLIC OF)", "Bolivar", intPtr(937), "2016-02"),
		historicRow("VEF", "ANDORRA", "Bolivar", intPtr(937), "1989 to 1990"),
		historicRow("VEF", "BELIZE", "Bolivar", intPtr(937), "1990"),
	}

	records, _ := services.GroupRows(rows)
	require.Len(t, records, 1)

	var periods []string
	for _, h := range records[0].WithdrawalHistory {
		periods = append(periods, h.Period.String())
	}
	assert.Equal(t, []string{"1990", "1989 to 1990", "2016-02", "2018-08"}, periods)
}

func TestGroupRows_ReportsScalarDisagreements(t *testing.T) {
	fund := activeRow("ABC", "BETA", "Alpha", 1, 2)
	fund.IsFund = true
	rows := []domain.RawRow{
		activeRow("ABC", "ALPHA", "Alpha", 1, 2),
		fund,
		activeRow("ABC", "GAMMA", "Alpha", 2, 3),
		historicRow("ABC", "DELTA", "Alpha", intPtr(1), "2000"),
	}

	records, disagreements := services.GroupRows(rows)
	require.Len(t, records, 1)
	assert.Equal(t, 1, *records[0].NumericCode, "first row after sorting wins")
	assert.False(t, records[0].IsFund)
	assert.Equal(t, 2, *records[0].SubunitExponent)

	fields := make(map[string][]string)
	for _, d := range disagreements {
		fields[d.Field] = append(fields[d.Field], d.Entity)
	}
	assert.Equal(t, map[string][]string{
		"isFund":          {"BETA"},
		"numericCode":     {"GAMMA"},
		"subunitExponent": {"GAMMA"},
	}, fields, "historic rows carry no minor unit and are not reported for it")
	assert.Contains(t, disagreements[0].String(), "ABC")
}

func TestGroupRows_DoesNotMutateInput(t *testing.T) {
	rows := []domain.RawRow{
		activeRow("ZZZ", "B", "Zed", 1, 2),
		activeRow("AAA", "A", "Ay", 2, 2),
	}
	before := append([]domain.RawRow(nil), rows...)

	services.GroupRows(rows)
	assert.Equal(t, before, rows)
}
