package mapping

import (
	"testing"

	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelCurrency(t *testing.T) {
	number, exp := 978, 2
	begin := domain.ApproxDate{Year: 1989}
	rec := domain.CurrencyRecord{
		Code:            "EUR",
		DisplayName:     "Euro",
		NumericCode:     &number,
		SubunitExponent: &exp,
		Entities:        []string{"AUSTRIA", "BELGIUM"},
		WithdrawalHistory: []domain.Historic{
			{Entity: "ATLANTIS", DisplayName: "Euro", Period: domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 1990}, Begin: &begin}},
			{Entity: "SERBIA AND MONTENEGRO", DisplayName: "Euro", Period: domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2006, Month: 10}}},
		},
	}

	currency, entities, withdrawals := ToModelCurrency("snap-1", rec)

	assert.Equal(t, "EUR", currency.Code)
	assert.Equal(t, "snap-1", currency.SnapshotID)
	assert.Equal(t, 978, *currency.NumericCode)
	require.Len(t, entities, 2)
	assert.Equal(t, "BELGIUM", entities[1].Entity)

	require.Len(t, withdrawals, 2)
	assert.Equal(t, 0, withdrawals[0].Position)
	assert.Equal(t, "1989 to 1990", withdrawals[0].Period)
	assert.Nil(t, withdrawals[0].EndMonth)
	require.NotNil(t, withdrawals[0].BeginYear)
	assert.Equal(t, 1989, *withdrawals[0].BeginYear)

	assert.Equal(t, 1, withdrawals[1].Position)
	require.NotNil(t, withdrawals[1].EndMonth)
	assert.Equal(t, 10, *withdrawals[1].EndMonth)
	assert.Nil(t, withdrawals[1].BeginYear)

	for i, w := range withdrawals {
		assert.Equal(t, rec.WithdrawalHistory[i], ToDomainHistoric(w))
	}
}

func TestSnapshotMapping(t *testing.T) {
	snap := domain.Snapshot{SnapshotID: "snap-1", Version: "0.6.240625", Total: 305, Active: 180}
	assert.Equal(t, snap, ToDomainSnapshot(ToModelSnapshot(snap)))
}
