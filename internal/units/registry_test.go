package units

import (
	"testing"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalRegistry_Define(t *testing.T) {
	reg := NewDecimalRegistry()
	require.NoError(t, reg.DefineBase("KWD", "[currency_KWD]", "Kuwaiti_Dinar", "kuwaiti_dinar"))
	require.NoError(t, reg.DefineScaled("KWDs", "KWD", decimal.New(1, 3)))

	fils, err := reg.Unit("KWDs")
	require.NoError(t, err)
	assert.True(t, fils.Factor.Equal(decimal.RequireFromString("0.001")))
	assert.Equal(t, Dimension("[currency_KWD]"), fils.Dimension)

	alias, err := reg.Unit("kuwaiti_dinar")
	require.NoError(t, err)
	assert.Equal(t, "KWD", alias.Name)

	assert.NoError(t, reg.DefineBase("KWD", "[currency_KWD]"), "identical redefinition is accepted")
	assert.ErrorIs(t, reg.DefineBase("KWD", "[currency_XXX]"), ErrRedefinition)
	assert.ErrorIs(t, reg.DefineBase("EUR", "[currency_EUR]", "KWD"), ErrRedefinition)
	assert.ErrorIs(t, reg.DefineScaled("XTSs", "XTS", decimal.NewFromInt(100)), ErrUndefinedUnit)
	assert.Error(t, reg.DefineScaled("KWDz", "KWD", decimal.Zero))
}

func TestDecimalRegistry_Parse(t *testing.T) {
	reg := NewDecimalRegistry()
	require.NoError(t, reg.DefineBase("UAH", "[currency_UAH]", "Hryvnia"))

	tests := []struct {
		expr      string
		magnitude string
		wantErr   error
	}{
		{expr: "5 Hryvnias", magnitude: "5"},
		{expr: "12.25 UAH", magnitude: "12.25"},
		{expr: "UAH", magnitude: "1"},
		{expr: "  -3   Hryvnia ", magnitude: "-3"},
		{expr: "five UAH", wantErr: apperrors.ErrValidation},
		{expr: "5 Roubles", wantErr: ErrUndefinedUnit},
		{expr: "1 2 UAH", wantErr: apperrors.ErrValidation},
		{expr: "", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q, err := reg.Parse(tt.expr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "UAH", q.Unit.Name)
			assert.True(t, q.Magnitude.Equal(decimal.RequireFromString(tt.magnitude)), q.String())
		})
	}
}

func TestQuantity_String(t *testing.T) {
	q := NewQuantity(decimal.RequireFromString("0.05"), Unit{Name: "USD"})
	assert.Equal(t, "0.05 USD", q.String())
}
