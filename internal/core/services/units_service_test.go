package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/SscSPs/iso4217/internal/units"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsService_Convert(t *testing.T) {
	catalog := services.NewCatalogService(isoxml.DefaultSources())
	svc := services.NewUnitsService(units.NewBridge(units.NewDecimalRegistry(), catalog))
	ctx := context.Background()

	require.True(t, svc.Enabled())

	q, err := svc.Convert(ctx, decimal.NewFromInt(500), "USDs", "USD")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(q.Magnitude), q.String())
	assert.Equal(t, "USD", q.Unit.Name)

	q, err = svc.Convert(ctx, decimal.RequireFromString("1.5"), "hryvnias", "UAHs")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(q.Magnitude), q.String())

	_, err = svc.Convert(ctx, decimal.NewFromInt(1), "USD", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrDimensionality)

	_, err = svc.Convert(ctx, decimal.NewFromInt(1), "QQQ", "USD")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnitsService_Disabled(t *testing.T) {
	catalog := services.NewCatalogService(isoxml.DefaultSources())
	svc := services.NewUnitsService(units.NewBridge(nil, catalog))

	assert.False(t, svc.Enabled())
	q, err := svc.Convert(context.Background(), decimal.NewFromInt(1), "USDs", "USD")
	assert.Nil(t, q)
	assert.ErrorIs(t, err, apperrors.ErrUnitsUnavailable)
}
