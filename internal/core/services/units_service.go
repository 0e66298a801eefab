package services

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/SscSPs/iso4217/internal/units"
	"github.com/shopspring/decimal"
)

type unitsService struct {
	BaseService
	bridge *units.Bridge
}

// NewUnitsService wraps a units bridge. A bridge without a registry makes
// every conversion fail with apperrors.ErrUnitsUnavailable.
func NewUnitsService(bridge *units.Bridge) portssvc.UnitsSvc {
	return &unitsService{bridge: bridge}
}

func (s *unitsService) Enabled() bool {
	return s.bridge.Enabled()
}

func (s *unitsService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*units.Quantity, error) {
	q, err := s.bridge.Convert(ctx, amount, from, to)
	if err != nil {
		s.LogDebug(ctx, "Unit conversion failed",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to convert %s to %s: %w", from, to, err)
	}
	return &q, nil
}
