package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/middleware"
)

// BuildDataset runs the full pipeline over both source lists:
// parse, group by code, disambiguate names and index the result.
// Any parse error aborts the build; no partial dataset is returned.
func BuildDataset(ctx context.Context, src isoxml.Sources) (*domain.Dataset, error) {
	active, err := isoxml.OpenActiveList(src.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to open active list: %w", err)
	}
	historic, err := isoxml.OpenHistoricList(src.Historic)
	if err != nil {
		return nil, fmt.Errorf("failed to open historic list: %w", err)
	}

	var rows []domain.RawRow
	for _, doc := range []*isoxml.Document{active, historic} {
		for row, err := range doc.Rows() {
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", doc.List(), err)
			}
			rows = append(rows, row)
		}
	}

	grouped, disagreements := GroupRows(rows)
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	for _, d := range disagreements {
		logger.WarnContext(ctx, "Scalar fields disagree within currency code",
			slog.String("code", d.Code),
			slog.String("field", d.Field),
			slog.String("kept", d.Kept),
			slog.String("other", d.Other),
			slog.String("entity", d.Entity),
			slog.String("list", string(d.List)),
			slog.Int("entry", d.Entry),
		)
	}

	published := active.Published()
	if historic.Published().After(published) {
		published = historic.Published()
	}

	return domain.NewDataset(published, DisambiguateNames(grouped)), nil
}
