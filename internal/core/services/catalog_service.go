package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
)

// catalogService owns the process-wide currency table. The table is built
// on first access, exactly once; a failed build is remembered and returned
// to every later caller.
type catalogService struct {
	BaseService
	sources isoxml.Sources

	once    sync.Once
	dataset *domain.Dataset
	err     error
}

// NewCatalogService creates a catalog over the given source lists.
func NewCatalogService(sources isoxml.Sources) portssvc.CatalogSvcFacade {
	return &catalogService{sources: sources}
}

func (s *catalogService) Dataset(ctx context.Context) (*domain.Dataset, error) {
	s.once.Do(func() {
		ds, err := BuildDataset(ctx, s.sources)
		if err != nil {
			s.LogError(ctx, err, "Failed to build currency dataset")
			s.err = fmt.Errorf("failed to build currency dataset: %w", err)
			return
		}
		s.dataset = ds
		s.LogInfo(ctx, "Currency dataset built",
			slog.Int("currencies", ds.Len()),
			slog.Int("active", ds.ActiveCount()),
			slog.String("version", domain.Version(ds.Published())))
	})
	return s.dataset, s.err
}

func (s *catalogService) GetCurrency(ctx context.Context, code string) (*domain.CurrencyRecord, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !isCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be three letters, got %q", apperrors.ErrValidation, code)
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := ds.Get(code)
	if !ok {
		s.LogDebug(ctx, "Currency not found", slog.String("code", code))
		return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrNotFound)
	}
	return &rec, nil
}

func (s *catalogService) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRecord, error) {
	switch filter.Status {
	case domain.StatusAny, domain.StatusActive, domain.StatusHistoric:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, filter.Status)
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	out := []domain.CurrencyRecord{}
	for _, rec := range ds.Records() {
		if filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *catalogService) FindByNumber(ctx context.Context, number int) ([]domain.CurrencyRecord, error) {
	if number < 0 || number > 999 {
		return nil, fmt.Errorf("%w: numeric code must be between 0 and 999, got %d", apperrors.ErrValidation, number)
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	recs := ds.ByNumber(number)
	if len(recs) == 0 {
		return nil, fmt.Errorf("numeric code %03d: %w", number, apperrors.ErrNotFound)
	}
	return recs, nil
}

func (s *catalogService) DatasetInfo(ctx context.Context) (*domain.DatasetInfo, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	info := ds.Info()
	return &info, nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
