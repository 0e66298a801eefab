package services

import (
	"context"

	"github.com/SscSPs/iso4217/internal/core/domain"
)

// CatalogReaderSvc defines read operations over the currency table
type CatalogReaderSvc interface {
	// GetCurrency retrieves a currency by its three-letter code (case-insensitive).
	GetCurrency(ctx context.Context, code string) (*domain.CurrencyRecord, error)

	// ListCurrencies retrieves all currencies matching the filter, ordered by code.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRecord, error)

	// FindByNumber retrieves every currency carrying a numeric code.
	// Historic currencies frequently share numbers.
	FindByNumber(ctx context.Context, number int) ([]domain.CurrencyRecord, error)
}

// DatasetSvc exposes the built table itself
type DatasetSvc interface {
	// Dataset returns the process-wide table, building it on first use.
	Dataset(ctx context.Context) (*domain.Dataset, error)

	// DatasetInfo summarises the table: publication date, version and counts.
	DatasetInfo(ctx context.Context) (*domain.DatasetInfo, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	DatasetSvc
}
