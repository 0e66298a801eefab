package repositories

import (
	"context"

	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SnapshotReader defines read operations for stored dataset snapshots
type SnapshotReader interface {
	// FindLatestSnapshot retrieves the most recently synced snapshot.
	// It returns apperrors.ErrNotFound when nothing has been stored yet.
	FindLatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// SnapshotWriter defines write operations for dataset snapshots.
// All writes run inside the caller's transaction.
type SnapshotWriter interface {
	// SaveSnapshot records the snapshot header.
	SaveSnapshot(ctx context.Context, tx pgx.Tx, snapshot domain.Snapshot) error

	// ReplaceCurrencies swaps the stored currency table for records.
	ReplaceCurrencies(ctx context.Context, tx pgx.Tx, snapshotID string, records []domain.CurrencyRecord) error
}

// SnapshotRepositoryFacade combines all snapshot-related repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}

// SnapshotRepositoryWithTx extends SnapshotRepositoryFacade with transaction capabilities
type SnapshotRepositoryWithTx interface {
	SnapshotRepositoryFacade
	TransactionManager
}
