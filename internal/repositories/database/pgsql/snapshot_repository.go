package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
	portsrepo "github.com/SscSPs/iso4217/internal/core/ports/repositories"
	"github.com/SscSPs/iso4217/internal/models"
	"github.com/SscSPs/iso4217/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a new repository for dataset snapshots.
func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepositoryWithTx {
	return &PgxSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepositoryWithTx = (*PgxSnapshotRepository)(nil)

// FindLatestSnapshot retrieves the most recently synced snapshot.
func (r *PgxSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	query := `
		SELECT snapshot_id, published, version, total, active, synced_at
		FROM dataset_snapshots
		ORDER BY synced_at DESC
		LIMIT 1;
	`
	var m models.DatasetSnapshot
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.SnapshotID,
		&m.Published,
		&m.Version,
		&m.Total,
		&m.Active,
		&m.SyncedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}

	snapshot := mapping.ToDomainSnapshot(m)
	return &snapshot, nil
}

// SaveSnapshot inserts the snapshot header.
func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, tx pgx.Tx, snapshot domain.Snapshot) error {
	m := mapping.ToModelSnapshot(snapshot)
	query := `
		INSERT INTO dataset_snapshots (snapshot_id, published, version, total, active, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query, m.SnapshotID, m.Published, m.Version, m.Total, m.Active, m.SyncedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", m.SnapshotID, err)
	}
	return nil
}

// ReplaceCurrencies deletes the stored table and bulk-loads records with COPY.
func (r *PgxSnapshotRepository) ReplaceCurrencies(ctx context.Context, tx pgx.Tx, snapshotID string, records []domain.CurrencyRecord) error {
	// entities and withdrawals cascade
	if _, err := tx.Exec(ctx, `DELETE FROM currencies;`); err != nil {
		return fmt.Errorf("failed to clear currencies: %w", err)
	}

	var (
		currencyRows   [][]any
		entityRows     [][]any
		withdrawalRows [][]any
	)
	for _, rec := range records {
		c, entities, withdrawals := mapping.ToModelCurrency(snapshotID, rec)
		currencyRows = append(currencyRows, []any{c.Code, c.DisplayName, c.NumericCode, c.SubunitExponent, c.IsFund, c.SnapshotID})
		for _, e := range entities {
			entityRows = append(entityRows, []any{e.Code, e.Entity})
		}
		for _, w := range withdrawals {
			withdrawalRows = append(withdrawalRows, []any{
				w.Code, w.Position, w.Entity, w.DisplayName, w.Period, w.EndYear, w.EndMonth, w.BeginYear, w.BeginMonth,
			})
		}
	}

	copies := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{"currencies", []string{"code", "display_name", "numeric_code", "subunit_exponent", "is_fund", "snapshot_id"}, currencyRows},
		{"currency_entities", []string{"code", "entity"}, entityRows},
		{"currency_withdrawals", []string{"code", "position", "entity", "display_name", "period", "end_year", "end_month", "begin_year", "begin_month"}, withdrawalRows},
	}
	for _, c := range copies {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows))
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", c.table, err)
		}
		if int(n) != len(c.rows) {
			return fmt.Errorf("copied %d of %d rows into %s", n, len(c.rows), c.table)
		}
	}
	return nil
}
