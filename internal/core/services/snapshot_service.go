package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
	portsrepo "github.com/SscSPs/iso4217/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/google/uuid"
)

type snapshotService struct {
	BaseService
	catalog portssvc.DatasetSvc
	repo    portsrepo.SnapshotRepositoryWithTx
	now     func() time.Time
}

// NewSnapshotService creates a service copying the catalog into the snapshot repository.
func NewSnapshotService(catalog portssvc.DatasetSvc, repo portsrepo.SnapshotRepositoryWithTx) portssvc.SnapshotSvc {
	return &snapshotService{catalog: catalog, repo: repo, now: time.Now}
}

func (s *snapshotService) SyncDataset(ctx context.Context) (bool, error) {
	ds, err := s.catalog.Dataset(ctx)
	if err != nil {
		return false, err
	}

	latest, err := s.repo.FindLatestSnapshot(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		s.LogError(ctx, err, "Failed to read latest snapshot")
		return false, fmt.Errorf("failed to read latest snapshot: %w", err)
	case !latest.Published.Before(ds.Published()):
		s.LogInfo(ctx, "Stored currency snapshot is current",
			slog.String("snapshot_id", latest.SnapshotID),
			slog.String("version", latest.Version))
		return false, nil
	}

	info := ds.Info()
	snapshot := domain.Snapshot{
		SnapshotID: uuid.NewString(),
		Published:  info.Published,
		Version:    info.Version,
		Total:      info.Total,
		Active:     info.Active,
		SyncedAt:   s.now().UTC(),
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if rbErr := s.repo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back snapshot transaction")
		}
	}()

	if err := s.repo.SaveSnapshot(ctx, tx, snapshot); err != nil {
		return false, fmt.Errorf("failed to save snapshot: %w", err)
	}
	if err := s.repo.ReplaceCurrencies(ctx, tx, snapshot.SnapshotID, ds.Records()); err != nil {
		return false, fmt.Errorf("failed to store currencies: %w", err)
	}
	if err := s.repo.Commit(ctx, tx); err != nil {
		return false, err
	}

	s.LogInfo(ctx, "Currency snapshot stored",
		slog.String("snapshot_id", snapshot.SnapshotID),
		slog.String("version", snapshot.Version),
		slog.Int("currencies", snapshot.Total))
	return true, nil
}
