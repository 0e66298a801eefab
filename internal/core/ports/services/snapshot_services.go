package services

import "context"

// SnapshotSvc mirrors the currency table into persistent storage
type SnapshotSvc interface {
	// SyncDataset stores the current table unless the stored copy is already current.
	// It reports whether anything was written.
	SyncDataset(ctx context.Context) (bool, error)
}
