package domain

import "time"

// Snapshot describes one copy of the dataset written to persistent storage.
type Snapshot struct {
	SnapshotID string    `json:"snapshotID"`
	Published  time.Time `json:"published"`
	Version    string    `json:"version"`
	Total      int       `json:"total"`
	Active     int       `json:"active"`
	SyncedAt   time.Time `json:"syncedAt"`
}
