package storage

import (
	"context"
	"fmt"

	"aquacast/internal/config"
)

// NewSnapshotStore creates the snapshot store selected by configuration:
// a GCS bucket when one is configured, the local file system otherwise.
func NewSnapshotStore(ctx context.Context, cfg *config.Config) (SnapshotStore, error) {
	if cfg.GCSBucket != "" {
		gcsStore, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCS snapshot store: %w", err)
		}
		return gcsStore, nil
	}

	dir := cfg.SnapshotDir
	if dir == "" {
		dir = "snapshots"
	}
	localStore, err := NewLocalStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create local snapshot store: %w", err)
	}
	return localStore, nil
}
