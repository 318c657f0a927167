package storage

import (
	"context"
	"time"
)

// SnapshotStore defines the interface for archiving forecast snapshots
type SnapshotStore interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a snapshot artifact under the folder for the given timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a previously stored artifact by its full path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists recent snapshot folders, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)
}
