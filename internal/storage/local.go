package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LocalStore archives snapshots on the local file system
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a new local snapshot store rooted at baseDir
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStore{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage (implements same interface as GCSStore)
func (l *LocalStore) Close() error {
	return nil
}

// StoreFile writes a snapshot artifact into the folder for its timestamp
func (l *LocalStore) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, GenerateSnapshotFolderPath(timestamp), filename)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// GetFile retrieves a snapshot artifact from local storage
func (l *LocalStore) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListSnapshots lists recent snapshot folders, sorted newest first
func (l *LocalStore) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	var snapshotPaths []string

	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors and continue
		}

		if info.IsDir() && strings.HasPrefix(info.Name(), "DemandSnapshot-") {
			relPath, _ := filepath.Rel(l.baseDir, path)
			snapshotPaths = append(snapshotPaths, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk snapshot directory: %w", err)
	}

	// Folder names embed the timestamp, so lexical order is
	// chronological; reverse for newest first.
	sort.Strings(snapshotPaths)
	for i, j := 0, len(snapshotPaths)-1; i < j; i, j = i+1, j-1 {
		snapshotPaths[i], snapshotPaths[j] = snapshotPaths[j], snapshotPaths[i]
	}

	if limit > 0 && limit < len(snapshotPaths) {
		snapshotPaths = snapshotPaths[:limit]
	}

	return snapshotPaths, nil
}
