package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"aquacast/internal/logger"
)

// GCSStore archives snapshots in a Google Cloud Storage bucket
type GCSStore struct {
	client *storage.Client
	bucket string
	log    *logger.Logger
}

// NewGCSStore creates a new GCS-backed snapshot store
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucketName,
		log:    logger.Component("storage"),
	}, nil
}

// Close closes the GCS client
func (g *GCSStore) Close() error {
	return g.client.Close()
}

// StoreFile uploads a snapshot artifact into the folder for its timestamp
func (g *GCSStore) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	objectPath := GenerateSnapshotFolderPath(timestamp) + "/" + filename

	g.log.Info("Storing snapshot file", map[string]any{
		"bucket": g.bucket,
		"object": objectPath,
	})

	obj := g.client.Bucket(g.bucket).Object(objectPath)

	writer := obj.NewWriter(ctx)
	writer.ContentType = GetContentType(filename)
	writer.Metadata = map[string]string{
		"generated-at": timestamp.Format(time.RFC3339),
		"filename":     filename,
	}

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS file upload: %w", err)
	}

	return nil
}

// GetFile retrieves a snapshot artifact from GCS
func (g *GCSStore) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for file %s: %w", filePath, err)
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return fileData, nil
}

// ListSnapshots lists recent snapshot folders in the bucket, newest first
func (g *GCSStore) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})

	seen := make(map[string]bool)
	var snapshotPaths []string

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		// Object names look like YYYY/MM/DD/DemandSnapshot-.../forecast.json;
		// collapse them to their snapshot folder.
		if idx := strings.LastIndex(attrs.Name, "/"); idx > 0 {
			folder := attrs.Name[:idx]
			if strings.Contains(folder, "DemandSnapshot-") && !seen[folder] {
				seen[folder] = true
				snapshotPaths = append(snapshotPaths, folder)
			}
		}
	}

	sort.Strings(snapshotPaths)
	for i, j := 0, len(snapshotPaths)-1; i < j; i, j = i+1, j-1 {
		snapshotPaths[i], snapshotPaths[j] = snapshotPaths[j], snapshotPaths[i]
	}

	if limit > 0 && limit < len(snapshotPaths) {
		snapshotPaths = snapshotPaths[:limit]
	}

	return snapshotPaths, nil
}
