package storage

import (
	"testing"
	"time"
)

func TestGenerateSnapshotFolderPath(t *testing.T) {
	timestamp := time.Date(2025, 6, 1, 8, 30, 5, 0, time.UTC)

	got := GenerateSnapshotFolderPath(timestamp)
	want := "2025/06/01/DemandSnapshot-2025-06-01-08-30-05"
	if got != want {
		t.Errorf("GenerateSnapshotFolderPath() = %q, want %q", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"forecast.json", "application/json"},
		{"dashboard.html", "text/html"},
		{"hourly.svg", "image/svg+xml"},
		{"overview.png", "image/png"},
		{"notes.txt", "text/plain"},
		{"data.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
