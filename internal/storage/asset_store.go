// Package storage writes uploaded meeting assets to the local filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// AssetStore saves files under {baseDir}/{meetingID}/{fileName}. Repeated
// uploads with the same filename overwrite: last write wins.
type AssetStore struct {
	baseDir string
}

func NewAssetStore(baseDir string) *AssetStore {
	if baseDir == "" {
		baseDir = "data/assets"
	}
	return &AssetStore{baseDir: baseDir}
}

// Save writes data and returns the stored path.
func (s *AssetStore) Save(meetingID, fileName string, data []byte) (string, error) {
	// Strip any path components a client smuggles into the filename.
	fileName = filepath.Base(fileName)
	if fileName == "." || fileName == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name")
	}

	dir := filepath.Join(s.baseDir, meetingID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create asset dir failed: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write asset file failed: %w", err)
	}
	return path, nil
}
