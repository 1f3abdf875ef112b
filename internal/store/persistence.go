package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"crisis-supply-api-server/internal/request"
)

// Persistence is the single-entry durable backing of the request list.
// The whole list is written on every change and read once at load.
type Persistence interface {
	Load() ([]request.Request, error)
	Save([]request.Request) error
}

// FileStore keeps the list as one JSON array in a single file.
type FileStore struct {
	Path string
}

func (f *FileStore) Load() ([]request.Request, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read request archive: %w", err)
	}
	var requests []request.Request
	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("decode request archive: %w", err)
	}
	return requests, nil
}

func (f *FileStore) Save(requests []request.Request) error {
	if requests == nil {
		requests = []request.Request{}
	}
	data, err := json.MarshalIndent(requests, "", "  ")
	if err != nil {
		return fmt.Errorf("encode request archive: %w", err)
	}
	// Write-then-rename so a crash mid-write cannot truncate the archive.
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}
