package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PancyStudios/MysteryBoxGo/pkg/logger"
	"github.com/goccy/go-json"
)

// blobExt maps a blob kind to the file extension its entries use.
var blobExt = map[string]string{
	BlobMedia:      ".gif",
	BlobPrizeLists: ".txt",
}

// FileStore persists collections as indented JSON files under a data
// directory, one file per collection, and blobs as plain files in
// per-kind subdirectories. This is the default backend.
type FileStore struct {
	dataDir string
}

// NewFileStore creates the data directory tree and returns the store.
func NewFileStore(dataDir string) (*FileStore, error) {
	dirs := []string{dataDir}
	for kind := range blobExt {
		dirs = append(dirs, filepath.Join(dataDir, kind))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}
	logger.System(fmt.Sprintf("File store ready at %s", dataDir), "Storage")
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) collectionPath(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

func (s *FileStore) blobPath(kind, id string) string {
	return filepath.Join(s.dataDir, kind, id+blobExt[kind])
}

// Load reads a collection file into out. A missing file is not an error:
// out is left as the empty mapping the caller initialized it with.
func (s *FileStore) Load(collection string, out interface{}) error {
	data, err := os.ReadFile(s.collectionPath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", collection, err)
	}
	return nil
}

// Save overwrites the whole collection file. The write goes through a
// temp file and rename so a crash mid-write never truncates the old data.
func (s *FileStore) Save(collection string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	path := s.collectionPath(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0644); err != nil {
		return fmt.Errorf("saving %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("saving %s: %w", collection, err)
	}
	return nil
}

// SaveBlob writes raw bytes for the given kind and id and returns the
// resulting path.
func (s *FileStore) SaveBlob(kind, id string, data []byte) (string, error) {
	path := s.blobPath(kind, id)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("saving blob %s/%s: %w", kind, id, err)
	}
	return path, nil
}

// LoadBlob reads the raw bytes for the given kind and id.
func (s *FileStore) LoadBlob(kind, id string) ([]byte, error) {
	data, err := os.ReadFile(s.blobPath(kind, id))
	if err != nil {
		return nil, fmt.Errorf("loading blob %s/%s: %w", kind, id, err)
	}
	return data, nil
}

// DeleteBlob removes the blob file. Deleting a missing blob is a no-op.
func (s *FileStore) DeleteBlob(kind, id string) error {
	err := os.Remove(s.blobPath(kind, id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting blob %s/%s: %w", kind, id, err)
	}
	return nil
}

// Status implements Store.
func (s *FileStore) Status() (string, bool) {
	if _, err := os.Stat(s.dataDir); err != nil {
		return "🔴 | Data directory missing", false
	}
	return "🟢 | " + s.dataDir, true
}
