package models

import (
	"github.com/goccy/go-json"
)

// MediaItem is the metadata for a stored celebration animation. The binary
// data lives in blob storage under the same id.
type MediaItem struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	UploadedBy string `json:"uploaded_by,omitempty"`
	UploadedAt int64  `json:"uploaded_at,omitempty"`
}

// UnmarshalJSON accepts both the structured record and the legacy shape
// where an entry was stored as a bare name string. Legacy entries are
// normalized once at load time instead of being special-cased at every read.
func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*m = MediaItem{Name: name}
		return nil
	}

	type mediaItem MediaItem
	var full mediaItem
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*m = MediaItem(full)
	return nil
}
