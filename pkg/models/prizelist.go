package models

import (
	"github.com/goccy/go-json"
)

// PrizeList is the metadata for a named, reusable prize list. The
// newline-delimited "id:name" body is kept in blob storage under the
// same id and only parsed when the list is assigned or viewed.
type PrizeList struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	CreatedAt  int64  `json:"created_at,omitempty"`
	PrizeCount int    `json:"prize_count,omitempty"`
}

// UnmarshalJSON normalizes legacy bare-string entries the same way
// MediaItem does.
func (p *PrizeList) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = PrizeList{Name: name}
		return nil
	}

	type prizeList PrizeList
	var full prizeList
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*p = PrizeList(full)
	return nil
}
