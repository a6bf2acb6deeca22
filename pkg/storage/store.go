// Package storage provides durable persistence for the giveaway system.
// Collections are serialized as id-keyed mappings; media bytes and prize
// list bodies are stored as raw blobs keyed by the same ids.
package storage

// Logical collection names shared by all backends.
const (
	CollectionGiveaways  = "giveaways"
	CollectionPrizes     = "prizes"
	CollectionMedia      = "media"
	CollectionPrizeLists = "prize_lists"
)

// Blob kinds. Each kind maps to its own namespace (a directory for the
// file backend, an id prefix for the Mongo backend).
const (
	BlobMedia      = "images"
	BlobPrizeLists = "prize_lists"
)

// Store is the persistence contract the lifecycle engine depends on.
//
// Load fills out with an empty mapping when the backing record does not
// exist; it never fails for missing data. Save is a full-collection
// overwrite and must complete durably before returning: the engine never
// acknowledges a state change ahead of persistence.
type Store interface {
	Load(collection string, out interface{}) error
	Save(collection string, data interface{}) error

	SaveBlob(kind, id string, data []byte) (string, error)
	LoadBlob(kind, id string) ([]byte, error)
	DeleteBlob(kind, id string) error

	// Status returns a human-readable state string and whether the
	// backend is usable, for the status API.
	Status() (string, bool)
}
