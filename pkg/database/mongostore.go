package database

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements the storage.Store contract on top of MongoDB.
// Each logical collection lives in a single document holding the full
// JSON payload, so a Save is one atomic upsert and Load/Save keep the
// same full-overwrite semantics as the file backend. Blobs get one
// document each in a shared "blobs" collection.
type MongoStore struct {
	db *Database
}

const (
	collectionsCol = "collections"
	blobsCol       = "blobs"
	opTimeout      = 5 * time.Second
)

// collectionDoc is the envelope for one logical collection.
type collectionDoc struct {
	ID      string `bson:"_id"`
	Payload string `bson:"payload"`
}

// blobDoc is the envelope for one stored blob.
type blobDoc struct {
	ID   string `bson:"_id"`
	Kind string `bson:"kind"`
	Name string `bson:"name"`
	Data []byte `bson:"data"`
}

// NewMongoStore creates a Store backed by the given database connection.
func NewMongoStore(db *Database) *MongoStore {
	return &MongoStore{db: db}
}

// Load reads a logical collection into out. A missing document leaves
// out untouched, matching the missing-file behavior of the file store.
func (s *MongoStore) Load(collection string, out interface{}) error {
	col := s.db.GetCollection(collectionsCol)
	if col == nil {
		return fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var doc collectionDoc
	err := col.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", collection, err)
	}

	if err := json.Unmarshal([]byte(doc.Payload), out); err != nil {
		return fmt.Errorf("decoding %s: %w", collection, err)
	}
	return nil
}

// Save overwrites a logical collection with the given data.
func (s *MongoStore) Save(collection string, data interface{}) error {
	col := s.db.GetCollection(collectionsCol)
	if col == nil {
		return fmt.Errorf("not connected to database")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err = col.UpdateOne(ctx,
		bson.M{"_id": collection},
		bson.M{"$set": bson.M{"payload": string(payload)}},
		opts)
	if err != nil {
		return fmt.Errorf("saving %s: %w", collection, err)
	}
	return nil
}

func blobKey(kind, id string) string {
	return kind + "/" + id
}

// SaveBlob stores raw bytes under a kind-scoped id. The returned
// location is the document key.
func (s *MongoStore) SaveBlob(kind, id string, data []byte) (string, error) {
	col := s.db.GetCollection(blobsCol)
	if col == nil {
		return "", fmt.Errorf("not connected to database")
	}

	key := blobKey(kind, id)
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := col.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"kind": kind, "name": id, "data": data}},
		opts)
	if err != nil {
		return "", fmt.Errorf("saving blob %s: %w", key, err)
	}
	return key, nil
}

// LoadBlob reads the stored bytes for a kind-scoped id.
func (s *MongoStore) LoadBlob(kind, id string) ([]byte, error) {
	col := s.db.GetCollection(blobsCol)
	if col == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var doc blobDoc
	err := col.FindOne(ctx, bson.M{"_id": blobKey(kind, id)}).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("loading blob %s/%s: %w", kind, id, err)
	}
	return doc.Data, nil
}

// DeleteBlob removes a stored blob. Deleting a missing blob is a no-op.
func (s *MongoStore) DeleteBlob(kind, id string) error {
	col := s.db.GetCollection(blobsCol)
	if col == nil {
		return fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := col.DeleteOne(ctx, bson.M{"_id": blobKey(kind, id)})
	return err
}

// Status reports the connection state of the backing database.
func (s *MongoStore) Status() (string, bool) {
	return s.db.GetStatus()
}
