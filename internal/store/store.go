package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"psycare-backend/pkg/utils"
)

// Pagination defaults. The per-page ceiling is enforced by request binding
// upstream, the store only fills in the blanks.
const (
	DefaultPage    = 1
	DefaultPerPage = 30
)

// Store runs the persistence side of the CRUD contract for one resource
// collection. The same implementation backs every resource; handlers.Init
// instantiates one per collection.
type Store[T any] struct {
	col      *mongo.Collection
	resource string   // display name used in not-found messages
	unique   []string // unique fields, in duplicate-translation priority order
}

// New builds a store over one collection. uniqueFields is the priority order
// used when translating duplicate-key errors (email first where applicable,
// then the resource's own unique field).
func New[T any](db *mongo.Database, collection, resource string, uniqueFields ...string) *Store[T] {
	return &Store[T]{
		col:      db.Collection(collection),
		resource: resource,
		unique:   uniqueFields,
	}
}

func (s *Store[T]) notFound() *utils.APIError {
	return utils.NotFound(s.resource + " does not exist")
}

// GetByID resolves a 24-hex id to a record. A malformed id gets the same 404
// as a missing record, never a raw storage error.
func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, s.notFound()
	}
	var rec T
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound()
		}
		return nil, err
	}
	return &rec, nil
}

// FindOne returns the first record matching the filter, 404 when none does.
func (s *Store[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var rec T
	if err := s.col.FindOne(ctx, filter).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound()
		}
		return nil, err
	}
	return &rec, nil
}

// List returns one page of records, newest first.
func (s *Store[T]) List(ctx context.Context, filter bson.M, page, perPage int64) ([]T, error) {
	skip, limit := pageWindow(page, perPage)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, limit)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// pageWindow applies the page/perPage defaults and converts to skip+limit.
func pageWindow(page, perPage int64) (skip, limit int64) {
	if page < DefaultPage {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return (page - 1) * perPage, perPage
}

// Create inserts a record built by the caller (id and timestamps already
// assigned). Unique-index violations come back as structured conflicts.
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		return s.Translate(err)
	}
	return nil
}

// Replace swaps the whole document and returns the post-image. If the record
// vanished between load and write, the caller gets a 404, not a crash.
func (s *Store[T]) Replace(ctx context.Context, id bson.ObjectID, rec *T) (*T, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var updated T
	err := s.col.FindOneAndReplace(ctx, bson.M{"_id": id}, rec, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.notFound()
	}
	if err != nil {
		return nil, s.Translate(err)
	}
	return &updated, nil
}

// Update merges only the provided fields into the document and returns the
// post-image. Omitted fields keep their stored values.
func (s *Store[T]) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*T, error) {
	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, s.notFound()
	}
	if err != nil {
		return nil, s.Translate(err)
	}
	return &updated, nil
}

// Delete removes the record. Deleting an id that is already gone succeeds;
// "gone" is the only outcome callers observe.
func (s *Store[T]) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
