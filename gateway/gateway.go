// Package gateway owns every write to listing records. Handlers reach it only
// after the admin guard has let the request through.
package gateway

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abhurtya/real-deal-server-side/store"
	"github.com/abhurtya/real-deal-server-side/utils"
)

var (
	// ErrNotFound covers both malformed keys and keys with no record.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is matched by every *ConflictError.
	ErrConflict = errors.New("conflict")
)

// ConflictError reports a rejected write. Its message is the message of the
// underlying cause.
type ConflictError struct {
	Cause error
}

func (e *ConflictError) Error() string        { return e.Cause.Error() }
func (e *ConflictError) Unwrap() error        { return e.Cause }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func conflict(err error) error { return &ConflictError{Cause: err} }

// Record is implemented by the pointer types of every stored entity.
type Record interface {
	SetID(primitive.ObjectID)
	SetTimestamps(created, updated time.Time)
}

type beforeSaver interface {
	BeforeSave()
}

type Validator interface {
	Validate(i interface{}) error
}

// Gateway runs validated create, replace and delete operations against one
// collection.
type Gateway[T any, PT interface {
	*T
	Record
}] struct {
	records   store.Collection[T]
	validator Validator
	now       func() time.Time
}

func New[T any, PT interface {
	*T
	Record
}](records store.Collection[T], validator Validator) *Gateway[T, PT] {
	return &Gateway[T, PT]{records: records, validator: validator, now: time.Now}
}

// List returns every record matching filter.
func (g *Gateway[T, PT]) List(ctx context.Context, filter bson.M) ([]T, error) {
	return g.records.Find(ctx, filter)
}

// Get fetches one record by key.
func (g *Gateway[T, PT]) Get(ctx context.Context, key string) (*T, error) {
	id, ok := utils.ParseObjectID(key)
	if !ok {
		return nil, ErrNotFound
	}
	doc, err := g.records.FindByID(ctx, id)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, ErrNotFound
	}
	return doc, err
}

// Create validates doc, assigns its identity and timestamps and persists it.
func (g *Gateway[T, PT]) Create(ctx context.Context, doc PT) (*T, error) {
	if err := g.prepare(doc, primitive.NewObjectID(), true); err != nil {
		return nil, err
	}
	if err := g.records.Insert(ctx, (*T)(doc)); err != nil {
		return nil, conflict(err)
	}
	return (*T)(doc), nil
}

// CreateMany is the bulk form of Create. Nothing is written when any document
// fails validation.
func (g *Gateway[T, PT]) CreateMany(ctx context.Context, docs []PT) error {
	batch := make([]*T, 0, len(docs))
	for _, doc := range docs {
		if err := g.prepare(doc, primitive.NewObjectID(), true); err != nil {
			return err
		}
		batch = append(batch, (*T)(doc))
	}
	if err := g.records.InsertMany(ctx, batch); err != nil {
		return conflict(err)
	}
	return nil
}

// Update replaces the whole record at key with doc. Fields missing from doc
// are dropped; only the identity and creation time survive. The returned value
// is the stored document after the write.
func (g *Gateway[T, PT]) Update(ctx context.Context, key string, doc PT) (*T, error) {
	id, ok := utils.ParseObjectID(key)
	if !ok {
		return nil, ErrNotFound
	}
	if err := g.prepare(doc, id, false); err != nil {
		return nil, err
	}

	updated, err := g.records.ReplaceByID(ctx, id, (*T)(doc))
	switch {
	case errors.Is(err, store.ErrNoRecord):
		return nil, ErrNotFound
	case err != nil:
		return nil, conflict(err)
	}
	return updated, nil
}

// Delete removes the record at key.
func (g *Gateway[T, PT]) Delete(ctx context.Context, key string) error {
	id, ok := utils.ParseObjectID(key)
	if !ok {
		return ErrNotFound
	}

	err := g.records.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNoRecord):
		return ErrNotFound
	case err != nil:
		return conflict(err)
	}
	return nil
}

func (g *Gateway[T, PT]) prepare(doc PT, id primitive.ObjectID, creating bool) error {
	if doc == nil {
		return conflict(errors.New("empty document"))
	}
	if err := g.validator.Validate(doc); err != nil {
		return conflict(err)
	}

	// Mongo keeps millisecond precision; truncating keeps echoed values equal
	// to what a later read returns.
	now := g.now().UTC().Truncate(time.Millisecond)
	created := time.Time{}
	if creating {
		created = now
	}
	doc.SetID(id)
	doc.SetTimestamps(created, now)
	if hook, ok := any(doc).(beforeSaver); ok {
		hook.BeforeSave()
	}
	return nil
}
