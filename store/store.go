// Package store is the persistence boundary for listing records. Every
// collection is addressed through the Collection interface so the HTTP layer
// never touches the driver directly.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNoRecord signals that no document matched the key or filter.
	ErrNoRecord = errors.New("store: no matching record")
	// ErrDuplicate signals a unique index violation.
	ErrDuplicate = errors.New("store: duplicate key")
)

// Collection is the contract every record collection satisfies.
type Collection[T any] interface {
	Insert(ctx context.Context, doc *T) error
	InsertMany(ctx context.Context, docs []*T) error
	Find(ctx context.Context, filter bson.M) ([]T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	// ReplaceByID swaps every field of the stored document for the fields of
	// doc, keeping only _id and createdAt, and returns the stored result.
	ReplaceByID(ctx context.Context, id primitive.ObjectID, doc *T) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// replacementFields flattens doc into the field set written by ReplaceByID.
func replacementFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	return fields, nil
}
