package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is a Collection backed by a MongoDB collection.
type Mongo[T any] struct {
	collection *mongo.Collection
}

func NewMongo[T any](collection *mongo.Collection) *Mongo[T] {
	return &Mongo[T]{collection: collection}
}

func (m *Mongo[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		return m.wrap("insert", err)
	}
	return nil
}

func (m *Mongo[T]) InsertMany(ctx context.Context, docs []*T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, doc)
	}
	if _, err := m.collection.InsertMany(ctx, batch); err != nil {
		return m.wrap("insert many", err)
	}
	return nil
}

func (m *Mongo[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, m.wrap("find", err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, m.wrap("decode", err)
	}
	return docs, nil
}

func (m *Mongo[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := m.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, m.wrap("find one", err)
	}
	return &doc, nil
}

func (m *Mongo[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return m.FindOne(ctx, bson.M{"_id": id})
}

func (m *Mongo[T]) ReplaceByID(ctx context.Context, id primitive.ObjectID, doc *T) (*T, error) {
	fields, err := replacementFields(doc)
	if err != nil {
		return nil, fmt.Errorf("store: %s: encode replacement: %w", m.collection.Name(), err)
	}

	// $literal keeps user text such as "$500 off" from being read as a field path.
	pipeline := mongo.Pipeline{{{Key: "$replaceWith", Value: bson.M{
		"$mergeObjects": bson.A{
			bson.M{"$literal": fields},
			bson.M{"_id": "$_id", "createdAt": "$createdAt"},
		},
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	err = m.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&updated)
	if err != nil {
		return nil, m.wrap("replace", err)
	}
	return &updated, nil
}

func (m *Mongo[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return m.wrap("delete", err)
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (m *Mongo[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNoRecord
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s: %v", ErrDuplicate, m.collection.Name(), err)
	default:
		return fmt.Errorf("store: %s: %s: %w", m.collection.Name(), op, err)
	}
}

// EnsureIndexes creates the indexes the user collection relies on.
func EnsureIndexes(ctx context.Context, users *mongo.Collection) error {
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("google_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("store: ensure indexes: %w", err)
	}
	return nil
}
