package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Collection. Documents are kept in their BSON form so
// filters see the same field names and types as MongoDB would. It understands
// equality plus the $eq, $gt, $gte, $lt and $lte operators.
type Memory[T any] struct {
	mu     sync.RWMutex
	docs   map[primitive.ObjectID]bson.M
	order  []primitive.ObjectID
	unique []string
}

// NewMemory builds an empty collection enforcing uniqueness on the given fields.
func NewMemory[T any](uniqueFields ...string) *Memory[T] {
	return &Memory[T]{
		docs:   make(map[primitive.ObjectID]bson.M),
		unique: uniqueFields,
	}
}

func (m *Memory[T]) Insert(_ context.Context, doc *T) error {
	fields, err := toM(doc)
	if err != nil {
		return fmt.Errorf("store: memory: encode: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(fields)
}

func (m *Memory[T]) InsertMany(_ context.Context, docs []*T) error {
	batch := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		fields, err := toM(doc)
		if err != nil {
			return fmt.Errorf("store: memory: encode: %w", err)
		}
		batch = append(batch, fields)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, fields := range batch {
		if err := m.insertLocked(fields); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory[T]) insertLocked(fields bson.M) error {
	id, ok := fields["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		fields["_id"] = id
	}
	if _, exists := m.docs[id]; exists {
		return fmt.Errorf("%w: _id %s", ErrDuplicate, id.Hex())
	}
	if err := m.checkUniqueLocked(id, fields); err != nil {
		return err
	}
	m.docs[id] = fields
	m.order = append(m.order, id)
	return nil
}

func (m *Memory[T]) Find(_ context.Context, filter bson.M) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range m.order {
		fields := m.docs[id]
		if !matches(fields, filter) {
			continue
		}
		doc, err := fromM[T](fields)
		if err != nil {
			return nil, fmt.Errorf("store: memory: decode: %w", err)
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (m *Memory[T]) FindOne(_ context.Context, filter bson.M) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		if fields := m.docs[id]; matches(fields, filter) {
			return fromM[T](fields)
		}
	}
	return nil, ErrNoRecord
}

func (m *Memory[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.docs[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return fromM[T](fields)
}

func (m *Memory[T]) ReplaceByID(_ context.Context, id primitive.ObjectID, doc *T) (*T, error) {
	fields, err := replacementFields(doc)
	if err != nil {
		return nil, fmt.Errorf("store: memory: encode replacement: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.docs[id]
	if !ok {
		return nil, ErrNoRecord
	}
	fields["_id"] = id
	if created, ok := existing["createdAt"]; ok {
		fields["createdAt"] = created
	}
	if err := m.checkUniqueLocked(id, fields); err != nil {
		return nil, err
	}
	m.docs[id] = fields
	return fromM[T](fields)
}

func (m *Memory[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return ErrNoRecord
	}
	delete(m.docs, id)
	for i, candidate := range m.order {
		if candidate == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory[T]) checkUniqueLocked(id primitive.ObjectID, fields bson.M) error {
	for _, key := range m.unique {
		value, ok := fields[key]
		if !ok {
			continue
		}
		for otherID, other := range m.docs {
			if otherID == id {
				continue
			}
			if existing, ok := other[key]; ok && compare(existing, value) == 0 {
				return fmt.Errorf("%w: %s %v", ErrDuplicate, key, value)
			}
		}
	}
	return nil
}

func toM(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromM[T any](fields bson.M) (*T, error) {
	raw, err := bson.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func matches(fields, filter bson.M) bool {
	for key, cond := range filter {
		value, present := fields[key]
		ops, isOps := operators(cond)
		if !isOps {
			if !present || compare(value, cond) != 0 {
				return false
			}
			continue
		}
		if !present {
			return false
		}
		for op, operand := range ops {
			c := compare(value, operand)
			if c == incomparable {
				return false
			}
			var ok bool
			switch op {
			case "$eq":
				ok = c == 0
			case "$gt":
				ok = c > 0
			case "$gte":
				ok = c >= 0
			case "$lt":
				ok = c < 0
			case "$lte":
				ok = c <= 0
			}
			if !ok {
				return false
			}
		}
	}
	return true
}

func operators(cond any) (bson.M, bool) {
	ops, ok := cond.(bson.M)
	if !ok || len(ops) == 0 {
		return nil, false
	}
	for key := range ops {
		if !strings.HasPrefix(key, "$") {
			return nil, false
		}
	}
	return ops, true
}

const incomparable = 2

// compare orders two BSON values the way a range query would. Values of
// different kinds never match, mirroring MongoDB's type bracketing.
func compare(a, b any) int {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		if !ok {
			return incomparable
		}
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return incomparable
		}
		return strings.Compare(sa, sb)
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return incomparable
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
