// Package sessions keeps login sessions in Redis. The client only ever holds
// the opaque session id in a cookie.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/abhurtya/real-deal-server-side/utils"
)

var ErrNotFound = errors.New("sessions: session not found")

type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(id string) string { return "session:" + id }

// Create starts a session for userID and returns it with a fresh id.
func (s *Store) Create(ctx context.Context, userID string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := utils.SetCached(ctx, s.client, key(sess.ID), sess, s.ttl); err != nil {
		return nil, fmt.Errorf("sessions: create: %w", err)
	}
	return sess, nil
}

// Get loads the session and slides its expiry forward.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var sess Session
	found, err := utils.GetCached(ctx, s.client, key(id), &sess)
	if err != nil {
		return nil, fmt.Errorf("sessions: get: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := s.client.Expire(ctx, key(id), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("sessions: refresh: %w", err)
	}
	sess.ID = id
	return &sess, nil
}

func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("sessions: destroy: %w", err)
	}
	return nil
}

func (s *Store) TTL() time.Duration { return s.ttl }
