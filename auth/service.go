package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/sessions"
	"github.com/abhurtya/real-deal-server-side/store"
)

var (
	// ErrIncompleteProfile signals a provider profile without subject or email.
	ErrIncompleteProfile = errors.New("auth: profile lacks subject or email")
	// ErrUnauthenticated signals a missing, expired or orphaned session.
	ErrUnauthenticated = errors.New("auth: not authenticated")
)

// Identity is the authenticated caller of one request.
type Identity struct {
	SessionID string
	User      *models.User
}

// Service links provider profiles to users and users to sessions.
type Service struct {
	users    store.Collection[models.User]
	sessions *sessions.Store
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(users store.Collection[models.User], sessionStore *sessions.Store, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessionStore,
		logger:   logger,
		now:      time.Now,
	}
}

// Upsert finds the user linked to the profile's subject and refreshes its
// name, email and photo, or creates a new account with the default role. The
// role of an existing account is never touched here.
func (s *Service) Upsert(ctx context.Context, p *Profile) (*models.User, error) {
	if p == nil || p.Subject == "" || p.Email == "" {
		return nil, ErrIncompleteProfile
	}
	now := s.now().UTC().Truncate(time.Millisecond)

	existing, err := s.users.FindOne(ctx, bson.M{"googleId": p.Subject})
	switch {
	case err == nil:
		existing.Firstname = firstName(p)
		existing.Lastname = p.FamilyName
		existing.Email = p.Email
		existing.ProfileImage = p.Picture
		existing.UpdatedAt = now
		updated, err := s.users.ReplaceByID(ctx, existing.ID, existing)
		if err != nil {
			return nil, fmt.Errorf("auth: update user: %w", err)
		}
		return updated, nil
	case !errors.Is(err, store.ErrNoRecord):
		return nil, fmt.Errorf("auth: find user: %w", err)
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		Firstname:    firstName(p),
		Lastname:     p.FamilyName,
		Email:        p.Email,
		ProfileImage: p.Picture,
		GoogleID:     p.Subject,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("auth: create user: %w", err)
	}
	s.logger.Info("user created", "user_id", user.ID.Hex(), "email", user.Email)
	return user, nil
}

// Login upserts the user behind the profile and opens a session for it.
func (s *Service) Login(ctx context.Context, p *Profile) (*Identity, error) {
	user, err := s.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Create(ctx, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &Identity{SessionID: sess.ID, User: user}, nil
}

// Resolve maps a session id to the caller's identity. The user record is read
// on every call so role changes apply to live sessions.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*Identity, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, sessions.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(sess.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("auth: load session user: %w", err)
	}
	return &Identity{SessionID: sess.ID, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

// Promote grants the admin role to the user with the given email. It backs
// the out-of-band provisioning command and is not reachable over HTTP.
func (s *Service) Promote(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("auth: find %s: %w", email, err)
	}
	user.Role = models.RoleAdmin
	user.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)
	return s.users.ReplaceByID(ctx, user.ID, user)
}

func firstName(p *Profile) string {
	if p.GivenName != "" {
		return p.GivenName
	}
	local, _, _ := strings.Cut(p.Email, "@")
	return local
}
