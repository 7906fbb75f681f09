package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	qt "github.com/frankban/quicktest"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/sessions"
	"github.com/abhurtya/real-deal-server-side/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory[models.User], *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	users := store.NewMemory[models.User]("email")
	svc := NewService(users, sessions.NewStore(client, time.Hour), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, users, mr
}

func aliceProfile() *Profile {
	return &Profile{
		Subject:    "google-123",
		GivenName:  "Alice",
		FamilyName: "Agent",
		Email:      "alice@example.com",
		Picture:    "https://example.com/alice.png",
	}
}

func TestUpsertCreatesUserWithDefaultRole(t *testing.T) {
	c := qt.New(t)
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Upsert(ctx, aliceProfile())
	c.Assert(err, qt.IsNil)
	c.Assert(user.Role, qt.Equals, models.RoleUser)
	c.Assert(user.GoogleID, qt.Equals, "google-123")
	c.Assert(user.Firstname, qt.Equals, "Alice")

	all, err := users.Find(ctx, bson.M{})
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 1)
}

func TestUpsertRefreshesProfileButKeepsRole(t *testing.T) {
	c := qt.New(t)
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, aliceProfile())
	c.Assert(err, qt.IsNil)

	// provisioned out-of-band
	first.Role = models.RoleAdmin
	_, err = users.ReplaceByID(ctx, first.ID, first)
	c.Assert(err, qt.IsNil)

	changed := aliceProfile()
	changed.GivenName = "Alicia"
	changed.Email = "alicia@example.com"
	changed.Picture = "https://example.com/new.png"

	second, err := svc.Upsert(ctx, changed)
	c.Assert(err, qt.IsNil)
	c.Assert(second.ID, qt.Equals, first.ID)
	c.Assert(second.Firstname, qt.Equals, "Alicia")
	c.Assert(second.Email, qt.Equals, "alicia@example.com")
	c.Assert(second.ProfileImage, qt.Equals, "https://example.com/new.png")
	c.Assert(second.Role, qt.Equals, models.RoleAdmin)

	all, err := users.Find(ctx, bson.M{})
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 1)
}

func TestUpsertRejectsDuplicateEmailAndIncompleteProfiles(t *testing.T) {
	c := qt.New(t)
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, aliceProfile())
	c.Assert(err, qt.IsNil)

	other := aliceProfile()
	other.Subject = "google-456"
	_, err = svc.Upsert(ctx, other)
	c.Assert(err, qt.ErrorIs, store.ErrDuplicate)

	_, err = svc.Upsert(ctx, &Profile{Subject: "x"})
	c.Assert(err, qt.ErrorIs, ErrIncompleteProfile)
}

func TestUpsertFallsBackToEmailForFirstName(t *testing.T) {
	c := qt.New(t)
	svc, _, _ := newTestService(t)

	user, err := svc.Upsert(context.Background(), &Profile{Subject: "s", Email: "bob@example.com"})
	c.Assert(err, qt.IsNil)
	c.Assert(user.Firstname, qt.Equals, "bob")
}

func TestLoginResolveLogout(t *testing.T) {
	c := qt.New(t)
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	identity, err := svc.Login(ctx, aliceProfile())
	c.Assert(err, qt.IsNil)
	c.Assert(identity.SessionID, qt.Not(qt.Equals), "")

	resolved, err := svc.Resolve(ctx, identity.SessionID)
	c.Assert(err, qt.IsNil)
	c.Assert(resolved.User.Email, qt.Equals, "alice@example.com")

	// role changes are visible to the live session
	_, err = svc.Promote(ctx, "alice@example.com")
	c.Assert(err, qt.IsNil)
	resolved, err = svc.Resolve(ctx, identity.SessionID)
	c.Assert(err, qt.IsNil)
	c.Assert(resolved.User.IsAdmin(), qt.IsTrue)

	c.Assert(svc.Logout(ctx, identity.SessionID), qt.IsNil)
	_, err = svc.Resolve(ctx, identity.SessionID)
	c.Assert(err, qt.ErrorIs, ErrUnauthenticated)

	// a session whose user vanished is not an identity
	again, err := svc.Login(ctx, aliceProfile())
	c.Assert(err, qt.IsNil)
	c.Assert(users.DeleteByID(ctx, again.User.ID), qt.IsNil)
	_, err = svc.Resolve(ctx, again.SessionID)
	c.Assert(err, qt.ErrorIs, ErrUnauthenticated)
}

func TestPromoteUnknownEmail(t *testing.T) {
	c := qt.New(t)
	svc, _, _ := newTestService(t)

	_, err := svc.Promote(context.Background(), "nobody@example.com")
	c.Assert(err, qt.ErrorIs, store.ErrNoRecord)
}
