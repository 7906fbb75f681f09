package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	qt "github.com/frankban/quicktest"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/abhurtya/real-deal-server-side/auth"
	"github.com/abhurtya/real-deal-server-side/config"
	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/handlers"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/seed"
	"github.com/abhurtya/real-deal-server-side/sessions"
	"github.com/abhurtya/real-deal-server-side/store"
	"github.com/abhurtya/real-deal-server-side/utils"
)

type nopProvider struct{}

func (nopProvider) AuthCodeURL(state string) string { return "https://idp.example.com/?state=" + state }
func (nopProvider) Exchange(context.Context, string) (*auth.Profile, error) {
	return nil, errors.New("not used")
}

type nopGeocoder struct{}

func (nopGeocoder) Lookup(context.Context, string) (json.RawMessage, error) {
	return json.RawMessage(`{"lat":"0","lon":"0"}`), nil
}

type nopNotifier struct{}

func (nopNotifier) BookAppointment(models.BookingRequest) error { return nil }
func (nopNotifier) RequestListing(models.ListingRequest) error { return nil }

type testEnv struct {
	e          *echo.Echo
	properties *store.Memory[models.Property]
	admin      *http.Cookie
	user       *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	c := qt.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		ClientURL:         "http://localhost:3000",
		SessionSecret:     "test-secret",
		SessionCookieName: "connect.sid",
		SessionTTL:        time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := store.NewMemory[models.User]("email")
	service := auth.NewService(users, sessions.NewStore(rdb, cfg.SessionTTL), logger)
	properties := store.NewMemory[models.Property]()
	news := store.NewMemory[models.News]()

	e := NewServer(cfg, logger, service)
	RegisterRoutes(e, Controllers{
		Properties: handlers.NewPropertyController(gateway.New[models.Property](properties, utils.NewValidator())),
		News:       handlers.NewNewsController(gateway.New[models.News](news, utils.NewValidator())),
		Auth:       handlers.NewAuthController(nopProvider{}, service, cfg, logger),
		Geocode:    handlers.NewGeocodeController(nopGeocoder{}, logger),
		Mail:       handlers.NewMailController(nopNotifier{}),
	})

	adminID, err := service.Login(ctx, &auth.Profile{Subject: "sub-admin", GivenName: "Ada", Email: "ada@example.com"})
	c.Assert(err, qt.IsNil)
	_, err = service.Promote(ctx, "ada@example.com")
	c.Assert(err, qt.IsNil)
	userID, err := service.Login(ctx, &auth.Profile{Subject: "sub-user", GivenName: "Uma", Email: "uma@example.com"})
	c.Assert(err, qt.IsNil)

	return &testEnv{
		e:          e,
		properties: properties,
		admin:      &http.Cookie{Name: cfg.SessionCookieName, Value: adminID.SessionID},
		user:       &http.Cookie{Name: cfg.SessionCookieName, Value: userID.SessionID},
	}
}

func (env *testEnv) do(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func propertyPayload() map[string]any {
	return map[string]any{
		"title":       "Charming 3BR House in Suburb",
		"address":     "456 Oak St, Suburb, City",
		"price":       500000,
		"type":        "sale",
		"bedrooms":    3,
		"bathrooms":   2,
		"size":        "2000 sqft",
		"description": "Lovely house with a big yard.",
		"image":       "https://example.com/house.jpg",
		"latitude":    41.8781,
		"longitude":   -87.6298,
	}
}

func decode[T any](c *qt.C, rec *httptest.ResponseRecorder) T {
	var v T
	c.Assert(json.Unmarshal(rec.Body.Bytes(), &v), qt.IsNil, qt.Commentf("body: %s", rec.Body.String()))
	return v
}

func TestCreateAndFetchRoundTrip(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/properties/add", propertyPayload(), env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusCreated)
	created := decode[models.Property](c, rec)
	c.Assert(created.ID.IsZero(), qt.IsFalse)
	c.Assert(created.Title, qt.Equals, "Charming 3BR House in Suburb")
	c.Assert(*created.Price, qt.Equals, 500000.0)
	c.Assert(created.Size, qt.Equals, models.Size("2000 sqft"))

	rec = env.do(http.MethodGet, "/properties/"+created.ID.Hex(), nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(decode[models.Property](c, rec), qt.DeepEquals, created)
}

func TestMutationsRequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "add", method: http.MethodPost, path: "/properties/add", body: propertyPayload()},
		{name: "seed", method: http.MethodGet, path: "/properties/addDummyData"},
		{name: "news add", method: http.MethodPost, path: "/news/add", body: map[string]any{"title": "t", "description": "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			env := newTestEnv(t)

			for _, cookie := range []*http.Cookie{nil, env.user} {
				rec := env.do(tt.method, tt.path, tt.body, cookie)
				c.Assert(rec.Code, qt.Equals, http.StatusForbidden)
				c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{
					Message: "Sorry, Admin Only: You do not have permission to perform this action",
				})
			}

			all, err := env.properties.Find(context.Background(), nil)
			c.Assert(err, qt.IsNil)
			c.Assert(all, qt.HasLen, 0)
		})
	}
}

func TestMalformedIDIsNotFound(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	c.Assert(env.do(http.MethodGet, "/properties/123", nil, nil).Code, qt.Equals, http.StatusNotFound)
	c.Assert(env.do(http.MethodPut, "/properties/update/123", propertyPayload(), env.admin).Code, qt.Equals, http.StatusNotFound)
	c.Assert(env.do(http.MethodPut, "/properties/update/123", map[string]any{"title": "x"}, env.admin).Code, qt.Equals, http.StatusNotFound)
	c.Assert(env.do(http.MethodPut, "/properties/update/123", "{not json", env.admin).Code, qt.Equals, http.StatusNotFound)
	c.Assert(env.do(http.MethodDelete, "/properties/delete/123", nil, env.admin).Code, qt.Equals, http.StatusNotFound)
}

func TestDeleteTwice(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	created := decode[models.Property](c, env.do(http.MethodPost, "/properties/add", propertyPayload(), env.admin))

	rec := env.do(http.MethodDelete, "/properties/delete/"+created.ID.Hex(), nil, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{Message: "Property deleted successfully"})

	rec = env.do(http.MethodDelete, "/properties/delete/"+created.ID.Hex(), nil, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)

	c.Assert(env.do(http.MethodGet, "/properties/"+created.ID.Hex(), nil, nil).Code, qt.Equals, http.StatusNotFound)
}

func TestUpdate(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	created := decode[models.Property](c, env.do(http.MethodPost, "/properties/add", propertyPayload(), env.admin))

	payload := propertyPayload()
	payload["title"] = "Price cut: $500 off"
	payload["size"] = 1800
	delete(payload, "image")
	rec := env.do(http.MethodPut, "/properties/update/"+created.ID.Hex(), payload, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	updated := decode[models.Property](c, rec)
	c.Assert(updated.ID, qt.Equals, created.ID)
	c.Assert(updated.Title, qt.Equals, "Price cut: $500 off")
	c.Assert(updated.Size, qt.Equals, models.Size("1800"))
	c.Assert(updated.SizeSqft, qt.Equals, 1800)
	c.Assert(updated.Image, qt.Equals, "")
	c.Assert(updated.CreatedAt.Equal(created.CreatedAt), qt.IsTrue)

	rec = env.do(http.MethodPut, "/properties/update/"+created.ID.Hex(), map[string]any{"title": "only"}, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusConflict)

	rec = env.do(http.MethodPut, "/properties/update/"+created.ID.Hex(), "{not json", env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
}

func TestCreateRejectsInvalidPayloads(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	payload := propertyPayload()
	payload["type"] = "lease"
	rec := env.do(http.MethodPost, "/properties/add", payload, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusConflict)
	c.Assert(decode[models.MessageResponse](c, rec).Message, qt.Contains, "Type")

	rec = env.do(http.MethodPost, "/properties/add", "{", env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)

	all, err := env.properties.Find(context.Background(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 0)
}

func TestFilterSeededProperties(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/properties/addDummyData", nil, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusCreated)
	c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{Message: "Props added successfully"})

	var want []string
	for _, p := range seed.Properties() {
		if p.Type == models.PropertyTypeSale && *p.Price >= 400000 && *p.Price <= 900000 {
			want = append(want, p.Title)
		}
	}
	c.Assert(want, qt.HasLen, 7)

	rec = env.do(http.MethodGet, "/properties?minPrice=400000&maxPrice=900000&type=sale", nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	got := decode[[]models.Property](c, rec)
	titles := make([]string, 0, len(got))
	for _, p := range got {
		c.Assert(p.Type, qt.Equals, models.PropertyTypeSale)
		titles = append(titles, p.Title)
	}
	c.Assert(titles, qt.DeepEquals, want)

	all := decode[[]models.Property](c, env.do(http.MethodGet, "/properties", nil, nil))
	c.Assert(all, qt.HasLen, len(seed.Properties()))
}

func TestFilterEdgeCases(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	c.Assert(env.do(http.MethodGet, "/properties/addDummyData", nil, env.admin).Code, qt.Equals, http.StatusCreated)

	rec := env.do(http.MethodGet, "/properties?minPrice=900000&maxPrice=400000", nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.JSONEquals, []models.Property{})

	rec = env.do(http.MethodGet, "/properties?minBedrooms=abc", nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)

	rec = env.do(http.MethodGet, "/properties?minSize=3000", nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	for _, p := range decode[[]models.Property](c, rec) {
		c.Assert(p.SizeSqft >= 3000, qt.IsTrue, qt.Commentf("%s is %d sqft", p.Title, p.SizeSqft))
	}
}

func TestNewsRoutes(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/news", nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.JSONEquals, []models.News{})

	rec = env.do(http.MethodGet, "/news/addDummyData", nil, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusCreated)
	c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{Message: "News articles added successfully"})

	all := decode[[]models.News](c, env.do(http.MethodGet, "/news", nil, nil))
	c.Assert(all, qt.HasLen, len(seed.News()))

	id := all[0].ID.Hex()
	rec = env.do(http.MethodPut, "/news/update/"+id, map[string]any{"title": "Rates fall", "description": "Mortgage rates fell."}, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(decode[models.News](c, rec).Title, qt.Equals, "Rates fall")

	rec = env.do(http.MethodDelete, "/news/delete/"+id, nil, env.admin)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{Message: "News deleted successfully"})

	rec = env.do(http.MethodGet, "/news/"+id, nil, nil)
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)
	c.Assert(rec.Body.String(), qt.JSONEquals, models.MessageResponse{Message: "News not found"})
}

func TestCORSAllowsClientWithCredentials(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/properties", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	c.Assert(rec.Code, qt.Equals, http.StatusNoContent)
	c.Assert(rec.Header().Get(echo.HeaderAccessControlAllowOrigin), qt.Equals, "http://localhost:3000")
	c.Assert(rec.Header().Get(echo.HeaderAccessControlAllowCredentials), qt.Equals, "true")
}

func TestHealth(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	c.Assert(env.do(http.MethodGet, "/health", nil, nil).Code, qt.Equals, http.StatusOK)
}
