package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/oauth2"

	"github.com/abhurtya/real-deal-server-side/config"
)

func newFakeGoogle(t *testing.T, userInfoStatus int) *Google {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(userInfoStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":         "google-123",
			"given_name":  "Alice",
			"family_name": "Agent",
			"email":       "alice@example.com",
			"picture":     "https://example.com/alice.png",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	g := NewGoogle(&config.Config{
		GoogleClientID:     "client",
		GoogleClientSecret: "secret",
		GoogleCallbackURL:  "http://localhost/auth/google/callback",
	})
	g.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	g.userInfoURL = srv.URL + "/userinfo"
	return g
}

func TestGoogleAuthCodeURL(t *testing.T) {
	c := qt.New(t)
	g := newFakeGoogle(t, http.StatusOK)

	u, err := url.Parse(g.AuthCodeURL("the-state"))
	c.Assert(err, qt.IsNil)
	c.Assert(u.Query().Get("state"), qt.Equals, "the-state")
	c.Assert(u.Query().Get("client_id"), qt.Equals, "client")
	c.Assert(u.Query().Get("scope"), qt.Equals, "openid profile email")
}

func TestGoogleExchange(t *testing.T) {
	c := qt.New(t)
	g := newFakeGoogle(t, http.StatusOK)

	profile, err := g.Exchange(context.Background(), "good-code")
	c.Assert(err, qt.IsNil)
	c.Assert(profile, qt.DeepEquals, &Profile{
		Subject:    "google-123",
		GivenName:  "Alice",
		FamilyName: "Agent",
		Email:      "alice@example.com",
		Picture:    "https://example.com/alice.png",
	})

	_, err = g.Exchange(context.Background(), "bad-code")
	c.Assert(err, qt.ErrorMatches, `(?s)auth: exchange code: .*`)
}

func TestGoogleExchangeUserInfoFailure(t *testing.T) {
	c := qt.New(t)
	g := newFakeGoogle(t, http.StatusInternalServerError)

	_, err := g.Exchange(context.Background(), "good-code")
	c.Assert(err, qt.ErrorMatches, "auth: fetch userinfo: unexpected status 500")
}
