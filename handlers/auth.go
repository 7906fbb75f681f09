package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abhurtya/real-deal-server-side/auth"
	"github.com/abhurtya/real-deal-server-side/config"
	"github.com/abhurtya/real-deal-server-side/middleware"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/utils"
)

const (
	stateCookie   = "oauth_state"
	stateTTL      = 10 * time.Minute
	loginFailedTo = "/auth/login/failed"
)

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

type AuthController struct {
	provider     auth.Provider
	service      *auth.Service
	stateSecret  []byte
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration
	clientURL    string
	logger       *slog.Logger
}

func NewAuthController(provider auth.Provider, service *auth.Service, cfg *config.Config, logger *slog.Logger) *AuthController {
	return &AuthController{
		provider:     provider,
		service:      service,
		stateSecret:  []byte(cfg.SessionSecret),
		cookieName:   cfg.SessionCookieName,
		cookieSecure: cfg.CookieSecure,
		sessionTTL:   cfg.SessionTTL,
		clientURL:    cfg.ClientURL,
		logger:       logger,
	}
}

// GoogleLogin starts the authorization-code flow. The signed state is also
// pinned to the browser through a short-lived cookie.
func (ac *AuthController) GoogleLogin(c echo.Context) error {
	state, err := utils.GenerateStateToken(ac.stateSecret, stateTTL)
	if err != nil {
		ac.logger.Error("issue oauth state", "error", err)
		return c.Redirect(http.StatusFound, loginFailedTo)
	}
	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   ac.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, ac.provider.AuthCodeURL(state))
}

func (ac *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	state := c.QueryParam("state")
	c.SetCookie(&http.Cookie{Name: stateCookie, Path: "/auth", MaxAge: -1})

	pinned, err := c.Cookie(stateCookie)
	if err != nil || pinned.Value == "" || pinned.Value != state {
		return ac.fail(c, "state mismatch", nil)
	}
	if _, err := utils.ValidateStateToken(ac.stateSecret, state); err != nil {
		return ac.fail(c, "invalid state", err)
	}
	if reason := c.QueryParam("error"); reason != "" {
		return ac.fail(c, "provider refused", nil, "reason", reason)
	}

	profile, err := ac.provider.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		return ac.fail(c, "code exchange failed", err)
	}
	identity, err := ac.service.Login(ctx, profile)
	if err != nil {
		return ac.fail(c, "login failed", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     ac.cookieName,
		Value:    identity.SessionID,
		Path:     "/",
		MaxAge:   int(ac.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   ac.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	ac.logger.Info("user logged in", "user_id", identity.User.ID.Hex())
	return c.Redirect(http.StatusFound, ac.clientURL)
}

func (ac *AuthController) fail(c echo.Context, msg string, err error, attrs ...any) error {
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	ac.logger.Warn("oauth callback: "+msg, attrs...)
	return c.Redirect(http.StatusFound, loginFailedTo)
}

func (ac *AuthController) LoginSuccess(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "not authenticated"})
	}
	return c.JSON(http.StatusOK, LoginResponse{Success: true, Message: "successfull", User: identity.User})
}

func (ac *AuthController) LoginFailed(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "failure"})
}

// Logout ends the caller's session, if any, and sends the browser back to
// the client.
func (ac *AuthController) Logout(c echo.Context) error {
	if identity := middleware.IdentityFrom(c); identity != nil {
		if err := ac.service.Logout(c.Request().Context(), identity.SessionID); err != nil {
			ac.logger.Error("logout", "error", err)
			return c.String(http.StatusInternalServerError, "Error: could not logout")
		}
		ac.logger.Info("user logged out", "user_id", identity.User.ID.Hex())
	}
	c.SetCookie(&http.Cookie{Name: ac.cookieName, Path: "/", MaxAge: -1, HttpOnly: true, Secure: ac.cookieSecure})
	return c.Redirect(http.StatusFound, ac.clientURL)
}
