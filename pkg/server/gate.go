package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/models"
)

const (
	// sessionCookie carries the opaque session token.
	sessionCookie = "library_session"

	// identityKey is the echo context key the gate stores the resolved
	// identity under.
	identityKey = "identity"
)

// requireAuth resolves the session cookie to an identity before the
// wrapped handler runs. Unauthenticated callers are redirected to the
// login flow and the handler never executes.
func (lib *LibraryServer) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return ctx.Redirect(http.StatusFound, "/login")
		}

		identity, ok := lib.sessions.Identity(cookie.Value)
		if !ok {
			return ctx.Redirect(http.StatusFound, "/login")
		}

		ctx.Set(identityKey, identity)
		return next(ctx)
	}
}

// currentIdentity returns the identity the gate attached to the request.
func currentIdentity(ctx echo.Context) (models.Identity, bool) {
	identity, ok := ctx.Get(identityKey).(models.Identity)
	return identity, ok
}

func setSessionCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
