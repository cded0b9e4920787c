package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/auth"
	"github.com/avin-dsouza/Digital-Library/pkg/catalog"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

// loginForm renders the login page.
func (lib *LibraryServer) loginForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Flash": takeFlash(ctx),
	})
}

// login verifies credentials and starts a session. The failure message is
// the same whether the username or the password was wrong.
func (lib *LibraryServer) login(ctx echo.Context) error {
	username := strings.TrimSpace(ctx.FormValue("username"))
	password := ctx.FormValue("password")

	user, err := lib.catalog.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, catalog.ErrUserNotFound) {
			setFlash(ctx, "Invalid username or password.")
			return ctx.Redirect(http.StatusFound, "/login")
		}
		log.Error().Err(err).Msg("Failed to look up user")
		return ctx.String(http.StatusInternalServerError, "login failed")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		setFlash(ctx, "Invalid username or password.")
		return ctx.Redirect(http.StatusFound, "/login")
	}

	token := lib.sessions.Start(user.ID, user.Username)
	setSessionCookie(ctx, token)

	log.Info().Str("username", user.Username).Msg("User logged in")
	return ctx.Redirect(http.StatusFound, "/")
}

// registerForm renders the registration page.
func (lib *LibraryServer) registerForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "register.html", map[string]interface{}{
		"Flash": takeFlash(ctx),
	})
}

// register creates a new account.
func (lib *LibraryServer) register(ctx echo.Context) error {
	username := strings.TrimSpace(ctx.FormValue("username"))
	password := ctx.FormValue("password")
	confirm := ctx.FormValue("confirm")

	if username == "" || password == "" {
		setFlash(ctx, "Username and password are required.")
		return ctx.Redirect(http.StatusFound, "/register")
	}

	if password != confirm {
		setFlash(ctx, "Passwords do not match.")
		return ctx.Redirect(http.StatusFound, "/register")
	}

	exists, err := lib.catalog.UserExists(username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check username")
		return ctx.String(http.StatusInternalServerError, "registration failed")
	}
	if exists {
		setFlash(ctx, "That username is already taken.")
		return ctx.Redirect(http.StatusFound, "/register")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return ctx.String(http.StatusInternalServerError, "registration failed")
	}

	user, err := lib.catalog.CreateUser(username, passwordHash)
	if err != nil {
		if errors.Is(err, catalog.ErrUsernameTaken) {
			setFlash(ctx, "That username is already taken.")
			return ctx.Redirect(http.StatusFound, "/register")
		}
		log.Error().Err(err).Msg("Failed to create user")
		return ctx.String(http.StatusInternalServerError, "registration failed")
	}

	log.Info().Str("username", user.Username).Msg("User registered")
	setFlash(ctx, "Account created, please log in.")
	return ctx.Redirect(http.StatusFound, "/login")
}

// logout ends the current session. Logging out without one is a no-op.
func (lib *LibraryServer) logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		lib.sessions.End(cookie.Value)
	}
	clearSessionCookie(ctx)
	return ctx.Redirect(http.StatusFound, "/login")
}
