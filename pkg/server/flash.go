package server

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// flashCookie carries a one-shot user notice across a redirect.
const flashCookie = "library_flash"

// setFlash queues a message to show on the next rendered page.
func setFlash(ctx echo.Context, message string) {
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns the queued message, if any, and clears it.
func takeFlash(ctx echo.Context) string {
	cookie, err := ctx.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	ctx.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
