// Package sessioncookie centralizes the golear_session cookie.
//
// The cookie holds an opaque session id; the API bearer token stays on the
// server side in the session store.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/golear/golear/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "golear_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie. A zero expires writes a browser-session
// cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, expires time.Time) {
	WriteWithPolicy(w, r, sessionID, expires, requestmeta.SchemePolicy{})
}

// WriteWithPolicy sets the session cookie, resolving Secure under policy.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, sessionID string, expires time.Time, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := baseCookie(r, policy)
	cookie.Value = strings.TrimSpace(sessionID)
	if !expires.IsZero() {
		cookie.Expires = expires.UTC()
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	ClearWithPolicy(w, r, requestmeta.SchemePolicy{})
}

// ClearWithPolicy expires the session cookie, resolving Secure under policy.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := baseCookie(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func baseCookie(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
