// Package cookie provides the guest session cookie helpers. The guest
// cookie is the only cookie this service writes itself; auth cookies are
// issued by the auth provider and forwarded as-is.
package cookie

import "net/http"

// GuestSessionName is the cookie carrying the opaque guest session token.
const GuestSessionName = "guest_session"

// Config holds cookie attributes that vary by environment.
type Config struct {
	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool

	// MaxAge is the guest cookie lifetime in seconds.
	MaxAge int
}

// NewConfig creates a cookie configuration.
func NewConfig(secure bool, maxAge int) *Config {
	return &Config{
		Secure: secure,
		MaxAge: maxAge,
	}
}

// SetGuestSession writes the guest session cookie.
//
// The cookie is set with:
//   - Path: "/" (available on all paths)
//   - HttpOnly: true (not accessible via JavaScript)
//   - SameSite: Strict (never sent cross-site)
//   - Secure: based on config
func (c *Config) SetGuestSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestSessionName,
		Value:    token,
		Path:     "/",
		MaxAge:   c.MaxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearGuestSession removes the guest session cookie by setting MaxAge to -1.
func (c *Config) ClearGuestSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestSessionName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Get retrieves a cookie value from the request.
// Returns empty string if cookie not found.
func Get(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
