// Package auth integrates an external cookie-session auth service. The
// service owns user credentials and session cookies; this package only
// resolves and forwards them.
package auth

import (
	"context"
	"net/http"
	"time"
)

// User is the authenticated account as reported by the auth service.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SignUpParams holds the fields for creating an account.
type SignUpParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInParams holds the credentials for signing in.
type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-up or sign-in. SetCookies
// carries the session cookies the auth service issued; the handler layer
// forwards them to the client verbatim.
type Session struct {
	User       *User
	SetCookies []*http.Cookie
}

// Provider defines the interface for the external auth service.
type Provider interface {
	// GetSession resolves the user behind the request's auth cookies.
	// Returns (nil, nil) when the request carries no valid session.
	GetSession(ctx context.Context, header http.Header) (*User, error)

	// SignUpEmail creates an account and opens a session.
	SignUpEmail(ctx context.Context, params SignUpParams) (*Session, error)

	// SignInEmail verifies credentials and opens a session.
	SignInEmail(ctx context.Context, params SignInParams) (*Session, error)

	// SignOut revokes the session behind the request's auth cookies.
	SignOut(ctx context.Context, header http.Header) error
}
