package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/velastore/vela/internal/domain"
)

// HTTPProvider talks to the auth service over its JSON HTTP API.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider against the given auth service base
// URL (e.g. "http://localhost:3005/api/auth").
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// sessionResponse is the wire shape of get-session and the sign-in/up
// responses. A null body means no session.
type sessionResponse struct {
	User *User `json:"user"`
}

// GetSession resolves the current user by forwarding the request's Cookie
// header to the auth service. Returns (nil, nil) for anonymous requests.
func (p *HTTPProvider) GetSession(ctx context.Context, header http.Header) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/get-session", nil)
	if err != nil {
		return nil, domain.Internal(err, "auth.GetSession", "auth service request failed")
	}
	if c := header.Get("Cookie"); c != "" {
		req.Header.Set("Cookie", c)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domain.Internal(err, "auth.GetSession", "auth service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.Errorf(domain.EINTERNAL, "auth.GetSession",
			"auth service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Internal(err, "auth.GetSession", "auth service request failed")
	}
	// The service answers "null" for anonymous requests.
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}

	var sr sessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, domain.Internal(err, "auth.GetSession", "auth service request failed")
	}
	return sr.User, nil
}

// SignUpEmail creates an account via POST /sign-up/email.
func (p *HTTPProvider) SignUpEmail(ctx context.Context, params SignUpParams) (*Session, error) {
	return p.openSession(ctx, "auth.SignUpEmail", "/sign-up/email", params)
}

// SignInEmail opens a session via POST /sign-in/email.
func (p *HTTPProvider) SignInEmail(ctx context.Context, params SignInParams) (*Session, error) {
	return p.openSession(ctx, "auth.SignInEmail", "/sign-in/email", params)
}

func (p *HTTPProvider) openSession(ctx context.Context, op, path string, payload any) (*Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.Internal(err, op, "auth service request failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, domain.Internal(err, op, "auth service request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domain.Internal(err, op, "auth service request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return nil, domain.Errorf(domain.EUNAUTHORIZED, op, "invalid credentials")
	case resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusConflict:
		return nil, domain.Errorf(domain.ECONFLICT, op, "account already exists")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, domain.Errorf(domain.EINVALID, op, "auth service rejected the request")
	default:
		return nil, domain.Errorf(domain.EINTERNAL, op,
			"auth service returned status %d", resp.StatusCode)
	}

	var sr sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, domain.Internal(err, op, "auth service request failed")
	}
	if sr.User == nil {
		return nil, domain.Errorf(domain.EINTERNAL, op, "auth service returned no user")
	}

	return &Session{
		User:       sr.User,
		SetCookies: resp.Cookies(),
	}, nil
}

// SignOut revokes the session via POST /sign-out, forwarding the request's
// Cookie header so the service knows which session to revoke.
func (p *HTTPProvider) SignOut(ctx context.Context, header http.Header) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sign-out", nil)
	if err != nil {
		return domain.Internal(err, "auth.SignOut", "auth service request failed")
	}
	if c := header.Get("Cookie"); c != "" {
		req.Header.Set("Cookie", c)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Internal(err, "auth.SignOut", "auth service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Errorf(domain.EINTERNAL, "auth.SignOut",
			"auth service returned status %d", resp.StatusCode)
	}
	return nil
}

var _ Provider = (*HTTPProvider)(nil)
