package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/velastore/vela/internal/auth"
	"github.com/velastore/vela/internal/cookie"
	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/repository"
)

// SessionService resolves who owns the current request: an authenticated
// user via the auth provider, or an anonymous guest via the guest cookie.
type SessionService interface {
	// CurrentUser returns the authenticated user, or nil for anonymous
	// requests. Provider outages degrade to anonymous rather than failing
	// the whole request.
	CurrentUser(ctx context.Context, r *http.Request) *auth.User

	// ResolveIdentity returns the owner identity for the request, creating
	// a guest session (and setting its cookie) when the request carries
	// neither a user session nor a guest cookie.
	ResolveIdentity(ctx context.Context, w http.ResponseWriter, r *http.Request) (domain.Identity, error)

	// GuestFromRequest returns the guest behind the request's guest cookie,
	// or nil when the cookie is absent, unknown, or expired. Expired guests
	// are deleted on sight.
	GuestFromRequest(ctx context.Context, r *http.Request) (*repository.Guest, error)

	// ClearGuestCookie removes the guest cookie from the client.
	ClearGuestCookie(w http.ResponseWriter)
}

type sessionService struct {
	repo     repository.Querier
	provider auth.Provider
	cookies  *cookie.Config
	guestTTL time.Duration
	logger   *slog.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.Querier, provider auth.Provider, cookies *cookie.Config, guestTTL time.Duration, logger *slog.Logger) SessionService {
	return &sessionService{
		repo:     repo,
		provider: provider,
		cookies:  cookies,
		guestTTL: guestTTL,
		logger:   logger,
	}
}

func (s *sessionService) CurrentUser(ctx context.Context, r *http.Request) *auth.User {
	user, err := s.provider.GetSession(ctx, r.Header)
	if err != nil {
		// Auth outage must not take the storefront down with it.
		s.logger.Warn("auth session lookup failed, treating request as anonymous",
			slog.String("error", err.Error()))
		return nil
	}
	return user
}

func (s *sessionService) ResolveIdentity(ctx context.Context, w http.ResponseWriter, r *http.Request) (domain.Identity, error) {
	if user := s.CurrentUser(ctx, r); user != nil {
		return domain.UserIdentity(user.ID), nil
	}

	token := cookie.Get(r, cookie.GuestSessionName)
	if token == "" {
		guest, err := s.createGuest(ctx, w)
		if err != nil {
			return domain.Identity{}, err
		}
		return domain.GuestIdentity(uuidString(guest.ID)), nil
	}

	guest, err := s.repo.GetGuestByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Identity{}, ErrGuestNotFound
		}
		return domain.Identity{}, domain.Internal(err, "session.resolve_identity", "failed to look up guest session")
	}
	if expired(guest) {
		return domain.Identity{}, ErrGuestNotFound
	}

	return domain.GuestIdentity(uuidString(guest.ID)), nil
}

func (s *sessionService) GuestFromRequest(ctx context.Context, r *http.Request) (*repository.Guest, error) {
	token := cookie.Get(r, cookie.GuestSessionName)
	if token == "" {
		return nil, nil
	}

	guest, err := s.repo.GetGuestByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.Internal(err, "session.guest_from_request", "failed to look up guest session")
	}
	if expired(guest) {
		if err := s.repo.DeleteGuest(ctx, guest.ID); err != nil {
			s.logger.Warn("failed to delete expired guest",
				slog.String("guest_id", uuidString(guest.ID)),
				slog.String("error", err.Error()))
		}
		return nil, nil
	}

	return &guest, nil
}

func (s *sessionService) ClearGuestCookie(w http.ResponseWriter) {
	s.cookies.ClearGuestSession(w)
}

// createGuest mints a new guest row and hands its token to the client.
func (s *sessionService) createGuest(ctx context.Context, w http.ResponseWriter) (repository.Guest, error) {
	var expiresAt pgtype.Timestamptz
	if err := expiresAt.Scan(time.Now().Add(s.guestTTL)); err != nil {
		return repository.Guest{}, domain.Internal(err, "session.create_guest", "failed to compute guest expiry")
	}

	guest, err := s.repo.CreateGuest(ctx, repository.CreateGuestParams{
		SessionToken: uuid.NewString(),
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return repository.Guest{}, domain.Internal(err, "session.create_guest", "failed to create guest session")
	}

	s.cookies.SetGuestSession(w, guest.SessionToken)
	s.logger.Debug("created guest session", slog.String("guest_id", uuidString(guest.ID)))
	return guest, nil
}

func expired(g repository.Guest) bool {
	return g.ExpiresAt.Valid && g.ExpiresAt.Time.Before(time.Now())
}
