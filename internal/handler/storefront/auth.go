package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/velastore/vela/internal/auth"
	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/handler"
	"github.com/velastore/vela/internal/repository"
	"github.com/velastore/vela/internal/service"
)

// AuthHandler proxies sign-up/sign-in/sign-out to the auth provider and
// performs the guest-to-user cart merge after a session opens.
type AuthHandler struct {
	provider auth.Provider
	carts    service.CartService
	sessions service.SessionService
	logger   *slog.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(provider auth.Provider, carts service.CartService, sessions service.SessionService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		carts:    carts,
		sessions: sessions,
		logger:   logger,
	}
}

// userResponse is the payload returned after sign-up and sign-in.
type userResponse struct {
	User *auth.User `json:"user"`
}

// SignUp handles POST /api/auth/sign-up
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	const op = "auth.sign_up"

	var params auth.SignUpParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		handler.Error(w, h.logger, domain.Invalid(op, "invalid request body"))
		return
	}
	if err := validateSignUp(op, params); err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	sess, err := h.provider.SignUpEmail(r.Context(), params)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	h.openSession(w, r, sess)
	handler.JSON(w, http.StatusCreated, userResponse{User: sess.User})
}

// SignIn handles POST /api/auth/sign-in
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	const op = "auth.sign_in"

	var params auth.SignInParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		handler.Error(w, h.logger, domain.Invalid(op, "invalid request body"))
		return
	}
	if params.Email == "" || params.Password == "" {
		handler.Error(w, h.logger, domain.Invalid(op, "email and password are required"))
		return
	}

	sess, err := h.provider.SignInEmail(r.Context(), params)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	h.openSession(w, r, sess)
	handler.JSON(w, http.StatusOK, userResponse{User: sess.User})
}

// SignOut handles POST /api/auth/sign-out
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.SignOut(r.Context(), r.Header); err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// openSession forwards the provider's session cookies and folds any guest
// cart the request carried into the now-authenticated user's cart.
func (h *AuthHandler) openSession(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	for _, c := range sess.SetCookies {
		http.SetCookie(w, c)
	}

	guest, err := h.sessions.GuestFromRequest(r.Context(), r)
	if err != nil || guest == nil {
		if err != nil {
			h.logger.Warn("guest lookup failed during sign-in", slog.String("error", err.Error()))
		}
		return
	}

	guestID := guestIDString(guest)
	err = h.carts.MergeGuestCartIntoUserCart(r.Context(), sess.User.ID, guestID)
	if err != nil {
		// The user is signed in either way; losing the guest cart is the
		// lesser failure.
		h.logger.Error("guest cart merge failed",
			slog.String("user_id", sess.User.ID),
			slog.String("guest_id", guestID),
			slog.String("error", err.Error()))
	} else {
		h.logger.Info("merged guest cart into user cart",
			slog.String("user_id", sess.User.ID),
			slog.String("guest_id", guestID))
	}

	h.sessions.ClearGuestCookie(w)
}

func validateSignUp(op string, params auth.SignUpParams) error {
	if len(params.Name) < 2 {
		return domain.Invalid(op, "name must be at least 2 characters")
	}
	if params.Email == "" {
		return domain.Invalid(op, "email is required")
	}
	if len(params.Password) < 8 {
		return domain.Invalid(op, "password must be at least 8 characters")
	}
	return nil
}

func guestIDString(guest *repository.Guest) string {
	v, err := guest.ID.Value()
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
