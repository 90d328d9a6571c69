package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/facility-management/internal"
	"github.com/frahmantamala/facility-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	service ServiceAPI
}

func NewHandler(logger *slog.Logger, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger),
		service:     service,
	}
}

// Login authenticates credentials and returns a bearer token plus the account.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("login: cannot parse request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, account, err := h.service.Authenticate(dto)
	if err != nil {
		var appErr *internal.AppError
		if errors.As(err, &appErr) {
			h.HandleError(w, appErr)
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			h.WriteError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		h.Logger.Error("login failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    account,
	})
}

// Register creates a new lowest-privilege account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("register: cannot parse request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.Register(dto)
	if err != nil {
		var appErr *internal.AppError
		if errors.As(err, &appErr) {
			h.HandleError(w, appErr)
			return
		}
		if errors.Is(err, ErrDuplicateUsername) {
			h.WriteError(w, http.StatusBadRequest, "username already exists")
			return
		}
		h.Logger.Error("register failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "user registered",
		"user":    account,
	})
}

// VerifyToken echoes the identity for a valid bearer token. Useful for
// clients restoring a session from a stored token.
func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "token valid",
		"user":    user,
	})
}

// AuthMiddleware validates the bearer token and attaches the authenticated
// identity to the request context. A missing token is 401; a present but
// invalid or expired token is 403.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := h.ExtractTokenFromHeader(r)
		if tokenString == "" {
			h.WriteError(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		claims, err := h.service.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				h.WriteError(w, http.StatusForbidden, "token expired")
				return
			}
			h.WriteError(w, http.StatusForbidden, "invalid token")
			return
		}

		user := &User{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// RequireRoles gates a route behind a role allow-list. Must run after
// AuthMiddleware so the identity is already on the context.
func (h *Handler) RequireRoles(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				h.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if !user.HasRole(roles...) {
				h.Logger.Warn("access denied",
					"user_id", user.ID,
					"role", user.Role,
					"path", r.URL.Path)
				h.WriteError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
