package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/facility-management/internal"
	"github.com/frahmantamala/facility-management/internal/auth"
	"github.com/frahmantamala/facility-management/internal/transport"
	"github.com/go-chi/chi"
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

// Profile returns the authenticated caller's own account.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	account, err := h.service.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("profile lookup failed", "user_id", actor.ID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "could not load profile")
		return
	}

	h.WriteJSON(w, http.StatusOK, account)
}

// ListUsers returns all accounts, newest first.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List()
	if err != nil {
		h.Logger.Error("list users failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "could not list users")
		return
	}

	h.WriteJSON(w, http.StatusOK, accounts)
}

// UpdateUser applies a partial update (username and/or role) to an account.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("update user: cannot parse request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.Update(id, dto)
	if err != nil {
		var appErr *internal.AppError
		switch {
		case errors.As(err, &appErr):
			h.HandleError(w, appErr)
		case errors.Is(err, ErrNotFound):
			h.WriteError(w, http.StatusNotFound, "user not found")
		default:
			h.Logger.Error("update user failed", "user_id", id, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "could not update user")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, account)
}

// DeleteUser removes an account. Deleting your own account is refused.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.service.Delete(id, actor.ID); err != nil {
		switch {
		case errors.Is(err, ErrSelfDelete):
			h.WriteError(w, http.StatusBadRequest, "cannot delete own account")
		case errors.Is(err, ErrNotFound):
			h.WriteError(w, http.StatusNotFound, "user not found")
		default:
			h.Logger.Error("delete user failed", "user_id", id, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "could not delete user")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "user deleted",
	})
}

func (h *Handler) parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
