package spaces

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

// ListSpaces returns every record of a kind, newest first.
func (h *Handler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindFromURL(w, r)
	if !ok {
		return
	}

	records, err := h.service.List(kind)
	if err != nil {
		h.Logger.Error("list spaces failed", "kind", kind, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "could not list spaces")
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

// GetSpace returns a single record by id.
func (h *Handler) GetSpace(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindFromURL(w, r)
	if !ok {
		return
	}

	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	record, err := h.service.Get(kind, id)
	if err != nil {
		h.writeServiceError(w, kind, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// CreateSpace inserts a new record stamped with the acting identity.
func (h *Handler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindFromURL(w, r)
	if !ok {
		return
	}

	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto SpaceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("create space: cannot parse request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.service.Create(kind, dto, actor.ID)
	if err != nil {
		h.writeServiceError(w, kind, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "space created",
		"space":   record,
	})
}

// UpdateSpace replaces a record's mutable attributes.
func (h *Handler) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindFromURL(w, r)
	if !ok {
		return
	}

	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	var dto SpaceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("update space: cannot parse request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.service.Update(kind, id, dto, actor.ID)
	if err != nil {
		h.writeServiceError(w, kind, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "space updated",
		"space":   record,
	})
}

// DeleteSpace hard-deletes a record and echoes it back.
func (h *Handler) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kindFromURL(w, r)
	if !ok {
		return
	}

	id, err := h.parseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	record, err := h.service.Delete(kind, id)
	if err != nil {
		h.writeServiceError(w, kind, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "space deleted",
		"space":   record,
	})
}

// Statistics reports per-kind record counts and their sum.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize()
	if err != nil {
		h.Logger.Error("statistics failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "could not compute statistics")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) kindFromURL(w http.ResponseWriter, r *http.Request) (Kind, bool) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.WriteError(w, http.StatusNotFound, "unknown space kind")
		return "", false
	}
	return kind, true
}

func (h *Handler) parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, kind Kind, err error) {
	var appErr *internal.AppError
	switch {
	case errors.As(err, &appErr):
		h.HandleError(w, appErr)
	case errors.Is(err, ErrSpaceNotFound):
		h.WriteError(w, http.StatusNotFound, "space not found")
	default:
		h.Logger.Error("space operation failed", "kind", kind, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
