package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
)

func (h *Handler) handleCreateSubmission(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SubmissionRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}
		sub, err := h.engine.Create(r.Context(), kind, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

// List reads degrade to an empty array when the store is unreachable; a
// broken dashboard beats a broken page.
func (h *Handler) handleListSubmissions(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := h.engine.List(r.Context(), kind)
		if err != nil {
			slog.Warn("list submissions failed", "kind", kind, "error", err)
			writeJSON(w, http.StatusOK, []domain.Submission{})
			return
		}
		if subs == nil {
			subs = []domain.Submission{}
		}
		writeJSON(w, http.StatusOK, subs)
	}
}

func (h *Handler) handleGetSubmission(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, domain.ErrNotFound)
			return
		}
		sub, err := h.engine.Get(r.Context(), kind, id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				slog.Warn("get submission failed", "kind", kind, "error", err)
			}
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}

func (h *Handler) handleUpdateStatus(kind domain.Kind) func(http.ResponseWriter, *http.Request, domain.Identity) {
	return func(w http.ResponseWriter, r *http.Request, id domain.Identity) {
		subID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, domain.ErrNotFound)
			return
		}
		var req dto.StatusUpdateRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if req.Status == "" {
			writeError(w, domain.Invalid("status", "is required"))
			return
		}
		sub, err := h.engine.UpdateStatus(r.Context(), kind, subID, domain.Status(req.Status), req.RejectionReason, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}
