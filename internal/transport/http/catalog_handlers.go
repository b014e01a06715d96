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

func (h *Handler) handleCreateGadget(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req dto.GadgetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	gadget, err := h.catalog.CreateGadget(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gadget)
}

func (h *Handler) handleListGadgets(w http.ResponseWriter, r *http.Request) {
	gadgets, err := h.catalog.ListGadgets(r.Context())
	if err != nil {
		slog.Warn("list gadgets failed", "error", err)
		writeJSON(w, http.StatusOK, []domain.Gadget{})
		return
	}
	if gadgets == nil {
		gadgets = []domain.Gadget{}
	}
	writeJSON(w, http.StatusOK, gadgets)
}

func (h *Handler) handleGetGadget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}
	gadget, err := h.catalog.GetGadget(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("get gadget failed", "error", err)
		}
		writeError(w, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, gadget)
}

// handleCurrentRate renders JSON null when no rate exists or the store is
// down; the rates widget treats null as "no data".
func (h *Handler) handleCurrentRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.catalog.CurrentRate(r.Context())
	if err != nil {
		slog.Warn("read exchange rate failed", "error", err)
		writeJSON(w, http.StatusOK, (*domain.ExchangeRate)(nil))
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *Handler) handleUpsertRate(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req dto.ExchangeRateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rate, err := h.catalog.UpsertRate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	stats, err := h.engine.Stats(r.Context())
	if err != nil {
		slog.Warn("admin stats failed", "error", err)
		writeJSON(w, http.StatusOK, dto.AdminStats{})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
