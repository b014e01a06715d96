package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
)

func (h *Handler) handlePostMessage(w http.ResponseWriter, r *http.Request, id domain.Identity) {
	var req dto.PostMessageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	msg, err := h.messages.Post(r.Context(), messaging.PostInput{
		SenderID:       id.UserID,
		SenderUsername: id.Username,
		Text:           req.MessageText,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handler) handleReply(w http.ResponseWriter, r *http.Request, id domain.Identity) {
	var req dto.ReplyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.RecipientID == "" {
		writeError(w, domain.Invalid("recipientId", "is required"))
		return
	}
	recipient, err := uuid.Parse(req.RecipientID)
	if err != nil {
		writeError(w, domain.Invalid("recipientId", "must be a valid id"))
		return
	}
	msg, err := h.messages.Post(r.Context(), messaging.PostInput{
		SenderID:       id.UserID,
		SenderUsername: id.Username,
		Text:           req.MessageText,
		IsAdminMessage: true,
		RecipientID:    &recipient,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	msgs, err := h.messages.ListAll(r.Context())
	if err != nil {
		slog.Warn("list messages failed", "error", err)
		writeJSON(w, http.StatusOK, []domain.Message{})
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) handleConversations(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	msgs, err := h.messages.ListAll(r.Context())
	if err != nil {
		slog.Warn("list messages failed", "error", err)
		writeJSON(w, http.StatusOK, []messaging.Conversation{})
		return
	}
	convs := messaging.Conversations(msgs)
	if convs == nil {
		convs = []messaging.Conversation{}
	}
	writeJSON(w, http.StatusOK, convs)
}

func (h *Handler) handleUserMessages(w http.ResponseWriter, r *http.Request, id domain.Identity) {
	msgs, err := h.messages.ListForUser(r.Context(), id.UserID)
	if err != nil {
		slog.Warn("list user messages failed", "error", err)
		writeJSON(w, http.StatusOK, []domain.Message{})
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
