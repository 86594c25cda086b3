package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// ChatService is what the chat endpoint needs from the service layer.
type ChatService interface {
	Handle(ctx context.Context, threadID string, message string) (string, error)
}

type ChatHandler struct {
	svc ChatService
}

func NewChatHandler(svc ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.handleChat)
}

type chatRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"thread_id"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// handleChat answers 400 only when the message field is absent or
// empty. Handled internal failures still answer 200 with the
// translated reply string.
func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}

	reply, err := h.svc.Handle(r.Context(), req.ThreadID, req.Message)
	if err != nil {
		// Only validation errors escape the service; the message was
		// checked above, so this is belt and braces.
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}
