package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/nilaydev/legalclause/internal/chat"
	"github.com/nilaydev/legalclause/internal/provider"
)

func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "chat.html", map[string]any{"Session": sessionFrom(r)})
}

// handleChatAPI streams the assistant reply for one chat turn. History is
// supplied by the client so the server stays stateless about conversations.
func (s *Server) handleChatAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string          `json:"message"`
		History []provider.Turn `json:"history"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stream, err := s.chat.Stream(r.Context(), req.Message, req.History)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			http.Error(w, "No message provided", http.StatusBadRequest)
			return
		}
		log.Printf("chat stream: %v", err)
		http.Error(w, "Chat is unavailable right now", http.StatusInternalServerError)
		return
	}

	streamText(w, stream)
}
