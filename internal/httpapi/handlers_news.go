package httpapi

import (
	"log"
	"net/http"

	"github.com/nilaydev/legalclause/internal/news"
)

func (s *Server) handleNewsPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "news.html", map[string]any{
		"Session":    sessionFrom(r),
		"Categories": news.Categories(),
		"Category":   newsCategory(r),
	})
}

// handleNewsAPI returns the parsed feed for a category as a JSON array. The
// page polls this after render so a slow upstream never blocks navigation.
func (s *Server) handleNewsAPI(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.Fetch(r.Context(), newsCategory(r))
	if err != nil {
		log.Printf("fetch news: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not load news right now")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func newsCategory(r *http.Request) string {
	if c := r.URL.Query().Get("category"); c != "" {
		return c
	}
	return news.DefaultCategory
}
