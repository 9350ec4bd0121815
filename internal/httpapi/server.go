// Package httpapi is the server-rendered web surface: route handlers, the
// auth gate, and template rendering. Everything interesting happens in the
// pipelines it delegates to.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nilaydev/legalclause/internal/auth"
	"github.com/nilaydev/legalclause/internal/config"
	"github.com/nilaydev/legalclause/internal/extract"
	"github.com/nilaydev/legalclause/internal/learning"
	"github.com/nilaydev/legalclause/internal/news"
	"github.com/nilaydev/legalclause/internal/observability"
	"github.com/nilaydev/legalclause/internal/provider"
	"github.com/nilaydev/legalclause/internal/session"
)

// Summaries is the streaming summarization pipeline surface.
type Summaries interface {
	Stream(ctx context.Context, text string) provider.Stream
}

// Chats is the streaming chat pipeline surface.
type Chats interface {
	Stream(ctx context.Context, message string, history []provider.Turn) (provider.Stream, error)
}

// Feeds is the news aggregation surface.
type Feeds interface {
	Fetch(ctx context.Context, category string) ([]news.Item, error)
}

// Lessons is the AI learning-content surface.
type Lessons interface {
	ClauseContent(ctx context.Context, law, itemID string) (learning.ClauseLesson, error)
	EvaluateCase(ctx context.Context, scenario, userClause, userReasoning string) (learning.CaseEvaluation, error)
	ExamAnswer(ctx context.Context, law, topic, marks string) (string, error)
}

type Server struct {
	cfg        config.Config
	accounts   *auth.Service
	sessions   *session.Manager
	cookies    *session.CookieCodec
	extractor  *extract.Extractor
	summarizer Summaries
	chat       Chats
	news       Feeds
	learning   Lessons
	metrics    *observability.Metrics
	static     http.Handler
}

func New(
	cfg config.Config,
	accounts *auth.Service,
	sessions *session.Manager,
	cookies *session.CookieCodec,
	extractor *extract.Extractor,
	summarizer Summaries,
	chatPipeline Chats,
	feeds Feeds,
	lessons Lessons,
	metrics *observability.Metrics,
) *Server {
	return &Server{
		cfg:        cfg,
		accounts:   accounts,
		sessions:   sessions,
		cookies:    cookies,
		extractor:  extractor,
		summarizer: summarizer,
		chat:       chatPipeline,
		news:       feeds,
		learning:   lessons,
		metrics:    metrics,
		static:     newStaticHandler(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleHealth)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", s.static))

	r.Get("/register", s.handleRegisterPage)
	r.Post("/register", s.handleRegister)
	r.Get("/login", s.handleLoginPage)
	r.Post("/login", s.handleLogin)
	r.Get("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/", s.handleHome)
		r.Get("/upload", s.handleUploadPage)
		r.Post("/upload", s.handleUpload)
		r.Post("/stream_analysis", s.handleStreamAnalysis)
		r.Get("/chat", s.handleChatPage)
		r.Post("/chat_api", s.handleChatAPI)
		r.Get("/news", s.handleNewsPage)
		r.Get("/api/news", s.handleNewsAPI)

		r.Get("/learning", s.handleLearningHome)
		r.Get("/learning/law", s.handleLearningLaw)
		r.Get("/learning/law/{law}", s.handleLearningLawView)
		r.Get("/learning/law/{law}/{item}", s.handleLearningContent)
		r.Get("/learning/case", s.handleLearningCase)
		r.Post("/api/learning/evaluate-case", s.handleEvaluateCase)
		r.Get("/learning/exam", s.handleLearningExam)
		r.Post("/api/learning/generate-exam-answer", s.handleExamAnswer)
		r.Get("/learning/daily", s.handleLearningDaily)
		r.Get("/learning/progress", s.handleLearningProgress)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

// wantsJSON reports whether a route should answer with JSON rather than a
// redirect when the session is missing.
func wantsJSON(r *http.Request) bool {
	p := r.URL.Path
	return strings.HasPrefix(p, "/api/") || p == "/stream_analysis" || p == "/chat_api"
}
