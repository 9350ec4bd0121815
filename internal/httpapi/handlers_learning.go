package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nilaydev/legalclause/internal/learning"
)

func (s *Server) handleLearningHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "learning.html", map[string]any{"Session": sessionFrom(r)})
}

func (s *Server) handleLearningLaw(w http.ResponseWriter, r *http.Request) {
	s.recordVisit(r, "law")
	s.render(w, http.StatusOK, "learning_law.html", map[string]any{
		"Session": sessionFrom(r),
		"Laws":    learning.Laws(),
	})
}

func (s *Server) handleLearningLawView(w http.ResponseWriter, r *http.Request) {
	law := chi.URLParam(r, "law")
	s.render(w, http.StatusOK, "learning_law_view.html", map[string]any{
		"Session": sessionFrom(r),
		"Law":     law,
		"Items":   learning.LawItems(law),
	})
}

// handleLearningContent generates the lesson for one clause. Generation goes
// through the model, so failures surface as a rendered error page rather
// than a broken lesson.
func (s *Server) handleLearningContent(w http.ResponseWriter, r *http.Request) {
	law := chi.URLParam(r, "law")
	item := chi.URLParam(r, "item")

	lesson, err := s.learning.ClauseContent(r.Context(), law, item)
	if err != nil {
		log.Printf("clause content %s/%s: %v", law, item, err)
		s.renderFailure(w, "Could not generate study material for "+item+". Please try again.")
		return
	}

	s.render(w, http.StatusOK, "learning_content.html", map[string]any{
		"Session":    sessionFrom(r),
		"Law":        law,
		"Item":       item,
		"ClauseText": learning.ClauseText(law, item),
		"Lesson":     lesson,
	})
}

func (s *Server) handleLearningCase(w http.ResponseWriter, r *http.Request) {
	s.recordVisit(r, "case")
	s.render(w, http.StatusOK, "learning_case.html", map[string]any{
		"Session":  sessionFrom(r),
		"Scenario": learning.Scenario(),
	})
}

func (s *Server) handleEvaluateCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scenario  string `json:"scenario"`
		Clause    string `json:"clause"`
		Reasoning string `json:"reasoning"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Scenario == "" {
		req.Scenario = learning.Scenario()
	}

	eval, err := s.learning.EvaluateCase(r.Context(), req.Scenario, req.Clause, req.Reasoning)
	if err != nil {
		log.Printf("evaluate case: %v", err)
		respondError(w, http.StatusInternalServerError, "Evaluation failed, please try again")
		return
	}
	respondJSON(w, http.StatusOK, eval)
}

func (s *Server) handleLearningExam(w http.ResponseWriter, r *http.Request) {
	s.recordVisit(r, "exam")
	s.render(w, http.StatusOK, "learning_exam.html", map[string]any{
		"Session": sessionFrom(r),
		"Laws":    learning.Laws(),
	})
}

func (s *Server) handleExamAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Law   string `json:"law"`
		Topic string `json:"topic"`
		Marks string `json:"marks"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Topic == "" {
		respondError(w, http.StatusBadRequest, "No topic provided")
		return
	}

	answer, err := s.learning.ExamAnswer(r.Context(), req.Law, req.Topic, req.Marks)
	if err != nil {
		log.Printf("exam answer: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not generate the answer, please try again")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleLearningDaily(w http.ResponseWriter, r *http.Request) {
	s.recordVisit(r, "daily")
	s.render(w, http.StatusOK, "learning_daily.html", map[string]any{
		"Session": sessionFrom(r),
		"Concept": learning.DailyConcept(time.Now()),
	})
}

func (s *Server) handleLearningProgress(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	progress, err := s.sessions.Progress(sess.ID)
	if err != nil {
		progress = map[string]int{}
	}
	s.render(w, http.StatusOK, "learning_progress.html", map[string]any{
		"Session":  sess,
		"Progress": progress,
	})
}

func (s *Server) recordVisit(r *http.Request, module string) {
	if sess := sessionFrom(r); sess != nil {
		_ = s.sessions.RecordVisit(sess.ID, module)
	}
}
