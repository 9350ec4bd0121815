package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/nilaydev/legalclause/internal/auth"
	"github.com/nilaydev/legalclause/internal/session"
)

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register.html", map[string]any{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "register.html", map[string]any{"Error": "Invalid form submission"})
		return
	}

	_, err := s.accounts.Register(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		s.render(w, http.StatusBadRequest, "register.html", map[string]any{"Error": "Please provide email and password"})
	case errors.Is(err, auth.ErrEmailTaken):
		s.render(w, http.StatusConflict, "register.html", map[string]any{"Error": "Email already registered"})
	case err != nil:
		log.Printf("register failed: %v", err)
		s.render(w, http.StatusInternalServerError, "register.html", map[string]any{"Error": "Registration failed, please try again"})
	default:
		http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
	}
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Next": r.URL.Query().Get("next")}
	if r.URL.Query().Get("registered") == "1" {
		data["Notice"] = "Registered! Please log in."
	}
	s.render(w, http.StatusOK, "login.html", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "login.html", map[string]any{"Error": "Invalid form submission"})
		return
	}

	user, err := s.accounts.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.render(w, http.StatusUnauthorized, "login.html", map[string]any{"Error": "Invalid email or password"})
			return
		}
		log.Printf("login failed: %v", err)
		s.render(w, http.StatusInternalServerError, "login.html", map[string]any{"Error": "Login failed, please try again"})
		return
	}

	sess := s.sessions.Create(user.ID, user.Email)
	if err := s.setSessionCookie(w, sess.ID); err != nil {
		log.Printf("issue session cookie: %v", err)
		s.render(w, http.StatusInternalServerError, "login.html", map[string]any{"Error": "Login failed, please try again"})
		return
	}
	s.metrics.SessionEvents.WithLabelValues("created").Inc()
	s.metrics.ActiveSessions.Set(float64(s.sessions.ActiveCount()))

	next := r.PostFormValue("next")
	if next == "" {
		next = r.URL.Query().Get("next")
	}
	// Only same-site relative paths; anything else is an open redirect.
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if id, err := s.cookies.Verify(cookie.Value); err == nil {
			if err := s.sessions.End(id); err == nil {
				s.metrics.SessionEvents.WithLabelValues("ended").Inc()
				s.metrics.ActiveSessions.Set(float64(s.sessions.ActiveCount()))
			}
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home.html", map[string]any{"Session": sessionFrom(r)})
}
