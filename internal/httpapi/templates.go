package httpapi

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// pages maps template names to parsed page+layout sets. Parsed once at
// startup; a malformed template is a programming error.
var pages = parseTemplates()

func parseTemplates() map[string]*template.Template {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		panic(err)
	}
	out := make(map[string]*template.Template)
	for _, name := range names {
		if name == "templates/base.html" {
			continue
		}
		t, err := template.ParseFS(templateFS, "templates/base.html", name)
		if err != nil {
			panic(err)
		}
		out[name[len("templates/"):]] = t
	}
	return out
}

func newStaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(sub))
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data map[string]any) {
	t, ok := pages[page]
	if !ok {
		log.Printf("unknown template %q", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

func (s *Server) renderFailure(w http.ResponseWriter, message string) {
	s.render(w, http.StatusInternalServerError, "error.html", map[string]any{
		"Message": message,
	})
}
