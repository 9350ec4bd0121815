package httpapi

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/nilaydev/legalclause/internal/extract"
	"github.com/nilaydev/legalclause/internal/provider"
)

const maxUploadBytes = 10 << 20 // 10 MB

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "upload.html", map[string]any{"Session": sessionFrom(r)})
}

// handleUpload accepts a multipart file or pasted text and shows the
// extracted result. Extraction problems come back as inline messages, not
// 5xx pages.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderUploadError(w, r, "The uploaded file is too big. Please choose a file under 10MB.")
		return
	}

	var text string
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			s.renderUploadError(w, r, "Failed to read the uploaded file.")
			return
		}
		text, err = s.extractor.Extract(r.Context(), data, header.Filename)
		if err != nil {
			var unsupported *extract.UnsupportedFormatError
			if errors.As(err, &unsupported) {
				s.countExtraction(header.Filename, "unsupported")
				s.renderUploadError(w, r, "Unsupported file type: "+unsupported.Filename+". Upload a PDF, DOCX, or image.")
				return
			}
			log.Printf("extract failed: %v", err)
			s.renderUploadError(w, r, "Error processing document.")
			return
		}
		if strings.HasPrefix(text, "Error:") {
			s.countExtraction(header.Filename, "failed")
			s.renderUploadError(w, r, text)
			return
		}
		s.countExtraction(header.Filename, "ok")
	case r.PostFormValue("text") != "":
		text = r.PostFormValue("text")
	default:
		s.renderUploadError(w, r, "No file or text provided")
		return
	}

	s.render(w, http.StatusOK, "result.html", map[string]any{
		"Session":      sessionFrom(r),
		"OriginalText": text,
	})
}

func (s *Server) renderUploadError(w http.ResponseWriter, r *http.Request, message string) {
	s.render(w, http.StatusOK, "upload.html", map[string]any{
		"Session": sessionFrom(r),
		"Error":   message,
	})
}

func (s *Server) countExtraction(filename, status string) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format == "" {
		format = "none"
	}
	s.metrics.Extractions.WithLabelValues(format, status).Inc()
}

// handleStreamAnalysis streams the plain-language summary for extracted
// document text.
func (s *Server) handleStreamAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		http.Error(w, "No text provided", http.StatusBadRequest)
		return
	}

	streamText(w, s.summarizer.Stream(r.Context(), req.Text))
}

// streamText copies a fragment stream to the client as chunked text/plain,
// flushing per fragment. A write failure means the client went away; the
// provider stream is closed and abandoned.
func streamText(w http.ResponseWriter, stream provider.Stream) {
	defer stream.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Accel-Buffering", "no")
	flusher, _ := w.(http.Flusher)

	for {
		frag, err := stream.Recv()
		if err != nil {
			return
		}
		if _, err := io.WriteString(w, frag); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}
