package chat

import (
	"log"
	"os"
	"sync"

	"github.com/nilaydev/legalclause/internal/extract"
)

// corpusMaxPages bounds how much of the constitution PDF is loaded; the
// opening pages carry the fundamental-rights articles the assistant cites.
const corpusMaxPages = 50

// Corpus supplies the reference text used to ground legal answers.
type Corpus interface {
	Get() string
}

// FileCorpus lazily loads the first pages of a reference PDF once per
// process. The mutex guards the cold start so concurrent first requests do
// not parse the PDF twice; a failed load caches the empty string rather
// than retrying on every request.
type FileCorpus struct {
	path   string
	mu     sync.Mutex
	loaded bool
	text   string
}

func NewFileCorpus(path string) *FileCorpus {
	return &FileCorpus{path: path}
}

func (c *FileCorpus) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.text
	}
	c.loaded = true

	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Printf("reference corpus unavailable at %s: %v", c.path, err)
		return ""
	}

	text, err := extract.PDFText(data, corpusMaxPages)
	if err != nil {
		log.Printf("reference corpus parse failed: %v", err)
		return ""
	}
	c.text = text
	return c.text
}
