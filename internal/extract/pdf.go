package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts plain text from a PDF, reading at most maxPages pages
// (0 means all). Per-page text is joined with newlines; unreadable or empty
// pages are skipped. Unlike Extractor.Extract this returns hard errors, for
// callers like the reference-corpus loader that need to distinguish failure.
func PDFText(data []byte, maxPages int) (string, error) {
	return pdfText(data, maxPages)
}

func pdfText(data []byte, maxPages int) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := r.NumPage()
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
