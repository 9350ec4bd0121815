// Package extract converts uploaded document bytes into plain text.
//
// Extraction deliberately soft-fails: parser and OCR breakage is converted
// into a user-renderable "Error: ..." string instead of an error, so route
// handlers can show the result directly. The only hard error is an
// unsupported file extension.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// UnsupportedFormatError reports an upload with an extension no parser
// handles. It carries the original filename for user display.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Filename)
}

// Extractor dispatches uploads to the right parser by file extension.
type Extractor struct {
	tesseractCmd string
	ocrLanguage  string
}

func New(tesseractCmd, ocrLanguage string) *Extractor {
	if tesseractCmd == "" {
		tesseractCmd = "tesseract"
	}
	if ocrLanguage == "" {
		ocrLanguage = "eng"
	}
	return &Extractor{tesseractCmd: tesseractCmd, ocrLanguage: ocrLanguage}
}

// Extract returns the document's plain text, or a descriptive error string
// when the underlying parser fails. A non-nil error is returned only for
// unsupported extensions.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfText(data, 0)
		if err != nil {
			return "Error: could not read the PDF file. It may be corrupt or password-protected.", nil
		}
		return text, nil
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			return "Error: could not read the DOCX file. It may be corrupt or not a Word document.", nil
		}
		return text, nil
	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff":
		return e.imageText(ctx, data), nil
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}
