package extract

import (
	"bytes"
	"context"
	"log"
	"os/exec"
	"strings"
)

// imageText runs the tesseract CLI over the uploaded image bytes. The two
// failure shapes are distinct user-facing strings: an unavailable/broken
// engine, and a clean run that simply found no text.
func (e *Extractor) imageText(ctx context.Context, data []byte) string {
	if _, err := exec.LookPath(e.tesseractCmd); err != nil {
		return "Error: the OCR engine is not installed on the server. Images cannot be processed right now."
	}

	cmd := exec.CommandContext(ctx, e.tesseractCmd, "stdin", "stdout", "-l", e.ocrLanguage)
	cmd.Stdin = bytes.NewReader(data)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Printf("tesseract run failed: %v: %s", err, strings.TrimSpace(stderr.String()))
		return "Error: could not extract text from the image. It may be unreadable or in an unsupported format."
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "No text was detected in the image. Try a clearer photo or a higher-resolution scan."
	}
	return text
}
