// Package redact scrubs credentials from text that may reach logs or user
// responses. Provider errors can embed the request URL, and the Gemini
// endpoint carries its API key as a query parameter.
package redact

import "regexp"

var (
	keyParamPattern = regexp.MustCompile(`([?&](?:key|api_key|apikey|token)=)[^&\s"']+`)
	bearerPattern   = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._\-]+`)
)

// Secrets masks API keys and bearer tokens embedded in the input.
func Secrets(input string) string {
	out := keyParamPattern.ReplaceAllString(input, "${1}[REDACTED]")
	out = bearerPattern.ReplaceAllString(out, "${1}[REDACTED]")
	return out
}

// Error is Secrets over an error's message; nil errors yield "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return Secrets(err.Error())
}
