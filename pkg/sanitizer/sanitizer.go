package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxLength = 10000
	DefaultMinLength = 10
)

// excessiveNewlines matches runs of three or more line feeds after line
// endings have been normalized to LF.
var excessiveNewlines = regexp.MustCompile(`\n{3,}`)

type Config struct {
	MaxLength int
	MinLength int
}

// Outcome reports what sanitization did to one input. RemovedCharacters
// counts cleanup only; truncation is reported separately via Truncated.
type Outcome struct {
	Text              string `json:"text"`
	OriginalLength    int    `json:"original_length"`
	FinalLength       int    `json:"final_length"`
	RemovedCharacters int    `json:"removed_characters"`
	Truncated         bool   `json:"truncated"`
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid text: %s", e.Reason)
}

type Sanitizer struct {
	maxLength int
	minLength int
}

func New(cfg Config) *Sanitizer {
	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Sanitizer{
		maxLength: maxLength,
		minLength: minLength,
	}
}

// Validate rejects text that is empty, whitespace-only, or shorter than the
// configured minimum after trimming. It never modifies the text; callers run
// it before Sanitize.
func (s *Sanitizer) Validate(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &ValidationError{Reason: "text is required"}
	}
	if utf8.RuneCountInString(trimmed) < s.minLength {
		return &ValidationError{Reason: fmt.Sprintf("text must be at least %d characters", s.minLength)}
	}
	return nil
}

// Sanitize is total over all inputs: it trims, strips non-formatting control
// characters, normalizes line endings to LF, collapses runs of blank lines,
// and bounds the result to the configured maximum length.
func (s *Sanitizer) Sanitize(raw string) Outcome {
	originalLength := utf8.RuneCountInString(raw)

	cleaned := strings.TrimSpace(raw)
	cleaned = stripControlCharacters(cleaned)
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	cleaned = excessiveNewlines.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)

	removed := originalLength - utf8.RuneCountInString(cleaned)

	truncated := false
	if utf8.RuneCountInString(cleaned) > s.maxLength {
		cleaned = string([]rune(cleaned)[:s.maxLength])
		truncated = true
	}

	return Outcome{
		Text:              cleaned,
		OriginalLength:    originalLength,
		FinalLength:       utf8.RuneCountInString(cleaned),
		RemovedCharacters: removed,
		Truncated:         truncated,
	}
}

// stripControlCharacters drops C0 controls and DEL. Tab, LF and CR carry
// formatting meaning and survive so line ending normalization sees them.
func stripControlCharacters(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
}
