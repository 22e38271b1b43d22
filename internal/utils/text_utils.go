package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const ellipsis = "..."

// TextProcessor prepares tweet text for terminal display
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Truncate shortens text to at most maxRunes runes, ellipsis included.
// A non-positive maxRunes disables truncation.
func (tp *TextProcessor) Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	if maxRunes <= len(ellipsis) {
		return string([]rune(text)[:maxRunes])
	}

	runes := []rune(text)
	truncated := strings.TrimRight(string(runes[:maxRunes-len(ellipsis)]), " ")

	tp.logger.Debug("Text truncated",
		zap.Int("original_runes", len(runes)),
		zap.Int("max_runes", maxRunes))

	return truncated + ellipsis
}

// SanitizeUTF8 drops invalid UTF-8 bytes
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// Preview sanitizes text, folds newlines and runs of whitespace into single
// spaces and truncates the result
func (tp *TextProcessor) Preview(text string, maxRunes int) string {
	clean := strings.Join(strings.Fields(tp.SanitizeUTF8(text)), " ")
	return tp.Truncate(clean, maxRunes)
}
