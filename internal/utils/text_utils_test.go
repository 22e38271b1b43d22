package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestTextProcessor_Truncate(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"no limit", "hello world", 0, "hello world"},
		{"fits", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"trailing space trimmed", "hello world", 9, "hello..."},
		{"multibyte", "héllo wörld", 7, "héll..."},
		{"tiny limit", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tp.Truncate(tt.text, tt.max))
		})
	}
}

func TestTextProcessor_SanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	assert.Equal(t, "ok", tp.SanitizeUTF8("ok"))
	assert.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
}

func TestTextProcessor_Preview(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	assert.Equal(t, "buy now cheap", tp.Preview("buy\nnow \t cheap\n", 0))
	assert.Equal(t, "buy now...", tp.Preview("buy\n\nnow cheap pills", 10))
}
