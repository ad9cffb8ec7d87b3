package cmark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertFullyEscaped fails when a reserved character appears without a
// preceding backslash.
func assertFullyEscaped(t testing.TB, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(reservedChars, s[i+1]) >= 0 {
			i++
			continue
		}
		if strings.IndexByte(reservedChars, s[i]) >= 0 {
			t.Fatalf("unescaped %q at %d in %q", s[i], i, s)
		}
	}
}

func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"*", "\\*"},
		{"a_b", "a\\_b"},
		{"[x](y)", "\\[x\\](y)"},
		{"<tag>", "\\<tag\\>"},
		{"`code`", "\\`code\\`"},
		{"back\\slash", "back\\\\slash"},
		{"# not a heading", "# not a heading"},
		{"ünï*cödé", "ünï\\*cödé"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestNeedsEscaping(t *testing.T) {
	assert.False(t, NeedsEscaping("hello world"))
	assert.True(t, NeedsEscaping("hello_world"))
}

func TestEscapeWithoutReservedReturnsInput(t *testing.T) {
	input := "nothing to do here"
	allocs := testing.AllocsPerRun(100, func() {
		_ = Escape(input)
	})
	assert.Zero(t, allocs)
}

func FuzzEscape(f *testing.F) {
	for _, seed := range []string{"", "plain", "*_[]<>`\\", "a\\*b", "\xff\xfe*"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		out := Escape(input)
		assertFullyEscaped(t, out)
		if got := unescape(out); got != input {
			t.Fatalf("unescape(Escape(%q)) = %q", input, got)
		}
		if !NeedsEscaping(input) && out != input {
			t.Fatalf("Escape changed %q without reserved characters", input)
		}
	})
}
