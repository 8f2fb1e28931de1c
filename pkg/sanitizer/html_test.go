package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fortress/pkg/sanitizer"
)

func TestPurify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script content entirely",
			input:    `<b>Hi</b><script>alert('xss')</script>`,
			expected: "<b>Hi</b>",
		},
		{
			name:     "keeps benign formatting",
			input:    `<p>Hello <strong>world</strong> and <i>you</i></p>`,
			expected: `<p>Hello <strong>world</strong> and <i>you</i></p>`,
		},
		{
			name:     "removes event handlers",
			input:    `<b onclick="steal()">bold</b>`,
			expected: "<b>bold</b>",
		},
		{
			name:     "removes javascript urls",
			input:    `<a href="javascript:alert(1)">click</a>`,
			expected: "click",
		},
		{
			name:     "strips iframe",
			input:    `<iframe src="https://evil.example"></iframe>content`,
			expected: "content",
		},
		{
			name:     "handles plain text",
			input:    "normal text",
			expected: "normal text",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Purify(tt.input))
		})
	}
}

func TestPurify_Deterministic(t *testing.T) {
	t.Parallel()

	in := `<div><b>x</b><script>y</script><a href="https://example.com">z</a></div>`
	first := sanitizer.Purify(in)
	for range 10 {
		assert.Equal(t, first, sanitizer.Purify(in))
	}
}

func TestPurifyWith(t *testing.T) {
	t.Parallel()

	t.Run("uses custom policy", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "bold", sanitizer.PurifyWith("<b>bold</b>", bluemonday.StrictPolicy()))
	})

	t.Run("nil policy returns input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<b>bold</b>", sanitizer.PurifyWith("<b>bold</b>", nil))
	})
}
