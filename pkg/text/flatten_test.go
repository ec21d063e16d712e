package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string

		input string
		want  string
	}{
		{
			name:  "plain text",
			input: "INVOICE 2024-001",
			want:  "INVOICE 2024-001",
		},
		{
			name:  "surrounding whitespace",
			input: "  Total: 42.50 \n",
			want:  "Total: 42.50",
		},
		{
			name:  "code fence",
			input: "```\nACME Corp\n```",
			want:  "ACME Corp",
		},
		{
			name:  "code fence with info string",
			input: "```text\nACME Corp\n```",
			want:  "ACME Corp",
		},
		{
			name:  "markdown document",
			input: "# RECEIPT\n\nSee [details](https://example.com)",
			want:  "RECEIPT\nSee details",
		},
		{
			name:  "single heading left as is",
			input: "# RECEIPT\n\nThank you",
			want:  "# RECEIPT\n\nThank you",
		},
		{
			name:  "collapsed spaces",
			input: "Total   Due:\t42.50",
			want:  "Total Due: 42.50",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestFlatten(t *testing.T) {
	input := "# Title\n\nSome *emphasized* text with a [link](https://example.com).\n\n- first\n- second\n"

	result := Flatten(input)

	require.NotContains(t, result, "#")
	require.NotContains(t, result, "*")
	require.NotContains(t, result, "](")

	require.Contains(t, result, "Title")
	require.Contains(t, result, "emphasized")
	require.Contains(t, result, "link")
	require.Contains(t, result, "first")
	require.Contains(t, result, "second")
}

func TestTrimFence(t *testing.T) {
	require.Equal(t, "hello", trimFence("```\nhello\n```"))
	require.Equal(t, "hello", trimFence("```text\nhello\n```"))

	// unbalanced fences stay untouched
	require.Equal(t, "```\nhello", trimFence("```\nhello"))

	// inner fences are not stripped
	require.Equal(t, "a\n```\nb\n```\nc", trimFence("a\n```\nb\n```\nc"))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "a b", Normalize("a   b"))
	require.Equal(t, "a\nb", Normalize("a\r\nb"))
	require.Equal(t, "a\n\nb", Normalize("a\n\n\n\nb"))
	require.Equal(t, "", Normalize(" \n "))
}

func TestIsMarkdown(t *testing.T) {
	require.False(t, IsMarkdown(""))
	require.False(t, IsMarkdown("PAY TO THE ORDER OF"))

	// a lone heading-like line is treated as transcription
	require.False(t, IsMarkdown("# 42"))

	require.True(t, IsMarkdown("# Title\n\n- first\n- second"))
	require.True(t, IsMarkdown("| a | b |\n|---|---|\n\n**bold**"))
}
