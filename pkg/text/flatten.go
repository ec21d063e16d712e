package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Clean strips markdown artifacts from model output. A single
// wrapping code fence is unwrapped, remaining markup is flattened to
// plain text and whitespace is normalized.
func Clean(input string) string {
	input = trimFence(strings.TrimSpace(input))

	if IsMarkdown(input) {
		input = Flatten(input)
	}

	return Normalize(input)
}

// Flatten renders markdown as plain text, dropping all markup.
func Flatten(markdown string) string {
	source := []byte(markdown)

	reader := text.NewReader(source)
	root := goldmark.DefaultParser().Parse(reader)

	var buf strings.Builder

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteByte('\n')
			}

			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))

			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}

		case *ast.String:
			buf.Write(node.Value)

		case *ast.AutoLink:
			buf.Write(node.URL(source))

		case *ast.CodeBlock:
			writeLines(&buf, n, source)
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			writeLines(&buf, n, source)
			return ast.WalkSkipChildren, nil

		case *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}

func writeLines(buf *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()

	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
}

// trimFence unwraps text enclosed in a single pair of code fences.
func trimFence(input string) string {
	if !strings.HasPrefix(input, "```") {
		return input
	}

	body, ok := strings.CutPrefix(input, "```")

	if !ok {
		return input
	}

	body, ok = strings.CutSuffix(body, "```")

	if !ok {
		return input
	}

	// drop the info string on the opening fence
	if index := strings.IndexByte(body, '\n'); index >= 0 {
		body = body[index+1:]
	}

	return strings.TrimSpace(body)
}
