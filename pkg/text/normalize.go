package text

import (
	"strings"
)

// Normalize collapses runs of spaces and blank lines while keeping
// the line structure of the text.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var lines []string
	var blank bool

	for _, line := range strings.Split(input, "\n") {
		line = strings.Join(strings.Fields(line), " ")

		if line == "" {
			blank = len(lines) > 0
			continue
		}

		if blank {
			lines = append(lines, "")
			blank = false
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
