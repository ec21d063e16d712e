package text

import "regexp"

var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s+\S`),            // headings
	regexp.MustCompile("(?m)^(```|~~~)"),              // code fences
	regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`),          // unordered lists
	regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`),          // ordered lists
	regexp.MustCompile(`!?\[[^\]]+\]\([^)]+\)`),       // links and images
	regexp.MustCompile(`(?m)^\|.+\|\s*$`),             // tables
	regexp.MustCompile(`\*\*[^*\n]+\*\*|__[^_\n]+__`), // strong emphasis
}

// IsMarkdown reports whether the text looks like markdown rather than
// a plain transcription. A single match is not enough, scanned
// documents legitimately contain lines starting with # or -.
func IsMarkdown(input string) bool {
	if input == "" {
		return false
	}

	matches := 0

	for _, pattern := range markdownPatterns {
		if !pattern.MatchString(input) {
			continue
		}

		matches++

		if matches >= 2 {
			return true
		}
	}

	return false
}
