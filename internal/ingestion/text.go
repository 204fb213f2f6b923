// Package ingestion turns raw job posting content (HTML or plain text) into
// clean, structured posting records ready for scoring.
package ingestion

import (
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// CleanText cleans and normalizes posting text while preserving structure:
// line endings are normalized, trailing whitespace trimmed, and runs of
// blank lines collapsed to at most one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a single line, normalizing bullets to "- " and keeping
// heading markers intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Keep markdown-style headings flush left.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Normalize common bullet characters.
	for _, bullet := range []string{"•", "◦", "▪", "*"} {
		if strings.HasPrefix(trimmed, bullet) {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, bullet))
			return "- " + rest
		}
	}

	return trimmed
}
