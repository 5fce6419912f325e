package ingestion

import (
	"regexp"
	"strings"
)

var (
	blankRun     = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// NormalizeLineEndings converts CRLF and lone CR line endings to LF.
func NormalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// CleanText normalizes text pulled out of rich documents. Runs of blanks inside a line
// collapse to one space, lines are trimmed and more than one consecutive blank line is
// reduced to a single blank line. Bullets and headings keep their own lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(NormalizeLineEndings(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(blankRun.ReplaceAllString(line, " "))
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}
