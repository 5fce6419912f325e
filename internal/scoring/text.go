package scoring

import (
	"strings"
	"unicode"
)

// splitLines splits text on LF, CRLF or lone CR. A single trailing newline does not start
// a new line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// isUpperLine reports whether line has at least one letter and no lower-case letters.
func isUpperLine(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func runeLen(s string) int {
	return len([]rune(s))
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	return max(0, min(100, score))
}

func newResult(name Dimension) DimensionResult {
	return DimensionResult{Name: name, Feedback: []string{}}
}
