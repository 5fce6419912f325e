package scoring

import (
	"fmt"
	"strings"
)

const (
	minLines = 10
	maxLines = 100
)

// atsBreakingGlyphs are decorative symbols that applicant tracking systems mangle or drop.
var atsBreakingGlyphs = map[rune]bool{
	'→': true, '←': true, '↑': true, '↓': true, '↔': true, '⇒': true, '⇨': true,
	'◆': true, '◇': true, '♦': true, '❖': true,
	'★': true, '☆': true, '✦': true,
	'✓': true, '✔': true, '✗': true, '✘': true,
	'©': true, '®': true, '™': true,
	'➢': true, '➤': true, '►': true, '▶': true,
}

// hiddenChars are zero-width characters and byte-order marks.
var hiddenChars = map[rune]bool{
	'\u200b': true, '\u200c': true, '\u200d': true, '\u2060': true, '\ufeff': true,
}

// isTableRune reports pipes and box-drawing characters, which read as tables or rules.
func isTableRune(r rune) bool {
	return r == '|' || r == '¦' || (r >= 0x2500 && r <= 0x257F)
}

// ScoreFormatting deducts points for characters and layout that break ATS parsing.
func ScoreFormatting(text string) DimensionResult {
	result := newResult(DimensionFormatting)
	score := 100

	var glyphs []string
	seen := make(map[rune]bool)
	hasTable, hasHidden := false, false
	for _, r := range text {
		switch {
		case atsBreakingGlyphs[r]:
			if !seen[r] {
				seen[r] = true
				glyphs = append(glyphs, string(r))
			}
		case isTableRune(r):
			hasTable = true
		case hiddenChars[r]:
			hasHidden = true
		}
	}

	if len(glyphs) > 0 {
		score -= 10
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Remove special characters that ATS software cannot read: %s", strings.Join(glyphs, " ")))
	}
	if hasTable {
		score -= 15
		result.Feedback = append(result.Feedback,
			"Tables, pipes or box-drawing lines detected; this layout breaks column-based ATS parsing")
	}
	if hasHidden {
		score -= 10
		result.Feedback = append(result.Feedback,
			"Remove hidden characters such as zero-width spaces or byte-order marks")
	}

	lineCount := len(splitLines(text))
	if lineCount < minLines {
		score -= 5
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Resume looks too short (%d lines); consider adding more detail", lineCount))
	}
	if lineCount > maxLines {
		score -= 5
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Resume looks too long (%d lines); consider trimming it to the most relevant content", lineCount))
	}

	if strings.Contains(text, "  ") {
		score -= 3
		result.Feedback = append(result.Feedback, "Multiple consecutive spaces found; use single spaces between words")
	}

	if glyphs == nil {
		glyphs = []string{}
	}
	result.Score = clamp(score)
	result.Extra = FormattingDetails{
		SpecialCharacters: glyphs,
		HasTables:         hasTable,
		HasHiddenChars:    hasHidden,
		LineCount:         lineCount,
	}
	return result
}
