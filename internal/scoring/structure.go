package scoring

import (
	"fmt"
	"strings"
)

const (
	minHeadings       = 3
	maxHeadingLength  = 30
	longLineLength    = 100
	maxLongLineRatio  = 0.3
	minWords          = 200
	maxWords          = 1500
	bulletMarkerRunes = "•-*"
)

// ScoreStructure rates how scannable the document is: headings, line length, bullets and length.
func ScoreStructure(text string) DimensionResult {
	result := newResult(DimensionStructure)
	score := 100
	details := StructureDetails{}

	lines := splitLines(text)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isUpperLine(trimmed) && runeLen(trimmed) < maxHeadingLength {
			details.Headings++
		}
		if runeLen(line) > longLineLength {
			details.LongLines++
		}
	}

	if details.Headings < minHeadings {
		score -= 15
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Use clear section headings such as EXPERIENCE or EDUCATION (found %d)", details.Headings))
	}

	if float64(details.LongLines) > float64(len(lines))*maxLongLineRatio {
		score -= 10
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Many lines run past %d characters; break long paragraphs into concise bullets", longLineLength))
	}

	for _, r := range text {
		if strings.ContainsRune(bulletMarkerRunes, r) {
			details.Bullets++
		}
	}
	if details.Bullets == 0 {
		score -= 20
		result.Feedback = append(result.Feedback, "No bullet points found; use bullet points to list your achievements")
	}

	details.Words = len(strings.Fields(text))
	switch {
	case details.Words < minWords:
		score -= 10
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Resume is too short (%d words); aim for at least %d words", details.Words, minWords))
	case details.Words > maxWords:
		score -= 10
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Resume is too long (%d words); consider condensing it below %d words", details.Words, maxWords))
	}

	result.Score = clamp(score)
	result.Extra = details
	return result
}
