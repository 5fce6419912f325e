package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// sectionMarkers maps each canonical section to the words that indicate it.
// Iteration uses canonicalSections to keep feedback order stable.
var sectionMarkers = map[string][]string{
	"experience": {"experience", "employment"},
	"education":  {"education", "degree"},
	"skills":     {"skills", "technical"},
}

var canonicalSections = []string{"experience", "education", "skills"}

var summaryMarkers = []string{"summary", "objective", "profile"}

var phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}`)

// ScoreContent checks that the resume carries the sections and contact details recruiters expect.
func ScoreContent(text string) DimensionResult {
	result := newResult(DimensionContent)
	score := 100
	lower := strings.ToLower(text)
	details := ContentDetails{Sections: []string{}}

	if runeLen(strings.TrimSpace(text)) < MinTextLength {
		score -= 20
		result.Feedback = append(result.Feedback,
			"Resume is missing substantive content and is too short to analyze")
	}

	for _, section := range canonicalSections {
		if containsAny(lower, sectionMarkers[section]) {
			details.Sections = append(details.Sections, section)
			continue
		}
		score -= 20
		result.Feedback = append(result.Feedback, fmt.Sprintf("Missing %s section", section))
	}

	details.HasSummary = containsAny(lower, summaryMarkers)
	if details.HasSummary {
		score += 5
	} else {
		result.Feedback = append(result.Feedback,
			"Consider adding a professional summary or objective at the top")
	}

	details.HasEmail = strings.Contains(text, "@")
	if !details.HasEmail {
		score -= 10
		result.Feedback = append(result.Feedback, "Missing email address in your contact information")
	}

	details.HasPhone = phonePattern.MatchString(text)
	if !details.HasPhone {
		result.Feedback = append(result.Feedback, "No phone number detected; add one so recruiters can reach you")
	}

	result.Score = clamp(score)
	result.Extra = details
	return result
}
