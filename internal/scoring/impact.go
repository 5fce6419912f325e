package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	minImpactLineLength = 5
	minMetrics          = 3
	maxPassive          = 5
	// impactBaseline is the starting score when no line could be classified.
	impactBaseline = 50
)

// strongVerbs are action verbs that signal ownership. "led" is matched separately by
// ledPattern since it is a substring of words like "called" and "skilled".
var strongVerbs = []string{
	"achieved", "architected", "automated", "built", "created", "delivered",
	"designed", "developed", "engineered", "implemented", "improved", "increased",
	"launched", "managed", "mentored", "migrated", "optimized", "reduced",
	"scaled", "shipped", "spearheaded", "streamlined", "transformed",
}

// weakVerbs are passive or vague phrasings that hide the candidate's contribution.
var weakVerbs = []string{
	"helped", "assisted", "worked on", "responsible for", "participated",
	"involved in", "duties included", "tasked with", "contributed to", "supported",
}

var ledPattern = regexp.MustCompile(`\bled\b`)

var passiveIndicators = []string{"was", "were", "been", "is", "are"}

// metricPattern matches currency amounts, percentages, scaled figures and bare numbers.
var metricPattern = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d+)?\s?(?:[kmb]\b|million\b|billion\b)?` +
	`|\d[\d,]*(?:\.\d+)?\s?%` +
	`|\d[\d,]*(?:\.\d+)?\s?(?:[kmb]\b|x\b|million\b|billion\b|thousand\b)` +
	`|\d[\d,]*(?:\.\d+)?`)

// ScoreImpact rates how achievement-oriented the text is: verb strength per line,
// quantified results and passive voice.
func ScoreImpact(text string) DimensionResult {
	result := newResult(DimensionImpact)
	details := ImpactDetails{}

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if runeLen(trimmed) < minImpactLineLength || isUpperLine(trimmed) {
			continue
		}
		lower := strings.ToLower(trimmed)
		switch {
		case containsAny(lower, strongVerbs) || ledPattern.MatchString(lower):
			details.StrongLines++
		case containsAny(lower, weakVerbs):
			details.WeakLines++
		default:
			details.OtherLines++
		}
	}

	score := float64(impactBaseline)
	total := details.StrongLines + details.WeakLines + details.OtherLines
	if total > 0 {
		strongPct := float64(details.StrongLines) / float64(total) * 100
		weakPct := float64(details.WeakLines) / float64(total) * 100
		score = 0.5*strongPct + 0.5*(100-weakPct)
		if weakPct > 50 {
			result.Feedback = append(result.Feedback,
				fmt.Sprintf("Weak verbs dominate %d%% of your lines; replace phrases like \"helped\" or \"worked on\" with strong action verbs",
					int(math.Round(weakPct))))
		}
	} else {
		result.Feedback = append(result.Feedback,
			"No achievement lines found; add bullet points that open with action verbs")
	}

	details.Metrics = len(metricPattern.FindAllStringIndex(text, -1))
	if details.Metrics < minMetrics {
		score -= 20
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Add quantifiable metrics such as percentages, dollar amounts or team sizes (found %d, aim for at least %d)",
				details.Metrics, minMetrics))
	}

	lower := strings.ToLower(text)
	for _, word := range passiveIndicators {
		details.Passive += strings.Count(lower, word)
	}
	if details.Passive > maxPassive {
		score -= 10
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Reduce passive voice (%d indicators found); lead with what you did", details.Passive))
	}

	result.Score = clamp(int(math.Round(score)))
	result.Extra = details
	return result
}
