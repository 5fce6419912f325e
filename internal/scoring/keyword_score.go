package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/keywords"
)

// maxMissingListed caps how many missing keywords are named in feedback.
const maxMissingListed = 10

// keywordTiers are evaluated in order; only the first tier whose threshold the ratio falls
// below applies.
var keywordTiers = []struct {
	below    float64
	penalty  int
	feedback string
}{
	{0.3, 30, "Keyword match with the job description is very low (%d%%); tailor your resume to the posting"},
	{0.5, 15, "Keyword match with the job description is %d%%; try mirroring the posting's terminology"},
	{0.7, 5, "Keyword match with the job description is %d%%; consider working in more of its key terms"},
}

// ScoreKeywords scores keyword alignment. With a job description it measures overlap with
// the description's keywords; without one it checks the matcher's technical vocabulary.
func ScoreKeywords(m *keywords.Matcher, text string, jobDescription *string) DimensionResult {
	if (Request{Text: text, JobDescription: jobDescription}).HasJobDescription() {
		jobKeywords := keywords.Extract(*jobDescription)
		if len(jobKeywords) > 0 {
			return scoreAgainstJobDescription(text, jobKeywords)
		}
		result := scoreAgainstVocabulary(m, text)
		result.Feedback = append([]string{
			"Job description has no significant keywords; scored against the technical vocabulary instead",
		}, result.Feedback...)
		return result
	}
	return scoreAgainstVocabulary(m, text)
}

func scoreAgainstJobDescription(text string, jobKeywords []string) DimensionResult {
	result := newResult(DimensionKeywords)

	resumeKeywords := make(map[string]bool)
	for _, kw := range keywords.Extract(text) {
		resumeKeywords[kw] = true
	}

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0)
	for _, kw := range jobKeywords {
		if resumeKeywords[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	ratio := float64(len(matched)) / float64(max(len(jobKeywords), 1))
	score := ratio * 100

	if len(missing) > 0 {
		result.Feedback = append(result.Feedback, missingKeywordsFeedback(missing))
	}
	for _, tier := range keywordTiers {
		if ratio < tier.below {
			score -= float64(tier.penalty)
			result.Feedback = append(result.Feedback, fmt.Sprintf(tier.feedback, int(math.Round(ratio*100))))
			break
		}
	}

	result.Score = clamp(int(math.Round(score)))
	result.Extra = KeywordDetails{
		Mode:       KeywordModeJobDescription,
		Matched:    matched,
		Missing:    missing,
		MatchRatio: math.Round(ratio*1000) / 1000,
	}
	return result
}

func scoreAgainstVocabulary(m *keywords.Matcher, text string) DimensionResult {
	result := newResult(DimensionKeywords)
	score := 100

	matched := m.MatchVocabulary(text)
	switch {
	case len(matched) == 0:
		score -= 30
		result.Feedback = append(result.Feedback,
			"No technical keywords detected; list the tools, languages and platforms you use")
	case len(matched) < 3:
		score -= 15
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("Only %d technical keywords detected; consider naming more of the technologies you use", len(matched)))
	}

	result.Score = clamp(score)
	result.Extra = KeywordDetails{
		Mode:    KeywordModeVocabulary,
		Matched: matched,
		Missing: []string{},
	}
	return result
}

func missingKeywordsFeedback(missing []string) string {
	listed := missing
	suffix := ""
	if len(missing) > maxMissingListed {
		listed = missing[:maxMissingListed]
		suffix = fmt.Sprintf(" and %d more", len(missing)-maxMissingListed)
	}
	return fmt.Sprintf("Missing %d keywords from the job description: %s%s",
		len(missing), strings.Join(listed, ", "), suffix)
}
