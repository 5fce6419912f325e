package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/keywords"
)

func TestScoreKeywords_Vocabulary(t *testing.T) {
	m := keywords.NewMatcher(nil)

	tests := []struct {
		name          string
		text          string
		expectedScore int
		expected      []string
	}{
		{"no terms", weakResume, 70, []string{}},
		{"one term", "Wrote services in Python", 85, []string{"python"}},
		{"two terms", "Python and Docker", 85, []string{"python", "docker"}},
		{"three terms", "Python, Docker and Kubernetes", 100, []string{"python", "docker", "kubernetes"}},
		{"aliases", "golang k8s postgres", 100, []string{"go", "postgresql", "kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreKeywords(m, tt.text, nil)
			assert.Equal(t, DimensionKeywords, result.Name)
			assert.Equal(t, tt.expectedScore, result.Score)

			details, ok := result.Extra.(KeywordDetails)
			require.True(t, ok)
			assert.Equal(t, KeywordModeVocabulary, details.Mode)
			assert.Equal(t, tt.expected, details.Matched)
			assert.NotNil(t, details.Missing)
		})
	}
}

func TestScoreKeywords_JobDescription(t *testing.T) {
	m := keywords.NewMatcher(nil)
	resume := "python kubernetes terraform"

	tests := []struct {
		name            string
		jobDescription  string
		expectedScore   int
		expectedRatio   float64
		expectedMissing []string
		feedbackCue     string
	}{
		{"full match", "python kubernetes", 100, 1, []string{}, ""},
		{"three of four", "python kubernetes terraform kafka", 75, 0.75, []string{"kafka"}, "Missing 1 keywords"},
		{"half matched", "python kubernetes kafka airflow", 45, 0.5, []string{"kafka", "airflow"}, "consider working in"},
		{"two of five", "python kubernetes kafka airflow snowflake", 25, 0.4, []string{"kafka", "airflow", "snowflake"}, "try mirroring"},
		{"one of five", "python kafka airflow snowflake spark", 0, 0.2, []string{"kafka", "airflow", "snowflake", "spark"}, "very low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreKeywords(m, resume, strPtr(tt.jobDescription))
			assert.Equal(t, tt.expectedScore, result.Score)

			details := result.Extra.(KeywordDetails)
			assert.Equal(t, KeywordModeJobDescription, details.Mode)
			assert.InDelta(t, tt.expectedRatio, details.MatchRatio, 0.0001)
			assert.Equal(t, tt.expectedMissing, details.Missing)
			if tt.feedbackCue != "" {
				assert.Contains(t, strings.Join(result.Feedback, "\n"), tt.feedbackCue)
			} else {
				assert.Empty(t, result.Feedback)
			}
		})
	}
}

func TestScoreKeywords_OnlyFirstTierApplies(t *testing.T) {
	// 40% falls below both the 0.5 and 0.7 thresholds; only the 0.5 tier is charged.
	result := ScoreKeywords(keywords.NewMatcher(nil), "python kubernetes",
		strPtr("python kubernetes kafka airflow snowflake"))

	assert.Equal(t, 25, result.Score)
	tierLines := 0
	for _, fb := range result.Feedback {
		if strings.HasPrefix(fb, "Keyword match") {
			tierLines++
		}
	}
	assert.Equal(t, 1, tierLines)
}

func TestScoreKeywords_MissingListIsTruncated(t *testing.T) {
	var jd []string
	for i := 0; i < 12; i++ {
		jd = append(jd, fmt.Sprintf("skill%02d", i))
	}

	result := ScoreKeywords(keywords.NewMatcher(nil), "nothing relevant here", strPtr(strings.Join(jd, " ")))

	require.NotEmpty(t, result.Feedback)
	assert.True(t, strings.HasPrefix(result.Feedback[0], "Missing 12 keywords from the job description: skill00, skill01"))
	assert.True(t, strings.HasSuffix(result.Feedback[0], "skill09 and 2 more"))
	assert.Len(t, result.Extra.(KeywordDetails).Missing, 12)
}

func TestScoreKeywords_JobDescriptionWithoutKeywordsFallsBack(t *testing.T) {
	result := ScoreKeywords(keywords.NewMatcher(nil), "Python, Docker and Kubernetes", strPtr("a to be or not"))

	details := result.Extra.(KeywordDetails)
	assert.Equal(t, KeywordModeVocabulary, details.Mode)
	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Feedback, 1)
	assert.Contains(t, result.Feedback[0], "no significant keywords")
}

func TestScoreKeywords_BlankJobDescriptionUsesVocabulary(t *testing.T) {
	result := ScoreKeywords(keywords.NewMatcher(nil), "Python, Docker and Kubernetes", strPtr("   "))

	assert.Equal(t, KeywordModeVocabulary, result.Extra.(KeywordDetails).Mode)
	assert.Empty(t, result.Feedback)
}

func TestScoreKeywords_CustomVocabulary(t *testing.T) {
	m := keywords.NewMatcher([]string{"cobol", "fortran", "mainframe"})

	result := ScoreKeywords(m, "COBOL and Fortran on the mainframe", nil)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{"cobol", "fortran", "mainframe"}, result.Extra.(KeywordDetails).Matched)
}
