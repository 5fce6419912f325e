package scoring

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentsJobDescription = "We need a backend engineer with Python, Kubernetes, Kafka, Terraform, " +
	"Snowflake and Airflow experience building payment platforms."

func TestEngineScore_WeakResume(t *testing.T) {
	report, err := NewEngine(nil).Score(context.Background(), Request{Text: weakResume})
	require.NoError(t, err)

	assert.Less(t, report.OverallScore, 50.0)
	assert.InDelta(t, 47.5, report.OverallScore, 1e-9)
	assert.NotEmpty(t, report.CriticalIssues)
	assert.Contains(t, report.CriticalIssues, "Missing experience section")
}

func TestEngineScore_WellFormedResume(t *testing.T) {
	report, err := NewEngine(nil).Score(context.Background(), Request{Text: wellFormedResume})
	require.NoError(t, err)

	assert.Greater(t, report.OverallScore, 70.0)
	assert.InDelta(t, 94.0, report.OverallScore, 1e-9)
	assert.Equal(t, 100, report.Breakdown[DimensionKeywords].Score)
	assert.Empty(t, report.CriticalIssues)
}

func TestEngineScore_JobDescriptionLowersKeywordScore(t *testing.T) {
	engine := NewEngine(nil)

	plain, err := engine.Score(context.Background(), Request{Text: wellFormedResume})
	require.NoError(t, err)
	tailored, err := engine.Score(context.Background(), Request{
		Text:           wellFormedResume,
		JobDescription: strPtr(paymentsJobDescription),
	})
	require.NoError(t, err)

	assert.Less(t, tailored.Breakdown[DimensionKeywords].Score, plain.Breakdown[DimensionKeywords].Score)
	details := tailored.Breakdown[DimensionKeywords].Extra.(KeywordDetails)
	assert.Equal(t, KeywordModeJobDescription, details.Mode)
	assert.Equal(t, []string{"kafka", "snowflake", "airflow", "building"}, details.Missing)
	assert.Equal(t, 62, tailored.Breakdown[DimensionKeywords].Score)
}

func TestEngineScore_BreakdownHasEveryDimension(t *testing.T) {
	for _, text := range []string{"", weakResume, wellFormedResume, strings.Repeat("x ", 5000)} {
		report, err := NewEngine(nil).Score(context.Background(), Request{Text: text})
		require.NoError(t, err)

		require.Len(t, report.Breakdown, len(Dimensions))
		for _, dim := range Dimensions {
			result := report.Breakdown[dim]
			assert.Equal(t, dim, result.Name)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			assert.NotNil(t, result.Feedback)
		}
		assert.GreaterOrEqual(t, report.OverallScore, 0.0)
		assert.LessOrEqual(t, report.OverallScore, 100.0)
	}
}

func TestEngineScore_FeedbackIsPartitioned(t *testing.T) {
	report, err := NewEngine(nil).Score(context.Background(), Request{
		Text:           weakResume,
		JobDescription: strPtr(paymentsJobDescription),
	})
	require.NoError(t, err)

	total := 0
	for _, dim := range Dimensions {
		total += len(report.Breakdown[dim].Feedback)
	}
	assert.Equal(t, total, len(report.CriticalIssues)+len(report.Warnings)+len(report.Improvements))
}

func TestEngineScore_Deterministic(t *testing.T) {
	engine := NewEngine(nil)
	req := Request{Text: wellFormedResume, JobDescription: strPtr(paymentsJobDescription)}

	first, err := engine.Score(context.Background(), req)
	require.NoError(t, err)
	want, err := json.Marshal(first)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := engine.Score(context.Background(), req)
			if err != nil {
				return
			}
			results[i], _ = json.Marshal(report)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.JSONEq(t, string(want), string(got))
		assert.Equal(t, want, got)
	}
}

func TestEngineScore_AddingEmailNeverLowersScore(t *testing.T) {
	withoutEmail := strings.Replace(wellFormedResume, "jane.doe@example.com\n", "", 1)
	engine := NewEngine(nil)

	without, err := engine.Score(context.Background(), Request{Text: withoutEmail})
	require.NoError(t, err)
	with, err := engine.Score(context.Background(), Request{Text: wellFormedResume})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, with.OverallScore, without.OverallScore)
	assert.Contains(t, without.CriticalIssues, "Missing email address in your contact information")
}

func TestEngineScore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewEngine(nil).Score(ctx, Request{Text: wellFormedResume})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"blank", "   \n\t", "resume text is required"},
		{"too short", weakResume, "resume text is too short to analyze"},
		{"short after trimming", "   " + strings.Repeat("a", MinTextLength-1) + "   ", "too short"},
		{"exactly the minimum", strings.Repeat("a", MinTextLength), ""},
		{"multibyte runes count once", strings.Repeat("é", MinTextLength), ""},
		{"well formed", wellFormedResume, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Request{Text: tt.text}.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "text", invalid.Field)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRequestHasJobDescription(t *testing.T) {
	assert.False(t, Request{}.HasJobDescription())
	assert.False(t, Request{JobDescription: strPtr("  ")}.HasJobDescription())
	assert.True(t, Request{JobDescription: strPtr("Go developer")}.HasJobDescription())
}

func TestEngineScore_BlankJobDescriptionUsesVocabulary(t *testing.T) {
	for _, jd := range []*string{nil, strPtr(""), strPtr(" \n\t ")} {
		req := Request{Text: wellFormedResume, JobDescription: jd}
		require.False(t, req.HasJobDescription())

		report, err := NewEngine(nil).Score(context.Background(), req)
		require.NoError(t, err)

		details := report.Breakdown[DimensionKeywords].Extra.(KeywordDetails)
		assert.Equal(t, KeywordModeVocabulary, details.Mode)
	}
}
