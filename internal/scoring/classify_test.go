package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFeedback(t *testing.T) {
	tests := []struct {
		feedback string
		expected Severity
	}{
		{"Missing skills section", SeverityCritical},
		{"Remove hidden characters such as zero-width spaces", SeverityCritical},
		{"Avoid tables", SeverityCritical},
		{"Tables detected; this layout breaks column-based ATS parsing", SeverityCritical},
		{"Consider adding a professional summary", SeverityImprovement},
		{"Try mirroring the posting", SeverityImprovement},
		{"Reduce passive voice", SeverityImprovement},
		{"Missing 3 keywords; consider adding them", SeverityCritical},
		{"No bullet points found", SeverityWarning},
		{"", SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.feedback, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyFeedback(tt.feedback))
		})
	}
}

func TestClassify_OrderAndPartition(t *testing.T) {
	report := &Report{Breakdown: map[Dimension]DimensionResult{
		DimensionStructure:  {Name: DimensionStructure, Feedback: []string{"No bullet points found", "Missing headings"}},
		DimensionFormatting: {Name: DimensionFormatting, Feedback: []string{"Remove glyphs", "Consider fewer lines"}},
		DimensionImpact:     {Name: DimensionImpact, Feedback: []string{"Weak verbs dominate 80% of your lines"}},
	}}

	Classify(report)

	assert.Equal(t, []string{"Remove glyphs", "Missing headings"}, report.CriticalIssues)
	assert.Equal(t, []string{"Weak verbs dominate 80% of your lines", "No bullet points found"}, report.Warnings)
	assert.Equal(t, []string{"Consider fewer lines"}, report.Improvements)
}

func TestClassify_EmptyBucketsAreNotNil(t *testing.T) {
	report := &Report{Breakdown: map[Dimension]DimensionResult{}}

	Classify(report)

	assert.NotNil(t, report.CriticalIssues)
	assert.NotNil(t, report.Warnings)
	assert.NotNil(t, report.Improvements)
}
