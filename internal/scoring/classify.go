package scoring

import "strings"

// Severity is the bucket a feedback line is triaged into.
type Severity string

// Feedback severities
const (
	SeverityCritical    Severity = "critical"
	SeverityWarning     Severity = "warning"
	SeverityImprovement Severity = "improvement"
)

var (
	criticalCues    = []string{"missing", "remove", "avoid", "breaks"}
	improvementCues = []string{"consider", "try", "reduce"}
)

// ClassifyFeedback triages a single feedback line by its wording. Critical cues are checked
// first, so a line containing both "missing" and "consider" is critical.
func ClassifyFeedback(feedback string) Severity {
	lower := strings.ToLower(feedback)
	switch {
	case containsAny(lower, criticalCues):
		return SeverityCritical
	case containsAny(lower, improvementCues):
		return SeverityImprovement
	default:
		return SeverityWarning
	}
}

// Classify fills the report's feedback buckets from its breakdown, walking dimensions in
// canonical order and each dimension's feedback in emission order.
func Classify(report *Report) {
	report.CriticalIssues = []string{}
	report.Warnings = []string{}
	report.Improvements = []string{}

	for _, dim := range Dimensions {
		for _, fb := range report.Breakdown[dim].Feedback {
			switch ClassifyFeedback(fb) {
			case SeverityCritical:
				report.CriticalIssues = append(report.CriticalIssues, fb)
			case SeverityImprovement:
				report.Improvements = append(report.Improvements, fb)
			default:
				report.Warnings = append(report.Warnings, fb)
			}
		}
	}
}
