// Package scoring computes deterministic, lexical quality scores for resume text.
package scoring

import "strings"

// MinTextLength is the shortest trimmed resume text (in runes) the service accepts.
// Shorter text is still scored by the engine, but with maximal penalties.
const MinTextLength = 50

// Dimension names one of the five independent scoring axes.
type Dimension string

// Scoring dimensions
const (
	DimensionFormatting Dimension = "formatting"
	DimensionKeywords   Dimension = "keywords"
	DimensionImpact     Dimension = "impact"
	DimensionContent    Dimension = "content"
	DimensionStructure  Dimension = "structure"
)

// Dimensions lists every dimension in canonical order. Feedback is classified in this order.
var Dimensions = []Dimension{
	DimensionFormatting,
	DimensionKeywords,
	DimensionImpact,
	DimensionContent,
	DimensionStructure,
}

// Request is a single scoring request.
type Request struct {
	Text           string
	JobDescription *string
}

// HasJobDescription reports whether a non-blank job description was supplied.
func (r Request) HasJobDescription() bool {
	return r.JobDescription != nil && strings.TrimSpace(*r.JobDescription) != ""
}

// Validate checks the request against the service boundary rules.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &InvalidInputError{Field: "text", Message: "resume text is required"}
	}
	if runeLen(strings.TrimSpace(r.Text)) < MinTextLength {
		return &InvalidInputError{
			Field:   "text",
			Message: "resume text is too short to analyze",
		}
	}
	return nil
}

// DimensionResult is the outcome of one dimension scorer.
type DimensionResult struct {
	Name     Dimension `json:"name"`
	Score    int       `json:"score"`
	Feedback []string  `json:"feedback"`
	Extra    any       `json:"extra,omitempty"`
}

// Report is the composite result for one request.
type Report struct {
	OverallScore   float64                       `json:"overall_score"`
	Breakdown      map[Dimension]DimensionResult `json:"breakdown"`
	CriticalIssues []string                      `json:"critical_issues"`
	Warnings       []string                      `json:"warnings"`
	Improvements   []string                      `json:"improvements"`
}

// FormattingDetails is the Extra payload of the formatting dimension.
type FormattingDetails struct {
	SpecialCharacters []string `json:"special_characters"`
	HasTables         bool     `json:"has_tables"`
	HasHiddenChars    bool     `json:"has_hidden_characters"`
	LineCount         int      `json:"line_count"`
}

// KeywordMode tells whether keywords were matched against a job description or the vocabulary.
type KeywordMode string

// Keyword matching modes
const (
	KeywordModeJobDescription KeywordMode = "job_description"
	KeywordModeVocabulary     KeywordMode = "vocabulary"
)

// KeywordDetails is the Extra payload of the keywords dimension.
type KeywordDetails struct {
	Mode       KeywordMode `json:"mode"`
	Matched    []string    `json:"matched"`
	Missing    []string    `json:"missing"`
	MatchRatio float64     `json:"match_ratio"`
}

// ImpactDetails is the Extra payload of the impact dimension.
type ImpactDetails struct {
	StrongLines int `json:"strong_lines"`
	WeakLines   int `json:"weak_lines"`
	OtherLines  int `json:"other_lines"`
	Metrics     int `json:"metrics"`
	Passive     int `json:"passive_indicators"`
}

// ContentDetails is the Extra payload of the content dimension.
type ContentDetails struct {
	Sections   []string `json:"sections"`
	HasSummary bool     `json:"has_summary"`
	HasEmail   bool     `json:"has_email"`
	HasPhone   bool     `json:"has_phone"`
}

// StructureDetails is the Extra payload of the structure dimension.
type StructureDetails struct {
	Headings  int `json:"headings"`
	LongLines int `json:"long_lines"`
	Bullets   int `json:"bullets"`
	Words     int `json:"words"`
}
