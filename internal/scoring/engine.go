package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/keywords"
)

// Engine runs the five dimension scorers and assembles a Report.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	matcher *keywords.Matcher
}

// NewEngine creates an Engine. A nil matcher uses the built-in technical vocabulary.
func NewEngine(matcher *keywords.Matcher) *Engine {
	if matcher == nil {
		matcher = keywords.NewMatcher(nil)
	}
	return &Engine{matcher: matcher}
}

// Score evaluates req. The scorers run concurrently; the report does not depend on their
// scheduling. Score does not enforce MinTextLength; callers at the service boundary use
// Request.Validate for that.
func (e *Engine) Score(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scorers := []func() DimensionResult{
		func() DimensionResult { return ScoreFormatting(req.Text) },
		func() DimensionResult { return ScoreKeywords(e.matcher, req.Text, req.JobDescription) },
		func() DimensionResult { return ScoreImpact(req.Text) },
		func() DimensionResult { return ScoreContent(req.Text) },
		func() DimensionResult { return ScoreStructure(req.Text) },
	}

	results := make([]DimensionResult, len(scorers))
	g, gctx := errgroup.WithContext(ctx)
	for i, score := range scorers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = score()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Breakdown: make(map[Dimension]DimensionResult, len(results))}
	for _, r := range results {
		report.Breakdown[r.Name] = r
	}
	report.OverallScore = Aggregate(report.Breakdown)
	Classify(report)

	return report, nil
}
