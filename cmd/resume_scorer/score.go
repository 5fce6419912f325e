package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

// Output formats for the score command
const (
	formatText = "text"
	formatJSON = "json"
)

type scoreOptions struct {
	jobPath string
	format  string
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	so := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Score a resume file",
		Long: fmt.Sprintf("Extracts text from a resume file (%s), scores it and prints the report. "+
			"With --job, keywords are matched against the job description instead of the built-in vocabulary.",
			joinFormats()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, opts, so, args[0])
		},
	}

	cmd.Flags().StringVarP(&so.jobPath, "job", "j", "", "Path to a plain-text job description")
	cmd.Flags().StringVarP(&so.format, "format", "f", formatText, "Output format: text or json")
	return cmd
}

func runScore(cmd *cobra.Command, opts *rootOptions, so *scoreOptions, path string) error {
	if so.format != formatText && so.format != formatJSON {
		return fmt.Errorf("invalid format %q: must be %q or %q", so.format, formatText, formatJSON)
	}

	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	matcher, err := keywords.LoadMatcher(cfg.VocabularyFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	text, err := ingestion.NewExtractor(cfg.ExtractTimeout).ExtractFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	log.Debug("extracted resume text",
		zap.String(logger.FieldFilename, logger.TruncateForLog(path, 120)),
		zap.Int("runes", len([]rune(text))),
	)

	req := scoring.Request{Text: text}
	if so.jobPath != "" {
		jd, err := os.ReadFile(so.jobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText := string(jd)
		req.JobDescription = &jdText
	}
	if err := req.Validate(); err != nil {
		return err
	}

	report, err := scoring.NewEngine(matcher).Score(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	if err := schemas.ValidateReport(report); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}
	log.Debug("resume scored", zap.Float64("overall_score", report.OverallScore))

	out := cmd.OutOrStdout()
	if so.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	observability.NewPrinter(out).PrintReport(report)
	return nil
}
