package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes REST endpoints for scoring resume text, uploaded files and resume forms.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().Int("port", 8000, "Port to listen on")
	mustBind(opts.v, "port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	matcher, err := keywords.LoadMatcher(cfg.VocabularyFile)
	if err != nil {
		return err
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimiter())
	srv := server.New(server.Config{
		Addr:           cfg.Addr(),
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxTextBytes:   cfg.MaxTextBytes,
	}, limiter, scoring.NewEngine(matcher), ingestion.NewExtractor(cfg.ExtractTimeout), log)

	log.Info("configuration loaded",
		zap.String("addr", cfg.Addr()),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Int("vocabulary_terms", len(matcher.Vocabulary())),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}
