// Package main provides the resume_scorer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/logger"
)

// rootOptions carries the persistent flags and the viper instance they are bound to.
type rootOptions struct {
	configPath string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:           "resume_scorer",
		Short:         "Resume quality scoring engine",
		Long:          "Resume Scorer rates resumes on formatting, keywords, impact, content and structure, and serves the scores over a REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML or JSON config file")
	flags.Bool("json", false, "Write logs as JSON")
	flags.Bool("debug", false, "Enable debug logging")
	mustBind(opts.v, "log.json", flags.Lookup("json"))
	mustBind(opts.v, "log.debug", flags.Lookup("debug"))

	cmd.AddCommand(newServeCmd(opts), newScoreCmd(opts), newExtractCmd(opts))
	return cmd
}

// load reads and validates the configuration and builds the logger it asks for.
func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.v, o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
