package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/observability"
)

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var boxed bool
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the text extracted from a resume file",
		Long:  fmt.Sprintf("Extracts and normalizes the text of a resume file (%s) exactly as the scorer sees it.", joinFormats()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			text, err := ingestion.NewExtractor(cfg.ExtractTimeout).ExtractFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", args[0], err)
			}

			if boxed {
				observability.NewPrinter(cmd.OutOrStdout()).PrintText(filepath.Base(args[0]), text)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&boxed, "box", false, "Frame the text in a box")
	return cmd
}

func joinFormats() string {
	return strings.Join(ingestion.NewExtractor(0).Formats(), ", ")
}
