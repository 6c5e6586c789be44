// Package cli implements the pdfsplit command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/core/manipulate"
	"github.com/benedoc-inc/pdfsplit/internal/config"
	"github.com/benedoc-inc/pdfsplit/internal/logging"
	"github.com/benedoc-inc/pdfsplit/internal/version"
)

// app carries the configuration and services shared by one command run
type app struct {
	cfg     config.Config
	envErr  error
	verbose bool
	logger  *log.Logger
}

// NewRootCommand builds a fresh command tree. Flag defaults come from
// PDFSPLIT_* environment variables.
func NewRootCommand() *cobra.Command {
	cfg, envErr := config.FromEnv()
	a := &app{cfg: cfg, envErr: envErr, logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   "pdfsplit",
		Short: "Split and merge PDF documents",
		Long: `pdfsplit splits a PDF into single pages, fixed-size chunks or custom
page ranges, and merges several PDFs into one document in a chosen order.

Range specifications are comma separated 1-based pages or ranges,
for example "1-3,5,7-9".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pdfsplit %s\n", version.String()))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level: debug, info, warn, error (env: PDFSPLIT_LOG_LEVEL)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	flags.IntVarP(&a.cfg.Concurrency, "concurrency", "j", a.cfg.Concurrency, "Outputs produced in parallel, 0 for one per CPU (env: PDFSPLIT_CONCURRENCY)")
	flags.StringVar(&a.cfg.ValidationMode, "validation", a.cfg.ValidationMode, "PDF validation: relaxed or strict (env: PDFSPLIT_VALIDATION)")

	rootCmd.AddCommand(
		newSplitCommand(a),
		newMergeCommand(a),
		newPlanCommand(a),
		newRangesCommand(a),
		newInfoCommand(a),
		newSampleCommand(a),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		FormatError(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envErr != nil {
		return a.envErr
	}
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration", "concurrency", a.cfg.Concurrency, "validation", a.cfg.ValidationMode, "output", a.cfg.OutputDir)
	return nil
}

func (a *app) backend() (*backend.PDFCPU, error) {
	return backend.NewPDFCPU(backend.Options{
		ValidationMode: a.cfg.ValidationMode,
		Logger:         a.logger,
	})
}

// options wires progress lines to the command's stderr
func (a *app) options(cmd *cobra.Command) manipulate.Options {
	w := cmd.ErrOrStderr()
	return manipulate.Options{
		Concurrency: a.cfg.Concurrency,
		Logger:      a.logger,
		Progress: func(p manipulate.Progress) {
			FormatProgress(w, p)
		},
	}
}

func readSource(path string) (manipulate.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manipulate.Source{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return manipulate.Source{Name: path, Data: data}, nil
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
