package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/denizgursoy/specreporter/internal/config"
	"github.com/denizgursoy/specreporter/internal/eventlog"
	"github.com/denizgursoy/specreporter/internal/feature"
	"github.com/denizgursoy/specreporter/internal/metrics"
	"github.com/denizgursoy/specreporter/pkg/reporter"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cliOptions holds the flags shared by every subcommand.
type cliOptions struct {
	configPath  string
	overrides   reporter.Config
	logLevel    string
	metricsFile string
	htmlReport  string
	recordPath  string
	debug       bool
	tags        string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:          "specreporter",
		Short:        "Render test runner lifecycle events as a console report",
		Version:      version,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the configuration file (default: "+config.DefaultFileName+" if present)")
	flags.BoolVar(&opts.overrides.ReportResultsInstantly, "instant", false, "Print titles as events arrive instead of one block per runner")
	flags.BoolVar(&opts.overrides.ReportErrorsInstantly, "errors-instantly", false, "Print failure details right after the failing test")
	flags.BoolVar(&opts.overrides.CleanStackTraces, "clean-stacks", false, "Keep only call frames of user code in stack traces")
	flags.StringVar(&opts.logLevel, "log-level", "", "Output before the spec phase in instant mode: testcases or steps")
	flags.StringVar(&opts.overrides.Hostname, "hostname", "", "Remote grid host, used for job links")
	flags.StringVar(&opts.overrides.Variant, "variant", "", "Terminology: verified or validated")
	flags.BoolVar(&opts.overrides.NoColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file when done")
	flags.StringVar(&opts.htmlReport, "html-report", "", "Also write an HTML run summary to this file")
	flags.StringVar(&opts.recordPath, "record", "", "Also write every handled event to this NDJSON file")
	flags.BoolVar(&opts.debug, "debug", false, "Log every handled event to stderr")

	replayCmd := &cobra.Command{
		Use:   "replay [events.ndjson|-]",
		Short: "Render a recorded NDJSON event stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runReplay(cmd, args)
		},
	}

	dryRunCmd := &cobra.Command{
		Use:   "dryrun [directories...]",
		Short: "Report every scenario of the feature files as pending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runDryRun(cmd, args)
		},
	}
	dryRunCmd.Flags().StringVar(&opts.tags, "tags", "", "Tag expression selecting scenarios, e.g. \"@smoke and not @slow\"")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(dryRunCmd)
	return rootCmd
}

// session is one configured reporter together with its optional metrics and
// event recording.
type session struct {
	reporter    *reporter.Reporter
	handler     eventlog.Handler
	observer    *metrics.Observer
	metricsFile string
	record      *os.File
	logger      *slog.Logger
}

func (o *cliOptions) newSession(cmd *cobra.Command) (*session, error) {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	file, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	overrides := o.overrides
	switch reporter.LogLevel(o.logLevel) {
	case reporter.LogLevelQuiet, reporter.LogLevelTestcases, reporter.LogLevelSteps:
		overrides.ConsoleLogLevel = reporter.LogLevel(o.logLevel)
	default:
		return nil, fmt.Errorf("invalid --log-level %q: want testcases or steps", o.logLevel)
	}
	cfg := reporter.MergeConfigs(file.Reporter(), &overrides)

	out := cmd.OutOrStdout()
	useColors := !cfg.NoColor && !color.NoColor && out == io.Writer(os.Stdout)

	s := &session{
		metricsFile: firstNonEmpty(o.metricsFile, file.MetricsFile),
		logger:      logger,
	}
	reporterOpts := []reporter.Option{
		reporter.WithConfig(cfg),
		reporter.WithLogger(logger),
		reporter.WithPrinter(reporter.NewConsolePrinter(out, useColors)),
	}
	variant := reporter.VariantByName(cfg.Variant)
	epilogue := reporter.Epilogue(reporter.NewTableEpilogue(out, variant, nil))
	if htmlReport := firstNonEmpty(o.htmlReport, file.HTMLReport); htmlReport != "" {
		epilogue = reporter.Epilogues(epilogue, reporter.NewHTMLEpilogue(htmlReport, variant, nil))
	}
	reporterOpts = append(reporterOpts, reporter.WithEpilogue(epilogue))
	if s.metricsFile != "" {
		s.observer = metrics.NewObserver()
		reporterOpts = append(reporterOpts, reporter.WithObserver(s.observer))
	}
	s.reporter = reporter.New(reporterOpts...)
	s.handler = s.reporter

	if o.recordPath != "" {
		f, err := os.Create(o.recordPath)
		if err != nil {
			return nil, fmt.Errorf("create event record: %w", err)
		}
		s.record = f
		s.handler = eventlog.Tee(s.reporter, eventlog.NewEncoder(f))
	}
	return s, nil
}

// finish closes the event record and writes the metrics file when they were
// requested.
func (s *session) finish() error {
	if s.record != nil {
		if err := s.record.Close(); err != nil {
			return fmt.Errorf("close event record: %w", err)
		}
	}
	if s.observer == nil {
		return nil
	}
	return s.observer.WriteTextfile(s.metricsFile)
}

func (o *cliOptions) runReplay(cmd *cobra.Command, args []string) error {
	s, err := o.newSession(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer f.Close()
		in = f
	}

	res, err := eventlog.Replay(cmd.Context(), in, s.handler)
	for _, rejected := range res.Errors {
		s.logger.Warn("event rejected", "error", rejected)
	}
	if err != nil {
		return fmt.Errorf("replay after %d events: %w", res.Events, err)
	}
	return s.finish()
}

func (o *cliOptions) runDryRun(cmd *cobra.Command, args []string) error {
	s, err := o.newSession(cmd)
	if err != nil {
		return err
	}

	err = feature.NewDryRun(s.handler).
		WithFeaturesDirectories(args...).
		WithTags(o.tags).
		WithLogger(s.logger).
		Run(cmd.Context())
	if err != nil {
		return err
	}
	return s.finish()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
