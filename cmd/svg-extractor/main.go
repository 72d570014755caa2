package main

import (
	"fmt"
	"io"
	"os"

	svgextractor "github.com/hellenic-development/svg-extractor"
	"github.com/hellenic-development/svg-extractor/pkg/asset"
	"github.com/hellenic-development/svg-extractor/pkg/rewriter"
	"github.com/hellenic-development/svg-extractor/pkg/walker"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = svgextractor.Version

type flags struct {
	configFile string
	root       string
	assetDir   string
	include    string
	exclude    string
	strategy   string
	prefix     string
	alt        string
	dryRun     bool
	reportFile string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "svg-extractor",
		Short: "Extract inline SVG markup from JavaScript sources into asset files",
		Long: "Scans a source tree for inline <svg> elements, writes each one to its own icon_<hash>.svg file " +
			"and replaces it with an <img> tag bound to a generated import.\n\n" +
			"Run without arguments to process ./src into ./src/assets/icons.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML config file (optional)")
	rootCmd.Flags().StringVarP(&f.root, "root", "r", svgextractor.DefaultRoot, "Source directory to scan")
	rootCmd.Flags().StringVarP(&f.assetDir, "asset-dir", "o", svgextractor.DefaultAssetDir, "Output directory for extracted SVG files")
	rootCmd.Flags().StringVarP(&f.include, "include", "i", walker.DefaultInclude[0], "Comma-separated file patterns to process, relative to --root")
	rootCmd.Flags().StringVarP(&f.exclude, "exclude", "e", "", "Comma-separated file or directory patterns to skip (e.g. \"**/node_modules/**\")")
	rootCmd.Flags().StringVar(&f.strategy, "strategy", svgextractor.DefaultStrategy, "Block finder: nesting or pattern")
	rootCmd.Flags().StringVar(&f.prefix, "prefix", asset.DefaultPrefix, "Identifier prefix for extracted assets")
	rootCmd.Flags().StringVar(&f.alt, "alt", rewriter.DefaultAlt, "Alt text of the replacement <img> tag")
	rootCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Print the planned changes as diffs without writing any file")
	rootCmd.Flags().StringVar(&f.reportFile, "report", "", "Write a markdown report of the run to this file")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Progress log format: text or json")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "svg-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func run(cmd *cobra.Command, f flags) error {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	opts, err := options(cmd, f)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(f.logFormat, out)
	if err != nil {
		return err
	}
	defer closeLogger()
	opts.Logger = logger

	cyan.Fprintln(out, "\n🖼  SVG Extractor")
	cyan.Fprintln(out, "================")

	result, err := svgextractor.Run(opts)
	if err != nil {
		return err
	}

	for _, d := range result.Diffs {
		fmt.Fprint(out, "\n"+d.Diff)
	}

	fmt.Fprint(out, result.Summary.Text())

	if f.reportFile != "" {
		green.Fprintf(out, "\n💾 Writing report to %s... ", f.reportFile)
		if err := os.WriteFile(f.reportFile, []byte(result.Summary.ToMarkdown()), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		green.Fprintln(out, "✓")
	}

	return nil
}

// options merges the config file with the command line. Flags given
// explicitly win; otherwise a value from the file wins over a flag default.
func options(cmd *cobra.Command, f flags) (svgextractor.Options, error) {
	var opts svgextractor.Options
	if f.configFile != "" {
		loaded, err := svgextractor.LoadConfig(f.configFile)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	use := func(name string, empty bool) bool {
		return cmd.Flags().Changed(name) || empty
	}

	if use("root", opts.Root == "") {
		opts.Root = f.root
	}
	if use("asset-dir", opts.AssetDir == "") {
		opts.AssetDir = f.assetDir
	}
	if use("include", len(opts.Include) == 0) {
		opts.Include = svgextractor.ParsePatterns(f.include)
	}
	if use("exclude", len(opts.Exclude) == 0) {
		opts.Exclude = svgextractor.ParsePatterns(f.exclude)
	}
	if use("strategy", opts.Strategy == "") {
		opts.Strategy = f.strategy
	}
	if use("prefix", opts.Prefix == "") {
		opts.Prefix = f.prefix
	}
	if use("alt", opts.Alt == "") {
		opts.Alt = f.alt
	}
	if use("dry-run", !opts.DryRun) {
		opts.DryRun = f.dryRun
	}

	return opts, nil
}

func newLogger(format string, out io.Writer) (svgextractor.Logger, func(), error) {
	switch format {
	case "", "text":
		return &cliLogger{out: out}, func() {}, nil
	case "json":
		logger, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return &zapLogger{s: logger.Sugar()}, func() { _ = logger.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid log format %q (must be text or json)", format)
	}
}

// cliLogger implements svgextractor.Logger with colored terminal output.
type cliLogger struct {
	out io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
}

// zapLogger implements svgextractor.Logger with structured JSON output on stderr.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
