package svgextractor

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hellenic-development/svg-extractor/pkg/asset"
	"github.com/hellenic-development/svg-extractor/pkg/finder"
	"github.com/hellenic-development/svg-extractor/pkg/report"
	"github.com/hellenic-development/svg-extractor/pkg/rewriter"
	"github.com/hellenic-development/svg-extractor/pkg/walker"
)

// Version is the release version reported by the CLI.
const Version = "1.0.0"

// Defaults applied by Run to empty Options fields.
const (
	DefaultRoot     = "src"
	DefaultAssetDir = asset.DefaultOutputDir
	DefaultStrategy = finder.StrategyNesting
)

// ErrInvalidUTF8 is returned for a source file that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Options configures the extraction.
type Options struct {
	Root     string   `yaml:"root"`      // source tree, default "src"
	AssetDir string   `yaml:"asset_dir"` // default "src/assets/icons"
	Include  []string `yaml:"include"`   // doublestar patterns relative to Root, default "**/*.js"
	Exclude  []string `yaml:"exclude"`
	Strategy string   `yaml:"strategy"` // "nesting" (default) or "pattern"
	Prefix   string   `yaml:"prefix"`   // identifier prefix, default "icon_"
	Alt      string   `yaml:"alt"`      // placeholder alt text, default "icon"
	DryRun   bool     `yaml:"dry_run"`  // plan and diff only
	Logger   Logger   `yaml:"-"`        // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	Summary report.Summary
	Assets  []asset.Asset // one per extracted block, in discovery order
	Diffs   []FileDiff    // populated in dry-run mode only
}

// FileDiff is the unified diff a rewrite would apply to one source file.
type FileDiff struct {
	Path string
	Diff string
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run walks the source tree, extracts every inline SVG block into its own
// asset file and rewrites each affected source file to import it. Files are
// processed one at a time; the first error aborts the run.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	if opts.AssetDir == "" {
		opts.AssetDir = DefaultAssetDir
	}
	if opts.Strategy == "" {
		opts.Strategy = DefaultStrategy
	}

	blockFinder, err := finder.New(opts.Strategy)
	if err != nil {
		return nil, err
	}

	files, err := walker.Walk(opts.Root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("find source files: %w", err)
	}
	if len(files) == 0 {
		opts.logWarn("No source files found under %s", opts.Root)
	}

	store := asset.NewStore(asset.Config{
		OutputDir: opts.AssetDir,
		Prefix:    opts.Prefix,
		DryRun:    opts.DryRun,
	})

	result := &Result{
		Summary: report.Summary{AssetDir: opts.AssetDir, DryRun: opts.DryRun},
	}

	for _, path := range files {
		if err := processFile(&opts, blockFinder, store, path, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// processFile runs scan, extract and rewrite for a single source file.
func processFile(opts *Options, blockFinder finder.Finder, store *asset.Store, path string, result *Result) error {
	opts.logInfo("Processing: %s", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	text := string(data)

	blocks := blockFinder.Find(text)
	plan := make(rewriter.Plan, 0, len(blocks))

	for _, b := range blocks {
		a, err := store.Save(b.Raw)
		if err != nil {
			return fmt.Errorf("save asset from %q: %w", path, err)
		}
		if a.Reused {
			opts.logInfo("  - Reused: %s", a.FileName)
		} else {
			opts.logInfo("  - Saved: %s", a.FileName)
		}
		result.Summary.AddAsset(a.FileName, a.Reused)
		result.Assets = append(result.Assets, a)

		importStmt, err := rewriter.ImportStatement(a.ID, path, a.Path)
		if err != nil {
			return err
		}

		plan = append(plan, rewriter.Entry{
			Start:       b.Start,
			End:         b.End,
			Original:    b.Raw,
			Placeholder: rewriter.Placeholder(a.ID, opts.Alt),
			Import:      importStmt,
		})
	}

	if len(plan) == 0 {
		result.Summary.AddFile(path, 0, false)
		return nil
	}

	rewritten, err := rewriter.Rewrite(text, plan)
	if err != nil {
		return fmt.Errorf("rewrite %q: %w", path, err)
	}

	if opts.DryRun {
		diff, err := rewriter.Diff(path, text, rewritten)
		if err != nil {
			return fmt.Errorf("diff %q: %w", path, err)
		}
		result.Diffs = append(result.Diffs, FileDiff{Path: path, Diff: diff})
	} else if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	result.Summary.AddFile(path, len(plan), true)
	opts.logInfo("  ✓ Modified: %s", path)

	return nil
}

// ParsePatterns parses a comma-separated list of path patterns.
func ParsePatterns(patternsStr string) []string {
	parts := strings.Split(patternsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
