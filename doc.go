// Package svgextractor moves inline SVG markup out of JavaScript sources into
// standalone asset files and rewrites each source to import them.
//
// The CLI lives in cmd/svg-extractor; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named svgextractor:
//
//	import "github.com/hellenic-development/svg-extractor" // package svgextractor
//
// # Quick start
//
//	result, err := svgextractor.Run(svgextractor.Options{
//	    Root:     "src",
//	    AssetDir: "src/assets/icons",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Summary.Text())
//
// Every block such as
//
//	<svg width="10"><path d="M0 0"/></svg>
//
// is written to icon_<hash>.svg, where <hash> is the first 8 hex characters
// of the MD5 digest of the block, and replaced in the source by
//
//	<img src={icon_<hash>} alt="icon" />
//
// with a matching import statement added after the last existing import.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Block finding
//
// [Options.Strategy] selects how blocks are located. "nesting" (the default)
// balances nested <svg> elements; "pattern" ends each block at the first
// closing tag. Both are textual scans of the host language and can match
// markup inside string literals or comments.
//
// # Dry run
//
// With [Options.DryRun] nothing is written; [Result.Diffs] holds the unified
// diff each rewrite would apply.
package svgextractor
