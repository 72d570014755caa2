package report

import (
	"fmt"
	"strings"
)

const rule = "============================================================"

// Summary accumulates the outcome of one run. It is plain value state owned by
// the caller and passed through each per-file step.
type Summary struct {
	AssetDir  string
	DryRun    bool
	Files     int      // source files scanned
	Extracted int      // markup blocks extracted
	Reused    int      // blocks whose asset already existed
	Modified  []string // rewritten source files, in processing order
	Assets    []string // asset file names, first occurrence order
}

// AddFile records one processed source file.
func (s *Summary) AddFile(path string, blocks int, modified bool) {
	s.Files++
	s.Extracted += blocks
	if modified {
		s.Modified = append(s.Modified, path)
	}
}

// AddAsset records one saved asset.
func (s *Summary) AddAsset(fileName string, reused bool) {
	if reused {
		s.Reused++
		return
	}
	s.Assets = append(s.Assets, fileName)
}

// Text renders the console summary block.
func (s *Summary) Text() string {
	var sb strings.Builder

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("Summary:\n")
	if s.DryRun {
		sb.WriteString("  - Dry run: no files were written\n")
	}
	sb.WriteString(fmt.Sprintf("  - Total SVGs extracted: %d\n", s.Extracted))
	sb.WriteString(fmt.Sprintf("  - Files modified: %d\n", len(s.Modified)))
	sb.WriteString(fmt.Sprintf("  - SVG files saved to: %s\n", s.AssetDir))
	sb.WriteString(rule + "\n")

	if len(s.Modified) > 0 {
		sb.WriteString("\nModified files:\n")
		for _, m := range s.Modified {
			sb.WriteString(fmt.Sprintf("  - %s\n", m))
		}
	}

	return sb.String()
}

// ToMarkdown renders the summary as a markdown document suitable for a review
// or changelog entry.
func (s *Summary) ToMarkdown() string {
	var sb strings.Builder

	sb.WriteString("# SVG Extraction Report\n\n")
	if s.DryRun {
		sb.WriteString("> Dry run: no files were written.\n\n")
	}

	sb.WriteString("## Totals\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Files scanned | %d |\n", s.Files))
	sb.WriteString(fmt.Sprintf("| SVGs extracted | %d |\n", s.Extracted))
	sb.WriteString(fmt.Sprintf("| New assets | %d |\n", len(s.Assets)))
	sb.WriteString(fmt.Sprintf("| Shared assets | %d |\n", s.Reused))
	sb.WriteString(fmt.Sprintf("| Files modified | %d |\n", len(s.Modified)))
	sb.WriteString(fmt.Sprintf("| Asset directory | `%s` |\n\n", s.AssetDir))

	if len(s.Modified) > 0 {
		sb.WriteString("## Modified Files\n\n")
		for _, m := range s.Modified {
			sb.WriteString(fmt.Sprintf("- `%s`\n", m))
		}
		sb.WriteString("\n")
	}

	if len(s.Assets) > 0 {
		sb.WriteString("## Assets\n\n")
		for _, a := range s.Assets {
			sb.WriteString(fmt.Sprintf("- `%s`\n", a))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
