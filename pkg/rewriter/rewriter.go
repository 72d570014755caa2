package rewriter

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultAlt is the fallback description carried by every placeholder.
const DefaultAlt = "icon"

// ErrPlanMismatch is returned when a plan entry does not describe the text it is applied to.
var ErrPlanMismatch = errors.New("replacement plan does not match text")

// Entry is one pending substitution: text[Start:End] (which must equal
// Original) becomes Placeholder, and Import is added to the import block.
type Entry struct {
	Start       int
	End         int
	Original    string
	Placeholder string
	Import      string
}

// Plan is the ordered list of entries for one file, in discovery order.
type Plan []Entry

// Imports returns the plan's import statements in order, without duplicates.
func (p Plan) Imports() []string {
	seen := make(map[string]bool, len(p))
	imports := make([]string, 0, len(p))
	for _, e := range p {
		if seen[e.Import] {
			continue
		}
		seen[e.Import] = true
		imports = append(imports, e.Import)
	}
	return imports
}

// Placeholder returns the self-closing reference tag for an identifier.
func Placeholder(id, alt string) string {
	if alt == "" {
		alt = DefaultAlt
	}
	return fmt.Sprintf(`<img src={%s} alt=%q />`, id, alt)
}

// ImportStatement returns the module import binding id to assetPath, relative
// to the directory of sourcePath and always written with forward slashes.
func ImportStatement(id, sourcePath, assetPath string) (string, error) {
	sourceDir, err := filepath.Abs(filepath.Dir(sourcePath))
	if err != nil {
		return "", err
	}
	assetAbs, err := filepath.Abs(assetPath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(sourceDir, assetAbs)
	if err != nil {
		return "", fmt.Errorf("relative path from %q to %q: %w", sourcePath, assetPath, err)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}

	return fmt.Sprintf("import %s from '%s';", id, rel), nil
}

// Rewrite applies the plan to text and inserts its imports. An empty plan
// returns text unchanged.
func Rewrite(text string, plan Plan) (string, error) {
	if len(plan) == 0 {
		return text, nil
	}

	out, err := Apply(text, plan)
	if err != nil {
		return "", err
	}

	return InsertImports(out, plan.Imports()), nil
}

// Apply replaces every entry's recorded range with its placeholder. Ranges
// are used as recorded, so duplicated markup elsewhere in the text never
// shifts a replacement to the wrong location.
func Apply(text string, plan Plan) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text))

	prev := 0
	for i, e := range plan {
		if e.Start < prev || e.End < e.Start || e.End > len(text) {
			return "", fmt.Errorf("%w: entry %d has range [%d:%d]", ErrPlanMismatch, i, e.Start, e.End)
		}
		if text[e.Start:e.End] != e.Original {
			return "", fmt.Errorf("%w: entry %d text differs at offset %d", ErrPlanMismatch, i, e.Start)
		}

		sb.WriteString(text[prev:e.Start])
		sb.WriteString(e.Placeholder)
		prev = e.End
	}
	sb.WriteString(text[prev:])

	return sb.String(), nil
}

var importLine = regexp.MustCompile(`(?m)^import[ \t]+[^\r\n]*`)

// InsertImports adds imports as one block right after the last import
// statement in text, or at the very top followed by a blank line when there
// is none.
func InsertImports(text string, imports []string) string {
	if len(imports) == 0 {
		return text
	}

	newline := "\n"
	if strings.Contains(text, "\r\n") {
		newline = "\r\n"
	}
	block := strings.Join(imports, newline)

	pos := lastImportEnd(text)
	if pos < 0 {
		return block + newline + newline + text
	}

	return text[:pos] + newline + block + text[pos:]
}

// lastImportEnd returns the offset of the end of the last import statement's
// final line, before its line break, or -1.
func lastImportEnd(text string) int {
	locs := importLine.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return -1
	}

	last := locs[len(locs)-1]
	end := last[1]

	// import {
	//   a,
	// } from 'x';
	line := text[last[0]:last[1]]
	if strings.Contains(line, "{") && !strings.Contains(line, "}") {
		if i := strings.Index(text[end:], "}"); i >= 0 {
			rest := text[end+i:]
			j := strings.IndexAny(rest, "\r\n")
			if j < 0 {
				j = len(rest)
			}
			end += i + j
		}
	}

	return end
}

// Diff returns a unified diff between the original and rewritten text of path.
func Diff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
}
