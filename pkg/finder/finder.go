package finder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Element is the inline markup element this package looks for.
const Element = "svg"

// Strategy names accepted by New.
const (
	StrategyPattern = "pattern"
	StrategyNesting = "nesting"
)

// ErrUnknownStrategy is returned by New for an unsupported strategy name.
var ErrUnknownStrategy = errors.New("unknown block finder strategy")

// Block is one markup occurrence inside a source text.
// Raw is always text[Start:End].
type Block struct {
	Start int
	End   int
	Raw   string
}

// Finder locates non-overlapping markup blocks in a text, in order of appearance.
type Finder interface {
	Find(text string) []Block
}

// New returns the Finder registered under the given strategy name.
// An empty name selects the nesting-aware finder.
func New(strategy string) (Finder, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyNesting:
		return NestingFinder{}, nil
	case StrategyPattern:
		return PatternFinder{}, nil
	default:
		return nil, fmt.Errorf("%w %q (must be %s or %s)", ErrUnknownStrategy, strategy, StrategyPattern, StrategyNesting)
	}
}

var blockPattern = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)

// PatternFinder matches an opening tag followed by the shortest text reaching
// the first closing tag, case-insensitively and across lines.
//
// Limitation: a block that contains another <svg> element ends at the inner
// closing tag, leaving the outer closing tag behind in the source.
type PatternFinder struct{}

// Find implements Finder.
func (PatternFinder) Find(text string) []Block {
	locs := blockPattern.FindAllStringIndex(text, -1)
	blocks := make([]Block, 0, len(locs))
	for _, loc := range locs {
		blocks = append(blocks, Block{Start: loc[0], End: loc[1], Raw: text[loc[0]:loc[1]]})
	}
	return blocks
}

var openTag = regexp.MustCompile(`(?i)<svg[\s/>]`)

// NestingFinder locates each opening tag textually and then tokenizes forward
// from it, counting nested <svg> elements until the matching closing tag.
// Text outside of a block is never tokenized, so comparisons such as "a<b" in
// the host language cannot swallow a following block.
type NestingFinder struct{}

// Find implements Finder.
func (NestingFinder) Find(text string) []Block {
	var blocks []Block

	pos := 0
	for pos < len(text) {
		loc := openTag.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]

		end, ok := matchingEnd(text, start)
		if !ok {
			// Unterminated opening tag, keep looking after it.
			pos = start + len("<"+Element)
			continue
		}

		blocks = append(blocks, Block{Start: start, End: end, Raw: text[start:end]})
		pos = end
	}

	return blocks
}

// matchingEnd returns the offset just past the closing tag that balances the
// opening tag at start.
func matchingEnd(text string, start int) (int, bool) {
	z := html.NewTokenizer(strings.NewReader(text[start:]))
	z.AllowCDATA(true)

	offset := start
	depth := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return 0, false
		}
		// Raw must be measured before TagName, which lowercases the buffer in place.
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == Element {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == Element {
				depth--
				if depth == 0 {
					return offset, true
				}
			}
		case html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == Element && depth == 0 {
				return offset, true
			}
		}

		if depth < 0 {
			return 0, false
		}
	}
}
