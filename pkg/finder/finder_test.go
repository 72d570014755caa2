package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raws(blocks []Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Raw)
	}
	return out
}

func TestFinders(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern []string
		nesting []string
	}{
		{
			name:    "no markup",
			text:    "const a = 1;\nexport default a;\n",
			pattern: []string{},
			nesting: []string{},
		},
		{
			name:    "single block",
			text:    `<svg width="10"><path d="M0 0"/></svg>`,
			pattern: []string{`<svg width="10"><path d="M0 0"/></svg>`},
			nesting: []string{`<svg width="10"><path d="M0 0"/></svg>`},
		},
		{
			name: "multiline and upper case",
			text: "return (\n  <SVG viewBox=\"0 0 1 1\">\n    <circle r=\"1\" />\n  </Svg>\n);",
			pattern: []string{
				"<SVG viewBox=\"0 0 1 1\">\n    <circle r=\"1\" />\n  </Svg>",
			},
			nesting: []string{
				"<SVG viewBox=\"0 0 1 1\">\n    <circle r=\"1\" />\n  </Svg>",
			},
		},
		{
			name:    "two blocks",
			text:    "a(<svg><g/></svg>);\nb(<svg id=\"x\"></svg>);",
			pattern: []string{"<svg><g/></svg>", `<svg id="x"></svg>`},
			nesting: []string{"<svg><g/></svg>", `<svg id="x"></svg>`},
		},
		{
			name:    "nested block",
			text:    "<svg><svg><rect/></svg><circle/></svg>",
			pattern: []string{"<svg><svg><rect/></svg>"},
			nesting: []string{"<svg><svg><rect/></svg><circle/></svg>"},
		},
		{
			name:    "unterminated block",
			text:    "<svg width=\"1\"><path/>",
			pattern: []string{},
			nesting: []string{},
		},
		{
			name:    "comparison before block",
			text:    "for (let i=0;i<n;i++) { out.push(<svg><path/></svg>) }",
			pattern: []string{"<svg><path/></svg>"},
			nesting: []string{"<svg><path/></svg>"},
		},
		{
			name:    "title element inside block",
			text:    "<svg><title>Close</title><path/></svg>",
			pattern: []string{"<svg><title>Close</title><path/></svg>"},
			nesting: []string{"<svg><title>Close</title><path/></svg>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pattern, raws(PatternFinder{}.Find(tt.text)), "PatternFinder")
			assert.Equal(t, tt.nesting, raws(NestingFinder{}.Find(tt.text)), "NestingFinder")
		})
	}
}

func TestBlockOffsets(t *testing.T) {
	text := "x = <svg a=\"1\"></svg>; y = <svg></svg>;"
	for _, f := range []Finder{PatternFinder{}, NestingFinder{}} {
		blocks := f.Find(text)
		require.Len(t, blocks, 2)
		for _, b := range blocks {
			assert.Equal(t, text[b.Start:b.End], b.Raw)
		}
		assert.Equal(t, 4, blocks[0].Start)
	}
}

func TestNew(t *testing.T) {
	f, err := New("")
	require.NoError(t, err)
	assert.IsType(t, NestingFinder{}, f)

	f, err = New("Pattern")
	require.NoError(t, err)
	assert.IsType(t, PatternFinder{}, f)

	_, err = New("ast")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
