package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"App.js",
		"index.css",
		"components/Nav.js",
		"components/Nav.test.jsx",
		"assets/icons/icon_1.svg",
		"node_modules/lib/index.js",
	)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name: "default include",
			want: []string{"App.js", "components/Nav.js", "node_modules/lib/index.js"},
		},
		{
			name:    "exclude directory",
			exclude: []string{"node_modules"},
			want:    []string{"App.js", "components/Nav.js"},
		},
		{
			name:    "several extensions",
			include: []string{"**/*.js", "**/*.jsx"},
			exclude: []string{"**/node_modules/**"},
			want:    []string{"App.js", "components/Nav.js", "components/Nav.test.jsx"},
		},
		{
			name:    "nothing matches",
			include: []string{"**/*.ts"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Walk(root, tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, got))
		})
	}
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), nil, nil)
	require.ErrorIs(t, err, ErrRootNotFound)
}

func TestWalkInvalidPattern(t *testing.T) {
	_, err := Walk(t.TempDir(), []string{"[a-"}, nil)
	require.Error(t, err)
}
