package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		raw    string
		want   string
	}{
		{
			name:   "single path",
			prefix: "icon_",
			raw:    `<svg width="10"><path d="M0 0"/></svg>`,
			want:   "icon_7f5e3281",
		},
		{
			name:   "empty element",
			prefix: "icon_",
			raw:    "<svg></svg>",
			want:   "icon_7b56e1ea",
		},
		{
			name:   "custom prefix",
			prefix: "glyph_",
			raw:    "<svg></svg>",
			want:   "glyph_7b56e1ea",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Identifier(tt.prefix, tt.raw)
			if got != tt.want {
				t.Errorf("Identifier(%q, %q) = %q, want %q", tt.prefix, tt.raw, got, tt.want)
			}
			if again := Identifier(tt.prefix, tt.raw); again != got {
				t.Errorf("Identifier() is not deterministic: %q != %q", again, got)
			}
		})
	}
}

func TestStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "icons")
	store := NewStore(Config{OutputDir: dir})

	raw := `<svg width="10"><path d="M0 0"/></svg>`
	a, err := store.Save(raw)
	require.NoError(t, err)

	assert.Equal(t, "icon_7f5e3281", a.ID)
	assert.Equal(t, "icon_7f5e3281.svg", a.FileName)
	assert.Equal(t, filepath.Join(dir, "icon_7f5e3281.svg"), a.Path)
	assert.False(t, a.Reused)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))

	again, err := store.Save(raw)
	require.NoError(t, err)
	assert.True(t, again.Reused)
	assert.Equal(t, a.Path, again.Path)
}

func TestStoreReusesAssetFromEarlierRun(t *testing.T) {
	dir := t.TempDir()
	raw := "<svg></svg>"

	_, err := NewStore(Config{OutputDir: dir}).Save(raw)
	require.NoError(t, err)

	a, err := NewStore(Config{OutputDir: dir}).Save(raw)
	require.NoError(t, err)
	assert.True(t, a.Reused)
}

func TestStoreOverwritesStaleAsset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon_7b56e1ea.svg")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	a, err := NewStore(Config{OutputDir: dir}).Save("<svg></svg>")
	require.NoError(t, err)
	assert.False(t, a.Reused)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(data))
}

func TestStoreCollision(t *testing.T) {
	store := NewStore(Config{OutputDir: t.TempDir(), DryRun: true})
	store.written["icon_7b56e1ea.svg"] = "<svg>other</svg>"

	_, err := store.Save("<svg></svg>")
	require.ErrorIs(t, err, ErrIdentifierCollision)
}

func TestStoreDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	a, err := NewStore(Config{OutputDir: dir, DryRun: true}).Save("<svg></svg>")
	require.NoError(t, err)
	assert.Equal(t, "icon_7b56e1ea", a.ID)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "dry run must not create %s", dir)
}
