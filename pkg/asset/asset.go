package asset

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when a Config field is empty.
const (
	DefaultPrefix    = "icon_"
	DefaultExtension = "svg"
	DefaultOutputDir = "src/assets/icons"
)

const hashLength = 8

// ErrIdentifierCollision is returned when two different blocks map to the same identifier.
var ErrIdentifierCollision = errors.New("identifier collision")

// Config holds configuration for asset output.
type Config struct {
	OutputDir string // default "src/assets/icons"
	Prefix    string // default "icon_"
	Extension string // default "svg"
	DryRun    bool   // compute names and paths without touching the filesystem
}

// Asset represents a single extracted markup block on disk.
type Asset struct {
	ID       string // identifier, also the import binding name
	FileName string
	Path     string
	Reused   bool // an identical asset already existed
}

// Identifier derives the asset identifier for raw markup: prefix followed by
// the first 8 hex characters of the MD5 digest of raw.
func Identifier(prefix, raw string) string {
	sum := md5.Sum([]byte(raw))
	return prefix + hex.EncodeToString(sum[:])[:hashLength]
}

// Store writes assets into one output directory. Identical content is stored
// once and shared by every block that produces it.
type Store struct {
	config  Config
	written map[string]string // file name -> content written during this run
	ready   bool
}

// NewStore returns a Store with defaults applied to config.
func NewStore(config Config) *Store {
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.Prefix == "" {
		config.Prefix = DefaultPrefix
	}
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}

	return &Store{
		config:  config,
		written: make(map[string]string),
	}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.config.OutputDir
}

// Save stores raw under its content-derived file name and returns the asset.
// The output directory is created on first use.
func (s *Store) Save(raw string) (Asset, error) {
	id := Identifier(s.config.Prefix, raw)
	fileName := fmt.Sprintf("%s.%s", id, s.config.Extension)
	a := Asset{
		ID:       id,
		FileName: fileName,
		Path:     filepath.Join(s.config.OutputDir, fileName),
	}

	if prev, ok := s.written[fileName]; ok {
		if prev != raw {
			return Asset{}, fmt.Errorf("%w: %s", ErrIdentifierCollision, fileName)
		}
		a.Reused = true
		return a, nil
	}

	if s.config.DryRun {
		s.written[fileName] = raw
		return a, nil
	}

	if !s.ready {
		if err := os.MkdirAll(s.config.OutputDir, 0755); err != nil {
			return Asset{}, fmt.Errorf("failed to create output directory %q: %w", s.config.OutputDir, err)
		}
		s.ready = true
	}

	existing, err := os.ReadFile(a.Path)
	switch {
	case err == nil && bytes.Equal(existing, []byte(raw)):
		a.Reused = true
	case err == nil || errors.Is(err, os.ErrNotExist):
		// Content from an earlier run under the same name is overwritten.
		if err := os.WriteFile(a.Path, []byte(raw), 0644); err != nil {
			return Asset{}, fmt.Errorf("failed to write file %q: %w", a.Path, err)
		}
	default:
		return Asset{}, fmt.Errorf("failed to read file %q: %w", a.Path, err)
	}

	s.written[fileName] = raw
	return a, nil
}
