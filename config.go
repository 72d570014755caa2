package svgextractor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads Options from a YAML file. A missing file yields zero
// Options, which Run fills with defaults.
//
//	root: src
//	asset_dir: src/assets/icons
//	include: ["**/*.js", "**/*.jsx"]
//	exclude: ["**/node_modules/**"]
//	strategy: nesting
func LoadConfig(path string) (Options, error) {
	var opts Options

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}

	return opts, nil
}
