// Package config loads optional run defaults from a tapplan.yaml file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = "tapplan.yaml"

// File represents the structure of the tapplan.yaml configuration file.
// Every field is a default; command-line flags take precedence.
type File struct {
	Skip        []string `yaml:"skip"`
	All         bool     `yaml:"all"`
	RawVersions bool     `yaml:"rawVersions"`
	Strict      bool     `yaml:"strict"`
	Jobs        int      `yaml:"jobs"`
	LogFile     string   `yaml:"logFile"`
}

// Load reads run defaults from the given directory. A missing file is not
// an error; it yields the zero-valued defaults.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, DefaultFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return &f, nil
}
