//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads editor settings from settings.toml or settings.yaml
// in the user's configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type Format string

// Settings are the user-adjustable parts of the editor.
type Settings struct {
	UndoLimit int          `toml:"undo_limit" yaml:"undo_limit"`
	TabWidth  int          `toml:"tab_width"  yaml:"tab_width"`
	LogFile   string       `toml:"log_file"   yaml:"log_file"`
	Rope      RopeSettings `toml:"rope"       yaml:"rope"`
}

type RopeSettings struct {
	MaxLeaf   int   `toml:"max_leaf"  yaml:"max_leaf"`
	Rebalance *bool `toml:"rebalance" yaml:"rebalance"`
}

const (
	defaultUndoLimit = 1000
	defaultTabWidth  = 8
	defaultMaxLeaf   = 512
	defaultLogName   = ".ropeylog"
)

func Default() Settings {
	return Normalise(Settings{})
}

// Normalise replaces missing or invalid values with defaults.
func Normalise(s Settings) Settings {
	if s.UndoLimit <= 0 {
		s.UndoLimit = defaultUndoLimit
	}
	if s.TabWidth <= 0 {
		s.TabWidth = defaultTabWidth
	}
	if s.LogFile == "" {
		s.LogFile = filepath.Join(homeDir(), defaultLogName)
	} else if strings.HasPrefix(s.LogFile, "~/") {
		s.LogFile = filepath.Join(homeDir(), s.LogFile[2:])
	}
	if s.Rope.MaxLeaf <= 0 {
		s.Rope.MaxLeaf = defaultMaxLeaf
	}
	if s.Rope.Rebalance == nil {
		rebalance := true
		s.Rope.Rebalance = &rebalance
	}
	return s
}

// RebalanceEnabled reports whether deep ropes should be rebalanced.
func (s Settings) RebalanceEnabled() bool {
	return s.Rope.Rebalance == nil || *s.Rope.Rebalance
}

// Dir returns the directory searched for settings files.
func Dir() string {
	if dir := os.Getenv("ROPEY_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ropey")
	}
	return filepath.Join(homeDir(), ".config", "ropey")
}

// Load reads settings.toml, then settings.yaml, from Dir. Missing files
// are skipped; when neither exists the defaults are returned.
func Load() (Settings, error) {
	dir := Dir()
	return loadFirst([]string{
		filepath.Join(dir, "settings.toml"),
		filepath.Join(dir, "settings.yaml"),
	})
}

// LoadFile reads settings from path, choosing the format by extension.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %q: %w", path, err)
	}
	settings, err := decode(data, formatOf(path))
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings %q: %w", path, err)
	}
	return Normalise(settings), nil
}

func loadFirst(paths []string) (Settings, error) {
	for _, path := range paths {
		settings, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return settings, err
	}
	return Default(), nil
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(data []byte, format Format) (Settings, error) {
	var settings Settings
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
