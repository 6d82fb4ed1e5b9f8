package optargsinternal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file in the working directory.
const SettingsFile = ".optargs.yaml"

// Settings are the project defaults of the command-line options:
//
//	# .optargs.yaml
//	tags: integration
//	tests: true
//	output: optargs_gen.go
//	color: never
//	patterns: [./...]
type Settings struct {
	Tags     string   `yaml:"tags"`
	Tests    *bool    `yaml:"tests"`
	Output   string   `yaml:"output"`
	Color    string   `yaml:"color"`
	Patterns []string `yaml:"patterns"`
}

// Options are the command-line options.
type Options struct {
	Tags     string
	Tests    bool
	Output   string
	Color    string
	Patterns []string
}

// LoadSettings reads the settings file at path. It returns nil without an
// error if the file does not exist.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	if s.Color != "" && s.Color != "auto" && s.Color != "always" && s.Color != "never" {
		return nil, fmt.Errorf("invalid color in %s: %q", filepath.Base(path), s.Color)
	}
	return &s, nil
}

// Apply fills the options from the settings. Options set explicitly are kept.
// explicit reports whether an option is set explicitly by its flag name: "b"
// for tags, "t" for tests, "o" for output, and "c" for color. Patterns given
// as arguments are always kept. It is safe to call on a nil *Settings.
func (s *Settings) Apply(opts Options, explicit func(flag string) bool) Options {
	if s == nil {
		return opts
	}

	if s.Tags != "" && !explicit("b") {
		opts.Tags = s.Tags
	}
	if s.Tests != nil && !explicit("t") {
		opts.Tests = *s.Tests
	}
	if s.Output != "" && !explicit("o") {
		opts.Output = s.Output
	}
	if s.Color != "" && !explicit("c") {
		opts.Color = s.Color
	}
	if len(s.Patterns) != 0 && len(opts.Patterns) == 0 {
		opts.Patterns = s.Patterns
	}
	return opts
}
