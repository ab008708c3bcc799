// Package config loads quill.yml, the optional project configuration.
//
// Every key has a default matching the GNS3 layout, so a project without a
// config file builds as-is. Values can be overridden from the environment
// with the QUILL_ prefix, e.g. QUILL_TOOLS_UIC=/opt/qt/bin/pyuic6.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project root.
const FileName = "quill.yml"

// Config represents quill.yml
type Config struct {
	Layout    LayoutConfig    `yaml:"layout" mapstructure:"layout"`
	Tools     ToolsConfig     `yaml:"tools" mapstructure:"tools"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
	Resources ResourcesConfig `yaml:"resources" mapstructure:"resources"`
	Build     BuildConfig     `yaml:"build" mapstructure:"build"`
}

// LayoutConfig locates the source trees, relative to the project root
type LayoutConfig struct {
	Source    string   `yaml:"source" mapstructure:"source"`       // Walked recursively for .ui files
	UI        string   `yaml:"ui" mapstructure:"ui"`               // Receives the resource module
	Resources string   `yaml:"resources" mapstructure:"resources"` // Holds the .qrc files
	Ignore    []string `yaml:"ignore,omitempty" mapstructure:"ignore"`
}

// ToolsConfig names the external generators
type ToolsConfig struct {
	UIC string `yaml:"uic" mapstructure:"uic"`
	RCC string `yaml:"rcc" mapstructure:"rcc"`
}

// UIConfig holds settings for .ui regeneration
type UIConfig struct {
	Suffix         string `yaml:"suffix" mapstructure:"suffix"`
	MainWindow     string `yaml:"main_window" mapstructure:"main_window"`
	ResourceImport string `yaml:"resource_import" mapstructure:"resource_import"`
}

// ResourcesConfig holds settings for .qrc regeneration
type ResourcesConfig struct {
	Suffix      string `yaml:"suffix" mapstructure:"suffix"`
	Compression int    `yaml:"compression" mapstructure:"compression"`
	ReplaceFrom string `yaml:"replace_from" mapstructure:"replace_from"`
	ReplaceTo   string `yaml:"replace_to" mapstructure:"replace_to"`
}

// BuildConfig holds run behaviour
type BuildConfig struct {
	Strict  bool `yaml:"strict" mapstructure:"strict"`   // Stop at the first generator failure
	Spinner bool `yaml:"spinner" mapstructure:"spinner"` // Hide generator output behind a spinner on terminals
}

// Default returns the configuration used when no quill.yml exists
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Source:    "gns3",
			UI:        filepath.Join("gns3", "ui"),
			Resources: "resources",
		},
		Tools: ToolsConfig{
			UIC: "pyuic6",
			// PyQt6 ships no resource compiler; PyQt5's output is patched instead.
			RCC: "pyrcc5",
		},
		UI: UIConfig{
			Suffix:         "_ui.py",
			MainWindow:     "main_window_ui.py",
			ResourceImport: "from . import resources_rc",
		},
		Resources: ResourcesConfig{
			Suffix:      "_rc.py",
			Compression: 9,
			ReplaceFrom: "PyQt5",
			ReplaceTo:   "PyQt6",
		},
	}
}

// Load reads configuration for the project at root.
// An explicit file must exist; otherwise root/quill.yml is optional.
func Load(root, file string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(root)
	}

	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the build cannot run without
func (c *Config) Validate() error {
	switch {
	case c.Tools.UIC == "" || c.Tools.RCC == "":
		return fmt.Errorf("tools.uic and tools.rcc must both be set")
	case c.UI.Suffix == "" || c.Resources.Suffix == "":
		return fmt.Errorf("ui.suffix and resources.suffix must both be set")
	case c.Resources.Compression < 0 || c.Resources.Compression > 9:
		return fmt.Errorf("resources.compression must be between 0 and 9, got %d", c.Resources.Compression)
	}
	return nil
}

// Paths resolves the layout against root
func (c *Config) Paths(root string) (source, ui, resources string) {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	return resolve(c.Layout.Source), resolve(c.Layout.UI), resolve(c.Layout.Resources)
}

// Save writes configuration to a YAML file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("layout.source", d.Layout.Source)
	v.SetDefault("layout.ui", d.Layout.UI)
	v.SetDefault("layout.resources", d.Layout.Resources)
	v.SetDefault("layout.ignore", d.Layout.Ignore)
	v.SetDefault("tools.uic", d.Tools.UIC)
	v.SetDefault("tools.rcc", d.Tools.RCC)
	v.SetDefault("ui.suffix", d.UI.Suffix)
	v.SetDefault("ui.main_window", d.UI.MainWindow)
	v.SetDefault("ui.resource_import", d.UI.ResourceImport)
	v.SetDefault("resources.suffix", d.Resources.Suffix)
	v.SetDefault("resources.compression", d.Resources.Compression)
	v.SetDefault("resources.replace_from", d.Resources.ReplaceFrom)
	v.SetDefault("resources.replace_to", d.Resources.ReplaceTo)
	v.SetDefault("build.strict", d.Build.Strict)
	v.SetDefault("build.spinner", d.Build.Spinner)
}
