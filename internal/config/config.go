package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. TABLOOM_LOG_LEVEL.
const EnvPrefix = "TABLOOM"

// Global configuration structure.
type Global struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogEncoding string `mapstructure:"log_encoding" yaml:"log_encoding"`

	// Delimiter for CSV input; empty means sniff.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	DisplayMaxRows  int `mapstructure:"display_max_rows" yaml:"display_max_rows"`
	DisplayMinWidth int `mapstructure:"display_min_width" yaml:"display_min_width"`
	DisplayMaxWidth int `mapstructure:"display_max_width" yaml:"display_max_width"`

	ReportPrecision int `mapstructure:"report_precision" yaml:"report_precision"`

	ExportFormat      string `mapstructure:"export_format" yaml:"export_format"`
	ExportCompression string `mapstructure:"export_compression" yaml:"export_compression"`

	ProjectsDir string `mapstructure:"projects_dir" yaml:"projects_dir"`
}

// Dir returns ~/.tabloom.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tabloom"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.tabloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Defaults returns the built-in configuration. ProjectsDir is left empty and
// resolved against the home directory by Load.
func Defaults() *Global {
	return &Global{
		LogLevel:          "info",
		LogEncoding:       "console",
		DisplayMaxRows:    10,
		DisplayMinWidth:   8,
		DisplayMaxWidth:   20,
		ReportPrecision:   2,
		ExportFormat:      "json",
		ExportCompression: "none",
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied on top
// by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_encoding", d.LogEncoding)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("display_max_rows", d.DisplayMaxRows)
	v.SetDefault("display_min_width", d.DisplayMinWidth)
	v.SetDefault("display_max_width", d.DisplayMaxWidth)
	v.SetDefault("report_precision", d.ReportPrecision)
	v.SetDefault("export_format", d.ExportFormat)
	v.SetDefault("export_compression", d.ExportCompression)
	v.SetDefault("projects_dir", d.ProjectsDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ProjectsDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		c.ProjectsDir = filepath.Join(dir, "projects")
	}
	return &c, nil
}
