package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CODE2CONTENT_BLOG_STYLE.
const EnvPrefix = "CODE2CONTENT"

// FileName is the config file searched for in the root directory, without extension.
const FileName = ".code2content"

// Loader reads configuration for one working directory.
type Loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a loader that searches rootDir for .code2content.yaml.
func NewLoader(rootDir string) *Loader {
	return &Loader{rootDir: rootDir}
}

// WithFile makes the loader read path instead of searching. A missing file is then an error.
func (l *Loader) WithFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load resolves configuration with the following priority (highest to lowest):
// 1. Environment variables (CODE2CONTENT_*)
// 2. Config file
// 3. Default values
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"source", "baseline", "baseline_file", "output.docs", "output.changelog", "output.blog", "blog.style"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// UsedFile reports the config file Load would read, or "" when none exists.
func (l *Loader) UsedFile() string {
	if l.configFile != "" {
		return l.configFile
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(l.rootDir, FileName+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("source", defaults.Source)
	v.SetDefault("baseline", defaults.Baseline)
	v.SetDefault("baseline_file", defaults.BaselineFile)
	v.SetDefault("output.docs", defaults.Output.Docs)
	v.SetDefault("output.changelog", defaults.Output.Changelog)
	v.SetDefault("output.blog", defaults.Output.Blog)
	v.SetDefault("blog.style", defaults.Blog.Style)
}
