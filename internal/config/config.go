// Package config loads code2content settings from defaults, an optional YAML file and
// CODE2CONTENT_* environment variables.
package config

import (
	"github.com/agentflare-ai/code2content/internal/diff"
	"github.com/agentflare-ai/code2content/internal/render"
)

// Config is the complete code2content configuration.
type Config struct {
	Source       string       `yaml:"source" mapstructure:"source"`               // Python file to analyze
	Baseline     []string     `yaml:"baseline" mapstructure:"baseline"`           // previously known function names
	BaselineFile string       `yaml:"baseline_file" mapstructure:"baseline_file"` // YAML snapshot, replaces Baseline when set
	Output       OutputConfig `yaml:"output" mapstructure:"output"`
	Blog         BlogConfig   `yaml:"blog" mapstructure:"blog"`
}

// OutputConfig names the file each generator writes.
type OutputConfig struct {
	Docs      string `yaml:"docs" mapstructure:"docs"`
	Changelog string `yaml:"changelog" mapstructure:"changelog"`
	Blog      string `yaml:"blog" mapstructure:"blog"`
}

// BlogConfig configures the blog generator.
type BlogConfig struct {
	Style string `yaml:"style" mapstructure:"style"` // "technical" or "casual"
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Source:   "src/code_to_content_demo/main.py",
		Baseline: append([]string(nil), diff.DefaultBaseline...),
		Output: OutputConfig{
			Docs:      "generated_docs.md",
			Changelog: "generated_changelog.md",
			Blog:      "generated_blog.md",
		},
		Blog: BlogConfig{
			Style: string(render.StyleCasual),
		},
	}
}

// BaselineSet resolves the baseline, reading BaselineFile when it is set.
func (c *Config) BaselineSet() (diff.NameSet, error) {
	if c.BaselineFile != "" {
		return diff.LoadBaseline(c.BaselineFile)
	}
	return diff.NewNameSet(c.Baseline...), nil
}
