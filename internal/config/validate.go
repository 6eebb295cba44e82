package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentflare-ai/code2content/internal/render"
)

var (
	// ErrEmptySource indicates no source file is configured
	ErrEmptySource = errors.New("empty source path")

	// ErrEmptyOutput indicates a generator has no output path
	ErrEmptyOutput = errors.New("empty output path")

	// ErrInvalidStyle indicates an unknown blog style
	ErrInvalidStyle = errors.New("invalid blog style")

	// ErrEmptyBaselineName indicates a blank entry in the baseline list
	ErrEmptyBaselineName = errors.New("empty baseline function name")
)

// Validate checks that the configuration is usable. All problems are reported together.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Source) == "" {
		errs = append(errs, ErrEmptySource)
	}

	outputs := []struct{ name, path string }{
		{"docs", cfg.Output.Docs},
		{"changelog", cfg.Output.Changelog},
		{"blog", cfg.Output.Blog},
	}
	for _, out := range outputs {
		if strings.TrimSpace(out.path) == "" {
			errs = append(errs, fmt.Errorf("%w for %s", ErrEmptyOutput, out.name))
		}
	}

	if !render.Style(cfg.Blog.Style).Valid() {
		errs = append(errs, fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidStyle, cfg.Blog.Style, styleList()))
	}

	for _, name := range cfg.Baseline {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ErrEmptyBaselineName)
			break
		}
	}

	return errors.Join(errs...)
}

func styleList() string {
	names := make([]string, 0, len(render.Styles))
	for _, s := range render.Styles {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
