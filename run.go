package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/code2content/internal/config"
	"github.com/agentflare-ai/code2content/internal/diff"
	"github.com/agentflare-ai/code2content/internal/extract"
	"github.com/agentflare-ai/code2content/internal/render"
)

type options struct {
	configFile   string
	source       string
	baseline     []string
	baselineFile string
	outputPath   string
	verbose      bool
	since        string
	style        string
}

type contentKind int

const (
	contentDocs contentKind = iota
	contentChangelog
	contentBlog
)

func (k contentKind) String() string {
	switch k {
	case contentDocs:
		return "Documentation"
	case contentChangelog:
		return "Changelog"
	case contentBlog:
		return "Blog post"
	default:
		return "Content"
	}
}

// MissingSourceFileError reports that the configured source file does not exist.
type MissingSourceFileError struct {
	Path string
}

func (e *MissingSourceFileError) Error() string {
	return "source file not found at " + e.Path
}

func (e *MissingSourceFileError) Unwrap() error { return os.ErrNotExist }

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, cmd *cobra.Command, kind contentKind) error {
	log := newReporter(app.stderr, app.opts.verbose)
	cfg, err := app.loadConfig(cmd, log)
	if err != nil {
		return err
	}
	baseline, err := cfg.BaselineSet()
	if err != nil {
		return err
	}

	var output string
	switch kind {
	case contentDocs:
		log.Printf("Generating documentation...")
		output = cfg.Output.Docs
	case contentChangelog:
		if app.opts.since != "" {
			log.Printf("Generating changelog since %s...", app.opts.since)
			log.Debugf("--since is not used yet; new functions are measured against the baseline")
		} else {
			log.Printf("Generating changelog...")
		}
		output = cfg.Output.Changelog
	case contentBlog:
		log.Printf("Generating blog post with style %s...", cfg.Blog.Style)
		output = cfg.Output.Blog
	}
	if app.opts.outputPath != "" {
		output = app.opts.outputPath
	}

	records, err := loadRecords(cfg.Source)
	if err != nil {
		return err
	}
	log.Debugf("extracted %d functions from %s", len(records), cfg.Source)
	for _, rec := range records {
		log.Debugf("found %s at lines %d-%d", rec.Signature(), rec.StartLine, rec.EndLine)
	}
	log.Debugf("baseline: %v", baseline.Sorted())
	log.Debugf("new functions: %v", diff.NewNames(records, baseline).Sorted())

	var data []byte
	switch kind {
	case contentDocs:
		data, err = render.Docs(records)
	case contentChangelog:
		data, err = render.Changelog(records, baseline, app.opts.since)
	case contentBlog:
		data, err = render.Blog(records, baseline, render.Style(cfg.Blog.Style))
		if errors.Is(err, render.ErrNothingToGenerate) {
			log.Printf("No new features to write about.")
			return nil
		}
	}
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeOutput(output, app.stdout, data); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	if output != "-" {
		log.Printf("%s successfully generated at %s", kind, output)
	}
	return nil
}

// loadConfig layers explicitly set flags over the loaded configuration.
func (app *cliApp) loadConfig(cmd *cobra.Command, log *reporter) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	loader := config.NewLoader(wd)
	if app.opts.configFile != "" {
		loader.WithFile(app.opts.configFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if used := loader.UsedFile(); used != "" {
		log.Debugf("using config file %s", used)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = app.opts.source
	}
	if flags.Changed("baseline") {
		cfg.Baseline = app.opts.baseline
		if !flags.Changed("baseline-file") {
			cfg.BaselineFile = ""
		}
	}
	if flags.Changed("baseline-file") {
		cfg.BaselineFile = app.opts.baselineFile
	}
	if f := flags.Lookup("style"); f != nil && f.Changed {
		if !render.Style(app.opts.style).Valid() {
			return nil, fmt.Errorf("invalid argument %q for --style: must be one of %v", app.opts.style, styleNames())
		}
		cfg.Blog.Style = app.opts.style
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadRecords(path string) ([]extract.FunctionRecord, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingSourceFileError{Path: path}
		}
		return nil, err
	}
	records, err := extract.Extract(source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// writeOutput replaces path with data in one step so a failed run never leaves a partial
// file behind. An empty path or "-" writes to stdout.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
