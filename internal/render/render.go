// Package render turns extracted functions into Markdown documents.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"text/template"

	"github.com/agentflare-ai/code2content/internal/diff"
	"github.com/agentflare-ai/code2content/internal/extract"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("render").ParseFS(templateFS, "templates/*.tmpl"))

// ErrNothingToGenerate is returned by Blog when no function is new relative to the baseline.
// No document exists in that case, as opposed to an empty one.
var ErrNothingToGenerate = errors.New("no new functions to write about")

// Docs renders the API reference, one section per record in the given order.
func Docs(records []extract.FunctionRecord) ([]byte, error) {
	return execute("docs.md.tmpl", struct {
		Records []extract.FunctionRecord
	}{records})
}

// Changelog renders an "Added" entry for every function missing from baseline.
//
// since names the revision the changelog starts from. It is accepted for command-line
// compatibility and has no effect: the comparison is always against baseline.
func Changelog(records []extract.FunctionRecord, baseline diff.NameSet, since string) ([]byte, error) {
	return execute("changelog.md.tmpl", struct {
		Added []extract.FunctionRecord
	}{diff.Added(records, baseline)})
}

// Blog renders a post introducing every function missing from baseline, with its source.
// It returns ErrNothingToGenerate when there is nothing new.
func Blog(records []extract.FunctionRecord, baseline diff.NameSet, style Style) ([]byte, error) {
	added := diff.Added(records, baseline)
	if len(added) == 0 {
		return nil, ErrNothingToGenerate
	}
	return execute("blog.md.tmpl", struct {
		Voice voice
		Added []extract.FunctionRecord
	}{voiceFor(style), added})
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
