// # code2content
//
// `code2content` turns a Python module into Markdown content. It parses the
// module with tree-sitter, collects every function definition (name,
// positional parameters, docstring and verbatim source) and renders one of
// three documents from embedded templates.
//
// Key capabilities:
//
//   - `generate docs` writes an API reference with one section per function,
//     in source order, including nested functions.
//   - `generate changelog` lists the functions that are not in the baseline of
//     previously known names under an "Added" heading.
//   - `generate blog` introduces each new function with its source, in a
//     `technical` or `casual` voice. Nothing is written when no function is new.
//   - output is replaced atomically, so a failed run never leaves a partial file.
//   - a Cobra-powered CLI with `--help`, `--version`, shell completion and a
//     `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	code2content generate docs [--source FILE] [-o FILE]
//	code2content generate changelog [--since REF]
//	code2content generate blog [--style technical|casual]
//
// Output defaults to `generated_docs.md`, `generated_changelog.md` and
// `generated_blog.md` in the working directory. `-o -` prints to stdout.
//
// ## Baseline
//
// New functions are measured against a set of previously known names. The set
// defaults to `greet` and can be replaced with `--baseline a,b`, with
// `--baseline-file` pointing at a YAML list, or through configuration.
// `--since` is accepted by `generate changelog` but does not affect the result.
//
// ## Configuration
//
// Settings are read from `.code2content.yaml` in the working directory (or the
// file named by `--config`), then from `CODE2CONTENT_*` environment variables,
// then from flags:
//
//	source: src/code_to_content_demo/main.py
//	baseline: [greet]
//	baseline_file: ""
//	output:
//	  docs: generated_docs.md
//	  changelog: generated_changelog.md
//	  blog: generated_blog.md
//	blog:
//	  style: casual
//
// ## Shell Completion
//
//	code2content completion bash        # bash
//	code2content completion zsh         # zsh
//	code2content completion fish | source
//	code2content completion powershell | Out-String | Invoke-Expression
package main
