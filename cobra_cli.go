package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/code2content/internal/render"
)

const rootLongDesc = `
code2content reads a Python module, extracts its function definitions (names, positional
parameters, docstrings and source) and turns them into Markdown:

  • generate docs       an API reference with one section per function
  • generate changelog  an "Added" list of functions missing from the baseline
  • generate blog       a post introducing each new function with its source

The baseline of previously known function names comes from configuration
(.code2content.yaml, CODE2CONTENT_* variables, --baseline or --baseline-file).
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "code2content",
		Short:         "Generate docs, changelogs and blog posts from Python source",
		Long:          strings.TrimSpace(rootLongDesc),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.opts.configFile, "config", "", "config file (default is ./.code2content.yaml)")
	flags.StringVar(&app.opts.source, "source", "", "Python source file to analyze (default src/code_to_content_demo/main.py)")
	flags.StringSliceVar(&app.opts.baseline, "baseline", nil, "previously known function names (default greet)")
	flags.StringVar(&app.opts.baselineFile, "baseline-file", "", "YAML file listing previously known function names")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newGenerateCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "generate [docs|changelog|blog]",
		Short:         "Generate content from the source file",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return fmt.Errorf("unknown content type %q (expected docs, changelog or blog)", args[0])
	}
	cmd.PersistentFlags().StringVarP(&app.opts.outputPath, "output", "o", "", "write to this file instead of the configured one (- for stdout)")

	docs := &cobra.Command{
		Use:   "docs",
		Short: "Generate documentation",
		Args:  cobra.NoArgs,
	}
	docs.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(commandContext(cmd), cmd, contentDocs)
	}

	changelog := &cobra.Command{
		Use:   "changelog",
		Short: "Generate a changelog",
		Long: strings.TrimSpace(`
Generate a changelog listing every function that is not in the baseline.

--since is accepted for compatibility with release scripts. It does not change the
result: new functions are always measured against the configured baseline.
`),
		Args: cobra.NoArgs,
	}
	changelog.Flags().StringVar(&app.opts.since, "since", "", "the git tag or commit to generate the changelog from (currently ignored)")
	changelog.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(commandContext(cmd), cmd, contentChangelog)
	}

	blog := &cobra.Command{
		Use:   "blog",
		Short: "Generate a blog post",
		Args:  cobra.NoArgs,
	}
	blog.Flags().StringVar(&app.opts.style, "style", string(render.StyleCasual), "the style of the blog post (technical or casual)")
	_ = blog.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return styleNames(), cobra.ShellCompDirectiveNoFileComp
	})
	blog.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(commandContext(cmd), cmd, contentBlog)
	}

	cmd.AddCommand(docs, changelog, blog)
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

func styleNames() []string {
	names := make([]string, 0, len(render.Styles))
	for _, s := range render.Styles {
		names = append(names, string(s))
	}
	return names
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for code2content.

The output should be evaluated by your shell. For example:

  # bash
  code2content completion bash > /usr/local/etc/bash_completion.d/code2content

  # zsh
  code2content completion zsh > "${fpath[1]}/_code2content"

  # fish
  code2content completion fish | source

  # PowerShell
  code2content completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  code2content gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
