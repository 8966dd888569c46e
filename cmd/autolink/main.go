// Package main provides the entry point for the autolink CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hydradatabase/autolink/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command. Without a subcommand it filters
// stdin to stdout.
func newRootCmd() *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "autolink",
		Short: "Turn PR references and commit hashes in a changelog into Markdown links",
		Long: `autolink reads a changelog on stdin and writes it to stdout with every bare
pull-request reference (#123) and commit hash (7 to 40 hex digits) rewritten as
a Markdown reference link ([#123][]). Link definitions for references that are
not already defined are appended at the end:

  [#123]: https://github.com/hydradatabase/hydra/pull/123
  [abc1234]: https://github.com/hydradatabase/hydra/commit/abc1234

Existing links and definitions are left alone, so running autolink on its own
output changes nothing.

Examples:
  autolink < CHANGELOG.md > LINKED-CHANGELOG.md
  autolink --remote origin < CHANGELOG.md          # link to the origin repository
  autolink --base-url https://github.com/o/r < CHANGELOG.md
  autolink --check < CHANGELOG.md                  # exit 3 if anything is unlinked`,
		Args:          cobra.NoArgs,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLink(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Repository URL links point at (overrides config and --remote)")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Derive the repository URL from this git remote")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Write nothing; exit 3 if the input is not fully linked")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print a summary to stderr")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Explain where the repository URL came from")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Color diagnostics: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// diagnostics returns a printer for stderr honoring --color.
func diagnostics(cmd *cobra.Command, colorMode string) *output.Printer {
	errW := cmd.ErrOrStderr()
	return output.NewPrinter(errW, output.ResolveColorMode(colorMode, output.IsTTY(errW)))
}
