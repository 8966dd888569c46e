package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hydradatabase/autolink/internal/config"
	"github.com/hydradatabase/autolink/internal/git"
	"github.com/hydradatabase/autolink/internal/linker"
	"github.com/hydradatabase/autolink/internal/output"
)

// linkOptions holds the root command's flags.
type linkOptions struct {
	baseURL string
	remote  string
	color   string
	check   bool
	stats   bool
	verbose bool
}

// runLink filters stdin to stdout.
func runLink(cmd *cobra.Command, opts *linkOptions) error {
	if !output.ValidColorMode(opts.color) {
		return output.NewUserError(fmt.Sprintf("invalid --color value %q (want auto, always or never)", opts.color))
	}
	printer := diagnostics(cmd, opts.color)

	baseURL, err := resolveBaseURL(opts, printer)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if output.IsTTY(in) {
		printer.Print("%s\n", printer.Muted("Reading changelog from the terminal; finish with Ctrl-D."))
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.check {
		out = io.Discard
	}

	l := linker.New(baseURL)
	if err := l.Run(in, out); err != nil {
		return output.NewSystemErrorWithCause(err.Error(), err)
	}

	stats := l.Stats()
	if opts.stats {
		printStats(printer, baseURL, stats)
	}
	if opts.check && stats.Changed() {
		return output.NewCheckError(fmt.Sprintf(
			"not fully linked: %d line(s) would change, %d definition(s) would be added",
			stats.LinesChanged, stats.Definitions))
	}
	return nil
}

// resolveBaseURL loads configuration, applies flags and, when a remote is
// configured, derives the repository URL from it.
func resolveBaseURL(opts *linkOptions, printer *output.Printer) (string, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}

	if !cfg.UsesRemote() {
		if opts.verbose {
			printer.Print("base url: %s (from %s)\n", cfg.BaseURL, cfg.Sources[config.KeyBaseURL])
		}
		return cfg.BaseURL, nil
	}

	baseURL, err := git.RepoBaseURL("", cfg.Remote)
	if err != nil {
		return "", err
	}
	if opts.verbose {
		printer.Print("base url: %s (from git remote %q, set by %s)\n",
			baseURL, cfg.Remote, cfg.Sources[config.KeyRemote])
	}
	return baseURL, nil
}

// loadConfig reads all configuration layers and applies the command-line flags.
func loadConfig(opts *linkOptions) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{})
	switch {
	case err == nil:
	case errors.Is(err, config.ErrRead):
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	case config.IsValidationError(err):
		return nil, output.NewUserErrorWithCause("invalid configuration: "+err.Error(), err)
	default:
		return nil, output.NewUserErrorWithCause("loading configuration: "+err.Error(), err)
	}
	if err := cfg.ApplyFlags(opts.baseURL, opts.remote); err != nil {
		return nil, output.NewUserErrorWithCause("invalid --base-url: "+err.Error(), err)
	}
	return cfg, nil
}

// printStats writes the run summary to stderr.
func printStats(printer *output.Printer, baseURL string, stats linker.Stats) {
	printer.Section("autolink")
	printer.KeyValue("base url", baseURL)
	printer.KeyValue("lines", strconv.Itoa(stats.Lines))
	printer.KeyValue("lines changed", strconv.Itoa(stats.LinesChanged))
	printer.KeyValue("prs linked", fmt.Sprintf("%d (%d distinct)", stats.PRsLinked, stats.PRRefs))
	printer.KeyValue("commits linked", fmt.Sprintf("%d (%d distinct)", stats.CommitsLinked, stats.CommitRefs))
	printer.KeyValue("definitions added", strconv.Itoa(stats.Definitions))
	printer.KeyValue("already defined", strconv.Itoa(stats.AlreadyKnown))
	if !stats.Changed() {
		printer.Success("already fully linked")
	}
}
