package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hydradatabase/autolink/internal/config"
	"github.com/hydradatabase/autolink/internal/git"
	"github.com/hydradatabase/autolink/internal/output"
)

// effectiveConfig is what the config command prints.
type effectiveConfig struct {
	BaseURL  string                   `yaml:"base_url"           json:"base_url"`
	Remote   string                   `yaml:"remote,omitempty"   json:"remote,omitempty"`
	Resolved string                   `yaml:"resolved_url"       json:"resolved_url"`
	Sources  map[string]config.Source `yaml:"sources"            json:"sources"`
	Files    map[string]string        `yaml:"files"              json:"files"`
	Warning  string                   `yaml:"warning,omitempty"  json:"warning,omitempty"`
}

// newConfigCmd creates the config command.
func newConfigCmd(opts *linkOptions) *cobra.Command {
	var jsonFlag bool
	var baseURLFlag, remoteFlag string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration and where each value came from.

Configuration layers, lowest priority first:
  defaults          base_url: https://github.com/hydradatabase/hydra
  user config       <config dir>/config.yaml
  project config    .autolink.yaml
  .env file         AUTOLINK_BASE_URL=..., AUTOLINK_REMOTE=... in ./.env
  environment       AUTOLINK_BASE_URL, AUTOLINK_REMOTE
  flags             --base-url, --remote

The config dir is $AUTOLINK_CONFIG_HOME, $XDG_CONFIG_HOME/autolink or
~/.config/autolink.

Examples:
  autolink config
  autolink config --json
  autolink config --remote origin    # show the URL derived from the remote`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, &linkOptions{baseURL: baseURLFlag, remote: remoteFlag, color: opts.color}, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Apply a --base-url flag before printing")
	cmd.Flags().StringVar(&remoteFlag, "remote", "", "Apply a --remote flag before printing")

	return cmd
}

func runConfig(cmd *cobra.Command, opts *linkOptions, jsonMode bool) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	eff := effectiveConfig{
		BaseURL:  cfg.BaseURL,
		Remote:   cfg.Remote,
		Resolved: cfg.BaseURL,
		Sources:  cfg.Sources,
		Files: map[string]string{
			"user":    config.UserConfigPath(),
			"project": config.ProjectConfigPath,
			"dotenv":  config.EnvFilePath,
		},
	}

	// A broken remote shouldn't hide the rest of the configuration.
	if cfg.UsesRemote() {
		resolved, err := git.RepoBaseURL("", cfg.Remote)
		if err != nil {
			eff.Resolved = ""
			eff.Warning = err.Error()
		} else {
			eff.Resolved = resolved
		}
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), false)
	if jsonMode {
		return printer.WriteJSON(eff)
	}

	data, err := yaml.Marshal(eff)
	if err != nil {
		return output.NewSystemErrorWithCause("encoding config: "+err.Error(), err)
	}
	printer.Print("%s", data)
	if eff.Warning != "" {
		diagnostics(cmd, opts.color).Warn("%s", eff.Warning)
	}
	return nil
}

