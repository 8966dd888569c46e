package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	autolinkmcp "github.com/hydradatabase/autolink/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(opts *linkOptions) *cobra.Command {
	var baseURLFlag, remoteFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run autolink as a Model Context Protocol (MCP) server over stdio.

This exposes the changelog linker as an MCP tool that any MCP-capable agent
environment can call. The repository URL is resolved once at startup from the
same config, environment and flags as the filter; a call may still pass its own
base_url.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "autolink": {
        "command": "autolink",
        "args": ["serve", "--remote", "origin"]
      }
    }
  }

Available tools: autolink`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serveOpts := &linkOptions{baseURL: baseURLFlag, remote: remoteFlag, color: opts.color}
			baseURL, err := resolveBaseURL(serveOpts, diagnostics(cmd, opts.color))
			if err != nil {
				return err
			}
			server := autolinkmcp.NewServer(buildVersion(), baseURL)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Default repository URL for tool calls")
	cmd.Flags().StringVar(&remoteFlag, "remote", "", "Derive the default repository URL from this git remote")

	return cmd
}
