// Package mcp provides a Model Context Protocol server for autolink.
// It exposes the changelog linker as a tool that any MCP-capable agent can call.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all autolink tools registered.
// baseURL is used when a call doesn't name a repository itself.
func NewServer(version, baseURL string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "autolink",
		Version: version,
	}, nil)
	registerTools(server, baseURL)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for pure text transformations.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all autolink tools to the server.
func registerTools(server *mcp.Server, baseURL string) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "autolink",
		Description: "Rewrite changelog Markdown so bare PR references (#123) and commit hashes become " +
			"reference links ([#123][]), and append link definitions for any that are not defined yet. " +
			"Running it again on its own output changes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleAutolink(baseURL))
}
