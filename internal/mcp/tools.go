package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hydradatabase/autolink/internal/config"
	"github.com/hydradatabase/autolink/internal/linker"
)

// AutolinkInput is the input for the autolink tool.
type AutolinkInput struct {
	Text    string `json:"text"               jsonschema:"changelog Markdown to link"`
	BaseURL string `json:"base_url,omitempty" jsonschema:"repository URL such as https://github.com/owner/repo (defaults to the server's)"`
}

// Definition is one appended link definition.
type Definition struct {
	ID   string `json:"id"   jsonschema:"reference identifier, e.g. #42 or abc1234"`
	URL  string `json:"url"  jsonschema:"link target"`
	Kind string `json:"kind" jsonschema:"pr or commit"`
}

// AutolinkOutput is the output for the autolink tool.
type AutolinkOutput struct {
	Text        string       `json:"text"                  jsonschema:"linked Markdown including appended definitions"`
	BaseURL     string       `json:"base_url"              jsonschema:"repository URL links were built under"`
	Definitions []Definition `json:"definitions,omitempty" jsonschema:"link definitions appended to the text"`
	Stats       linker.Stats `json:"stats"                 jsonschema:"counters for the run"`
}

func handleAutolink(defaultBaseURL string) mcp.ToolHandlerFor[AutolinkInput, AutolinkOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AutolinkInput) (*mcp.CallToolResult, AutolinkOutput, error) {
		baseURL := input.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		if err := config.ValidateBaseURL(baseURL); err != nil {
			return nil, AutolinkOutput{}, fmt.Errorf("invalid base_url: %w", err)
		}

		// Each call gets its own Linker, so concurrent calls share nothing.
		res, err := linker.Text(input.Text, baseURL)
		if err != nil {
			return nil, AutolinkOutput{}, fmt.Errorf("linking text: %w", err)
		}

		return nil, AutolinkOutput{
			Text:        res.Text,
			BaseURL:     res.BaseURL,
			Definitions: toDefinitions(res.Definitions),
			Stats:       res.Stats,
		}, nil
	}
}

// toDefinitions converts linker definitions for output.
func toDefinitions(defs []linker.Definition) []Definition {
	result := make([]Definition, 0, len(defs))
	for _, def := range defs {
		result = append(result, Definition{
			ID:   def.ID,
			URL:  def.URL,
			Kind: def.Kind.String(),
		})
	}
	return result
}
