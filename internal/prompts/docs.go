package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocsPrompt handles the generate_component_docs MCP prompt.
// It asks for documentation of a named UI component.
type DocsPrompt struct{}

// NewDocsPrompt creates a DocsPrompt.
func NewDocsPrompt() *DocsPrompt {
	return &DocsPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *DocsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("generate_component_docs",
		mcp.WithPromptDescription(
			"Generate usage documentation for a UI component, covering "+
				"props, design token usage, and accessibility.",
		),
		mcp.WithArgument("component_name",
			mcp.ArgumentDescription("Name of the component to document"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the generate_component_docs prompt request.
// Unlike the other two prompts, the argument has no default: a missing
// component name is an error.
func (p *DocsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := promptArg(req.Params.Arguments, "component_name", "")
	if name == "" {
		return nil, fmt.Errorf("'component_name' is required")
	}

	body := fmt.Sprintf(
		"Please write documentation for the %s component. Cover:\n\n"+
			"1. Overview — what %s is for and when to use it\n"+
			"2. Props — every prop with its type, default value, and purpose\n"+
			"3. Design tokens — which tokens the component should consume for its colors, typography, and spacing\n"+
			"4. Accessibility — keyboard interaction, ARIA attributes, and contrast requirements",
		name, name,
	)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Component documentation: %s", name),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(body),
			},
		},
	}, nil
}
