package prompts

import (
	"context"
	"fmt"

	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/mark3labs/mcp-go/mcp"
)

// ConsistencyPrompt handles the check_design_consistency MCP prompt.
// It asks for an audit of internal inconsistencies in the token set.
type ConsistencyPrompt struct {
	tokens *design.TokenStore
}

// NewConsistencyPrompt creates a ConsistencyPrompt over the given token store.
func NewConsistencyPrompt(tokens *design.TokenStore) *ConsistencyPrompt {
	return &ConsistencyPrompt{tokens: tokens}
}

// Definition returns the MCP prompt definition for registration.
func (p *ConsistencyPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("check_design_consistency",
		mcp.WithPromptDescription(
			"Audit the design system tokens for internal inconsistencies "+
				"such as near-duplicate values or broken scales.",
		),
		mcp.WithArgument("check_type",
			mcp.ArgumentDescription("Kind of consistency to check, e.g. 'colors' or 'naming'. Default: general"),
		),
	)
}

// Handle processes the check_design_consistency prompt request.
func (p *ConsistencyPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	checkType := promptArg(req.Params.Arguments, "check_type", "general")

	body := fmt.Sprintf(
		"Please run a %s consistency check on this design system.\n\n"+
			"%s\n"+
			"Look for:\n"+
			"1. Near-duplicate values — tokens that differ only slightly and should be merged\n"+
			"2. Broken scales — spacing or type sizes that don't follow the established progression\n"+
			"3. Naming drift — tokens whose names don't match the conventions of their type\n"+
			"4. Orphans — tokens no component would plausibly use\n\n"+
			"Report each issue with the tokens involved and a suggested fix.",
		checkType, tokenInventory(p.tokens),
	)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Design consistency check: %s", checkType),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(body),
			},
		},
	}, nil
}
