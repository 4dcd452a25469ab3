package prompts

import (
	"context"
	"fmt"

	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the review_design_system MCP prompt.
// It asks for a structured review of the current token set.
type ReviewPrompt struct {
	tokens *design.TokenStore
}

// NewReviewPrompt creates a ReviewPrompt over the given token store.
func NewReviewPrompt(tokens *design.TokenStore) *ReviewPrompt {
	return &ReviewPrompt{tokens: tokens}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("review_design_system",
		mcp.WithPromptDescription(
			"Review the current design system tokens for consistency, "+
				"completeness, naming quality, and gaps.",
		),
		mcp.WithArgument("focus",
			mcp.ArgumentDescription("Area to focus the review on, e.g. 'colors' or 'spacing'. Default: overall"),
		),
	)
}

// Handle processes the review_design_system prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := promptArg(req.Params.Arguments, "focus", "overall")

	body := fmt.Sprintf(
		"Please review this design system with a focus on %s.\n\n"+
			"%s\n"+
			"Evaluate:\n"+
			"1. Consistency — do related tokens follow a common scale and naming scheme?\n"+
			"2. Completeness — are commonly needed tokens missing?\n"+
			"3. Naming — are the names descriptive and unambiguous?\n"+
			"4. Gaps — which token types have no entries at all?",
		focus, tokenInventory(p.tokens),
	)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Design system review: %s", focus),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(body),
			},
		},
	}, nil
}
