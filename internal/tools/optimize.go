package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// OptimizeCodeTool handles the optimize_code MCP tool.
// It reviews a piece of component code and suggests improvements. The
// code itself is returned unchanged — the suggestions are for the caller
// to apply.
type OptimizeCodeTool struct{}

// NewOptimizeCodeTool creates an OptimizeCodeTool.
func NewOptimizeCodeTool() *OptimizeCodeTool {
	return &OptimizeCodeTool{}
}

// optimizationClaims lists the review findings per optimization type.
var optimizationClaims = map[string][]string{
	"performance": {
		"Memoize derived values so they are not recomputed on every render",
		"Split large bundles and lazy-load below-the-fold components",
		"Debounce rapid-fire event handlers (scroll, resize, input)",
	},
	"accessibility": {
		"Add ARIA labels to interactive elements that have no visible text",
		"Ensure color contrast meets WCAG AA (4.5:1 for body text)",
		"Make every interactive element reachable and operable by keyboard",
	},
	"maintainability": {
		"Extract repeated markup into shared components",
		"Replace magic numbers with named design tokens",
		"Keep each component to a single responsibility",
	},
}

// claimOrder fixes the section order when every group is included.
var claimOrder = []string{"performance", "accessibility", "maintainability"}

// Definition returns the MCP tool definition for registration.
func (t *OptimizeCodeTool) Definition() mcp.Tool {
	return mcp.NewTool("optimize_code",
		mcp.WithDescription(
			"Review component code and suggest performance, accessibility, "+
				"and maintainability improvements. Returns the code unchanged "+
				"alongside the suggestions.",
		),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Source code to review"),
		),
		mcp.WithString("optimization_type",
			mcp.Description("Which suggestions to include. Default: all"),
			mcp.DefaultString("all"),
			mcp.Enum("performance", "accessibility", "maintainability", "all"),
		),
	)
}

// Handle processes the optimize_code tool call.
func (t *OptimizeCodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := req.GetString("code", "")
	if strings.TrimSpace(code) == "" {
		return mcp.NewToolResultError("'code' is required — provide the source code to review"), nil
	}
	optimizationType := req.GetString("optimization_type", "all")

	// "all" — and any unrecognized value — includes every group.
	groups := []string{optimizationType}
	if _, known := optimizationClaims[optimizationType]; !known {
		groups = claimOrder
	}

	var response strings.Builder
	response.WriteString("# Code Optimization\n\n")
	fmt.Fprintf(&response, "**Optimization type:** %s\n\n", optimizationType)
	for _, group := range groups {
		fmt.Fprintf(&response, "## %s\n\n", strings.ToUpper(group[:1])+group[1:])
		for _, claim := range optimizationClaims[group] {
			fmt.Fprintf(&response, "- %s\n", claim)
		}
		response.WriteString("\n")
	}
	response.WriteString("## Code\n\nReturned unchanged — apply the suggestions above as needed:\n\n")
	fmt.Fprintf(&response, "```\n%s\n```", code)

	return mcp.NewToolResultText(response.String()), nil
}
