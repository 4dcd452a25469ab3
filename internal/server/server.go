// Package server wires the stores, tools, prompts, and resources into an
// MCP server instance.
//
// This is the composition root: it creates the concrete stores and injects
// them into the handlers that depend on them. No business logic lives
// here — only wiring.
package server

import (
	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/HendryAvila/swatchy/internal/prompts"
	"github.com/HendryAvila/swatchy/internal/resources"
	"github.com/HendryAvila/swatchy/internal/templates"
	"github.com/HendryAvila/swatchy/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. The token store lives exactly as long as the
// returned server: seeded here, mutated only by create_design_token, torn
// down implicitly at process exit.
func New() *server.MCPServer {
	tokenStore := design.NewTokenStore()
	templateStore := templates.NewStore()

	s := server.NewMCPServer(
		"swatchy",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register resources ---
	//
	// One resource per store entry plus the overview document. The
	// publisher is also wired into the create tool below so tokens
	// created at runtime show up in the listing immediately.

	resourceHandler := resources.NewHandler(tokenStore, templateStore)
	publisher := resources.NewPublisher(s, resourceHandler)
	publisher.PublishAll()

	// --- Register design tools ---

	analyzeTool := tools.NewAnalyzeDesignTool()
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	generateTool := tools.NewGenerateCodeTool()
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	extractTool := tools.NewExtractTokensTool()
	s.AddTool(extractTool.Definition(), extractTool.Handle)

	optimizeTool := tools.NewOptimizeCodeTool()
	s.AddTool(optimizeTool.Definition(), optimizeTool.Handle)

	createTool := tools.NewCreateTokenTool(tokenStore)
	createTool.SetObserver(publisher)
	s.AddTool(createTool.Definition(), createTool.Handle)

	// --- Register prompts ---

	reviewPrompt := prompts.NewReviewPrompt(tokenStore)
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	docsPrompt := prompts.NewDocsPrompt()
	s.AddPrompt(docsPrompt.Definition(), docsPrompt.Handle)

	consistencyPrompt := prompts.NewConsistencyPrompt(tokenStore)
	s.AddPrompt(consistencyPrompt.Definition(), consistencyPrompt.Handle)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use Swatchy effectively.
func serverInstructions() string {
	return `You have access to Swatchy, a design system MCP server.

Swatchy holds a small in-memory design token store (colors, typography,
spacing, borders, shadows) and a catalog of code templates. Use it when
the user is working on UI components, design tokens, or design-to-code
tasks.

## Tools

- analyze_design: inspect a Figma file's components and token counts
- extract_design_tokens: pull colors/typography/spacing out of a Figma file
- create_design_token: add a token to the design system
- generate_code: turn a JSON component spec into component code (react
  produces a full skeleton; other frameworks are accepted but not yet
  generated)
- optimize_code: review code for performance, accessibility, and
  maintainability improvements

## Resources

- design-token:///{id} — a single token as JSON
- template:///{id} — raw code template source
- design-system:///overview — all tokens grouped by type, always current

## Things to know

- Token ids derive from the name: lowercase, spaces to hyphens
  ("Primary Color" → "primary-color").
- create_design_token silently OVERWRITES when the derived id already
  exists — warn the user before reusing a name.
- Tokens live in memory for the server's lifetime; nothing persists
  across restarts.`
}
