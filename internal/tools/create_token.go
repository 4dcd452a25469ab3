package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateTokenTool handles the create_design_token MCP tool.
// It is the only mutation point in the system: everything else reads the
// stores built at startup.
type CreateTokenTool struct {
	store    *design.TokenStore
	observer TokenObserver
}

// NewCreateTokenTool creates a CreateTokenTool over the given token store.
func NewCreateTokenTool(store *design.TokenStore) *CreateTokenTool {
	return &CreateTokenTool{store: store}
}

// SetObserver injects an optional TokenObserver notified after each write.
func (t *CreateTokenTool) SetObserver(obs TokenObserver) { t.observer = obs }

// Definition returns the MCP tool definition for registration.
func (t *CreateTokenTool) Definition() mcp.Tool {
	return mcp.NewTool("create_design_token",
		mcp.WithDescription(
			"Create a design token. The token's id is derived from its name "+
				"(lowercase, spaces to hyphens); creating a token whose id "+
				"already exists silently replaces the previous entry.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name, e.g. 'Primary Color'"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Token type: color, typography, spacing, border, or shadow"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("The style value, e.g. '#3B82F6' or '8px'"),
		),
		mcp.WithString("description",
			mcp.Description("What the token is for"),
			mcp.DefaultString(""),
		),
	)
}

// Handle processes the create_design_token tool call.
func (t *CreateTokenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("'name' is required — provide a display name for the token"), nil
	}
	tokenType := req.GetString("type", "")
	if strings.TrimSpace(tokenType) == "" {
		return mcp.NewToolResultError("'type' is required — color, typography, spacing, border, or shadow"), nil
	}
	value := req.GetString("value", "")
	if strings.TrimSpace(value) == "" {
		return mcp.NewToolResultError("'value' is required — provide the style value"), nil
	}
	description := req.GetString("description", "")

	// The type is stored as given: the schema documents the known values
	// but the store accepts any string.
	tok := design.Token{
		Name:        name,
		Type:        design.TokenType(tokenType),
		Value:       value,
		Description: description,
	}
	slug := t.store.Put(tok)

	notifyObserver(t.observer, slug, tok)

	record, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling token %q: %w", slug, err)
	}

	response := fmt.Sprintf(
		"# Design Token Created\n\n"+
			"**Id:** `%s`\n"+
			"**Resource:** `design-token:///%s`\n\n"+
			"```json\n%s\n```",
		slug, slug, record,
	)
	return mcp.NewToolResultText(response), nil
}
