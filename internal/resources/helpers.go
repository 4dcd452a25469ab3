package resources

import "github.com/mark3labs/mcp-go/mcp"

// textContents wraps a single text payload in the SDK's contents slice.
// Shared by all three resource handlers.
func textContents(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}
}
