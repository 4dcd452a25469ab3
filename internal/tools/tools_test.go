package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Test helpers ---

// callRequest builds a CallToolRequest with the given arguments.
func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- AnalyzeDesignTool ---

func TestAnalyzeDesign_Success(t *testing.T) {
	tool := NewAnalyzeDesignTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"figma_url": "https://figma.com/file/abc123",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	text := getResultText(result)
	checks := []string{
		"# Design Analysis",
		"https://figma.com/file/abc123", // url echoed back
		"full",                          // default analysis type
		"PrimaryButton — 3 variants (default, hover, disabled)",
		"**Colors:** 4",
		"**Typography styles:** 2",
		"**Spacing values:** 3",
		"extract_design_tokens",
	}
	for _, check := range checks {
		if !strings.Contains(text, check) {
			t.Errorf("analysis output missing: %q", check)
		}
	}
}

func TestAnalyzeDesign_AnalysisTypeEchoed(t *testing.T) {
	tool := NewAnalyzeDesignTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"figma_url":     "https://figma.com/file/abc123",
		"analysis_type": "components",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.Contains(getResultText(result), "**Analysis type:** components") {
		t.Error("analysis_type should be echoed into the response")
	}
}

func TestAnalyzeDesign_MissingURL(t *testing.T) {
	tool := NewAnalyzeDesignTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("missing figma_url should produce a tool error")
	}
	if !strings.Contains(getResultText(result), "'figma_url' is required") {
		t.Errorf("error should name the missing argument, got: %s", getResultText(result))
	}
}

// --- ExtractTokensTool ---

func TestExtractTokens_Success(t *testing.T) {
	tool := NewExtractTokensTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"figma_url": "https://figma.com/file/xyz",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	text := getResultText(result)
	checks := []string{
		"# Extracted Design Tokens",
		"https://figma.com/file/xyz",
		"colors, typography, spacing", // default type list echoed
		`"primary": "#3B82F6"`,
		`"heading": "Inter, system-ui, sans-serif"`,
		`"md": "8px"`,
		"create_design_token",
	}
	for _, check := range checks {
		if !strings.Contains(text, check) {
			t.Errorf("extraction output missing: %q", check)
		}
	}
}

func TestExtractTokens_TypeListEchoedOnly(t *testing.T) {
	tool := NewExtractTokensTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"figma_url":   "https://figma.com/file/xyz",
		"token_types": []interface{}{"colors"},
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := getResultText(result)
	if !strings.Contains(text, "**Requested types:** colors") {
		t.Error("requested type list should be echoed")
	}
	// The extracted set does not narrow to the request.
	if !strings.Contains(text, `"spacing"`) {
		t.Error("extraction result is fixed regardless of token_types")
	}
}

func TestExtractTokens_MissingURL(t *testing.T) {
	tool := NewExtractTokensTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"token_types": []interface{}{"colors"},
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("missing figma_url should produce a tool error")
	}
}
