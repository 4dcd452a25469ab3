package tools

import (
	"context"
	"strings"
	"testing"
)

const sampleCode = `const x = () => { return <div style={{width: 417}} onScroll={handler} /> }`

func TestOptimizeCode_ReturnsCodeUnchanged(t *testing.T) {
	tool := NewOptimizeCodeTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"code": sampleCode,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	if !strings.Contains(getResultText(result), sampleCode) {
		t.Error("the original code should be echoed back unchanged")
	}
}

func TestOptimizeCode_AllIncludesEveryGroup(t *testing.T) {
	tool := NewOptimizeCodeTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"code": sampleCode,
		// optimization_type omitted — defaults to all
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := getResultText(result)
	for _, section := range []string{"## Performance", "## Accessibility", "## Maintainability"} {
		if !strings.Contains(text, section) {
			t.Errorf("all-mode output missing section: %q", section)
		}
	}
}

func TestOptimizeCode_SingleGroup(t *testing.T) {
	tool := NewOptimizeCodeTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"code":              sampleCode,
		"optimization_type": "accessibility",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := getResultText(result)
	if !strings.Contains(text, "## Accessibility") {
		t.Error("requested group should be present")
	}
	if !strings.Contains(text, "WCAG AA") {
		t.Error("accessibility claims should be listed")
	}
	for _, section := range []string{"## Performance", "## Maintainability"} {
		if strings.Contains(text, section) {
			t.Errorf("single-group output should not contain %q", section)
		}
	}
}

func TestOptimizeCode_UnrecognizedTypeIncludesEverything(t *testing.T) {
	tool := NewOptimizeCodeTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"code":              sampleCode,
		"optimization_type": "security",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := getResultText(result)
	for _, section := range []string{"## Performance", "## Accessibility", "## Maintainability"} {
		if !strings.Contains(text, section) {
			t.Errorf("unrecognized type should fall back to every group, missing %q", section)
		}
	}
}

func TestOptimizeCode_MissingCode(t *testing.T) {
	tool := NewOptimizeCodeTool()

	result, err := tool.Handle(context.Background(), callRequest(map[string]interface{}{
		"optimization_type": "performance",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("missing code should produce a tool error")
	}
	if !strings.Contains(getResultText(result), "'code' is required") {
		t.Errorf("error should name the missing argument, got: %s", getResultText(result))
	}
}
