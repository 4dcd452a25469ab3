// Package prompts implements the three design-system MCP prompts.
//
// Prompts are user-triggered message templates (like slash commands):
// the server fills in the requested focus and, where useful, the current
// token inventory, and returns a single user-role message for the client
// to send onward.
package prompts

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/swatchy/internal/design"
)

// tokenInventory renders the current token store as a markdown list for
// embedding in prompt bodies, one line per token in insertion order.
func tokenInventory(store *design.TokenStore) string {
	all := store.All()

	var b strings.Builder
	fmt.Fprintf(&b, "The design system currently has %d tokens:\n\n", len(all))
	for _, tok := range all {
		fmt.Fprintf(&b, "- %s (%s): %s\n", tok.Name, tok.Type, tok.Value)
	}
	return b.String()
}

// promptArg reads a named argument from a prompt request's arguments,
// falling back to def when the argument is absent or empty.
func promptArg(args map[string]string, name, def string) string {
	if v, ok := args[name]; ok && v != "" {
		return v
	}
	return def
}
