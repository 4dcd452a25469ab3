// Package tools implements the five design-system MCP tools.
//
// Each file holds one tool: a struct with constructor-injected
// dependencies, a Definition() for registration, and a Handle method
// compatible with mcp-go's CallToolRequest signature. Required arguments
// are validated up front; a validation failure returns a tool-result
// error and leaves the stores untouched.
package tools

import (
	"sort"
	"strings"
	"unicode"
)

// camelToKebab converts a camelCase identifier to kebab-case:
// "backgroundColor" → "background-color".
func camelToKebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sortedKeys returns the map's keys in lexical order. Generated code must
// be deterministic and Go map iteration is not.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
