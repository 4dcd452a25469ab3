// Package design holds the design token domain: token types, slug
// derivation, and the in-memory token store.
//
// A token is the atomic unit of the design system — a named, typed style
// value (color, typography, spacing, border, shadow). The store is seeded
// with defaults at startup, mutated only by token creation, and never
// deletes entries; it lives exactly as long as the server process.
package design

import "strings"

// --- Token type enum ---

// TokenType categorizes what kind of style value a token carries.
type TokenType string

const (
	TypeColor      TokenType = "color"
	TypeTypography TokenType = "typography"
	TypeSpacing    TokenType = "spacing"
	TypeBorder     TokenType = "border"
	TypeShadow     TokenType = "shadow"
)

// KnownTokenTypes lists the recognized token types in canonical order.
// The overview document renders its sections in this order; tokens with
// a type outside this set get their own section afterwards.
var KnownTokenTypes = []TokenType{
	TypeColor,
	TypeTypography,
	TypeSpacing,
	TypeBorder,
	TypeShadow,
}

// SectionTitle returns the overview section heading for a token type.
// Unrecognized types fall back to the capitalized raw string so tokens
// created with a custom type still surface in the document.
func (t TokenType) SectionTitle() string {
	switch t {
	case TypeColor:
		return "Colors"
	case TypeTypography:
		return "Typography"
	case TypeSpacing:
		return "Spacing"
	case TypeBorder:
		return "Borders"
	case TypeShadow:
		return "Shadows"
	}

	s := string(t)
	if s == "" {
		return "Other"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// --- Core data structure ---

// Token is a single design token record. Identity is not stored on the
// record — it is always derived from Name via Slugify.
type Token struct {
	Name        string    `json:"name"`
	Type        TokenType `json:"type"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
}

// --- Slug derivation ---

// Slugify derives a token's store key from its display name: lowercase,
// spaces to hyphens. Example: "Primary Color" → "primary-color".
//
// Deliberately nothing more — no trimming, no collapsing — so the slug is
// always the exact hyphen-joined form of the name and round-trips with
// the resource URI.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
