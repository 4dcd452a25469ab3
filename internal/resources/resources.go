// Package resources implements the MCP resource directory for the design
// system: one resource per design token, one per code template, and a
// generated overview document.
//
// Resources use URI-based addressing; the scheme selects the backing
// store: design-token:///{slug}, template:///{id}, design-system:///overview.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/HendryAvila/swatchy/internal/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	// TokenURIPrefix addresses a single design token by slug.
	TokenURIPrefix = "design-token:///"

	// TemplateURIPrefix addresses a single code template by id.
	TemplateURIPrefix = "template:///"

	// OverviewURI addresses the generated design system overview document.
	OverviewURI = "design-system:///overview"
)

// Handler serves resource reads from the token and template stores.
type Handler struct {
	tokens    *design.TokenStore
	templates *templates.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(tokens *design.TokenStore, tpls *templates.Store) *Handler {
	return &Handler{tokens: tokens, templates: tpls}
}

// TokenURI returns the resource URI for a token slug.
func TokenURI(slug string) string {
	return TokenURIPrefix + slug
}

// tokenRecord is the JSON projection served for a token resource.
// The id is the derived slug; it is not stored on the token itself.
type tokenRecord struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        design.TokenType `json:"type"`
	Value       string           `json:"value"`
	Description string           `json:"description,omitempty"`
}

// TokenResource returns the MCP resource definition for one token.
func (h *Handler) TokenResource(slug string, tok design.Token) mcp.Resource {
	return mcp.NewResource(
		TokenURI(slug),
		tok.Name,
		mcp.WithResourceDescription(fmt.Sprintf("Design token: %s (%s)", tok.Name, tok.Type)),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleToken serves a design-token:// read. The trailing path segment is
// the store key.
func (h *Handler) HandleToken(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	slug := strings.TrimPrefix(req.Params.URI, TokenURIPrefix)

	tok, ok := h.tokens.Get(slug)
	if !ok {
		return nil, fmt.Errorf("design token %q not found", slug)
	}

	record := tokenRecord{
		ID:          slug,
		Name:        tok.Name,
		Type:        tok.Type,
		Value:       tok.Value,
		Description: tok.Description,
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling token %q: %w", slug, err)
	}

	return textContents(req.Params.URI, "application/json", string(data)), nil
}

// TemplateResource returns the MCP resource definition for one template.
func (h *Handler) TemplateResource(id string, tpl templates.Template) mcp.Resource {
	return mcp.NewResource(
		TemplateURIPrefix+id,
		tpl.Name,
		mcp.WithResourceDescription(fmt.Sprintf("Code template: %s (%s/%s)", tpl.Name, tpl.Framework, tpl.Language)),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleTemplate serves a template:// read. The body is the raw template
// source, placeholder markers intact.
func (h *Handler) HandleTemplate(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := strings.TrimPrefix(req.Params.URI, TemplateURIPrefix)

	tpl, ok := h.templates.Get(id)
	if !ok {
		return nil, fmt.Errorf("template %q not found", id)
	}

	return textContents(req.Params.URI, "text/plain", tpl.Template), nil
}

// OverviewResource returns the MCP resource definition for the overview
// document.
func (h *Handler) OverviewResource() mcp.Resource {
	return mcp.NewResource(
		OverviewURI,
		"Design System Overview",
		mcp.WithResourceDescription("All design tokens grouped by type, regenerated on every read"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleOverview serves the design-system:///overview read. The document
// is rebuilt from the live token store on every request, so tokens created
// after startup always appear.
func (h *Handler) HandleOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textContents(req.Params.URI, "text/markdown", buildOverview(h.tokens.All())), nil
}

// buildOverview renders the overview document: a count header, then one
// section per token type. Known types come first in canonical order,
// followed by custom types in first-seen order. Empty sections are skipped.
func buildOverview(tokens []design.Token) string {
	byType := make(map[design.TokenType][]design.Token)
	var typeOrder []design.TokenType
	for _, t := range design.KnownTokenTypes {
		typeOrder = append(typeOrder, t)
	}
	for _, tok := range tokens {
		if _, seen := byType[tok.Type]; !seen && !isKnownType(tok.Type) {
			typeOrder = append(typeOrder, tok.Type)
		}
		byType[tok.Type] = append(byType[tok.Type], tok)
	}

	categories := 0
	for _, t := range typeOrder {
		if len(byType[t]) > 0 {
			categories++
		}
	}

	var b strings.Builder
	b.WriteString("# Design System Overview\n\n")
	fmt.Fprintf(&b, "%d design tokens across %d categories.\n", len(tokens), categories)

	for _, t := range typeOrder {
		group := byType[t]
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n\n", t.SectionTitle())
		for _, tok := range group {
			fmt.Fprintf(&b, "- **%s** (`%s`): `%s`", tok.Name, design.Slugify(tok.Name), tok.Value)
			if tok.Description != "" {
				fmt.Fprintf(&b, " — %s", tok.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// isKnownType reports whether t is one of the recognized token types.
func isKnownType(t design.TokenType) bool {
	for _, known := range design.KnownTokenTypes {
		if t == known {
			return true
		}
	}
	return false
}
