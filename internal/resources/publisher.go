package resources

import (
	"github.com/HendryAvila/swatchy/internal/design"
	"github.com/mark3labs/mcp-go/server"
)

// Publisher registers resources with the MCP server as they come into
// existence. It is the single registration path for both the seeded store
// entries at startup and tokens created at runtime, so the resource
// listing always tracks the stores: one entry per token, one per
// template, plus the overview document.
type Publisher struct {
	srv     *server.MCPServer
	handler *Handler
}

// NewPublisher creates a Publisher bound to an MCP server instance.
func NewPublisher(srv *server.MCPServer, h *Handler) *Publisher {
	return &Publisher{srv: srv, handler: h}
}

// PublishAll registers every current token, every template, and the
// overview document. Called once at startup after the stores are seeded.
func (p *Publisher) PublishAll() {
	for _, tok := range p.handler.tokens.All() {
		p.OnTokenCreated(design.Slugify(tok.Name), tok)
	}
	for _, tpl := range p.handler.templates.All() {
		id := design.Slugify(tpl.Name)
		p.srv.AddResource(p.handler.TemplateResource(id, tpl), p.handler.HandleTemplate)
	}
	p.srv.AddResource(p.handler.OverviewResource(), p.handler.HandleOverview)
}

// OnTokenCreated registers the resource for a token that was just stored.
// Re-registering an existing slug replaces the descriptor in place, which
// matches the store's silent-overwrite behavior — the listing never grows
// on overwrite.
func (p *Publisher) OnTokenCreated(slug string, tok design.Token) {
	p.srv.AddResource(p.handler.TokenResource(slug, tok), p.handler.HandleToken)
}
