package design

import "sync"

// TokenStore is the process-lifetime token map, keyed by slug and
// insertion-ordered for stable listings.
//
// The MCP runtime may serve handlers on separate goroutines, so access is
// guarded even though the protocol is effectively single-client.
type TokenStore struct {
	mu     sync.RWMutex
	order  []string
	tokens map[string]Token
}

// NewTokenStore creates a store seeded with the default design system
// tokens: two brand colors, the heading font stack, and the base spacing
// unit.
func NewTokenStore() *TokenStore {
	s := &TokenStore{tokens: make(map[string]Token)}
	for _, tok := range defaultTokens() {
		s.Put(tok)
	}
	return s
}

// defaultTokens returns the seed records in insertion order.
func defaultTokens() []Token {
	return []Token{
		{
			Name:        "Primary Color",
			Type:        TypeColor,
			Value:       "#3B82F6",
			Description: "Primary brand color for buttons, links, and interactive elements",
		},
		{
			Name:        "Secondary Color",
			Type:        TypeColor,
			Value:       "#10B981",
			Description: "Secondary accent color for highlights and success states",
		},
		{
			Name:        "Heading Font",
			Type:        TypeTypography,
			Value:       "Inter, system-ui, sans-serif",
			Description: "Font stack for headings and titles",
		},
		{
			Name:        "Base Spacing",
			Type:        TypeSpacing,
			Value:       "8px",
			Description: "Base spacing unit for margins and padding",
		},
	}
}

// Put stores a token under its derived slug, silently overwriting any
// existing entry. An overwrite keeps the entry's original position in the
// listing order. Returns the slug.
func (s *TokenStore) Put(tok Token) string {
	slug := Slugify(tok.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tokens[slug]; !exists {
		s.order = append(s.order, slug)
	}
	s.tokens[slug] = tok

	return slug
}

// Get returns the token stored under slug.
func (s *TokenStore) Get(slug string) (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tok, ok := s.tokens[slug]
	return tok, ok
}

// All returns every token in insertion order.
func (s *TokenStore) All() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Token, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.tokens[slug])
	}
	return out
}

// Len returns the number of stored tokens.
func (s *TokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
