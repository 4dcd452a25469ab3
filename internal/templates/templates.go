// Package templates holds the built-in code template catalog.
//
// Templates are fixed at startup and read-only at runtime. They are served
// raw through the template:// resource scheme, placeholder markers intact:
// substitution is the client's business, the server never renders them.
package templates

import "github.com/HendryAvila/swatchy/internal/design"

// --- Framework enum ---

// Framework identifies the UI framework a template targets.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkSvelte  Framework = "svelte"
	FrameworkHTML    Framework = "html"
	FrameworkAngular Framework = "angular"
)

// --- Language enum ---

// Language identifies the source language of a template.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangCSS        Language = "css"
	LangSCSS       Language = "scss"
)

// --- Core data structure ---

// Template is a single code template record. Identity is derived from
// Name the same way token slugs are (design.Slugify).
type Template struct {
	Name        string
	Framework   Framework
	Language    Language
	Template    string
	Description string
}

// --- Store ---

// Store is the immutable template catalog. There is no mutation API:
// the catalog is built once and only read afterwards.
type Store struct {
	order     []string
	templates map[string]Template
}

// NewStore creates the catalog with the built-in templates.
func NewStore() *Store {
	s := &Store{templates: make(map[string]Template)}
	for _, tpl := range builtinTemplates() {
		id := design.Slugify(tpl.Name)
		s.order = append(s.order, id)
		s.templates[id] = tpl
	}
	return s
}

// Get returns the template stored under id.
func (s *Store) Get(id string) (Template, bool) {
	tpl, ok := s.templates[id]
	return tpl, ok
}

// All returns every template in catalog order.
func (s *Store) All() []Template {
	out := make([]Template, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.templates[id])
	}
	return out
}

// Len returns the number of templates in the catalog.
func (s *Store) Len() int {
	return len(s.order)
}

// builtinTemplates returns the seed records in catalog order.
func builtinTemplates() []Template {
	return []Template{
		{
			Name:        "React Button",
			Framework:   FrameworkReact,
			Language:    LangTypeScript,
			Description: "Accessible button component with variant and disabled support",
			Template: `import React from 'react';

export interface {{ComponentName}}Props {
  /** Visual style of the button. */
  variant?: '{{variant}}' | 'secondary' | 'ghost';
  /** Disables interaction and dims the button. */
  disabled?: boolean;
  children: React.ReactNode;
  onClick?: () => void;
}

export const {{ComponentName}}: React.FC<{{ComponentName}}Props> = ({
  variant = '{{variant}}',
  disabled = false,
  children,
  onClick,
}) => (
  <button
    type="button"
    className={'btn btn--' + variant}
    disabled={disabled}
    onClick={onClick}
  >
    {children}
  </button>
);
`,
		},
		{
			Name:        "Vue Card",
			Framework:   FrameworkVue,
			Language:    LangJavaScript,
			Description: "Card layout component with a titled header and a body slot",
			Template: `<template>
  <div class="card">
    <header class="card__header">
      <h3>{{title}}</h3>
    </header>
    <section class="card__body">
      <slot />
    </section>
  </div>
</template>

<script>
export default {
  name: 'Card',
  props: {
    title: { type: String, required: true },
  },
};
</script>
`,
		},
	}
}
