package templates

import (
	"strings"
	"testing"
)

// --- NewStore ---

func TestNewStore_SeedsBuiltins(t *testing.T) {
	s := NewStore()

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	tests := []struct {
		id        string
		name      string
		framework Framework
		language  Language
		markers   []string
	}{
		{
			id:        "react-button",
			name:      "React Button",
			framework: FrameworkReact,
			language:  LangTypeScript,
			markers:   []string{"{{ComponentName}}", "{{variant}}"},
		},
		{
			id:        "vue-card",
			name:      "Vue Card",
			framework: FrameworkVue,
			language:  LangJavaScript,
			markers:   []string{"{{title}}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tpl, ok := s.Get(tt.id)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.id)
			}
			if tpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tpl.Name, tt.name)
			}
			if tpl.Framework != tt.framework {
				t.Errorf("Framework = %q, want %q", tpl.Framework, tt.framework)
			}
			if tpl.Language != tt.language {
				t.Errorf("Language = %q, want %q", tpl.Language, tt.language)
			}
			if tpl.Description == "" {
				t.Error("Description should not be empty")
			}
			// Placeholder markers must survive verbatim: templates are
			// served raw, never rendered.
			for _, marker := range tt.markers {
				if !strings.Contains(tpl.Template, marker) {
					t.Errorf("Template missing marker %q", marker)
				}
			}
		})
	}
}

// --- Get ---

func TestGet_UnknownID(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("no-such-template")
	if ok {
		t.Error("Get on unknown id should return ok=false")
	}

	_, ok = s.Get("React Button") // the name, not the slug
	if ok {
		t.Error("Get should key by slug, not display name")
	}
}

// --- All ---

func TestAll_CatalogOrder(t *testing.T) {
	s := NewStore()

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d templates, want 2", len(all))
	}
	if all[0].Name != "React Button" {
		t.Errorf("All()[0].Name = %q, want %q", all[0].Name, "React Button")
	}
	if all[1].Name != "Vue Card" {
		t.Errorf("All()[1].Name = %q, want %q", all[1].Name, "Vue Card")
	}
}
