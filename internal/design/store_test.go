package design

import "testing"

// --- Seeding ---

func TestNewTokenStore_SeedsDefaults(t *testing.T) {
	s := NewTokenStore()

	if s.Len() != 4 {
		t.Fatalf("seeded store has %d tokens, want 4", s.Len())
	}

	wantSlugs := []string{"primary-color", "secondary-color", "heading-font", "base-spacing"}
	all := s.All()
	for i, slug := range wantSlugs {
		if got := Slugify(all[i].Name); got != slug {
			t.Errorf("seed[%d] slug = %q, want %q", i, got, slug)
		}
	}

	tok, ok := s.Get("primary-color")
	if !ok {
		t.Fatal("primary-color should be seeded")
	}
	if tok.Type != TypeColor {
		t.Errorf("primary-color type = %s, want %s", tok.Type, TypeColor)
	}
	if tok.Value != "#3B82F6" {
		t.Errorf("primary-color value = %q, want %q", tok.Value, "#3B82F6")
	}
}

// --- Put ---

func TestPut_NewTokenAppends(t *testing.T) {
	s := NewTokenStore()
	before := s.Len()

	slug := s.Put(Token{Name: "Danger Red", Type: TypeColor, Value: "#EF4444"})

	if slug != "danger-red" {
		t.Errorf("Put returned slug %q, want %q", slug, "danger-red")
	}
	if s.Len() != before+1 {
		t.Errorf("store has %d tokens after Put, want %d", s.Len(), before+1)
	}

	all := s.All()
	if got := all[len(all)-1].Name; got != "Danger Red" {
		t.Errorf("new token should be last in listing order, got %q", got)
	}
}

func TestPut_SameSlugOverwritesInPlace(t *testing.T) {
	s := NewTokenStore()
	before := s.Len()

	// "Primary Color" is seeded at position 0.
	slug := s.Put(Token{Name: "Primary Color", Type: TypeColor, Value: "#1D4ED8"})

	if slug != "primary-color" {
		t.Errorf("Put returned slug %q, want %q", slug, "primary-color")
	}
	if s.Len() != before {
		t.Errorf("overwrite grew the store: %d tokens, want %d", s.Len(), before)
	}

	tok, ok := s.Get("primary-color")
	if !ok {
		t.Fatal("primary-color should still exist after overwrite")
	}
	if tok.Value != "#1D4ED8" {
		t.Errorf("overwritten value = %q, want %q", tok.Value, "#1D4ED8")
	}

	// Overwrite keeps the original listing position.
	if got := s.All()[0].Value; got != "#1D4ED8" {
		t.Errorf("overwritten token should stay at position 0, got value %q", got)
	}
}

func TestPut_SlugCollisionAcrossNames(t *testing.T) {
	s := NewTokenStore()

	s.Put(Token{Name: "Brand Blue", Type: TypeColor, Value: "#00F"})
	s.Put(Token{Name: "brand blue", Type: TypeColor, Value: "#00A"})

	tok, ok := s.Get("brand-blue")
	if !ok {
		t.Fatal("brand-blue should exist")
	}
	if tok.Value != "#00A" {
		t.Errorf("collision should overwrite: value = %q, want %q", tok.Value, "#00A")
	}
}

// --- Get ---

func TestGet_Missing(t *testing.T) {
	s := NewTokenStore()

	if _, ok := s.Get("no-such-token"); ok {
		t.Error("Get on an unknown slug should report not found")
	}
}

// --- All ---

func TestAll_InsertionOrder(t *testing.T) {
	s := NewTokenStore()
	s.Put(Token{Name: "Card Shadow", Type: TypeShadow, Value: "0 1px 3px rgba(0,0,0,0.2)"})
	s.Put(Token{Name: "Focus Ring", Type: TypeBorder, Value: "2px solid #3B82F6"})

	all := s.All()
	if len(all) != 6 {
		t.Fatalf("All returned %d tokens, want 6", len(all))
	}
	if all[4].Name != "Card Shadow" || all[5].Name != "Focus Ring" {
		t.Errorf("All should preserve insertion order, got %q then %q", all[4].Name, all[5].Name)
	}
}
