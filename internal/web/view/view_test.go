package view

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

func TestRenderer_Home(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	catalog := domain.DemoCatalog()
	var buf bytes.Buffer
	err = r.Render(&buf, PageHome, HomePage{
		FullName:   "Carol Williams",
		Role:       domain.RoleAdmin,
		Email:      "carol.williams@demo.com",
		Categories: catalog.Categories,
		TopItems:   catalog.TopItems,
		CSRFToken:  "tok",
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Carol Williams", "carol.williams@demo.com", "Home Appliances", "Monet Print (Signed)", "$8,950.00", "handler=Logout"} {
		if !strings.Contains(out, want) {
			t.Fatalf("home page missing %q", want)
		}
	}
}

func TestRenderer_LoginEscapesInput(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, PageLogin, LoginPage{
		Username:     `<script>x</script>`,
		ErrorMessage: "Invalid username or password.",
		FieldErrors:  map[string]string{"Password": "Password is required."},
	}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<script>x</script>") {
		t.Fatalf("username was not escaped")
	}
	if !strings.Contains(out, "Invalid username or password.") || !strings.Contains(out, "Password is required.") {
		t.Fatalf("messages missing from login page")
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "missing.html", nil, nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestStatic(t *testing.T) {
	if _, err := fs.Stat(Static(), "site.css"); err != nil {
		t.Fatalf("site.css not embedded: %v", err)
	}
}
