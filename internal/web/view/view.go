// Package view renders the frontend's server-side HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// Page template names.
const (
	PageLogin = "login.html"
	PageHome  = "home.html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and other assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoginPage is the data behind the login form.
type LoginPage struct {
	Username     string
	ErrorMessage string
	FieldErrors  map[string]string
	CSRFToken    string
}

// HomePage is the data behind the personalised catalog.
type HomePage struct {
	Username   string
	FullName   string
	Role       string
	Email      string
	Categories []domain.Category
	TopItems   []domain.Item
	CSRFToken  string
}

// Renderer satisfies echo.Renderer. Each page is parsed together with the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageLogin, PageHome} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
