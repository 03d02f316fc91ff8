// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"dnalab/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageContact  = "contact"
	PageProducts = "products"
	PageNotFound = "notfound"
)

var pages = []string{PageHome, PageAbout, PageContact, PageProducts, PageNotFound}

// Layout is the data every page shares with the base template
type Layout struct {
	Title      string
	Path       string
	Categories []domain.Category
}

// AuthView is the authenticator widget state for one render
type AuthView struct {
	Input   string
	Verdict domain.Verdict
	State   domain.LoadState
	Error   string
}

// HomePage is the data for the landing page
type HomePage struct {
	Layout
	Auth     AuthView
	Trending []domain.ProductItem
}

// ProductsPage is the data for catalog listings
type ProductsPage struct {
	Layout
	Heading   string
	Intro     string
	Products  []domain.ProductItem
	Dietary   []domain.DietaryEntry
	IsDietary bool
}

// Renderer executes the parsed page templates
type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses every page together with the shared layout and partials
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
		now:   time.Now,
	}

	for _, name := range pages {
		t, err := template.New(name).Funcs(r.funcs()).ParseFS(templateFS,
			"templates/base.tmpl",
			"templates/partials.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render writes the page through the base layout. Output is buffered so a
// failing template never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"year":     func() int { return r.now().Year() },
		"gbp":      FormatGBP,
		"optGBP":   FormatOptionalGBP,
		"fileName": fileName,
		"anchor":   anchor,
		"active":   func(current, target string) bool { return current == target },
	}
}

// FormatGBP renders a price without trailing zeros, e.g. £50 or £12.5
func FormatGBP(v float64) string {
	return "£" + strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatOptionalGBP renders an em-dash for unknown prices
func FormatOptionalGBP(v *float64) string {
	if v == nil {
		return "£—"
	}
	return FormatGBP(*v)
}

func fileName(src string) string {
	if i := strings.LastIndex(src, "/"); i >= 0 {
		src = src[i+1:]
	}
	if src == "" {
		return "Dietary product"
	}
	return src
}

// anchor builds a fragment id usable for :target modals
func anchor(prefix, s string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
