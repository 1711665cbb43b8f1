// Package view renders the restaurant page: the add-restaurant form and the restaurants container.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"restaurantform/internal/applog"
	"restaurantform/internal/model"
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

// FieldView is one input of the form as rendered: its FieldSpec, the controlled value and any constraint message.
type FieldView struct {
	model.FieldSpec
	Value string
	Error string
}

// PageData is the input of the page template.
type PageData struct {
	Title       string
	Status      string
	Fields      []FieldView
	Restaurants template.HTML
}

// Fields binds every form input to the matching draft value and constraint message.
func Fields(d model.RestaurantDraft, errs map[model.Field]string) []FieldView {
	out := make([]FieldView, 0, len(model.FieldSpecs))
	for _, spec := range model.FieldSpecs {
		out = append(out, FieldView{
			FieldSpec: spec,
			Value:     d.Get(spec.Field),
			Error:     errs[spec.Field],
		})
	}
	return out
}

// Renderer executes the page templates.
type Renderer struct {
	tmpl  *template.Template
	title string
}

// NewRenderer parses the embedded templates.
func NewRenderer(title string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, title: title}, nil
}

// Page writes the full page: the form bound to d (with constraint messages errs) followed by the restaurants fragment.
func (r *Renderer) Page(w io.Writer, status string, d model.RestaurantDraft, errs map[model.Field]string, restaurants template.HTML) error {
	return r.tmpl.ExecuteTemplate(w, "page", PageData{
		Title:       r.title,
		Status:      status,
		Fields:      Fields(d, errs),
		Restaurants: restaurants,
	})
}

// Restaurants writes one card per restaurant, in list order. An empty list produces an empty container.
func (r *Renderer) Restaurants(w io.Writer, l model.RestaurantList) error {
	return r.tmpl.ExecuteTemplate(w, "restaurants", l)
}

// Container keeps the rendered restaurants fragment in sync with the list.
// Subscribe Update to the restaurant service; readers get the fragment of the latest list.
type Container struct {
	r   *Renderer
	log *applog.Logger

	mu   sync.RWMutex
	html template.HTML
}

// NewContainer creates a container holding the fragment of an empty list.
func NewContainer(r *Renderer, log *applog.Logger) (*Container, error) {
	if log == nil {
		log = applog.Default()
	}
	c := &Container{r: r, log: log}
	html, err := c.render(nil)
	if err != nil {
		return nil, err
	}
	c.html = html
	return c, nil
}

// Update re-renders the fragment from l. On a render failure the previous fragment is kept.
func (c *Container) Update(l model.RestaurantList) {
	html, err := c.render(l)
	if err != nil {
		c.log.Error(map[string]any{
			"component": "view",
			"event":     "restaurants_render_failed",
			"error":     err.Error(),
		})
		return
	}
	c.mu.Lock()
	c.html = html
	c.mu.Unlock()
}

// HTML returns the latest rendered fragment.
func (c *Container) HTML() template.HTML {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.html
}

func (c *Container) render(l model.RestaurantList) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.r.Restaurants(&buf, l); err != nil {
		return "", fmt.Errorf("render restaurants: %w", err)
	}
	// Output of html/template is already escaped.
	return template.HTML(buf.String()), nil
}
