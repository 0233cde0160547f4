package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes a Page. Handlers never touch templates directly.
type Renderer interface {
	Render(w io.Writer, page *Page) error
}

// HTMLRenderer renders pages with html/template.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"textAreaHeight": func() int { return TextAreaHeight },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, page *Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", page)
}
