package server

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// htmlRenderer adapts html/template to echo's Renderer interface.
type htmlRenderer struct {
	templates *template.Template
}

func newRenderer() *htmlRenderer {
	return &htmlRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render implements echo.Renderer.
func (r *htmlRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
