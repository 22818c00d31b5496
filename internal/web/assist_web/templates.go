package assist_web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*.svg
var staticFS embed.FS

// DefaultAssets holds the visuals of the built-in route.
func DefaultAssets() fs.FS {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return assets
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("root").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (renderer *Renderer) Render(writer io.Writer, name string, data any) error {
	return renderer.tmpl.ExecuteTemplate(writer, name, data)
}
